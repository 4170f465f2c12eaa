// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package memgl

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/glfb/glapi"
)

// BlitFramebuffer copies the selected planes of the source rectangle in the
// read-bound framebuffer's read buffer to the destination rectangle in
// every draw buffer of the draw-bound framebuffer.
//
// Same-size copies move the float planes directly and are pixel-exact.
// Scaled color copies resample through x/image/draw at 8-bit precision.
// Depth and stencil accept only nearest filtering, as in GL.
func (d *Device) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter glapi.Enum) {
	if filter != glapi.Nearest && filter != glapi.Linear {
		d.setErr(glapi.InvalidEnum)
		return
	}
	if mask&(glapi.DepthBufferBit|glapi.StencilBufferBit) != 0 && filter != glapi.Nearest {
		d.setErr(glapi.InvalidOperation)
		return
	}

	sr := image.Rect(int(srcX0), int(srcY0), int(srcX1), int(srcY1))
	dr := image.Rect(int(dstX0), int(dstY0), int(dstX1), int(dstY1))
	srcFB := d.boundFB(glapi.ReadFramebuffer)
	dstFB := d.boundFB(glapi.DrawFramebuffer)

	if mask&glapi.ColorBufferBit != 0 {
		src := d.colorPlane(srcFB, srcFB.readBuf)
		if src != nil {
			for _, buf := range dstFB.drawBufs {
				dst := d.colorPlane(dstFB, buf)
				if dst == nil || dst == src {
					continue
				}
				blitColor(src, sr, dst, dr, filter)
			}
		}
	}
	if mask&glapi.DepthBufferBit != 0 {
		src, dst := d.depthPlane(srcFB), d.depthPlane(dstFB)
		if src != nil && dst != nil && src != dst {
			copyDepth(src, sr, dst, dr)
		}
	}
	if mask&glapi.StencilBufferBit != 0 {
		src, dst := d.stencilPlane(srcFB), d.stencilPlane(dstFB)
		if src != nil && dst != nil && src != dst {
			copyStencil(src, sr, dst, dr)
		}
	}
}

func blitColor(src *plane, sr image.Rectangle, dst *plane, dr image.Rectangle, filter glapi.Enum) {
	if sr.Dx() == dr.Dx() && sr.Dy() == dr.Dy() {
		// Pixel-by-pixel copy, exact at float precision.
		for dy := 0; dy < dr.Dy(); dy++ {
			for dx := 0; dx < dr.Dx(); dx++ {
				sx, sy := sr.Min.X+dx, sr.Min.Y+dy
				tx, ty := dr.Min.X+dx, dr.Min.Y+dy
				if !src.inBounds(sx, sy) || !dst.inBounds(tx, ty) {
					continue
				}
				dst.setColorAt(tx, ty, src.colorAt(sx, sy), [4]bool{true, true, true, true})
			}
		}
		return
	}
	scaleColor(src, sr, dst, dr, filter)
}

// scaleColor resamples a color rectangle via the x/image/draw scalers.
func scaleColor(src *plane, sr image.Rectangle, dst *plane, dr image.Rectangle, filter glapi.Enum) {
	srcImg := image.NewRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
	for y := 0; y < sr.Dy(); y++ {
		for x := 0; x < sr.Dx(); x++ {
			sx, sy := sr.Min.X+x, sr.Min.Y+y
			if !src.inBounds(sx, sy) {
				continue
			}
			c := src.colorAt(sx, sy)
			i := srcImg.PixOffset(x, y)
			srcImg.Pix[i+0] = floatToByte(c[0])
			srcImg.Pix[i+1] = floatToByte(c[1])
			srcImg.Pix[i+2] = floatToByte(c[2])
			srcImg.Pix[i+3] = floatToByte(c[3])
		}
	}

	dstImg := image.NewRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	var scaler draw.Scaler = draw.NearestNeighbor
	if filter == glapi.Linear {
		scaler = draw.BiLinear
	}
	scaler.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)

	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			tx, ty := dr.Min.X+x, dr.Min.Y+y
			if !dst.inBounds(tx, ty) {
				continue
			}
			i := dstImg.PixOffset(x, y)
			dst.setColorAt(tx, ty, [4]float32{
				float32(dstImg.Pix[i+0]) / 255,
				float32(dstImg.Pix[i+1]) / 255,
				float32(dstImg.Pix[i+2]) / 255,
				float32(dstImg.Pix[i+3]) / 255,
			}, [4]bool{true, true, true, true})
		}
	}
}

func copyDepth(src *plane, sr image.Rectangle, dst *plane, dr image.Rectangle) {
	if src.depth == nil || dst.depth == nil {
		return
	}
	for dy := 0; dy < dr.Dy(); dy++ {
		for dx := 0; dx < dr.Dx(); dx++ {
			// Nearest sampling handles size mismatch too.
			sx := sr.Min.X + dx*sr.Dx()/max(1, dr.Dx())
			sy := sr.Min.Y + dy*sr.Dy()/max(1, dr.Dy())
			tx, ty := dr.Min.X+dx, dr.Min.Y+dy
			if !src.inBounds(sx, sy) || !dst.inBounds(tx, ty) {
				continue
			}
			dst.depth[ty*dst.w+tx] = src.depth[sy*src.w+sx]
		}
	}
}

func copyStencil(src *plane, sr image.Rectangle, dst *plane, dr image.Rectangle) {
	if src.stencil == nil || dst.stencil == nil {
		return
	}
	for dy := 0; dy < dr.Dy(); dy++ {
		for dx := 0; dx < dr.Dx(); dx++ {
			sx := sr.Min.X + dx*sr.Dx()/max(1, dr.Dx())
			sy := sr.Min.Y + dy*sr.Dy()/max(1, dr.Dy())
			tx, ty := dr.Min.X+dx, dr.Min.Y+dy
			if !src.inBounds(sx, sy) || !dst.inBounds(tx, ty) {
				continue
			}
			dst.stencil[ty*dst.w+tx] = src.stencil[sy*src.w+sx]
		}
	}
}

func floatToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
