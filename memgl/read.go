// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package memgl

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glfb/glapi"
)

// channelOrder maps a pixel format to plane channel indices.
func channelOrder(format glapi.Enum) []int {
	switch format {
	case glapi.Red:
		return []int{0}
	case glapi.RG:
		return []int{0, 1}
	case glapi.RGB:
		return []int{0, 1, 2}
	case glapi.RGBA:
		return []int{0, 1, 2, 3}
	case glapi.BGR:
		return []int{2, 1, 0}
	case glapi.BGRA:
		return []int{2, 1, 0, 3}
	}
	return nil
}

// pixelBytes returns the encoded size of one pixel, or 0 for a combination
// the device does not support.
func pixelBytes(format, xtype glapi.Enum) int {
	if order := channelOrder(format); order != nil {
		switch xtype {
		case glapi.UnsignedByte:
			return len(order)
		case glapi.Float:
			return 4 * len(order)
		}
		return 0
	}
	switch format {
	case glapi.DepthComponent:
		if xtype == glapi.Float {
			return 4
		}
	case glapi.StencilIndex:
		switch xtype {
		case glapi.UnsignedByte:
			return 1
		case glapi.UnsignedInt:
			return 4
		}
	case glapi.DepthStencil:
		if xtype == glapi.UnsignedInt248 {
			return 4
		}
	}
	return 0
}

// ReadPixels reads from the read-bound framebuffer's read buffer into
// client memory, rows bottom-up, native byte order.
func (d *Device) ReadPixels(x, y, width, height int32, format, xtype glapi.Enum, pixels []byte) {
	d.readInto(pixels, x, y, width, height, format, xtype)
}

// ReadPixelsOffset reads into the bound pixel pack buffer at a byte offset.
func (d *Device) ReadPixelsOffset(x, y, width, height int32, format, xtype glapi.Enum, offset int) {
	if d.packBuffer == 0 {
		d.setErr(glapi.InvalidOperation)
		return
	}
	store := d.buffers[d.packBuffer]
	if offset < 0 || offset > len(store) {
		d.setErr(glapi.InvalidOperation)
		return
	}
	d.readInto(store[offset:], x, y, width, height, format, xtype)
}

func (d *Device) readInto(dst []byte, x, y, width, height int32, format, xtype glapi.Enum) {
	if width < 0 || height < 0 {
		d.setErr(glapi.InvalidValue)
		return
	}
	px := pixelBytes(format, xtype)
	if px == 0 {
		d.setErr(glapi.InvalidEnum)
		return
	}
	if len(dst) < int(width)*int(height)*px {
		d.setErr(glapi.InvalidOperation)
		return
	}

	fb := d.boundFB(glapi.ReadFramebuffer)
	order := channelOrder(format)

	var colorP, depthP, stencilP *plane
	switch {
	case order != nil:
		colorP = d.colorPlane(fb, fb.readBuf)
		if colorP == nil {
			d.setErr(glapi.InvalidOperation)
			return
		}
	case format == glapi.DepthComponent:
		depthP = d.depthPlane(fb)
		if depthP == nil || depthP.depth == nil {
			d.setErr(glapi.InvalidOperation)
			return
		}
	case format == glapi.StencilIndex:
		stencilP = d.stencilPlane(fb)
		if stencilP == nil || stencilP.stencil == nil {
			d.setErr(glapi.InvalidOperation)
			return
		}
	case format == glapi.DepthStencil:
		depthP = d.depthPlane(fb)
		stencilP = d.stencilPlane(fb)
		if depthP == nil || depthP.depth == nil || stencilP == nil || stencilP.stencil == nil {
			d.setErr(glapi.InvalidOperation)
			return
		}
	}

	off := 0
	for row := int32(0); row < height; row++ {
		for col := int32(0); col < width; col++ {
			sx, sy := int(x+col), int(y+row)
			switch {
			case colorP != nil:
				var c [4]float32
				if colorP.inBounds(sx, sy) {
					c = colorP.colorAt(sx, sy)
				}
				for _, ch := range order {
					if xtype == glapi.UnsignedByte {
						dst[off] = floatToByte(c[ch])
						off++
					} else {
						binary.NativeEndian.PutUint32(dst[off:], math.Float32bits(c[ch]))
						off += 4
					}
				}
			case format == glapi.DepthComponent:
				var v float32
				if depthP.inBounds(sx, sy) {
					v = depthP.depth[sy*depthP.w+sx]
				}
				binary.NativeEndian.PutUint32(dst[off:], math.Float32bits(v))
				off += 4
			case format == glapi.StencilIndex:
				var v uint32
				if stencilP.inBounds(sx, sy) {
					v = stencilP.stencil[sy*stencilP.w+sx]
				}
				if xtype == glapi.UnsignedByte {
					dst[off] = uint8(v)
					off++
				} else {
					binary.NativeEndian.PutUint32(dst[off:], v)
					off += 4
				}
			default: // packed depth-stencil
				var dv float32
				var sv uint32
				if depthP.inBounds(sx, sy) {
					dv = depthP.depth[sy*depthP.w+sx]
				}
				if stencilP.inBounds(sx, sy) {
					sv = stencilP.stencil[sy*stencilP.w+sx]
				}
				d24 := uint32(float64(clamp01(dv)) * float64(1<<24-1))
				binary.NativeEndian.PutUint32(dst[off:], d24<<8|sv&0xFF)
				off += 4
			}
		}
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
