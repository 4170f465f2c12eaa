package glfb

import (
	"image"

	"github.com/gogpu/glfb/glapi"
)

// Filter is the interpolation applied when a blit stretches the source
// rectangle into a destination rectangle of a different size.
type Filter int

const (
	// FilterNearest picks the nearest source pixel.
	FilterNearest Filter = iota
	// FilterLinear interpolates between source pixels. Valid only for
	// color blits.
	FilterLinear
)

// Blit copies the selected buffer planes of the source rectangle in the
// Read-bound framebuffer (its mapped read slot) to the destination
// rectangle in the Draw-bound framebuffer. If the draw mapping names
// multiple slots, the copy is replicated to each. The filter applies only
// when the rectangles differ in size.
//
// Malformed rectangles are caller errors; they are forwarded to the native
// layer unvalidated.
func (c *Context) Blit(src, dst image.Rectangle, mask BlitMask, filter Filter) {
	c.api.BlitFramebuffer(
		int32(src.Min.X), int32(src.Min.Y), int32(src.Max.X), int32(src.Max.Y),
		int32(dst.Min.X), int32(dst.Min.Y), int32(dst.Max.X), int32(dst.Max.Y),
		blitBits(mask), filterEnum(filter))
}

// BlitExact copies the selected planes of rect from the Read-bound to the
// Draw-bound framebuffer without moving or resizing it. The copy is
// pixel-by-pixel, so no resampling is needed and nearest-neighbor filtering
// is used.
func (c *Context) BlitExact(rect image.Rectangle, mask BlitMask) {
	c.Blit(rect, rect, mask, FilterNearest)
}

// Read extracts a rectangle of pixels from the Read-bound framebuffer's
// mapped read slot into a client-memory image, resizing the image storage
// to fit. Parameters are forwarded faithfully; unsupported component/type
// combinations and malformed rectangles are reported by the native layer,
// surfaced here as the returned error.
//
// Read may stall the pipeline while the native layer finishes pending
// drawing. That is a performance hazard, not a correctness one.
func (c *Context) Read(offset, dimensions image.Point, components Components, ctype ComponentType, img *Image2D) error {
	// A leftover pack-buffer binding would redirect the read.
	c.api.BindBuffer(glapi.PixelPackBuffer, 0)

	img.components = components
	img.ctype = ctype
	img.reset(dimensions)
	c.api.ReadPixels(int32(offset.X), int32(offset.Y), int32(dimensions.X), int32(dimensions.Y),
		componentsEnum(components), componentTypeEnum(ctype), img.pix)

	if err := nativeError(c.api.GetError()); err != nil {
		Logger().Warn("glfb: readback failed", "error", err)
		return err
	}
	return nil
}

// ReadToBuffer extracts a rectangle of pixels from the Read-bound
// framebuffer's mapped read slot into a GPU-resident buffer store,
// (re)allocating the store with the given usage hint. The pixel data never
// enters client memory.
func (c *Context) ReadToBuffer(offset, dimensions image.Point, components Components, ctype ComponentType, img *BufferImage, usage BufferUsage) error {
	if img.buffer == 0 {
		img.buffer = c.api.GenBuffer()
	}
	size := dimensions.X * dimensions.Y * PixelSize(components, ctype)

	c.api.BindBuffer(glapi.PixelPackBuffer, img.buffer)
	c.api.BufferData(glapi.PixelPackBuffer, size, nil, bufferUsageEnum(usage))
	c.api.ReadPixelsOffset(int32(offset.X), int32(offset.Y), int32(dimensions.X), int32(dimensions.Y),
		componentsEnum(components), componentTypeEnum(ctype), 0)
	c.api.BindBuffer(glapi.PixelPackBuffer, 0)

	if err := nativeError(c.api.GetError()); err != nil {
		Logger().Warn("glfb: buffered readback failed", "error", err)
		return err
	}
	img.components = components
	img.ctype = ctype
	img.size = dimensions
	img.byteLen = size
	return nil
}
