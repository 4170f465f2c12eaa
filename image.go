package glfb

import "image"

// Components describes the channel layout of readback pixel data.
type Components int

const (
	// ComponentsRed reads the red channel only.
	ComponentsRed Components = iota
	// ComponentsRG reads red and green.
	ComponentsRG
	// ComponentsRGB reads red, green and blue.
	ComponentsRGB
	// ComponentsRGBA reads all four color channels.
	ComponentsRGBA
	// ComponentsBGR reads blue, green, red.
	ComponentsBGR
	// ComponentsBGRA reads blue, green, red, alpha.
	ComponentsBGRA
	// ComponentsDepth reads the depth plane.
	ComponentsDepth
	// ComponentsStencil reads the stencil plane.
	ComponentsStencil
	// ComponentsDepthStencil reads packed depth-stencil values.
	ComponentsDepthStencil
)

// Count returns the number of channels per pixel. Packed depth-stencil
// counts as one.
func (c Components) Count() int {
	switch c {
	case ComponentsRG:
		return 2
	case ComponentsRGB, ComponentsBGR:
		return 3
	case ComponentsRGBA, ComponentsBGRA:
		return 4
	}
	return 1
}

// ComponentType describes the numeric type of each channel of readback
// pixel data.
type ComponentType int

const (
	ComponentUnsignedByte ComponentType = iota
	ComponentByte
	ComponentUnsignedShort
	ComponentShort
	ComponentUnsignedInt
	ComponentInt
	ComponentHalfFloat
	ComponentFloat
	// ComponentUnsignedInt248 packs depth in 24 bits and stencil in 8.
	// Valid only with ComponentsDepthStencil.
	ComponentUnsignedInt248
)

// Size returns the byte size of one channel value.
func (t ComponentType) Size() int {
	switch t {
	case ComponentUnsignedByte, ComponentByte:
		return 1
	case ComponentUnsignedShort, ComponentShort, ComponentHalfFloat:
		return 2
	}
	return 4
}

// PixelSize returns the byte size of one pixel with the given layout.
// The packed depth-stencil type is always 4 bytes.
func PixelSize(components Components, ctype ComponentType) int {
	if ctype == ComponentUnsignedInt248 {
		return 4
	}
	return components.Count() * ctype.Size()
}

// Image2D is a client-memory destination for pixel readback: a rectangle of
// pixel data with a channel layout and a numeric type. Its storage is
// (re)allocated by [Context.Read].
type Image2D struct {
	components Components
	ctype      ComponentType
	size       image.Point
	pix        []byte
}

// NewImage2D creates an empty client-memory image with the given layout.
func NewImage2D(components Components, ctype ComponentType) *Image2D {
	return &Image2D{components: components, ctype: ctype}
}

// Components returns the channel layout.
func (m *Image2D) Components() Components { return m.components }

// Type returns the channel numeric type.
func (m *Image2D) Type() ComponentType { return m.ctype }

// Size returns the image dimensions in pixels.
func (m *Image2D) Size() image.Point { return m.size }

// Pix returns the raw pixel storage, tightly packed rows bottom-up in the
// native byte order, or nil before the first read.
func (m *Image2D) Pix() []byte { return m.pix }

// reset resizes the storage for a new readback.
func (m *Image2D) reset(size image.Point) {
	m.size = size
	n := size.X * size.Y * PixelSize(m.components, m.ctype)
	if cap(m.pix) < n {
		m.pix = make([]byte, n)
		return
	}
	m.pix = m.pix[:n]
}

// BufferUsage hints how a GPU-buffer readback destination will be consumed.
type BufferUsage int

const (
	// BufferUsageStaticRead for data read back once and queried many times.
	BufferUsageStaticRead BufferUsage = iota
	// BufferUsageStreamRead for data read back and queried once per frame.
	BufferUsageStreamRead
	// BufferUsageDynamicRead for data read back repeatedly and queried
	// many times.
	BufferUsageDynamicRead
)

// BufferImage is a GPU-buffer-backed destination for pixel readback. The
// pixel data stays resident in a native buffer object instead of client
// memory; the buffer is allocated lazily by [Context.ReadToBuffer].
type BufferImage struct {
	components Components
	ctype      ComponentType
	size       image.Point
	buffer     uint32
	byteLen    int
}

// NewBufferImage creates an empty buffer-backed image with the given
// layout.
func NewBufferImage(components Components, ctype ComponentType) *BufferImage {
	return &BufferImage{components: components, ctype: ctype}
}

// Components returns the channel layout.
func (m *BufferImage) Components() Components { return m.components }

// Type returns the channel numeric type.
func (m *BufferImage) Type() ComponentType { return m.ctype }

// Size returns the image dimensions in pixels.
func (m *BufferImage) Size() image.Point { return m.size }

// Buffer returns the native buffer name, or 0 before the first read.
func (m *BufferImage) Buffer() uint32 { return m.buffer }

// Len returns the byte size of the buffer store.
func (m *BufferImage) Len() int { return m.byteLen }

// Delete releases the native buffer. Safe to call on a never-read image.
func (m *BufferImage) Delete(c *Context) {
	if m.buffer == 0 {
		return
	}
	c.api.DeleteBuffer(m.buffer)
	m.buffer = 0
	m.byteLen = 0
}
