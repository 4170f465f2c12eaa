package glfb

import "image"

// Feature is a toggleable pipeline capability.
//
// All features except Dithering are disabled in a fresh context.
type Feature int

const (
	// Blending combines fragment output with the framebuffer contents
	// using the current blend equation, function and color.
	Blending Feature = iota
	// DepthClamp disables near/far plane clipping.
	DepthClamp
	// DepthTest enables depth testing. Enabling it also makes the
	// no-argument [Context.Clear] clear the depth buffer.
	DepthTest
	// StencilTest enables stencil testing. Enabling it also makes the
	// no-argument [Context.Clear] clear the stencil buffer.
	StencilTest
	// Dithering dithers color values before they are written. Enabled by
	// default.
	Dithering
	// FaceCulling culls back-facing polygons.
	FaceCulling
)

// StencilFace selects which polygon facing a stencil write mask applies to.
type StencilFace int

const (
	// StencilFaceFront affects front-facing polygons.
	StencilFaceFront StencilFace = iota
	// StencilFaceBack affects back-facing polygons.
	StencilFaceBack
	// StencilFaceFrontAndBack affects both facings.
	StencilFaceFrontAndBack
)

// BlendEquation selects how source and destination colors combine while
// Blending is enabled. The initial equation is BlendAdd.
type BlendEquation int

const (
	// BlendAdd computes source + destination.
	BlendAdd BlendEquation = iota
	// BlendSubtract computes source - destination.
	BlendSubtract
	// BlendReverseSubtract computes destination - source.
	BlendReverseSubtract
	// BlendMin computes min(source, destination).
	BlendMin
	// BlendMax computes max(source, destination).
	BlendMax
)

// BlendFunction is a blend factor. The initial source factor is
// BlendOne and the initial destination factor is BlendZero.
type BlendFunction int

const (
	BlendZero BlendFunction = iota
	BlendOne
	BlendConstantColor
	BlendOneMinusConstantColor
	BlendConstantAlpha
	BlendOneMinusConstantAlpha
	BlendSourceColor
	BlendOneMinusSourceColor
	BlendSecondSourceColor
	BlendOneMinusSecondSourceColor
	BlendSourceAlpha
	BlendSourceAlphaSaturate
	BlendOneMinusSourceAlpha
	BlendSecondSourceAlpha
	BlendOneMinusSecondSourceAlpha
	BlendDestinationColor
	BlendOneMinusDestinationColor
	BlendDestinationAlpha
	BlendOneMinusDestinationAlpha
)

// SetFeature toggles a pipeline capability. Toggling is idempotent.
//
// DepthTest and StencilTest additionally couple to the no-argument
// [Context.Clear]: while the test is enabled, Clear also clears the matching
// buffer. This mirrors the documented convenience behavior; the masked
// [Context.ClearBuffers] is unaffected.
func (c *Context) SetFeature(feature Feature, enabled bool) {
	if enabled {
		c.api.Enable(featureEnum(feature))
	} else {
		c.api.Disable(featureEnum(feature))
	}
	switch feature {
	case DepthTest:
		c.setClearBit(ClearDepth, enabled)
	case StencilTest:
		c.setClearBit(ClearStencil, enabled)
	}
}

func (c *Context) setClearBit(bit ClearMask, on bool) {
	if on {
		c.clearMask |= bit
	} else {
		c.clearMask &^= bit
	}
}

// SetViewport sets the viewport rectangle for subsequent draw and clear
// operations. The values are forwarded unclamped; call when the window or
// target size changes.
func (c *Context) SetViewport(position, size image.Point) {
	c.api.Viewport(int32(position.X), int32(position.Y), int32(size.X), int32(size.Y))
}

// Clear clears the draw-bound framebuffer using the current clear values.
// The color buffer is always cleared; depth and stencil are cleared only
// while the corresponding test feature is enabled (see [Context.SetFeature]).
// Use [Context.ClearBuffers] to clear an explicit set of planes.
func (c *Context) Clear() {
	c.api.Clear(clearBits(c.clearMask))
}

// ClearBuffers clears exactly the requested buffer planes of the draw-bound
// framebuffer, regardless of feature state.
func (c *Context) ClearBuffers(mask ClearMask) {
	c.api.Clear(clearBits(mask))
}

// SetClearColor sets the color used by subsequent clears.
// The initial value is opaque black.
func (c *Context) SetClearColor(color Color) {
	c.api.ClearColor(color.R, color.G, color.B, color.A)
}

// SetClearDepth sets the depth value used by subsequent clears.
// The initial value is 1.
func (c *Context) SetClearDepth(depth float64) {
	c.api.ClearDepth(depth)
}

// SetClearStencil sets the stencil value used by subsequent clears.
// The initial value is 0.
func (c *Context) SetClearStencil(stencil int) {
	c.api.ClearStencil(int32(stencil))
}

// SetColorMask allows or disallows writes to individual color channels.
// All channels are writable initially.
func (c *Context) SetColorMask(red, green, blue, alpha bool) {
	c.api.ColorMask(red, green, blue, alpha)
}

// SetDepthMask allows or disallows depth writes. Depth is writable
// initially.
func (c *Context) SetDepthMask(allow bool) {
	c.api.DepthMask(allow)
}

// SetStencilMask sets the stencil write mask for both polygon facings.
// A zero bit disallows writing the corresponding stencil bit. All bits are
// writable initially.
func (c *Context) SetStencilMask(allowBits uint32) {
	c.api.StencilMask(allowBits)
}

// SetStencilMaskFor sets the stencil write mask for the given polygon
// facing only.
func (c *Context) SetStencilMaskFor(face StencilFace, allowBits uint32) {
	c.api.StencilMaskSeparate(stencilFaceEnum(face), allowBits)
}

// SetBlendEquation sets the blend equation for both RGB and alpha.
// Takes effect only while Blending is enabled.
func (c *Context) SetBlendEquation(equation BlendEquation) {
	c.api.BlendEquation(blendEquationEnum(equation))
}

// SetBlendEquationSeparate sets the blend equation separately for the RGB
// and alpha components. Takes effect only while Blending is enabled.
func (c *Context) SetBlendEquationSeparate(rgb, alpha BlendEquation) {
	c.api.BlendEquationSeparate(blendEquationEnum(rgb), blendEquationEnum(alpha))
}

// SetBlendFunction sets how the source and destination blend factors are
// computed. Takes effect only while Blending is enabled.
func (c *Context) SetBlendFunction(source, destination BlendFunction) {
	c.api.BlendFunc(blendFunctionEnum(source), blendFunctionEnum(destination))
}

// SetBlendFunctionSeparate sets the blend factors separately for the RGB
// and alpha components. Takes effect only while Blending is enabled.
func (c *Context) SetBlendFunctionSeparate(sourceRGB, destinationRGB, sourceAlpha, destinationAlpha BlendFunction) {
	c.api.BlendFuncSeparate(
		blendFunctionEnum(sourceRGB), blendFunctionEnum(destinationRGB),
		blendFunctionEnum(sourceAlpha), blendFunctionEnum(destinationAlpha))
}

// SetBlendColor sets the constant color used by the constant blend factors.
// Takes effect only while Blending is enabled.
func (c *Context) SetBlendColor(color Color) {
	c.api.BlendColor(color.R, color.G, color.B, color.A)
}
