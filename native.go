package glfb

import "github.com/gogpu/glfb/glapi"

// Mapping between the package's closed enums and the native constant table.
// This file is the only place core logic meets raw glapi values; call sites
// stay type-safe and the combinable-mask contract is kept in ClearMask and
// BlitMask instead of raw integers.

func targetEnum(t Target) glapi.Enum {
	switch t {
	case TargetRead:
		return glapi.ReadFramebuffer
	case TargetDraw:
		return glapi.DrawFramebuffer
	}
	return glapi.Framebuffer
}

// String implements fmt.Stringer, for log output.
func (t Target) String() string {
	switch t {
	case TargetRead:
		return "read"
	case TargetDraw:
		return "draw"
	case TargetReadDraw:
		return "read+draw"
	}
	return "invalid"
}

func featureEnum(f Feature) glapi.Enum {
	switch f {
	case Blending:
		return glapi.Blend
	case DepthClamp:
		return glapi.DepthClamp
	case DepthTest:
		return glapi.DepthTest
	case StencilTest:
		return glapi.StencilTest
	case Dithering:
		return glapi.Dither
	case FaceCulling:
		return glapi.CullFace
	}
	return glapi.None
}

func slotEnum(s AttachmentSlot) glapi.Enum {
	switch s.kind {
	case slotColor:
		return glapi.ColorAttachment0 + glapi.Enum(s.index)
	case slotDepth:
		return glapi.DepthAttachment
	case slotStencil:
		return glapi.StencilAttachment
	case slotDepthStencil:
		return glapi.DepthStencilAttachment
	}
	return glapi.None
}

func textureKindEnum(k TextureKind) glapi.Enum {
	switch k {
	case TextureKind1D:
		return glapi.Texture1D
	case TextureKind2D:
		return glapi.Texture2D
	case TextureKindRectangle:
		return glapi.TextureRectangle
	case TextureKindCubeMap:
		return glapi.TextureCubeMap
	case TextureKind3D:
		return glapi.Texture3D
	}
	return glapi.None
}

func cubeFaceEnum(f CubeFace) glapi.Enum {
	// Faces are consecutive enumerants starting at positive X.
	return glapi.TextureCubeMapPosX + glapi.Enum(f-CubeFacePositiveX)
}

func stencilFaceEnum(f StencilFace) glapi.Enum {
	switch f {
	case StencilFaceFront:
		return glapi.Front
	case StencilFaceBack:
		return glapi.Back
	}
	return glapi.FrontAndBack
}

func blendEquationEnum(e BlendEquation) glapi.Enum {
	switch e {
	case BlendAdd:
		return glapi.FuncAdd
	case BlendSubtract:
		return glapi.FuncSubtract
	case BlendReverseSubtract:
		return glapi.FuncReverseSubtract
	case BlendMin:
		return glapi.Min
	case BlendMax:
		return glapi.Max
	}
	return glapi.None
}

func blendFunctionEnum(f BlendFunction) glapi.Enum {
	switch f {
	case BlendZero:
		return glapi.Zero
	case BlendOne:
		return glapi.One
	case BlendConstantColor:
		return glapi.ConstantColor
	case BlendOneMinusConstantColor:
		return glapi.OneMinusConstantColor
	case BlendConstantAlpha:
		return glapi.ConstantAlpha
	case BlendOneMinusConstantAlpha:
		return glapi.OneMinusConstantAlpha
	case BlendSourceColor:
		return glapi.SrcColor
	case BlendOneMinusSourceColor:
		return glapi.OneMinusSrcColor
	case BlendSecondSourceColor:
		return glapi.Src1Color
	case BlendOneMinusSecondSourceColor:
		return glapi.OneMinusSrc1Color
	case BlendSourceAlpha:
		return glapi.SrcAlpha
	case BlendSourceAlphaSaturate:
		return glapi.SrcAlphaSaturate
	case BlendOneMinusSourceAlpha:
		return glapi.OneMinusSrcAlpha
	case BlendSecondSourceAlpha:
		return glapi.Src1Alpha
	case BlendOneMinusSecondSourceAlpha:
		return glapi.OneMinusSrc1Alpha
	case BlendDestinationColor:
		return glapi.DstColor
	case BlendOneMinusDestinationColor:
		return glapi.OneMinusDstColor
	case BlendDestinationAlpha:
		return glapi.DstAlpha
	case BlendOneMinusDestinationAlpha:
		return glapi.OneMinusDstAlpha
	}
	return glapi.None
}

func filterEnum(f Filter) glapi.Enum {
	if f == FilterLinear {
		return glapi.Linear
	}
	return glapi.Nearest
}

func clearBits(m ClearMask) uint32 {
	var bits uint32
	if m.Has(ClearColor) {
		bits |= glapi.ColorBufferBit
	}
	if m.Has(ClearDepth) {
		bits |= glapi.DepthBufferBit
	}
	if m.Has(ClearStencil) {
		bits |= glapi.StencilBufferBit
	}
	return bits
}

func blitBits(m BlitMask) uint32 {
	var bits uint32
	if m.Has(BlitColor) {
		bits |= glapi.ColorBufferBit
	}
	if m.Has(BlitDepth) {
		bits |= glapi.DepthBufferBit
	}
	if m.Has(BlitStencil) {
		bits |= glapi.StencilBufferBit
	}
	return bits
}

func componentsEnum(c Components) glapi.Enum {
	switch c {
	case ComponentsRed:
		return glapi.Red
	case ComponentsRG:
		return glapi.RG
	case ComponentsRGB:
		return glapi.RGB
	case ComponentsRGBA:
		return glapi.RGBA
	case ComponentsBGR:
		return glapi.BGR
	case ComponentsBGRA:
		return glapi.BGRA
	case ComponentsDepth:
		return glapi.DepthComponent
	case ComponentsStencil:
		return glapi.StencilIndex
	case ComponentsDepthStencil:
		return glapi.DepthStencil
	}
	return glapi.None
}

func componentTypeEnum(t ComponentType) glapi.Enum {
	switch t {
	case ComponentUnsignedByte:
		return glapi.UnsignedByte
	case ComponentByte:
		return glapi.Byte
	case ComponentUnsignedShort:
		return glapi.UnsignedShort
	case ComponentShort:
		return glapi.Short
	case ComponentUnsignedInt:
		return glapi.UnsignedInt
	case ComponentInt:
		return glapi.Int
	case ComponentHalfFloat:
		return glapi.HalfFloat
	case ComponentFloat:
		return glapi.Float
	case ComponentUnsignedInt248:
		return glapi.UnsignedInt248
	}
	return glapi.None
}

func bufferUsageEnum(u BufferUsage) glapi.Enum {
	switch u {
	case BufferUsageStaticRead:
		return glapi.StaticRead
	case BufferUsageStreamRead:
		return glapi.StreamRead
	case BufferUsageDynamicRead:
		return glapi.DynamicRead
	}
	return glapi.None
}

func defaultDrawEnum(a DefaultDrawAttachment) glapi.Enum {
	switch a {
	case DefaultDrawBackLeft:
		return glapi.BackLeft
	case DefaultDrawBackRight:
		return glapi.BackRight
	case DefaultDrawFrontLeft:
		return glapi.FrontLeft
	case DefaultDrawFrontRight:
		return glapi.FrontRight
	}
	return glapi.None
}

func defaultReadEnum(a DefaultReadAttachment) glapi.Enum {
	switch a {
	case DefaultReadFrontLeft:
		return glapi.FrontLeft
	case DefaultReadFrontRight:
		return glapi.FrontRight
	case DefaultReadBackLeft:
		return glapi.BackLeft
	case DefaultReadBackRight:
		return glapi.BackRight
	case DefaultReadLeft:
		return glapi.Left
	case DefaultReadRight:
		return glapi.Right
	case DefaultReadFront:
		return glapi.Front
	case DefaultReadBack:
		return glapi.Back
	case DefaultReadFrontAndBack:
		return glapi.FrontAndBack
	}
	return glapi.None
}
