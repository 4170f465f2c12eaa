// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glapi

// GL constants, restricted to what the glfb call surface touches. Values are
// the canonical enumerants from the GL 4.1 core registry.
const (
	None Enum = 0

	// Framebuffer targets.
	ReadFramebuffer Enum = 0x8CA8
	DrawFramebuffer Enum = 0x8CA9
	Framebuffer     Enum = 0x8D40
	Renderbuffer    Enum = 0x8D41

	// Attachment points. Color attachments are ColorAttachment0+i.
	ColorAttachment0       Enum = 0x8CE0
	DepthAttachment        Enum = 0x8D00
	StencilAttachment      Enum = 0x8D20
	DepthStencilAttachment Enum = 0x821A

	// Completeness results.
	FramebufferComplete                    Enum = 0x8CD5
	FramebufferIncompleteAttachment        Enum = 0x8CD6
	FramebufferIncompleteMissingAttachment Enum = 0x8CD7
	FramebufferUnsupported                 Enum = 0x8CDD
	FramebufferUndefined                   Enum = 0x8219

	// Clear/blit mask bits (bitfield, not Enum-typed).
	DepthBufferBit   uint32 = 0x00000100
	StencilBufferBit uint32 = 0x00000400
	ColorBufferBit   uint32 = 0x00004000

	// Capabilities.
	Blend       Enum = 0x0BE2
	DepthTest   Enum = 0x0B71
	StencilTest Enum = 0x0B90
	Dither      Enum = 0x0BD0
	CullFace    Enum = 0x0B44
	DepthClamp  Enum = 0x864F

	// Default framebuffer buffers.
	FrontLeft    Enum = 0x0400
	FrontRight   Enum = 0x0401
	BackLeft     Enum = 0x0402
	BackRight    Enum = 0x0403
	Front        Enum = 0x0404
	Back         Enum = 0x0405
	Left         Enum = 0x0406
	Right        Enum = 0x0407
	FrontAndBack Enum = 0x0408

	// Blend equations.
	FuncAdd             Enum = 0x8006
	Min                 Enum = 0x8007
	Max                 Enum = 0x8008
	FuncSubtract        Enum = 0x800A
	FuncReverseSubtract Enum = 0x800B

	// Blend factors.
	Zero                  Enum = 0
	One                   Enum = 1
	SrcColor              Enum = 0x0300
	OneMinusSrcColor      Enum = 0x0301
	SrcAlpha              Enum = 0x0302
	OneMinusSrcAlpha      Enum = 0x0303
	DstAlpha              Enum = 0x0304
	OneMinusDstAlpha      Enum = 0x0305
	DstColor              Enum = 0x0306
	OneMinusDstColor      Enum = 0x0307
	SrcAlphaSaturate      Enum = 0x0308
	ConstantColor         Enum = 0x8001
	OneMinusConstantColor Enum = 0x8002
	ConstantAlpha         Enum = 0x8003
	OneMinusConstantAlpha Enum = 0x8004
	Src1Alpha             Enum = 0x8589
	Src1Color             Enum = 0x88F9
	OneMinusSrc1Color     Enum = 0x88FA
	OneMinusSrc1Alpha     Enum = 0x88FB

	// Texture targets.
	Texture1D          Enum = 0x0DE0
	Texture2D          Enum = 0x0DE1
	Texture3D          Enum = 0x806F
	TextureRectangle   Enum = 0x84F5
	TextureCubeMap     Enum = 0x8513
	TextureCubeMapPosX Enum = 0x8515
	TextureCubeMapNegX Enum = 0x8516
	TextureCubeMapPosY Enum = 0x8517
	TextureCubeMapNegY Enum = 0x8518
	TextureCubeMapPosZ Enum = 0x8519
	TextureCubeMapNegZ Enum = 0x851A

	// Blit filters.
	Nearest Enum = 0x2600
	Linear  Enum = 0x2601

	// Pixel formats.
	StencilIndex   Enum = 0x1901
	DepthComponent Enum = 0x1902
	Red            Enum = 0x1903
	Green          Enum = 0x1904
	Blue           Enum = 0x1905
	RG             Enum = 0x8227
	RGB            Enum = 0x1907
	RGBA           Enum = 0x1908
	BGR            Enum = 0x80E0
	BGRA           Enum = 0x80E1
	DepthStencil   Enum = 0x84F9

	// Pixel component types.
	Byte           Enum = 0x1400
	UnsignedByte   Enum = 0x1401
	Short          Enum = 0x1402
	UnsignedShort  Enum = 0x1403
	Int            Enum = 0x1404
	UnsignedInt    Enum = 0x1405
	Float          Enum = 0x1406
	HalfFloat      Enum = 0x140B
	UnsignedInt248 Enum = 0x84FA

	// Buffer targets and usage hints.
	PixelPackBuffer Enum = 0x88EB
	StreamDraw      Enum = 0x88E0
	StreamRead      Enum = 0x88E1
	StaticDraw      Enum = 0x88E4
	StaticRead      Enum = 0x88E5
	DynamicDraw     Enum = 0x88E8
	DynamicRead     Enum = 0x88E9

	// Queries.
	MaxColorAttachments Enum = 0x8CDF
	MaxDrawBuffers      Enum = 0x8824

	// Error codes.
	NoError                     Enum = 0
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
)
