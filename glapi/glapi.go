// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glapi

// Enum is a GL enumerant. Values mirror the native GL constants so that
// implementations backed by real bindings can forward them unchanged.
type Enum uint32

// API is the subset of the OpenGL call surface that glfb needs: framebuffer
// objects, draw/read buffer selection, global pipeline state, clearing,
// blitting and pixel readback.
//
// All calls are synchronous against one implicit current-binding state, like
// the native API they model. Implementations are not required to be safe for
// concurrent use; callers serialize access to a device externally.
//
// Errors follow the GL convention: calls do not return errors, they latch an
// error code retrievable (and cleared) by GetError.
type API interface {
	// Framebuffer objects.

	// GenFramebuffer allocates a framebuffer name. It returns 0 and
	// latches OUT_OF_MEMORY if the name pool is exhausted.
	GenFramebuffer() uint32
	// DeleteFramebuffer releases a framebuffer name. If the framebuffer is
	// currently bound to a role, that role reverts to the default
	// framebuffer, as in GL.
	DeleteFramebuffer(fb uint32)
	// BindFramebuffer binds fb to target (READ_FRAMEBUFFER,
	// DRAW_FRAMEBUFFER or FRAMEBUFFER). fb 0 is the default framebuffer.
	BindFramebuffer(target Enum, fb uint32)
	// CheckFramebufferStatus reports the completeness of the framebuffer
	// bound to target.
	CheckFramebufferStatus(target Enum) Enum

	// Attachment calls address the framebuffer currently bound to target.
	FramebufferRenderbuffer(target, attachment Enum, renderbuffer uint32)
	FramebufferTexture1D(target, attachment, textarget Enum, texture uint32, level int32)
	FramebufferTexture2D(target, attachment, textarget Enum, texture uint32, level int32)
	FramebufferTexture3D(target, attachment, textarget Enum, texture uint32, level, layer int32)

	// Draw/read buffer selection for the currently bound framebuffers.
	DrawBuffers(bufs []Enum)
	ReadBuffer(src Enum)

	// Global pipeline state.
	Enable(capability Enum)
	Disable(capability Enum)
	Viewport(x, y, width, height int32)

	// Clearing. Clear uses the current clear values and write masks and
	// affects the draw-bound framebuffer.
	Clear(mask uint32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	ClearStencil(stencil int32)

	// Write masks.
	ColorMask(r, g, b, a bool)
	DepthMask(mask bool)
	StencilMask(mask uint32)
	StencilMaskSeparate(face Enum, mask uint32)

	// Blending.
	BlendEquation(mode Enum)
	BlendEquationSeparate(rgb, alpha Enum)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendColor(r, g, b, a float32)

	// BlitFramebuffer copies a rectangle from the read-bound framebuffer's
	// read buffer to every draw buffer of the draw-bound framebuffer.
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter Enum)

	// ReadPixels reads from the read-bound framebuffer's read buffer into
	// client memory. ReadPixelsOffset reads into the buffer bound to
	// PIXEL_PACK_BUFFER at the given byte offset.
	ReadPixels(x, y, width, height int32, format, xtype Enum, pixels []byte)
	ReadPixelsOffset(x, y, width, height int32, format, xtype Enum, offset int)

	// Buffer objects, used as pixel pack destinations.
	GenBuffer() uint32
	DeleteBuffer(buf uint32)
	BindBuffer(target Enum, buf uint32)
	// BufferData (re)allocates the store of the buffer bound to target.
	// A nil data leaves the store uninitialized.
	BufferData(target Enum, size int, data []byte, usage Enum)

	// Queries.
	GetInteger(pname Enum) int32
	// GetError returns the oldest latched error and clears it, or NO_ERROR.
	GetError() Enum
}
