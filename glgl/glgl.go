// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glgl implements the glapi function set over OpenGL 4.1 core via
// go-gl. It registers itself as the "gl41" backend.
//
// The caller owns context creation: a GL context must be current on the
// calling goroutine before the backend is created (for example via
// glfw.MakeContextCurrent followed by locking the goroutine to its OS
// thread). All calls forward directly to the driver.
//
// Readback calls may stall until the GL server finishes pending drawing;
// prefer the buffer-backed readback path for streaming use.
package glgl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/glfb"
	"github.com/gogpu/glfb/glapi"
)

func init() {
	glapi.Register("gl41", 100, New, nil)
}

// API forwards the glapi function set to the current GL context.
type API struct{}

var _ glapi.API = (*API)(nil)

// New initializes the go-gl bindings against the current context and
// returns the backend. It fails when no GL context is current or the
// required function pointers cannot be resolved.
func New() (glapi.API, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glgl: initializing bindings: %w", err)
	}
	glfb.Logger().Info("glgl: OpenGL backend initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)))
	return &API{}, nil
}

func (*API) GenFramebuffer() uint32 {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return fb
}

func (*API) DeleteFramebuffer(fb uint32) {
	gl.DeleteFramebuffers(1, &fb)
}

func (*API) BindFramebuffer(target glapi.Enum, fb uint32) {
	gl.BindFramebuffer(uint32(target), fb)
}

func (*API) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	return glapi.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (*API) FramebufferRenderbuffer(target, attachment glapi.Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), gl.RENDERBUFFER, renderbuffer)
}

func (*API) FramebufferTexture1D(target, attachment, textarget glapi.Enum, texture uint32, level int32) {
	gl.FramebufferTexture1D(uint32(target), uint32(attachment), uint32(textarget), texture, level)
}

func (*API) FramebufferTexture2D(target, attachment, textarget glapi.Enum, texture uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(textarget), texture, level)
}

func (*API) FramebufferTexture3D(target, attachment, textarget glapi.Enum, texture uint32, level, layer int32) {
	gl.FramebufferTexture3D(uint32(target), uint32(attachment), uint32(textarget), texture, level, layer)
}

func (*API) DrawBuffers(bufs []glapi.Enum) {
	if len(bufs) == 0 {
		return
	}
	native := make([]uint32, len(bufs))
	for i, b := range bufs {
		native[i] = uint32(b)
	}
	gl.DrawBuffers(int32(len(native)), &native[0])
}

func (*API) ReadBuffer(src glapi.Enum) {
	gl.ReadBuffer(uint32(src))
}

func (*API) Enable(capability glapi.Enum) {
	gl.Enable(uint32(capability))
}

func (*API) Disable(capability glapi.Enum) {
	gl.Disable(uint32(capability))
}

func (*API) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*API) Clear(mask uint32) {
	gl.Clear(mask)
}

func (*API) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*API) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (*API) ClearStencil(stencil int32) {
	gl.ClearStencil(stencil)
}

func (*API) ColorMask(r, g, b, a bool) {
	gl.ColorMask(r, g, b, a)
}

func (*API) DepthMask(mask bool) {
	gl.DepthMask(mask)
}

func (*API) StencilMask(mask uint32) {
	gl.StencilMask(mask)
}

func (*API) StencilMaskSeparate(face glapi.Enum, mask uint32) {
	gl.StencilMaskSeparate(uint32(face), mask)
}

func (*API) BlendEquation(mode glapi.Enum) {
	gl.BlendEquation(uint32(mode))
}

func (*API) BlendEquationSeparate(rgb, alpha glapi.Enum) {
	gl.BlendEquationSeparate(uint32(rgb), uint32(alpha))
}

func (*API) BlendFunc(src, dst glapi.Enum) {
	gl.BlendFunc(uint32(src), uint32(dst))
}

func (*API) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha glapi.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (*API) BlendColor(r, g, b, a float32) {
	gl.BlendColor(r, g, b, a)
}

func (*API) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter glapi.Enum) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, uint32(filter))
}

func (*API) ReadPixels(x, y, width, height int32, format, xtype glapi.Enum, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(xtype), gl.Ptr(pixels))
}

func (*API) ReadPixelsOffset(x, y, width, height int32, format, xtype glapi.Enum, offset int) {
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(xtype), gl.PtrOffset(offset))
}

func (*API) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (*API) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (*API) BindBuffer(target glapi.Enum, buf uint32) {
	gl.BindBuffer(uint32(target), buf)
}

func (*API) BufferData(target glapi.Enum, size int, data []byte, usage glapi.Enum) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), size, ptr, uint32(usage))
}

func (*API) GetInteger(pname glapi.Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return v
}

func (*API) GetError() glapi.Enum {
	return glapi.Enum(gl.GetError())
}
