// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glgl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glfb"
)

// internalFormat maps the supported texture formats to GL sized internal
// formats.
func internalFormat(format gputypes.TextureFormat) (uint32, error) {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return gl.RGBA8, nil
	case gputypes.TextureFormatR8Unorm:
		return gl.R8, nil
	case gputypes.TextureFormatDepth24PlusStencil8:
		return gl.DEPTH24_STENCIL8, nil
	}
	return 0, fmt.Errorf("glgl: unsupported format %v", format)
}

// Renderbuffer is a GL renderbuffer usable as a framebuffer attachment.
type Renderbuffer struct {
	id uint32
}

// NewRenderbuffer allocates renderbuffer storage with the given format.
func NewRenderbuffer(width, height int, format gputypes.TextureFormat) (*Renderbuffer, error) {
	ifmt, err := internalFormat(format)
	if err != nil {
		return nil, err
	}
	var id uint32
	gl.GenRenderbuffers(1, &id)
	gl.BindRenderbuffer(gl.RENDERBUFFER, id)
	gl.RenderbufferStorage(gl.RENDERBUFFER, ifmt, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	return &Renderbuffer{id: id}, nil
}

// NativeID returns the GL renderbuffer name.
func (r *Renderbuffer) NativeID() uint32 { return r.id }

// Delete releases the renderbuffer.
func (r *Renderbuffer) Delete() {
	gl.DeleteRenderbuffers(1, &r.id)
	r.id = 0
}

// Texture is a GL texture usable as a framebuffer attachment.
type Texture struct {
	id   uint32
	kind glfb.TextureKind
}

// NewTexture2D allocates an uninitialized 2D texture with one mip level.
func NewTexture2D(width, height int, format gputypes.TextureFormat) (*Texture, error) {
	ifmt, err := internalFormat(format)
	if err != nil {
		return nil, err
	}
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(ifmt), int32(width), int32(height), 0, uploadFormat(ifmt), uploadType(ifmt), nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &Texture{id: id, kind: glfb.TextureKind2D}, nil
}

// NativeID returns the GL texture name.
func (t *Texture) NativeID() uint32 { return t.id }

// Kind returns the texture dimensionality.
func (t *Texture) Kind() glfb.TextureKind { return t.kind }

// Delete releases the texture.
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}

func uploadFormat(ifmt uint32) uint32 {
	if ifmt == gl.DEPTH24_STENCIL8 {
		return gl.DEPTH_STENCIL
	}
	return gl.RGBA
}

func uploadType(ifmt uint32) uint32 {
	if ifmt == gl.DEPTH24_STENCIL8 {
		return gl.UNSIGNED_INT_24_8
	}
	return gl.UNSIGNED_BYTE
}
