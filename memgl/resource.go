// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package memgl

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glfb"
	"github.com/gogpu/glfb/glapi"
)

// attachable resolves a (target, level, layer) address to a pixel plane.
type attachable interface {
	planeFor(textarget glapi.Enum, level, layer int32) *plane
}

// hasDepthStencil reports whether a format carries depth/stencil planes
// rather than color.
func hasDepthStencil(format gputypes.TextureFormat) bool {
	return format == gputypes.TextureFormatDepth24PlusStencil8
}

type planeKey struct {
	level, layer int32
}

// Texture is a memgl texture resource. It implements the glfb.Texture
// collaborator interface, so it can be attached to framebuffer slots.
// Mip levels, cube faces and 3D layers are materialized lazily as they are
// attached.
type Texture struct {
	id     uint32
	kind   glfb.TextureKind
	format gputypes.TextureFormat
	w, h   int
	planes map[planeKey]*plane
}

// NativeID returns the native texture handle.
func (t *Texture) NativeID() uint32 { return t.id }

// Kind returns the texture's target kind.
func (t *Texture) Kind() glfb.TextureKind { return t.kind }

// Format returns the texture's pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// Plane gives tests direct access to the pixel plane at a mip level.
// The layer selects a cube face or 3D layer; pass 0 otherwise.
func (t *Texture) Plane(level, layer int) *PlaneView {
	p := t.plane(int32(level), int32(layer))
	return &PlaneView{p: p}
}

func (t *Texture) plane(level, layer int32) *plane {
	key := planeKey{level: level, layer: layer}
	if p, ok := t.planes[key]; ok {
		return p
	}
	w := max(1, t.w>>level)
	h := max(1, t.h>>level)
	var p *plane
	if hasDepthStencil(t.format) {
		p = newDepthStencilPlane(w, h)
	} else {
		p = newColorPlane(w, h)
	}
	t.planes[key] = p
	return p
}

func (t *Texture) planeFor(textarget glapi.Enum, level, layer int32) *plane {
	if textarget >= glapi.TextureCubeMapPosX && textarget <= glapi.TextureCubeMapNegZ {
		if t.kind != glfb.TextureKindCubeMap {
			return nil
		}
		return t.plane(level, int32(textarget-glapi.TextureCubeMapPosX))
	}
	return t.plane(level, layer)
}

func (d *Device) newTexture(kind glfb.TextureKind, w, h int, format gputypes.TextureFormat) *Texture {
	t := &Texture{
		id:     d.allocName(),
		kind:   kind,
		format: format,
		w:      w,
		h:      h,
		planes: make(map[planeKey]*plane),
	}
	d.resources[t.id] = t
	return t
}

// NewTexture1D creates a 1D texture resource (height 1).
func (d *Device) NewTexture1D(width int, format gputypes.TextureFormat) *Texture {
	return d.newTexture(glfb.TextureKind1D, width, 1, format)
}

// NewTexture2D creates a 2D texture resource.
func (d *Device) NewTexture2D(width, height int, format gputypes.TextureFormat) *Texture {
	return d.newTexture(glfb.TextureKind2D, width, height, format)
}

// NewCubeMapTexture creates a cube map texture resource with six
// size-by-size faces.
func (d *Device) NewCubeMapTexture(size int, format gputypes.TextureFormat) *Texture {
	return d.newTexture(glfb.TextureKindCubeMap, size, size, format)
}

// NewTexture3D creates a 3D texture resource; its 2D layers attach
// individually.
func (d *Device) NewTexture3D(width, height, depth int, format gputypes.TextureFormat) *Texture {
	// Layers materialize on attach, so depth is not tracked.
	_ = depth
	return d.newTexture(glfb.TextureKind3D, width, height, format)
}

// Renderbuffer is a memgl renderbuffer resource. It implements the
// glfb.Renderbuffer collaborator interface.
type Renderbuffer struct {
	id uint32
	p  *plane
}

// NativeID returns the native renderbuffer handle.
func (r *Renderbuffer) NativeID() uint32 { return r.id }

// Plane gives tests direct access to the pixel plane.
func (r *Renderbuffer) Plane() *PlaneView { return &PlaneView{p: r.p} }

func (r *Renderbuffer) planeFor(textarget glapi.Enum, level, layer int32) *plane {
	return r.p
}

// NewRenderbuffer creates a renderbuffer resource.
func (d *Device) NewRenderbuffer(width, height int, format gputypes.TextureFormat) *Renderbuffer {
	var p *plane
	if hasDepthStencil(format) {
		p = newDepthStencilPlane(width, height)
	} else {
		p = newColorPlane(width, height)
	}
	r := &Renderbuffer{id: d.allocName(), p: p}
	d.resources[r.id] = r
	return r
}

// attach installs the resolved plane at an attachment point of the
// framebuffer bound to target. Resource 0 detaches.
func (d *Device) attach(target, attachment glapi.Enum, resource uint32, resolve func(attachable) *plane) {
	fb := d.boundFB(target)
	if fb == nil || fb.id == 0 {
		d.setErr(glapi.InvalidOperation)
		return
	}
	if resource == 0 {
		delete(fb.attachments, attachment)
		return
	}
	res, ok := d.resources[resource]
	if !ok {
		d.setErr(glapi.InvalidOperation)
		return
	}
	p := resolve(res)
	if p == nil {
		d.setErr(glapi.InvalidOperation)
		return
	}
	fb.attachments[attachment] = p
}

// FramebufferRenderbuffer attaches a renderbuffer to the framebuffer bound
// to target.
func (d *Device) FramebufferRenderbuffer(target, attachment glapi.Enum, renderbuffer uint32) {
	d.attach(target, attachment, renderbuffer, func(a attachable) *plane {
		return a.planeFor(glapi.Renderbuffer, 0, 0)
	})
}

// FramebufferTexture1D attaches a 1D texture mip level.
func (d *Device) FramebufferTexture1D(target, attachment, textarget glapi.Enum, texture uint32, level int32) {
	d.attach(target, attachment, texture, func(a attachable) *plane {
		return a.planeFor(textarget, level, 0)
	})
}

// FramebufferTexture2D attaches a 2D texture mip level or a cube face.
func (d *Device) FramebufferTexture2D(target, attachment, textarget glapi.Enum, texture uint32, level int32) {
	d.attach(target, attachment, texture, func(a attachable) *plane {
		return a.planeFor(textarget, level, 0)
	})
}

// FramebufferTexture3D attaches one 2D layer of a 3D texture mip level.
func (d *Device) FramebufferTexture3D(target, attachment, textarget glapi.Enum, texture uint32, level, layer int32) {
	d.attach(target, attachment, texture, func(a attachable) *plane {
		return a.planeFor(textarget, level, layer)
	})
}

// PlaneView exposes a resource's pixels read-only, for assertions in tests
// and for presenting headless output.
type PlaneView struct {
	p *plane
}

// Size returns the plane dimensions.
func (v *PlaneView) Size() (w, h int) { return v.p.w, v.p.h }

// ColorAt returns the RGBA value at (x, y), with row 0 at the bottom.
func (v *PlaneView) ColorAt(x, y int) (r, g, b, a float32) {
	c := v.p.colorAt(x, y)
	return c[0], c[1], c[2], c[3]
}

// DepthAt returns the depth value at (x, y).
func (v *PlaneView) DepthAt(x, y int) float32 {
	return v.p.depth[y*v.p.w+x]
}

// StencilAt returns the stencil value at (x, y).
func (v *PlaneView) StencilAt(x, y int) uint32 {
	return v.p.stencil[y*v.p.w+x]
}
