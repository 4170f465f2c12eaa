package glfb

import (
	"slices"

	"github.com/gogpu/glfb/glapi"
)

// Framebuffer is a named collection of attachment slots backed by a native
// handle. The handle is valid for the object's whole lifetime; Delete
// releases it exactly once. A Framebuffer is identity-bound to its handle
// and to the context's bind table, so it must not be copied.
//
// Attach and map operations address "the framebuffer currently bound for
// the role", so they bind first and then issue the native call. That
// ordering is part of the contract and is preserved even when calls against
// several framebuffers interleave.
type Framebuffer struct {
	ctx     *Context
	fb      uint32
	deleted bool

	attachments map[AttachmentSlot]AttachmentBinding
	drawMap     []int
	readMap     int
	readMapped  bool
}

// NewFramebuffer allocates a native framebuffer on this context. It fails
// only when the native name pool is exhausted; that failure is not
// recoverable.
func (c *Context) NewFramebuffer() (*Framebuffer, error) {
	fb := c.api.GenFramebuffer()
	if fb == 0 {
		// Drain the latched native code so later calls start clean.
		c.api.GetError()
		return nil, ErrResourceExhausted
	}
	return &Framebuffer{
		ctx:         c,
		fb:          fb,
		attachments: make(map[AttachmentSlot]AttachmentBinding),
	}, nil
}

// ID returns the native framebuffer name.
func (f *Framebuffer) ID() uint32 {
	return f.fb
}

// Context returns the owning context.
func (f *Framebuffer) Context() *Context {
	return f.ctx
}

// Bind makes this framebuffer the active target for the given role. All
// subsequent clear, blit and readback operations on the context implicitly
// use the framebuffer bound to the matching role. Binding one role does not
// disturb the other role's binding.
func (f *Framebuffer) Bind(target Target) {
	f.ctx.bindFramebuffer(target, f.fb)
}

// Delete releases the native handle. The release happens exactly once;
// further calls are no-ops. If the framebuffer is bound to a role, that
// role reverts to the default framebuffer and operations against the
// default target remain unaffected.
func (f *Framebuffer) Delete() {
	if f.deleted {
		return
	}
	f.deleted = true
	f.ctx.api.DeleteFramebuffer(f.fb)
	f.ctx.forgetFramebuffer(f.fb)
}

// AttachRenderbuffer attaches a renderbuffer to a slot. The framebuffer is
// bound to target first, then the native attach is issued against that
// role. Format compatibility is not validated here; an incompatible
// attachment surfaces later as an incomplete-target condition.
func (f *Framebuffer) AttachRenderbuffer(target Target, slot AttachmentSlot, renderbuffer Renderbuffer) {
	f.Bind(target)
	f.ctx.api.FramebufferRenderbuffer(targetEnum(target), slotEnum(slot), renderbuffer.NativeID())
	f.record(slot, AttachmentBinding{
		Kind:       AttachmentRenderbuffer,
		ResourceID: renderbuffer.NativeID(),
	})
}

// AttachTexture1D attaches a mip level of a 1D texture to a slot.
func (f *Framebuffer) AttachTexture1D(target Target, slot AttachmentSlot, texture Texture, mipLevel int) {
	f.Bind(target)
	f.ctx.api.FramebufferTexture1D(targetEnum(target), slotEnum(slot),
		textureKindEnum(texture.Kind()), texture.NativeID(), int32(mipLevel))
	f.record(slot, AttachmentBinding{
		Kind:        AttachmentTexture,
		ResourceID:  texture.NativeID(),
		TextureKind: texture.Kind(),
		MipLevel:    mipLevel,
	})
}

// AttachTexture2D attaches a mip level of a 2D or rectangle texture to a
// slot. For rectangle textures the mip level should always be 0.
func (f *Framebuffer) AttachTexture2D(target Target, slot AttachmentSlot, texture Texture, mipLevel int) {
	f.Bind(target)
	f.ctx.api.FramebufferTexture2D(targetEnum(target), slotEnum(slot),
		textureKindEnum(texture.Kind()), texture.NativeID(), int32(mipLevel))
	f.record(slot, AttachmentBinding{
		Kind:        AttachmentTexture,
		ResourceID:  texture.NativeID(),
		TextureKind: texture.Kind(),
		MipLevel:    mipLevel,
	})
}

// AttachCubeMapTexture attaches one face of a cube map texture to a slot.
func (f *Framebuffer) AttachCubeMapTexture(target Target, slot AttachmentSlot, texture Texture, face CubeFace, mipLevel int) {
	f.Bind(target)
	f.ctx.api.FramebufferTexture2D(targetEnum(target), slotEnum(slot),
		cubeFaceEnum(face), texture.NativeID(), int32(mipLevel))
	f.record(slot, AttachmentBinding{
		Kind:        AttachmentTexture,
		ResourceID:  texture.NativeID(),
		TextureKind: TextureKindCubeMap,
		MipLevel:    mipLevel,
		Face:        face,
	})
}

// AttachTexture3D attaches one 2D layer of a mip level of a 3D texture to a
// slot.
func (f *Framebuffer) AttachTexture3D(target Target, slot AttachmentSlot, texture Texture, mipLevel, layer int) {
	f.Bind(target)
	f.ctx.api.FramebufferTexture3D(targetEnum(target), slotEnum(slot),
		textureKindEnum(texture.Kind()), texture.NativeID(), int32(mipLevel), int32(layer))
	f.record(slot, AttachmentBinding{
		Kind:        AttachmentTexture,
		ResourceID:  texture.NativeID(),
		TextureKind: texture.Kind(),
		MipLevel:    mipLevel,
		Layer:       layer,
	})
}

func (f *Framebuffer) record(slot AttachmentSlot, b AttachmentBinding) {
	f.attachments[slot] = b
	Logger().Debug("glfb: attach", "framebuffer", f.fb, "slot", slot.String(), "resource", b.ResourceID)
}

// Attachment returns the binding currently recorded for a slot.
func (f *Framebuffer) Attachment(slot AttachmentSlot) (AttachmentBinding, bool) {
	b, ok := f.attachments[slot]
	return b, ok
}

// NoAttachment in a MapForDraw sequence suppresses the fragment output at
// that position without consuming a color slot.
const NoAttachment = -1

// MapForDraw records which color slots receive fragment-shader output.
// Position i of the sequence feeds fragment output i; a NoAttachment entry
// suppresses that output. The order must match the shader's declared output
// order — a mismatch is a caller error and is not detected here. The
// framebuffer is bound to the Draw role first.
//
// The sequence length is bounded by [Context.MaxColorAttachments]; longer
// sequences are forwarded and rejected by the native layer.
func (f *Framebuffer) MapForDraw(colorAttachments []int) {
	f.Bind(TargetDraw)
	bufs := make([]glapi.Enum, len(colorAttachments))
	for i, a := range colorAttachments {
		if a == NoAttachment {
			bufs[i] = glapi.None
			continue
		}
		bufs[i] = glapi.ColorAttachment0 + glapi.Enum(a)
	}
	f.ctx.api.DrawBuffers(bufs)
	f.drawMap = slices.Clone(colorAttachments)
}

// MapForRead records the single color slot that subsequent readback and
// blit-source operations use. The framebuffer is bound to the Read role
// first.
func (f *Framebuffer) MapForRead(colorAttachment int) {
	f.Bind(TargetRead)
	f.ctx.api.ReadBuffer(glapi.ColorAttachment0 + glapi.Enum(colorAttachment))
	f.readMap = colorAttachment
	f.readMapped = true
}

// DrawMapping returns the draw mapping in the exact order it was set,
// including NoAttachment holes, or nil if MapForDraw has not been called.
// The default mapping is implementation-defined.
func (f *Framebuffer) DrawMapping() []int {
	return slices.Clone(f.drawMap)
}

// ReadMapping returns the color slot mapped for reading, and whether
// MapForRead has been called.
func (f *Framebuffer) ReadMapping() (int, bool) {
	return f.readMap, f.readMapped
}

// CheckStatus queries the native completeness of this framebuffer for the
// given role, binding it first. It returns nil for a complete framebuffer
// and an *IncompleteTargetError otherwise. Completeness can change with any
// attach call, so the result is only valid until the next configuration
// change.
func (f *Framebuffer) CheckStatus(target Target) error {
	f.Bind(target)
	status := f.ctx.api.CheckFramebufferStatus(targetEnum(target))
	if status == glapi.FramebufferComplete {
		return nil
	}
	return &IncompleteTargetError{Status: status}
}

// DefaultDrawAttachment is a physical output surface of the default
// framebuffer, used with [Context.MapDefaultForDraw].
type DefaultDrawAttachment int

const (
	// DefaultDrawNone suppresses the output at its position.
	DefaultDrawNone DefaultDrawAttachment = iota
	// DefaultDrawBackLeft writes to the back left buffer.
	DefaultDrawBackLeft
	// DefaultDrawBackRight writes to the back right buffer.
	DefaultDrawBackRight
	// DefaultDrawFrontLeft writes to the front left buffer.
	DefaultDrawFrontLeft
	// DefaultDrawFrontRight writes to the front right buffer.
	DefaultDrawFrontRight
)

// DefaultReadAttachment is a physical source surface of the default
// framebuffer, used with [Context.MapDefaultForRead]. The aggregate values
// (Left, Front, ...) are only meaningful where the platform exposes
// multiple physical buffers.
type DefaultReadAttachment int

const (
	DefaultReadFrontLeft DefaultReadAttachment = iota
	DefaultReadFrontRight
	DefaultReadBackLeft
	DefaultReadBackRight
	DefaultReadLeft
	DefaultReadRight
	DefaultReadFront
	DefaultReadBack
	DefaultReadFrontAndBack
)

// MapDefaultForDraw maps physical buffers of the default framebuffer to
// fragment outputs, with the same ordering semantics as
// [Framebuffer.MapForDraw]. The default framebuffer is bound to the Draw
// role first.
func (c *Context) MapDefaultForDraw(attachments []DefaultDrawAttachment) {
	c.BindDefault(TargetDraw)
	bufs := make([]glapi.Enum, len(attachments))
	for i, a := range attachments {
		bufs[i] = defaultDrawEnum(a)
	}
	c.api.DrawBuffers(bufs)
}

// MapDefaultForRead maps a physical buffer of the default framebuffer as
// the source for subsequent readback and blit operations. The default
// framebuffer is bound to the Read role first.
func (c *Context) MapDefaultForRead(attachment DefaultReadAttachment) {
	c.BindDefault(TargetRead)
	c.api.ReadBuffer(defaultReadEnum(attachment))
}
