package glfb

import "fmt"

// TextureKind identifies the native target a texture was created for.
// It matters for attachment because the native attach call addresses the
// texture through its target, not just its handle.
type TextureKind int

const (
	TextureKind1D TextureKind = iota
	TextureKind2D
	TextureKindRectangle
	TextureKindCubeMap
	TextureKind3D
)

// CubeFace selects one face of a cube map texture.
type CubeFace int

const (
	CubeFacePositiveX CubeFace = iota
	CubeFaceNegativeX
	CubeFacePositiveY
	CubeFaceNegativeY
	CubeFacePositiveZ
	CubeFaceNegativeZ
)

// Texture is the capability surface glfb consumes from texture resources.
// The library reads the handle and kind only; it never owns or mutates the
// texture, and attaching a destroyed texture is the caller's bug (detected
// later as an incomplete-target condition by the native layer).
type Texture interface {
	// NativeID returns the native texture handle.
	NativeID() uint32
	// Kind returns the texture's native target kind.
	Kind() TextureKind
}

// Renderbuffer is the capability surface glfb consumes from renderbuffer
// resources: the native handle only.
type Renderbuffer interface {
	// NativeID returns the native renderbuffer handle.
	NativeID() uint32
}

type slotKind uint8

const (
	slotColor slotKind = iota
	slotDepth
	slotStencil
	slotDepthStencil
)

// AttachmentSlot identifies one logical attachment position on a
// framebuffer: a numbered color slot, or the depth / stencil / combined
// depth-stencil slot. Slots are comparable values usable as map keys.
type AttachmentSlot struct {
	kind  slotKind
	index int
}

// ColorSlot returns the slot for color attachment index (0 to 15). The
// index is not range-checked here; out-of-range indices are forwarded to
// the native layer like any other caller error.
func ColorSlot(index int) AttachmentSlot {
	return AttachmentSlot{kind: slotColor, index: index}
}

// Fixed depth/stencil slots.
var (
	// DepthSlot is the depth-only attachment slot.
	DepthSlot = AttachmentSlot{kind: slotDepth}
	// StencilSlot is the stencil-only attachment slot.
	StencilSlot = AttachmentSlot{kind: slotStencil}
	// DepthStencilSlot is the combined depth-stencil attachment slot.
	DepthStencilSlot = AttachmentSlot{kind: slotDepthStencil}
)

// IsColor reports whether the slot is a numbered color slot.
func (s AttachmentSlot) IsColor() bool {
	return s.kind == slotColor
}

// Index returns the color index for color slots, and 0 otherwise.
func (s AttachmentSlot) Index() int {
	return s.index
}

// String implements fmt.Stringer.
func (s AttachmentSlot) String() string {
	switch s.kind {
	case slotColor:
		return fmt.Sprintf("color%d", s.index)
	case slotDepth:
		return "depth"
	case slotStencil:
		return "stencil"
	case slotDepthStencil:
		return "depth-stencil"
	}
	return "invalid"
}

// AttachmentKind distinguishes what kind of resource occupies a slot.
type AttachmentKind int

const (
	// AttachmentRenderbuffer marks a renderbuffer-backed binding.
	AttachmentRenderbuffer AttachmentKind = iota
	// AttachmentTexture marks a texture-backed binding.
	AttachmentTexture
)

// AttachmentBinding records what resource is bound to a slot. It is a weak
// reference: the identity of the resource plus its addressing metadata, not
// an owning pointer. A slot holds at most one binding; re-attaching
// replaces it.
type AttachmentBinding struct {
	// Kind tells whether the binding is a texture or a renderbuffer.
	Kind AttachmentKind

	// ResourceID is the native handle of the attached resource.
	ResourceID uint32

	// TextureKind is the texture's target kind. Valid only for texture
	// bindings.
	TextureKind TextureKind

	// MipLevel is the attached mip level. Valid only for texture bindings.
	MipLevel int

	// Face is the attached cube face. Valid only for cube map bindings.
	Face CubeFace

	// Layer is the attached 2D layer within a 3D texture. Valid only for
	// 3D texture bindings.
	Layer int
}
