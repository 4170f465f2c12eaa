package glfb

// ClearMask selects which buffer planes a clear affects. Masks combine with
// the | operator; the zero value selects nothing.
type ClearMask uint32

const (
	// ClearColor clears the color buffer(s).
	ClearColor ClearMask = 1 << iota
	// ClearDepth clears the depth buffer.
	ClearDepth
	// ClearStencil clears the stencil buffer.
	ClearStencil
)

// ClearAll selects all three buffer planes.
const ClearAll = ClearColor | ClearDepth | ClearStencil

// Has reports whether every bit of bits is set in m.
func (m ClearMask) Has(bits ClearMask) bool {
	return m&bits == bits
}

// BlitMask selects which buffer planes a blit copies. Masks combine with
// the | operator; the zero value copies nothing.
type BlitMask uint32

const (
	// BlitColor copies the color plane.
	BlitColor BlitMask = 1 << iota
	// BlitDepth copies the depth plane.
	BlitDepth
	// BlitStencil copies the stencil plane.
	BlitStencil
)

// Has reports whether every bit of bits is set in m.
func (m BlitMask) Has(bits BlitMask) bool {
	return m&bits == bits
}
