// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package memgl

// plane is one attachable pixel surface. Depending on the format of the
// resource it belongs to it carries a color store, a depth store, a stencil
// store, or depth and stencil together. Row 0 is the bottom row, matching
// the GL window coordinate convention.
type plane struct {
	w, h    int
	color   []float32 // RGBA, 4 values per pixel; nil for non-color planes
	depth   []float32 // 1 value per pixel; nil when absent
	stencil []uint32  // 1 value per pixel; nil when absent
}

func newColorPlane(w, h int) *plane {
	return &plane{w: w, h: h, color: make([]float32, 4*w*h)}
}

func newDepthStencilPlane(w, h int) *plane {
	return &plane{
		w: w, h: h,
		depth:   make([]float32, w*h),
		stencil: make([]uint32, w*h),
	}
}

func (p *plane) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.w && y < p.h
}

func (p *plane) colorAt(x, y int) [4]float32 {
	i := 4 * (y*p.w + x)
	return [4]float32{p.color[i], p.color[i+1], p.color[i+2], p.color[i+3]}
}

func (p *plane) setColorAt(x, y int, c [4]float32, mask [4]bool) {
	i := 4 * (y*p.w + x)
	for ch := 0; ch < 4; ch++ {
		if mask[ch] {
			p.color[i+ch] = c[ch]
		}
	}
}

// clearColor fills the whole color store, honoring the per-channel mask.
func (p *plane) clearColor(c [4]float32, mask [4]bool) {
	if p.color == nil {
		return
	}
	for i := 0; i < len(p.color); i += 4 {
		for ch := 0; ch < 4; ch++ {
			if mask[ch] {
				p.color[i+ch] = c[ch]
			}
		}
	}
}

// clearDepth fills the depth store unless depth writes are masked off.
func (p *plane) clearDepth(d float32, writable bool) {
	if p.depth == nil || !writable {
		return
	}
	for i := range p.depth {
		p.depth[i] = d
	}
}

// clearStencil writes the stencil value through the stencil write mask:
// masked-off bits keep their previous contents.
func (p *plane) clearStencil(s uint32, writeMask uint32) {
	if p.stencil == nil {
		return
	}
	for i := range p.stencil {
		p.stencil[i] = (p.stencil[i] &^ writeMask) | (s & writeMask)
	}
}
