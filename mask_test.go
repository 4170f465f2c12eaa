package glfb

import "testing"

func TestClearMaskHas(t *testing.T) {
	m := ClearColor | ClearDepth
	if !m.Has(ClearColor) || !m.Has(ClearDepth) {
		t.Error("mask missing bits it was built from")
	}
	if m.Has(ClearStencil) {
		t.Error("mask reports a bit it does not carry")
	}
	if !m.Has(ClearColor | ClearDepth) {
		t.Error("Has must match multi-bit queries")
	}
	if m.Has(ClearColor | ClearStencil) {
		t.Error("Has must require every queried bit")
	}
}

func TestClearAllCoversEverything(t *testing.T) {
	for _, bit := range []ClearMask{ClearColor, ClearDepth, ClearStencil} {
		if !ClearAll.Has(bit) {
			t.Errorf("ClearAll missing bit %b", bit)
		}
	}
}

func TestBlitMaskHas(t *testing.T) {
	m := BlitDepth | BlitStencil
	if m.Has(BlitColor) {
		t.Error("mask reports a bit it does not carry")
	}
	if !m.Has(BlitDepth | BlitStencil) {
		t.Error("mask missing bits it was built from")
	}
}

func TestMaskBitsMapToNative(t *testing.T) {
	if clearBits(ClearAll) != blitBits(BlitColor|BlitDepth|BlitStencil) {
		t.Error("clear and blit masks must map to the same native bits")
	}
	if clearBits(0) != 0 {
		t.Errorf("clearBits(0) = %#x, want 0", clearBits(0))
	}
}
