package glfb

import (
	"testing"

	"github.com/gogpu/glfb/glapi"
)

func TestAttachmentSlotString(t *testing.T) {
	tests := []struct {
		slot AttachmentSlot
		want string
	}{
		{ColorSlot(0), "color0"},
		{ColorSlot(7), "color7"},
		{DepthSlot, "depth"},
		{StencilSlot, "stencil"},
		{DepthStencilSlot, "depth-stencil"},
	}
	for _, tt := range tests {
		if got := tt.slot.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAttachmentSlotColor(t *testing.T) {
	s := ColorSlot(3)
	if !s.IsColor() || s.Index() != 3 {
		t.Errorf("ColorSlot(3) = (IsColor %v, Index %d), want (true, 3)", s.IsColor(), s.Index())
	}
	if DepthSlot.IsColor() {
		t.Error("DepthSlot.IsColor() = true")
	}
}

func TestSlotsAreMapKeys(t *testing.T) {
	m := map[AttachmentSlot]int{
		ColorSlot(0):     1,
		ColorSlot(1):     2,
		DepthStencilSlot: 3,
	}
	if m[ColorSlot(0)] != 1 || m[ColorSlot(1)] != 2 || m[DepthStencilSlot] != 3 {
		t.Error("equal slot values must address the same map entry")
	}
}

func TestSlotEnumMapping(t *testing.T) {
	if got := slotEnum(ColorSlot(5)); got != glapi.ColorAttachment0+5 {
		t.Errorf("slotEnum(color5) = 0x%04X, want COLOR_ATTACHMENT5", uint32(got))
	}
	if got := slotEnum(DepthStencilSlot); got != glapi.DepthStencilAttachment {
		t.Errorf("slotEnum(depth-stencil) = 0x%04X, want DEPTH_STENCIL_ATTACHMENT", uint32(got))
	}
}

func TestCubeFaceEnumsAreConsecutive(t *testing.T) {
	faces := []CubeFace{
		CubeFacePositiveX, CubeFaceNegativeX,
		CubeFacePositiveY, CubeFaceNegativeY,
		CubeFacePositiveZ, CubeFaceNegativeZ,
	}
	for i, f := range faces {
		want := glapi.TextureCubeMapPosX + glapi.Enum(i)
		if got := cubeFaceEnum(f); got != want {
			t.Errorf("cubeFaceEnum(%v) = 0x%04X, want 0x%04X", f, uint32(got), uint32(want))
		}
	}
}
