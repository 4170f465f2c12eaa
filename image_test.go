package glfb

import (
	"image"
	"testing"
)

func TestPixelSize(t *testing.T) {
	tests := []struct {
		name       string
		components Components
		ctype      ComponentType
		want       int
	}{
		{"RGBA bytes", ComponentsRGBA, ComponentUnsignedByte, 4},
		{"RGBA floats", ComponentsRGBA, ComponentFloat, 16},
		{"RGB shorts", ComponentsRGB, ComponentUnsignedShort, 6},
		{"red half float", ComponentsRed, ComponentHalfFloat, 2},
		{"depth float", ComponentsDepth, ComponentFloat, 4},
		{"stencil byte", ComponentsStencil, ComponentUnsignedByte, 1},
		{"packed depth-stencil", ComponentsDepthStencil, ComponentUnsignedInt248, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelSize(tt.components, tt.ctype); got != tt.want {
				t.Errorf("PixelSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestImage2DStorageReuse(t *testing.T) {
	img := NewImage2D(ComponentsRGBA, ComponentUnsignedByte)
	if img.Pix() != nil {
		t.Error("Pix() != nil before the first read")
	}

	img.reset(image.Pt(4, 4))
	big := &img.pix[0]
	img.reset(image.Pt(2, 2))
	if len(img.Pix()) != 2*2*4 {
		t.Errorf("len(Pix()) = %d, want 16", len(img.Pix()))
	}
	// Shrinking reuses the allocation.
	if &img.pix[0] != big {
		t.Error("shrinking reset reallocated the pixel store")
	}
}

func TestErrIncompleteTargetMessages(t *testing.T) {
	e := &IncompleteTargetError{Status: 0xBEEF}
	if e.Error() == "" {
		t.Error("empty error message for unknown status")
	}
}
