package glfb_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glfb"
	"github.com/gogpu/glfb/glapi"
	"github.com/gogpu/glfb/memgl"
)

// newTestContext builds a context over a fresh software device.
func newTestContext(t *testing.T, opts ...memgl.DeviceOption) (*glfb.Context, *memgl.Device) {
	t.Helper()
	dev := memgl.New(opts...)
	ctx, err := glfb.NewContext(glfb.WithAPI(dev))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx, dev
}

// newColorTarget builds a complete framebuffer with a single 2D color
// texture attached at slot 0, mapped for both drawing and reading.
func newColorTarget(t *testing.T, ctx *glfb.Context, dev *memgl.Device, w, h int) (*glfb.Framebuffer, *memgl.Texture) {
	t.Helper()
	fb, err := ctx.NewFramebuffer()
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	tex := dev.NewTexture2D(w, h, gputypes.TextureFormatRGBA8Unorm)
	fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(0), tex, 0)
	fb.MapForDraw([]int{0})
	fb.MapForRead(0)
	if err := fb.CheckStatus(glfb.TargetReadDraw); err != nil {
		t.Fatalf("CheckStatus: %v", err)
	}
	return fb, tex
}

func TestAttachBindsToRoleFirst(t *testing.T) {
	ctx, dev := newTestContext(t)
	fb, err := ctx.NewFramebuffer()
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}

	tex := dev.NewTexture2D(16, 16, gputypes.TextureFormatRGBA8Unorm)
	fb.AttachTexture2D(glfb.TargetDraw, glfb.ColorSlot(0), tex, 0)

	if got := ctx.BoundDraw(); got != fb.ID() {
		t.Errorf("BoundDraw() = %d after attach, want %d", got, fb.ID())
	}
	if got := ctx.BoundRead(); got != 0 {
		t.Errorf("BoundRead() = %d, want 0 (attaching for Draw must not touch the Read role)", got)
	}
}

func TestAttachmentRecording(t *testing.T) {
	ctx, dev := newTestContext(t)
	fb, err := ctx.NewFramebuffer()
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}

	tex2D := dev.NewTexture2D(16, 16, gputypes.TextureFormatRGBA8Unorm)
	cube := dev.NewCubeMapTexture(16, gputypes.TextureFormatRGBA8Unorm)
	tex3D := dev.NewTexture3D(16, 16, 4, gputypes.TextureFormatRGBA8Unorm)
	rb := dev.NewRenderbuffer(16, 16, gputypes.TextureFormatDepth24PlusStencil8)

	fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(0), tex2D, 0)
	fb.AttachCubeMapTexture(glfb.TargetReadDraw, glfb.ColorSlot(1), cube, glfb.CubeFaceNegativeZ, 0)
	fb.AttachTexture3D(glfb.TargetReadDraw, glfb.ColorSlot(2), tex3D, 0, 3)
	fb.AttachRenderbuffer(glfb.TargetReadDraw, glfb.DepthStencilSlot, rb)

	tests := []struct {
		name string
		slot glfb.AttachmentSlot
		want glfb.AttachmentBinding
	}{
		{
			name: "2D texture",
			slot: glfb.ColorSlot(0),
			want: glfb.AttachmentBinding{
				Kind: glfb.AttachmentTexture, ResourceID: tex2D.NativeID(),
				TextureKind: glfb.TextureKind2D,
			},
		},
		{
			name: "cube face",
			slot: glfb.ColorSlot(1),
			want: glfb.AttachmentBinding{
				Kind: glfb.AttachmentTexture, ResourceID: cube.NativeID(),
				TextureKind: glfb.TextureKindCubeMap, Face: glfb.CubeFaceNegativeZ,
			},
		},
		{
			name: "3D layer",
			slot: glfb.ColorSlot(2),
			want: glfb.AttachmentBinding{
				Kind: glfb.AttachmentTexture, ResourceID: tex3D.NativeID(),
				TextureKind: glfb.TextureKind3D, Layer: 3,
			},
		},
		{
			name: "depth-stencil renderbuffer",
			slot: glfb.DepthStencilSlot,
			want: glfb.AttachmentBinding{
				Kind: glfb.AttachmentRenderbuffer, ResourceID: rb.NativeID(),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fb.Attachment(tt.slot)
			if !ok {
				t.Fatalf("Attachment(%v) missing", tt.slot)
			}
			if got != tt.want {
				t.Errorf("Attachment(%v) = %+v, want %+v", tt.slot, got, tt.want)
			}
		})
	}

	if _, ok := fb.Attachment(glfb.ColorSlot(5)); ok {
		t.Error("Attachment(color5) = present, want absent")
	}
}

func TestReattachReplacesBinding(t *testing.T) {
	ctx, dev := newTestContext(t)
	fb, _ := newColorTarget(t, ctx, dev, 16, 16)

	other := dev.NewTexture2D(16, 16, gputypes.TextureFormatRGBA8Unorm)
	fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(0), other, 0)

	got, ok := fb.Attachment(glfb.ColorSlot(0))
	if !ok || got.ResourceID != other.NativeID() {
		t.Errorf("Attachment(color0).ResourceID = %d, want %d", got.ResourceID, other.NativeID())
	}
}

func TestBindRolesAreIndependent(t *testing.T) {
	ctx, dev := newTestContext(t)
	fb1, _ := newColorTarget(t, ctx, dev, 16, 16)
	fb2, _ := newColorTarget(t, ctx, dev, 16, 16)

	fb1.Bind(glfb.TargetRead)
	fb2.Bind(glfb.TargetDraw)
	if ctx.BoundRead() != fb1.ID() || ctx.BoundDraw() != fb2.ID() {
		t.Fatalf("bound = (read %d, draw %d), want (%d, %d)",
			ctx.BoundRead(), ctx.BoundDraw(), fb1.ID(), fb2.ID())
	}

	fb1.Bind(glfb.TargetReadDraw)
	if ctx.BoundRead() != fb1.ID() || ctx.BoundDraw() != fb1.ID() {
		t.Errorf("after ReadDraw bind: bound = (read %d, draw %d), want both %d",
			ctx.BoundRead(), ctx.BoundDraw(), fb1.ID())
	}

	ctx.BindDefault(glfb.TargetDraw)
	if ctx.BoundDraw() != 0 {
		t.Errorf("BoundDraw() = %d after BindDefault, want 0", ctx.BoundDraw())
	}
	if ctx.BoundRead() != fb1.ID() {
		t.Errorf("BoundRead() = %d, want %d (default bind of Draw must not touch Read)",
			ctx.BoundRead(), fb1.ID())
	}
}

func TestDeleteWhileBoundRevertsToDefault(t *testing.T) {
	ctx, dev := newTestContext(t)
	fb, _ := newColorTarget(t, ctx, dev, 16, 16)

	fb.Bind(glfb.TargetReadDraw)
	fb.Delete()

	if ctx.BoundRead() != 0 || ctx.BoundDraw() != 0 {
		t.Errorf("bound = (read %d, draw %d) after delete, want (0, 0)",
			ctx.BoundRead(), ctx.BoundDraw())
	}

	// Deleting twice is a no-op, and the default target stays usable.
	fb.Delete()
	ctx.SetClearColor(glfb.RGB(1, 0, 0))
	ctx.ClearBuffers(glfb.ClearColor)
	if e := dev.GetError(); e != glapi.NoError {
		t.Errorf("device error 0x%04X after clearing the default target", uint32(e))
	}
}

func TestDeleteKeepsOtherBindings(t *testing.T) {
	ctx, dev := newTestContext(t)
	fb1, _ := newColorTarget(t, ctx, dev, 16, 16)
	fb2, _ := newColorTarget(t, ctx, dev, 16, 16)

	fb1.Bind(glfb.TargetRead)
	fb2.Bind(glfb.TargetDraw)
	fb1.Delete()

	if ctx.BoundRead() != 0 {
		t.Errorf("BoundRead() = %d, want 0", ctx.BoundRead())
	}
	if ctx.BoundDraw() != fb2.ID() {
		t.Errorf("BoundDraw() = %d, want %d (deleting fb1 must not touch fb2's role)",
			ctx.BoundDraw(), fb2.ID())
	}
}

func TestNewFramebufferExhausted(t *testing.T) {
	ctx, dev := newTestContext(t, memgl.WithFramebufferLimit(1))

	if _, err := ctx.NewFramebuffer(); err != nil {
		t.Fatalf("first NewFramebuffer: %v", err)
	}
	_, err := ctx.NewFramebuffer()
	if !errors.Is(err, glfb.ErrResourceExhausted) {
		t.Fatalf("second NewFramebuffer error = %v, want ErrResourceExhausted", err)
	}

	// The latched native code must have been drained.
	if e := dev.GetError(); e != glapi.NoError {
		t.Errorf("device error 0x%04X left latched after exhaustion", uint32(e))
	}
}

func TestMapForDrawKeepsOrderAndHoles(t *testing.T) {
	ctx, dev := newTestContext(t)
	fb, err := ctx.NewFramebuffer()
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	for _, slot := range []int{0, 2} {
		tex := dev.NewTexture2D(16, 16, gputypes.TextureFormatRGBA8Unorm)
		fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(slot), tex, 0)
	}

	ctx.BindDefault(glfb.TargetDraw)
	fb.MapForDraw([]int{2, glfb.NoAttachment, 0})

	if got := ctx.BoundDraw(); got != fb.ID() {
		t.Errorf("BoundDraw() = %d after MapForDraw, want %d", got, fb.ID())
	}

	want := []int{2, glfb.NoAttachment, 0}
	got := fb.DrawMapping()
	if !slices.Equal(got, want) {
		t.Fatalf("DrawMapping() = %v, want %v", got, want)
	}

	// The returned mapping is a copy; mutating it must not leak back.
	got[0] = 7
	if again := fb.DrawMapping(); !slices.Equal(again, want) {
		t.Errorf("DrawMapping() = %v after caller mutation, want %v", again, want)
	}
}

func TestMapForDrawDefaultIsNil(t *testing.T) {
	ctx, _ := newTestContext(t)
	fb, err := ctx.NewFramebuffer()
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	if got := fb.DrawMapping(); got != nil {
		t.Errorf("DrawMapping() = %v before MapForDraw, want nil", got)
	}
	if _, ok := fb.ReadMapping(); ok {
		t.Error("ReadMapping() reports mapped before MapForRead")
	}
}

func TestMapForReadSelectsSlot(t *testing.T) {
	ctx, dev := newTestContext(t)
	fb, err := ctx.NewFramebuffer()
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	tex0 := dev.NewTexture2D(8, 8, gputypes.TextureFormatRGBA8Unorm)
	tex1 := dev.NewTexture2D(8, 8, gputypes.TextureFormatRGBA8Unorm)
	fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(0), tex0, 0)
	fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(1), tex1, 0)

	// Paint slot 0 red and slot 1 green through the draw mapping.
	fb.MapForDraw([]int{0})
	ctx.SetClearColor(glfb.RGB(1, 0, 0))
	ctx.ClearBuffers(glfb.ClearColor)
	fb.MapForDraw([]int{1})
	ctx.SetClearColor(glfb.RGB(0, 1, 0))
	ctx.ClearBuffers(glfb.ClearColor)

	fb.MapForRead(1)
	if slot, ok := fb.ReadMapping(); !ok || slot != 1 {
		t.Fatalf("ReadMapping() = (%d, %v), want (1, true)", slot, ok)
	}
	if got := ctx.BoundRead(); got != fb.ID() {
		t.Errorf("BoundRead() = %d after MapForRead, want %d", got, fb.ID())
	}

	img := glfb.NewImage2D(glfb.ComponentsRGBA, glfb.ComponentUnsignedByte)
	if err := ctx.Read(probePoint(), probeSize(), glfb.ComponentsRGBA, glfb.ComponentUnsignedByte, img); err != nil {
		t.Fatalf("Read: %v", err)
	}
	assertPixelRGBA(t, img.Pix(), 0, 255, 0, 255)

	fb.MapForRead(0)
	if err := ctx.Read(probePoint(), probeSize(), glfb.ComponentsRGBA, glfb.ComponentUnsignedByte, img); err != nil {
		t.Fatalf("Read: %v", err)
	}
	assertPixelRGBA(t, img.Pix(), 255, 0, 0, 255)
}

func TestCheckStatus(t *testing.T) {
	ctx, dev := newTestContext(t)

	t.Run("no attachments", func(t *testing.T) {
		fb, err := ctx.NewFramebuffer()
		if err != nil {
			t.Fatalf("NewFramebuffer: %v", err)
		}
		err = fb.CheckStatus(glfb.TargetReadDraw)
		if !errors.Is(err, glfb.ErrIncompleteTarget) {
			t.Fatalf("CheckStatus = %v, want ErrIncompleteTarget", err)
		}
		var ite *glfb.IncompleteTargetError
		if !errors.As(err, &ite) {
			t.Fatalf("CheckStatus error type = %T, want *IncompleteTargetError", err)
		}
		if ite.Status != glapi.FramebufferIncompleteMissingAttachment {
			t.Errorf("Status = 0x%04X, want INCOMPLETE_MISSING_ATTACHMENT", uint32(ite.Status))
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		fb, err := ctx.NewFramebuffer()
		if err != nil {
			t.Fatalf("NewFramebuffer: %v", err)
		}
		a := dev.NewTexture2D(16, 16, gputypes.TextureFormatRGBA8Unorm)
		b := dev.NewTexture2D(8, 8, gputypes.TextureFormatRGBA8Unorm)
		fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(0), a, 0)
		fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(1), b, 0)

		if err := fb.CheckStatus(glfb.TargetReadDraw); !errors.Is(err, glfb.ErrIncompleteTarget) {
			t.Errorf("CheckStatus = %v, want ErrIncompleteTarget", err)
		}
	})

	t.Run("complete", func(t *testing.T) {
		fb, _ := newColorTarget(t, ctx, dev, 16, 16)
		if err := fb.CheckStatus(glfb.TargetRead); err != nil {
			t.Errorf("CheckStatus = %v, want nil", err)
		}
	})
}
