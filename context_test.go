package glfb_test

import (
	"errors"
	"testing"

	"github.com/gogpu/glfb"
	"github.com/gogpu/glfb/glapi"
)

func TestNewContextSelectsBackendByName(t *testing.T) {
	ctx, err := glfb.NewContext(glfb.WithBackend("mem"))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.API() == nil {
		t.Fatal("API() = nil")
	}
}

func TestNewContextDefaultBackend(t *testing.T) {
	// The software device is registered by importing memgl; with no real
	// driver backend linked in, it is the best available.
	ctx, err := glfb.NewContext()
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.MaxColorAttachments() < 8 {
		t.Errorf("MaxColorAttachments() = %d, want at least 8", ctx.MaxColorAttachments())
	}
}

func TestNewContextUnknownBackend(t *testing.T) {
	_, err := glfb.NewContext(glfb.WithBackend("no-such"))
	if !errors.Is(err, glapi.ErrUnknownBackend) {
		t.Errorf("NewContext error = %v, want ErrUnknownBackend", err)
	}
}

func TestBindDefaultTracksRoles(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.BindDefault(glfb.TargetReadDraw)
	if ctx.BoundRead() != 0 || ctx.BoundDraw() != 0 {
		t.Errorf("bound = (read %d, draw %d), want (0, 0)", ctx.BoundRead(), ctx.BoundDraw())
	}
}
