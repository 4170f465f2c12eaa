// Package glfb provides framebuffer objects, global pipeline state and
// blit/readback operations for OpenGL-style rendering contexts.
//
// # Overview
//
// glfb models the stateful GL render-target contract: a [Framebuffer] is a
// named collection of attachment slots (color 0-15, depth, stencil or
// combined) backed by a native handle, and every clear, blit and readback
// operation acts on "the currently bound" framebuffer for its role. The
// library preserves that contract precisely instead of hiding it: attach
// and map calls bind the framebuffer to the requested role first, exactly
// like the native API they drive.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/glfb"
//		_ "github.com/gogpu/glfb/memgl" // or glgl for real OpenGL
//	)
//
//	ctx, err := glfb.NewContext()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fb, err := ctx.NewFramebuffer()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer fb.Delete()
//
//	fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(0), tex, 0)
//	fb.MapForDraw([]int{0})
//	ctx.SetClearColor(glfb.RGBA(0.2, 0.4, 0.8, 1))
//	ctx.Clear()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Framebuffer, attachment slots, pipeline state,
//     blit/readback and image destinations
//   - glapi: the narrow GL function-set interface, constants and a backend
//     registry
//   - glgl: real OpenGL 4.1 backend via go-gl
//   - memgl: pure-CPU device with real pixel planes for headless use and
//     tests
//
// # Binding Model
//
// A Context owns the per-context binding table (one Read-bound and one
// Draw-bound framebuffer). Binding one role never disturbs the other; a
// framebuffer may occupy both roles at once. Deleting a framebuffer that is
// bound reverts the roles it occupied to the default framebuffer.
//
// # Concurrency
//
// The native context is single-threaded and stateful. Neither Context nor
// Framebuffer is safe for concurrent use; callers serialize whole
// bind/attach/clear/blit sequences externally. Only SetLogger and the glapi
// registry are synchronized.
package glfb
