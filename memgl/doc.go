// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package memgl is a pure-CPU implementation of the glapi function set with
// real pixel planes. It registers itself as the "mem" backend.
//
// memgl exists for two reasons: headless programs that want framebuffer
// semantics without a GPU or a windowing system, and tests that need to
// observe actual pixel results of clear, blit and readback sequences.
//
// The device models the GL current-binding state faithfully: framebuffer
// names with attachment points, draw/read buffer selection, a default
// framebuffer with front/back color planes plus depth and stencil, write
// masks, clear values, pixel pack buffers and latched error codes. Deleting
// a framebuffer that is bound reverts the affected role to the default
// framebuffer, as the native API does.
//
// Color planes are stored at float32 precision regardless of the nominal
// texture format, so clear-then-read round trips are exact. Scaled color
// blits are resampled through golang.org/x/image/draw and therefore pass
// through 8-bit precision; same-size blits copy the float planes directly.
//
// Rasterization (draw calls, blending, depth/stencil tests) is out of
// scope: the device records blend and feature state but only clear, blit
// and readback touch pixels.
//
//	dev := memgl.New(memgl.WithSize(640, 480))
//	ctx, err := glfb.NewContext(glfb.WithAPI(dev))
//
// A Device is not safe for concurrent use, matching the single-threaded
// contract of the native API it stands in for.
package memgl
