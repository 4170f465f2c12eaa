// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glapi defines the narrow OpenGL function set that glfb drives,
// together with the GL constant table and a registry of interchangeable
// implementations.
//
// The core library never calls the platform GL bindings directly. It talks
// to the [API] interface, which keeps the enum-to-native mapping in one
// place and lets tests and headless programs substitute an in-memory
// implementation for the real driver.
//
// # Backend Registration
//
// Implementations register themselves via init() functions and are selected
// at runtime:
//
//	import _ "github.com/gogpu/glfb/glgl"  // real GL, priority 100
//	import _ "github.com/gogpu/glfb/memgl" // software, priority 10
//
// Use Default() for the best available implementation, or Get() to request
// one by name:
//
//	api, err := glapi.Default()
//	api, err := glapi.Get("mem")
//
// # Available Implementations
//
//   - "gl41": OpenGL 4.1 core via go-gl (requires a current GL context)
//   - "mem": pure-CPU device with real pixel planes (always available)
package glapi
