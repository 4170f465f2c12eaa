package glfb

import "github.com/gogpu/glfb/glapi"

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Best available backend
//	ctx, err := glfb.NewContext()
//
//	// A specific registered backend
//	ctx, err := glfb.NewContext(glfb.WithBackend("mem"))
//
//	// Direct injection, bypassing the registry
//	ctx, err := glfb.NewContext(glfb.WithAPI(dev))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	api     glapi.API
	backend string
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{}
}

// WithAPI injects a native function set directly, bypassing the glapi
// registry. Use this for dependency injection of a custom or test device.
func WithAPI(api glapi.API) ContextOption {
	return func(o *contextOptions) {
		o.api = api
	}
}

// WithBackend selects a registered glapi backend by name
// (e.g. "gl41", "mem").
func WithBackend(name string) ContextOption {
	return func(o *contextOptions) {
		o.backend = name
	}
}
