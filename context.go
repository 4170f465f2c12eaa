package glfb

import (
	"github.com/gogpu/glfb/glapi"
)

// Target is the role a framebuffer is bound to. Operations pick the
// framebuffer bound to their role: readback and blit sources use the
// Read-bound framebuffer, clears and blit destinations use the Draw-bound
// one.
type Target int

const (
	// TargetRead binds for reading only.
	TargetRead Target = iota
	// TargetDraw binds for drawing only.
	TargetDraw
	// TargetReadDraw binds for both reading and drawing.
	TargetReadDraw
)

// defaultFramebuffer is the native name of the implicit on-screen target.
const defaultFramebuffer uint32 = 0

// Context owns a native function set plus the per-context binding table:
// which framebuffer is Read-bound and which is Draw-bound. Keeping the table
// on the Context instead of in ambient package state lets tests construct
// independent contexts.
//
// Context is not safe for concurrent use.
type Context struct {
	api glapi.API

	// Tracked bindings, mirroring the native current-binding state.
	readBound uint32
	drawBound uint32

	// clearMask drives the no-argument Clear. Starts as color-only;
	// SetFeature(DepthTest/StencilTest, ...) toggles the other bits.
	clearMask ClearMask

	maxColorAttachments int
}

// NewContext creates a Context over a native function set. Without options
// the best available glapi backend is used; pass WithAPI or WithBackend to
// select one explicitly.
func NewContext(opts ...ContextOption) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	api := o.api
	if api == nil {
		var err error
		if o.backend != "" {
			api, err = glapi.Get(o.backend)
		} else {
			api, err = glapi.Default()
		}
		if err != nil {
			return nil, err
		}
	}

	max := int(api.GetInteger(glapi.MaxColorAttachments))
	if max <= 0 {
		// GL guarantees at least 8 color attachments.
		max = 8
	}

	Logger().Info("glfb: context created", "maxColorAttachments", max)

	return &Context{
		api:                 api,
		clearMask:           ClearColor,
		maxColorAttachments: max,
	}, nil
}

// API returns the native function set the context drives.
func (c *Context) API() glapi.API {
	return c.api
}

// MaxColorAttachments returns the number of color attachment slots the
// native implementation supports.
func (c *Context) MaxColorAttachments() int {
	return c.maxColorAttachments
}

// BindDefault binds the default framebuffer (the on-screen surface) to the
// given role, detaching whichever framebuffer previously held that role.
func (c *Context) BindDefault(target Target) {
	c.bindFramebuffer(target, defaultFramebuffer)
}

// BoundRead returns the native name of the Read-bound framebuffer
// (0 for the default framebuffer).
func (c *Context) BoundRead() uint32 {
	return c.readBound
}

// BoundDraw returns the native name of the Draw-bound framebuffer
// (0 for the default framebuffer).
func (c *Context) BoundDraw() uint32 {
	return c.drawBound
}

// bindFramebuffer issues the native bind and updates the tracked table.
// Binding to one role never disturbs the other role's binding; ReadDraw
// updates both.
func (c *Context) bindFramebuffer(target Target, fb uint32) {
	c.api.BindFramebuffer(targetEnum(target), fb)
	switch target {
	case TargetRead:
		c.readBound = fb
	case TargetDraw:
		c.drawBound = fb
	case TargetReadDraw:
		c.readBound = fb
		c.drawBound = fb
	}
	Logger().Debug("glfb: bind", "target", target, "framebuffer", fb)
}

// forgetFramebuffer removes a deleted framebuffer from the tracked binding
// table. The native layer reverts roles occupied by a deleted framebuffer
// to the default framebuffer, so the table mirrors that.
func (c *Context) forgetFramebuffer(fb uint32) {
	if c.readBound == fb {
		c.readBound = defaultFramebuffer
	}
	if c.drawBound == fb {
		c.drawBound = defaultFramebuffer
	}
}
