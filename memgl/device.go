// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package memgl

import (
	"github.com/gogpu/glfb"
	"github.com/gogpu/glfb/glapi"
)

func init() {
	glapi.Register("mem", 10, func() (glapi.API, error) {
		return New(), nil
	}, nil)
}

// maxColorAttachments is the slot count the device advertises. GL requires
// at least 8; the device matches the common desktop value.
const maxColorAttachments = 8

// framebuffer is one framebuffer name with its attachment points and
// draw/read buffer selection. Name 0 is the default framebuffer, whose
// "attachments" are the device's own planes.
type framebuffer struct {
	id          uint32
	attachments map[glapi.Enum]*plane
	drawBufs    []glapi.Enum
	readBuf     glapi.Enum
}

// DeviceOption configures a Device during creation.
type DeviceOption func(*deviceOptions)

type deviceOptions struct {
	width, height    int
	framebufferLimit int
}

// WithSize sets the default framebuffer dimensions. The default is 256x256.
func WithSize(width, height int) DeviceOption {
	return func(o *deviceOptions) {
		o.width, o.height = width, height
	}
}

// WithFramebufferLimit caps how many framebuffer names can be allocated.
// Allocation beyond the cap fails with OUT_OF_MEMORY, mimicking an
// exhausted native resource pool. Zero means unlimited.
func WithFramebufferLimit(n int) DeviceOption {
	return func(o *deviceOptions) {
		o.framebufferLimit = n
	}
}

// Device is an in-memory glapi.API. The zero value is not usable; create
// devices with New.
type Device struct {
	// Name spaces.
	nextName     uint32
	framebuffers map[uint32]*framebuffer
	buffers      map[uint32][]byte
	resources    map[uint32]attachable
	fbLimit      int
	fbCount      int

	// Default framebuffer planes. Back and front are distinct so that
	// default-buffer mapping is observable; the right buffers do not
	// exist (single-buffered-per-eye device).
	backLeft     *plane
	frontLeft    *plane
	depthStencil *plane

	// Current bindings.
	readFB     uint32
	drawFB     uint32
	packBuffer uint32

	// Pipeline state.
	enabled          map[glapi.Enum]bool
	clearColor       [4]float32
	clearDepth       float64
	clearStencil     int32
	colorMask        [4]bool
	depthMask        bool
	stencilMaskFront uint32
	stencilMaskBack  uint32
	viewport         [4]int32

	// Blend state is recorded but not applied: the device has no draw
	// operation.
	blendEqRGB, blendEqAlpha     glapi.Enum
	blendSrcRGB, blendDstRGB     glapi.Enum
	blendSrcAlpha, blendDstAlpha glapi.Enum
	blendColor                   [4]float32

	// First latched error, GL style.
	err glapi.Enum
}

// New creates a Device with a complete default framebuffer.
func New(opts ...DeviceOption) *Device {
	o := deviceOptions{width: 256, height: 256}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Device{
		framebuffers: make(map[uint32]*framebuffer),
		buffers:      make(map[uint32][]byte),
		resources:    make(map[uint32]attachable),
		fbLimit:      o.framebufferLimit,
		backLeft:     newColorPlane(o.width, o.height),
		frontLeft:    newColorPlane(o.width, o.height),
		depthStencil: newDepthStencilPlane(o.width, o.height),
		enabled:      map[glapi.Enum]bool{glapi.Dither: true},
		clearColor:   [4]float32{0, 0, 0, 1},
		clearDepth:   1,
		colorMask:    [4]bool{true, true, true, true},
		depthMask:    true,

		stencilMaskFront: ^uint32(0),
		stencilMaskBack:  ^uint32(0),
		viewport:         [4]int32{0, 0, int32(o.width), int32(o.height)},
		blendEqRGB:       glapi.FuncAdd,
		blendEqAlpha:     glapi.FuncAdd,
		blendSrcRGB:      glapi.One,
		blendDstRGB:      glapi.Zero,
		blendSrcAlpha:    glapi.One,
		blendDstAlpha:    glapi.Zero,
	}
	d.framebuffers[0] = &framebuffer{
		id:       0,
		drawBufs: []glapi.Enum{glapi.Back},
		readBuf:  glapi.Back,
	}
	glfb.Logger().Debug("memgl: device created", "width", o.width, "height", o.height)
	return d
}

// setErr latches the first error code, like glGetError semantics.
func (d *Device) setErr(code glapi.Enum) {
	if d.err == glapi.NoError {
		d.err = code
	}
}

// GetError returns the latched error and clears it.
func (d *Device) GetError() glapi.Enum {
	e := d.err
	d.err = glapi.NoError
	return e
}

func (d *Device) allocName() uint32 {
	d.nextName++
	return d.nextName
}

// GenFramebuffer allocates a framebuffer name, or returns 0 with
// OUT_OF_MEMORY latched when the configured limit is reached.
func (d *Device) GenFramebuffer() uint32 {
	if d.fbLimit > 0 && d.fbCount >= d.fbLimit {
		d.setErr(glapi.OutOfMemory)
		return 0
	}
	id := d.allocName()
	d.framebuffers[id] = &framebuffer{
		id:          id,
		attachments: make(map[glapi.Enum]*plane),
		drawBufs:    []glapi.Enum{glapi.ColorAttachment0},
		readBuf:     glapi.ColorAttachment0,
	}
	d.fbCount++
	return id
}

// DeleteFramebuffer releases a name. Roles bound to the deleted framebuffer
// revert to the default framebuffer.
func (d *Device) DeleteFramebuffer(fb uint32) {
	if fb == 0 {
		return
	}
	if _, ok := d.framebuffers[fb]; !ok {
		return
	}
	delete(d.framebuffers, fb)
	d.fbCount--
	if d.readFB == fb {
		d.readFB = 0
	}
	if d.drawFB == fb {
		d.drawFB = 0
	}
}

// BindFramebuffer binds fb to the given target. Binding an undeleted,
// never-generated name is a caller error and latches INVALID_OPERATION.
func (d *Device) BindFramebuffer(target glapi.Enum, fb uint32) {
	if _, ok := d.framebuffers[fb]; !ok {
		d.setErr(glapi.InvalidOperation)
		return
	}
	switch target {
	case glapi.ReadFramebuffer:
		d.readFB = fb
	case glapi.DrawFramebuffer:
		d.drawFB = fb
	case glapi.Framebuffer:
		d.readFB = fb
		d.drawFB = fb
	default:
		d.setErr(glapi.InvalidEnum)
	}
}

func (d *Device) boundFB(target glapi.Enum) *framebuffer {
	if target == glapi.ReadFramebuffer {
		return d.framebuffers[d.readFB]
	}
	return d.framebuffers[d.drawFB]
}

// CheckFramebufferStatus reports completeness of the framebuffer bound to
// target: the default framebuffer is always complete, a framebuffer object
// needs at least one attachment and all attachments must agree in size.
func (d *Device) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	fb := d.boundFB(target)
	if fb == nil || fb.id == 0 {
		return glapi.FramebufferComplete
	}
	if len(fb.attachments) == 0 {
		return glapi.FramebufferIncompleteMissingAttachment
	}
	w, h := -1, -1
	for _, p := range fb.attachments {
		if p == nil {
			return glapi.FramebufferIncompleteAttachment
		}
		if w < 0 {
			w, h = p.w, p.h
			continue
		}
		if p.w != w || p.h != h {
			return glapi.FramebufferIncompleteAttachment
		}
	}
	return glapi.FramebufferComplete
}

// DrawBuffers selects the draw buffers of the draw-bound framebuffer.
func (d *Device) DrawBuffers(bufs []glapi.Enum) {
	fb := d.boundFB(glapi.DrawFramebuffer)
	if len(bufs) > maxColorAttachments {
		d.setErr(glapi.InvalidValue)
		return
	}
	fb.drawBufs = append([]glapi.Enum(nil), bufs...)
}

// ReadBuffer selects the read buffer of the read-bound framebuffer.
func (d *Device) ReadBuffer(src glapi.Enum) {
	d.boundFB(glapi.ReadFramebuffer).readBuf = src
}

// Enable turns a capability on.
func (d *Device) Enable(capability glapi.Enum) {
	d.enabled[capability] = true
}

// Disable turns a capability off.
func (d *Device) Disable(capability glapi.Enum) {
	d.enabled[capability] = false
}

// Enabled reports the state of a capability, for inspection in tests.
func (d *Device) Enabled(capability glapi.Enum) bool {
	return d.enabled[capability]
}

// Viewport records the viewport rectangle. The device's clears and blits
// are not scissored, so the value is observable state only.
func (d *Device) Viewport(x, y, width, height int32) {
	d.viewport = [4]int32{x, y, width, height}
}

// ViewportRect returns the recorded viewport, for inspection in tests.
func (d *Device) ViewportRect() (x, y, width, height int32) {
	return d.viewport[0], d.viewport[1], d.viewport[2], d.viewport[3]
}

// Clear clears the requested planes of every selected draw buffer of the
// draw-bound framebuffer, honoring the write masks.
func (d *Device) Clear(mask uint32) {
	fb := d.boundFB(glapi.DrawFramebuffer)
	if mask&glapi.ColorBufferBit != 0 {
		for _, buf := range fb.drawBufs {
			if p := d.colorPlane(fb, buf); p != nil {
				p.clearColor(d.clearColor, d.colorMask)
			}
		}
	}
	if mask&glapi.DepthBufferBit != 0 {
		if p := d.depthPlane(fb); p != nil {
			p.clearDepth(float32(d.clearDepth), d.depthMask)
		}
	}
	if mask&glapi.StencilBufferBit != 0 {
		if p := d.stencilPlane(fb); p != nil {
			p.clearStencil(uint32(d.clearStencil), d.stencilMaskFront)
		}
	}
}

// ClearColor records the clear color, unclamped.
func (d *Device) ClearColor(r, g, b, a float32) {
	d.clearColor = [4]float32{r, g, b, a}
}

// ClearDepth records the clear depth.
func (d *Device) ClearDepth(depth float64) {
	d.clearDepth = depth
}

// ClearStencil records the clear stencil value.
func (d *Device) ClearStencil(stencil int32) {
	d.clearStencil = stencil
}

// ColorMask records the per-channel color write mask.
func (d *Device) ColorMask(r, g, b, a bool) {
	d.colorMask = [4]bool{r, g, b, a}
}

// DepthMask records the depth write mask.
func (d *Device) DepthMask(mask bool) {
	d.depthMask = mask
}

// StencilMask records the stencil write mask for both facings.
func (d *Device) StencilMask(mask uint32) {
	d.stencilMaskFront = mask
	d.stencilMaskBack = mask
}

// StencilMaskSeparate records the stencil write mask for one facing.
func (d *Device) StencilMaskSeparate(face glapi.Enum, mask uint32) {
	switch face {
	case glapi.Front:
		d.stencilMaskFront = mask
	case glapi.Back:
		d.stencilMaskBack = mask
	case glapi.FrontAndBack:
		d.stencilMaskFront = mask
		d.stencilMaskBack = mask
	default:
		d.setErr(glapi.InvalidEnum)
	}
}

// BlendEquation records the blend equation for RGB and alpha.
func (d *Device) BlendEquation(mode glapi.Enum) {
	d.blendEqRGB = mode
	d.blendEqAlpha = mode
}

// BlendEquationSeparate records the blend equations.
func (d *Device) BlendEquationSeparate(rgb, alpha glapi.Enum) {
	d.blendEqRGB = rgb
	d.blendEqAlpha = alpha
}

// BlendFunc records the blend factors for RGB and alpha.
func (d *Device) BlendFunc(src, dst glapi.Enum) {
	d.blendSrcRGB, d.blendDstRGB = src, dst
	d.blendSrcAlpha, d.blendDstAlpha = src, dst
}

// BlendFuncSeparate records the blend factors.
func (d *Device) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha glapi.Enum) {
	d.blendSrcRGB, d.blendDstRGB = srcRGB, dstRGB
	d.blendSrcAlpha, d.blendDstAlpha = srcAlpha, dstAlpha
}

// BlendColor records the constant blend color.
func (d *Device) BlendColor(r, g, b, a float32) {
	d.blendColor = [4]float32{r, g, b, a}
}

// BlendState returns the recorded blend equations and factors, for
// inspection in tests.
func (d *Device) BlendState() (eqRGB, eqAlpha, srcRGB, dstRGB, srcAlpha, dstAlpha glapi.Enum) {
	return d.blendEqRGB, d.blendEqAlpha, d.blendSrcRGB, d.blendDstRGB, d.blendSrcAlpha, d.blendDstAlpha
}

// BlendColorValue returns the recorded constant blend color, for inspection
// in tests.
func (d *Device) BlendColorValue() (r, g, b, a float32) {
	return d.blendColor[0], d.blendColor[1], d.blendColor[2], d.blendColor[3]
}

// StencilWriteMasks returns the recorded stencil write masks, for
// inspection in tests.
func (d *Device) StencilWriteMasks() (front, back uint32) {
	return d.stencilMaskFront, d.stencilMaskBack
}

// GenBuffer allocates a buffer name.
func (d *Device) GenBuffer() uint32 {
	id := d.allocName()
	d.buffers[id] = nil
	return id
}

// DeleteBuffer releases a buffer name and its store.
func (d *Device) DeleteBuffer(buf uint32) {
	delete(d.buffers, buf)
	if d.packBuffer == buf {
		d.packBuffer = 0
	}
}

// BindBuffer binds a buffer to a target. Only PIXEL_PACK_BUFFER is
// meaningful to this device.
func (d *Device) BindBuffer(target glapi.Enum, buf uint32) {
	if target != glapi.PixelPackBuffer {
		d.setErr(glapi.InvalidEnum)
		return
	}
	if buf != 0 {
		if _, ok := d.buffers[buf]; !ok {
			d.setErr(glapi.InvalidOperation)
			return
		}
	}
	d.packBuffer = buf
}

// BufferData (re)allocates the store of the bound buffer. The usage hint is
// accepted and ignored; the store is always host memory.
func (d *Device) BufferData(target glapi.Enum, size int, data []byte, usage glapi.Enum) {
	if target != glapi.PixelPackBuffer {
		d.setErr(glapi.InvalidEnum)
		return
	}
	if d.packBuffer == 0 {
		d.setErr(glapi.InvalidOperation)
		return
	}
	store := make([]byte, size)
	copy(store, data)
	d.buffers[d.packBuffer] = store
}

// BufferContents returns the store of a buffer, for inspection in tests.
func (d *Device) BufferContents(buf uint32) []byte {
	return d.buffers[buf]
}

// GetInteger answers the queries the core library issues.
func (d *Device) GetInteger(pname glapi.Enum) int32 {
	switch pname {
	case glapi.MaxColorAttachments, glapi.MaxDrawBuffers:
		return maxColorAttachments
	}
	d.setErr(glapi.InvalidEnum)
	return 0
}

// colorPlane resolves a draw/read buffer selector to a color plane of fb,
// or nil when the selector addresses nothing (GL_NONE, a missing
// attachment, or an absent default buffer).
func (d *Device) colorPlane(fb *framebuffer, buf glapi.Enum) *plane {
	if buf == glapi.None {
		return nil
	}
	if fb.id == 0 {
		switch buf {
		case glapi.Back, glapi.BackLeft, glapi.Left:
			return d.backLeft
		case glapi.Front, glapi.FrontLeft, glapi.FrontAndBack:
			return d.frontLeft
		}
		return nil
	}
	if buf >= glapi.ColorAttachment0 && buf < glapi.ColorAttachment0+maxColorAttachments {
		return fb.attachments[buf]
	}
	return nil
}

func (d *Device) depthPlane(fb *framebuffer) *plane {
	if fb.id == 0 {
		return d.depthStencil
	}
	if p := fb.attachments[glapi.DepthStencilAttachment]; p != nil {
		return p
	}
	return fb.attachments[glapi.DepthAttachment]
}

func (d *Device) stencilPlane(fb *framebuffer) *plane {
	if fb.id == 0 {
		return d.depthStencil
	}
	if p := fb.attachments[glapi.DepthStencilAttachment]; p != nil {
		return p
	}
	return fb.attachments[glapi.StencilAttachment]
}
