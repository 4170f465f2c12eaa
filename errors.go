package glfb

import (
	"errors"
	"fmt"

	"github.com/gogpu/glfb/glapi"
)

// ErrResourceExhausted is returned by [Context.NewFramebuffer] when the
// native resource pool is exhausted. It is fatal: the context cannot
// recover by retrying.
var ErrResourceExhausted = errors.New("glfb: native framebuffer pool exhausted")

// Native error codes mapped to Go errors. Readback operations report these
// synchronously; for other operations the native layer latches the code and
// the next readback surfaces it.
var (
	ErrInvalidEnum      = errors.New("glfb: invalid enum")
	ErrInvalidValue     = errors.New("glfb: invalid value")
	ErrInvalidOperation = errors.New("glfb: invalid operation")
	ErrOutOfMemory      = errors.New("glfb: out of memory")

	// ErrIncompleteTarget reports an operation against a framebuffer whose
	// attachments are not in a valid, usable combination.
	ErrIncompleteTarget = errors.New("glfb: incomplete target")
)

// nativeError converts a latched native code to a Go error, or nil for
// NoError.
func nativeError(code glapi.Enum) error {
	switch code {
	case glapi.NoError:
		return nil
	case glapi.InvalidEnum:
		return ErrInvalidEnum
	case glapi.InvalidValue:
		return ErrInvalidValue
	case glapi.InvalidOperation:
		return ErrInvalidOperation
	case glapi.OutOfMemory:
		return ErrOutOfMemory
	case glapi.InvalidFramebufferOperation:
		return ErrIncompleteTarget
	}
	return fmt.Errorf("glfb: native error 0x%04X", uint32(code))
}

// IncompleteTargetError is returned by [Framebuffer.CheckStatus] when the
// native layer reports the framebuffer unusable. Status holds the native
// completeness code.
type IncompleteTargetError struct {
	Status glapi.Enum
}

// Error implements the error interface.
func (e *IncompleteTargetError) Error() string {
	switch e.Status {
	case glapi.FramebufferIncompleteAttachment:
		return "glfb: incomplete target: attachment incomplete"
	case glapi.FramebufferIncompleteMissingAttachment:
		return "glfb: incomplete target: no attachments"
	case glapi.FramebufferUnsupported:
		return "glfb: incomplete target: attachment combination unsupported"
	case glapi.FramebufferUndefined:
		return "glfb: incomplete target: default framebuffer does not exist"
	}
	return fmt.Sprintf("glfb: incomplete target: status 0x%04X", uint32(e.Status))
}

// Unwrap lets errors.Is match ErrIncompleteTarget.
func (e *IncompleteTargetError) Unwrap() error {
	return ErrIncompleteTarget
}
