package cgo

import "unsafe"

// GenericFunc is the body of a generic closure. It receives the argument
// passed to closure_call and returns C-allocated memory or nil. It must not
// return a pointer into Go memory.
type GenericFunc func(arg unsafe.Pointer) unsafe.Pointer

// GenericOption configures NewGeneric.
type GenericOption func(*genericConfig)

type genericConfig struct {
	destroyRet func(unsafe.Pointer)
	onRelease  []func()
}

// WithReturnDestructor sets how closure_release_return_value destroys a
// result. The default frees it with the C allocator.
func WithReturnDestructor(fn func(ret unsafe.Pointer)) GenericOption {
	return func(c *genericConfig) {
		c.destroyRet = fn
	}
}

// OnRelease adds a hook run when closure_release releases the closure data.
func OnRelease(fn func()) GenericOption {
	return func(c *genericConfig) {
		c.onRelease = append(c.onRelease, fn)
	}
}
