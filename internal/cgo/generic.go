//go:build cgo

package cgo

/*
#include <stdlib.h>
#include "closure.h"
*/
import "C"

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"github.com/cclosures/cclosures-go/pkg/closure"
	"github.com/cclosures/cclosures-go/pkg/closure/logging"
)

type genericState struct {
	fn         GenericFunc
	destroyRet func(unsafe.Pointer)
}

// returned maps results handed to C to the destructor of the closure that
// produced them, since delete_ret only receives the result.
var returned = struct {
	sync.Mutex
	m map[uintptr]func(unsafe.Pointer)
}{m: map[uintptr]func(unsafe.Pointer){}}

func trackReturn(ret unsafe.Pointer, destroy func(unsafe.Pointer)) {
	returned.Lock()
	returned.m[uintptr(ret)] = destroy
	returned.Unlock()
}

func untrackReturn(ret unsafe.Pointer) (func(unsafe.Pointer), bool) {
	returned.Lock()
	defer returned.Unlock()
	destroy, ok := returned.m[uintptr(ret)]
	delete(returned.m, uintptr(ret))
	return destroy, ok
}

func pendingReturns() int {
	returned.Lock()
	defer returned.Unlock()
	return len(returned.m)
}

func freeC(p unsafe.Pointer) {
	C.free(p)
}

// Generic owns a C-allocated Closure descriptor.
type Generic struct {
	ptr *C.Closure
}

// NewGeneric returns a descriptor that calls fn.
func NewGeneric(fn GenericFunc, opts ...GenericOption) (*Generic, error) {
	if fn == nil {
		return nil, closure.ErrNilFunction
	}
	cfg := genericConfig{destroyRet: freeC}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.destroyRet == nil {
		cfg.destroyRet = freeC
	}

	data := closure.Capture(&genericState{fn: fn, destroyRet: cfg.destroyRet}, cfg.onRelease...)
	ptr := C.cclosures_closure_new(data, C.bool(true))
	if ptr == nil {
		_ = closure.ReleaseCaptured(data)
		return nil, fmt.Errorf("cclosures_closure_new: allocation failed")
	}
	return &Generic{ptr: ptr}, nil
}

// NewNoop returns a descriptor with a null function: calls return nil and
// release does nothing.
func NewNoop() *Generic {
	ptr := C.cclosures_closure_new(nil, C.bool(false))
	if ptr == nil {
		panic("cclosures_closure_new: allocation failed")
	}
	return &Generic{ptr: ptr}
}

//export cclosures_generic_call
func cclosures_generic_call(data, arg unsafe.Pointer) (ret unsafe.Pointer) {
	closure.Guard("cclosures_generic_call", func() {
		st, err := closure.Captured[*genericState](data)
		if err != nil {
			panic(err)
		}
		ret = st.fn(arg)
		if ret != nil {
			trackReturn(ret, st.destroyRet)
		}
	})
	return ret
}

//export cclosures_generic_delete_data
func cclosures_generic_delete_data(data unsafe.Pointer) {
	closure.Guard("cclosures_generic_delete_data", func() {
		if err := closure.ReleaseCaptured(data); err != nil {
			closure.Logger().Warn(context.Background(), "closure data released twice",
				logging.Pointer("data", data),
				logging.Handle("handle", uintptr(closure.HandleOf(data))),
				"error", err)
		}
	})
}

//export cclosures_generic_delete_ret
func cclosures_generic_delete_ret(ret unsafe.Pointer) {
	closure.Guard("cclosures_generic_delete_ret", func() {
		destroy, ok := untrackReturn(ret)
		if !ok {
			closure.Logger().Warn(context.Background(), "release of a value no closure returned",
				logging.Pointer("ret", ret))
			return
		}
		destroy(ret)
	})
}

func (g *Generic) descriptor() *C.Closure {
	if g == nil || g.ptr == nil {
		panic(closure.ErrClosed)
	}
	return g.ptr
}

// Call runs closure_call.
func (g *Generic) Call(arg unsafe.Pointer) unsafe.Pointer {
	return C.closure_call(g.descriptor(), arg)
}

// ReleaseReturnValue runs closure_release_return_value.
func (g *Generic) ReleaseReturnValue(ret unsafe.Pointer) {
	C.closure_release_return_value(g.descriptor(), ret)
}

// CallWithNoReturn runs closure_call_with_no_return.
func (g *Generic) CallWithNoReturn(arg unsafe.Pointer) {
	C.closure_call_with_no_return(g.descriptor(), arg)
}

// Release runs closure_release. Releasing twice is a no-op.
func (g *Generic) Release() {
	C.closure_release(g.descriptor())
}

// Released reports whether the captured state is gone.
func (g *Generic) Released() bool {
	return g == nil || g.ptr == nil || g.ptr.data == nil
}

// Pointer returns the descriptor address to hand to C.
func (g *Generic) Pointer() unsafe.Pointer {
	return unsafe.Pointer(g.descriptor())
}

// Close releases the closure and frees its descriptor.
func (g *Generic) Close() error {
	if g == nil || g.ptr == nil {
		return closure.ErrClosed
	}
	C.closure_release(g.ptr)
	C.free(unsafe.Pointer(g.ptr))
	g.ptr = nil
	return nil
}
