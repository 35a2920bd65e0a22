//go:build !cgo

package cgo

import (
	"unsafe"

	"github.com/cclosures/cclosures-go/pkg/closure"
)

// Generic is unavailable without cgo.
type Generic struct{}

// NewGeneric returns closure.ErrCGONotEnabled.
func NewGeneric(fn GenericFunc, opts ...GenericOption) (*Generic, error) {
	return nil, closure.ErrCGONotEnabled
}

// NewNoop returns nil.
func NewNoop() *Generic { return nil }

func (g *Generic) Call(arg unsafe.Pointer) unsafe.Pointer { return nil }

func (g *Generic) ReleaseReturnValue(ret unsafe.Pointer) {}

func (g *Generic) CallWithNoReturn(arg unsafe.Pointer) {}

func (g *Generic) Release() {}

func (g *Generic) Released() bool { return true }

func (g *Generic) Pointer() unsafe.Pointer { return nil }

func (g *Generic) Close() error { return closure.ErrCGONotEnabled }
