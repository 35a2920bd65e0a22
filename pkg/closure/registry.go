package closure

import (
	"fmt"
	"sync"
	"unsafe"
)

// Handle identifies a Box held by a Registry. Handles start at 1, so the
// pointer form of a valid handle is never null.
type Handle uintptr

// pointerBase keeps encoded handles out of the first page: the runtime
// throws on pointer values below it found on a goroutine stack.
const pointerBase = 4096

// Pointer encodes the handle as the opaque data pointer stored in a C
// descriptor. C never dereferences it.
func (h Handle) Pointer() unsafe.Pointer {
	if h == 0 {
		return nil
	}
	return unsafe.Pointer(uintptr(h) + pointerBase)
}

// HandleOf recovers the handle from a data pointer produced by Pointer.
func HandleOf(p unsafe.Pointer) Handle {
	if uintptr(p) < pointerBase {
		return 0
	}
	return Handle(uintptr(p) - pointerBase)
}

// Registry keeps Go values reachable while C holds their handles.
type Registry struct {
	mu   sync.Mutex
	next Handle
	reg  map[Handle]*Box
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{next: 1, reg: map[Handle]*Box{}}
}

// Default is the registry used by generated closures.
var Default = NewRegistry()

// Put stores b and returns the handle C will carry as its data pointer.
func (r *Registry) Put(b *Box) Handle {
	r.mu.Lock()
	h := r.next
	r.next++
	r.reg[h] = b
	r.mu.Unlock()
	return h
}

// Get returns the box behind h.
func (r *Registry) Get(h Handle) (*Box, bool) {
	r.mu.Lock()
	b, ok := r.reg[h]
	r.mu.Unlock()
	return b, ok
}

// Value returns the value boxed behind h.
func (r *Registry) Value(h Handle) (any, error) {
	b, ok := r.Get(h)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return b.Value()
}

// Release removes h and runs its destructor. Releasing a handle twice returns
// ErrUnknownHandle on the second call; the destructor runs once.
func (r *Registry) Release(h Handle) error {
	r.mu.Lock()
	b, ok := r.reg[h]
	delete(r.reg, h)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return b.Release()
}

// Live reports how many handles are still outstanding.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reg)
}
