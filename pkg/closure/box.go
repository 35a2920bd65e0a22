package closure

import "sync/atomic"

const (
	boxLive int32 = iota
	boxReleased
)

// Box owns one type-erased value together with the routine that destroys it.
// Ownership leaves a Box exactly once, through Release, which runs the
// destructor. Every later attempt reports ErrReleased.
type Box struct {
	state   atomic.Int32
	value   any
	destroy func(any)
}

// NewBox boxes value. destroy may be nil when the value needs no cleanup.
func NewBox(value any, destroy func(any)) *Box {
	return &Box{value: value, destroy: destroy}
}

// Value returns the boxed value without consuming it.
func (b *Box) Value() (any, error) {
	if b == nil || b.state.Load() != boxLive {
		return nil, ErrReleased
	}
	return b.value, nil
}

// Release consumes the box and runs its destructor.
func (b *Box) Release() error {
	if b == nil || !b.state.CompareAndSwap(boxLive, boxReleased) {
		return ErrReleased
	}
	if b.destroy != nil {
		b.destroy(b.value)
	}
	return nil
}

// Released reports whether the box has been consumed.
func (b *Box) Released() bool {
	return b == nil || b.state.Load() != boxLive
}
