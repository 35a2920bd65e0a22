package closure

import "errors"

var (
	// ErrReleased is returned when a Box or closure is used after its
	// destructor already ran.
	ErrReleased = errors.New("closure: already released")

	// ErrNilFunction reports an attempt to build a typed closure without a
	// function. Only the type-erased variant tolerates a null function.
	ErrNilFunction = errors.New("closure: function must not be nil")

	// ErrUnknownHandle is returned when a handle does not name a live entry
	// in the registry, usually because C released the same data twice.
	ErrUnknownHandle = errors.New("closure: unknown handle")

	// ErrDuplicateDestructor reports a second return-value destructor for a
	// return-type name that already has one.
	ErrDuplicateDestructor = errors.New("closure: return destructor already registered")

	// ErrClosed is returned by Close on a descriptor whose memory was already
	// handed back to C.
	ErrClosed = errors.New("closure: descriptor closed")

	// ErrCGONotEnabled signals that the binary was compiled without cgo and
	// therefore cannot build descriptors for C.
	ErrCGONotEnabled = errors.New("closure: cgo not enabled")
)
