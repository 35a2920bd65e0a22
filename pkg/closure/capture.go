package closure

import (
	"fmt"
	"unsafe"
)

// Capture boxes value in the Default registry and returns the opaque data
// pointer for a C descriptor. onRelease hooks run, in order, when the data
// is released.
func Capture(value any, onRelease ...func()) unsafe.Pointer {
	var destroy func(any)
	if len(onRelease) > 0 {
		destroy = func(any) {
			for _, hook := range onRelease {
				if hook != nil {
					hook()
				}
			}
		}
	}
	return Default.Put(NewBox(value, destroy)).Pointer()
}

// Captured returns the value behind a data pointer made by Capture.
func Captured[T any](data unsafe.Pointer) (T, error) {
	var zero T
	v, err := Default.Value(HandleOf(data))
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("closure: data %#x holds %T, not %T", uintptr(data), v, zero)
	}
	return t, nil
}

// ReleaseCaptured releases a data pointer made by Capture. A second release
// returns an error wrapping ErrUnknownHandle.
func ReleaseCaptured(data unsafe.Pointer) error {
	return Default.Release(HandleOf(data))
}
