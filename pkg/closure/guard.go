package closure

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Guard runs fn and recovers any panic so it never unwinds into C, which is
// undefined behaviour. Every //export trampoline goes through Guard. It
// reports whether fn panicked; the trampoline then hands C a zero value.
func Guard(site string, fn func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error(context.Background(), "panic in closure callback",
				"site", site,
				"recover", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()))
			panicked = true
		}
	}()
	fn()
	return false
}
