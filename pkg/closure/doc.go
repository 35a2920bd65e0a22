// Package closure is the Go side of the cclosures bridge: it owns the state
// captured by closures handed to C and decides when that state dies.
//
// A closure handed to C is a descriptor holding a function pointer, an opaque
// data pointer and the destructors for both the data and, for the type-erased
// variant, the returned value. Go values cannot live in C memory, so the data
// pointer is a Handle into a Registry whose entries are Boxes. A Box pairs a
// value with its destructor and can be consumed exactly once; releasing it
// twice reports ErrReleased instead of running the destructor again.
//
// Generated, statically typed closures are built on Capture, Captured and the
// Registry. Closure is a pure-Go mirror of the type-erased C protocol for code
// that never crosses into C; Func and Proc are thin typed facades over it.
//
// # Threading
//
// A descriptor carries no synchronization. Calls may run concurrently only if
// the wrapped function tolerates it, and Release must never race with a call.
// The bookkeeping in this package (Registry, ReturnTable) is safe for
// concurrent use because cgo callbacks can arrive on any C thread.
package closure
