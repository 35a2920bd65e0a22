//go:build cgo

package cgo

/*
#include <stdlib.h>
#include "host.h"
*/
import "C"

import "unsafe"

// The host* helpers drive closures from C code. They exist only so tests can
// exercise closures the way a C library would and are not part of the API.
// cgo is unavailable in _test.go files, so they live here.

func hostMaybeCall(cl *VoidVoidClosure, call bool) bool {
	return C.host_maybe_call(cl.descriptor(), C.bool(call)) == 1
}

func hostCallN(cl *VoidIntClosure, n int) int {
	return int(C.host_call_n(cl.descriptor(), C.int(n)))
}

func hostConsumeFactory(f *IntVoidClosureFactoryClosure) int32 {
	return int32(C.host_consume_factory(f.descriptor()))
}

func hostStrLen(cl *IntToStrClosure, p1 int32) int {
	return int(C.host_str_len(cl.descriptor(), C.int(p1)))
}

func hostGenericInt(g *Generic, arg int32) int32 {
	return int32(C.host_generic_int(g.descriptor(), C.int(arg)))
}

func cString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

func newCInt(v int32) unsafe.Pointer {
	p := (*C.int)(C.malloc(C.size_t(unsafe.Sizeof(C.int(0)))))
	*p = C.int(v)
	return unsafe.Pointer(p)
}

func cInt(p unsafe.Pointer) int32 {
	return int32(*(*C.int)(p))
}
