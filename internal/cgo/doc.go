// Package cgo contains all cgo code of the closure bridge. No other package
// imports "C".
//
// # Design Principles
//
// 1. Isolation: the C descriptors, the generated glue and every //export
//    trampoline live here. pkg/closure holds the C-free bookkeeping.
//
// 2. Handles, not pointers: a descriptor's data field carries a
//    closure.Handle encoded as a pointer. Go values never live in C memory
//    and C never dereferences data.
//
// 3. No unwinding: every trampoline runs its Go body under closure.Guard. A
//    panic is logged and C receives the zero value.
//
// 4. Memory Management: descriptors are allocated by C and owned by the Go
//    wrapper until Close. Release frees the captured state only, so a
//    descriptor handed to C stays valid memory until its Go owner closes it.
//
// # Generic and typed closures
//
// Generic is the type-erased Closure of closure.h: one untyped argument, one
// untyped result released through delete_ret. The typed closures in
// closures_gen_*.go are produced from signatures.yaml by cclosuregen; each
// signature gets its own descriptor type, call, release and constructor.
//
// # Threading
//
// Descriptors carry no locks. A host must not call a closure concurrently
// with its release. The Go-side registries are safe for callbacks arriving on
// any C thread.
package cgo

//go:generate go run ../../cmd/cclosuregen generate -m signatures.yaml -o .
