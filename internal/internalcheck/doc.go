// Package internalcheck holds repository policy tests: source-level checks
// run with go test that keep the cgo boundary in one package and every
// //export trampoline behind closure.Guard.
//
// # Internal Use Only
//
// The package has no API. Importing it is never needed.
package internalcheck
