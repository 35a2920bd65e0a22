package codegen

import "text/template"

// generatedBanner carries no generator version, so check compares equal across
// cclosuregen releases.
const generatedBanner = `Code generated by cclosuregen. DO NOT EDIT.`

var headerTmpl = template.Must(template.New("header").Parse(`/* ` + generatedBanner + `
 * Source: {{.Source}}
 */

#ifndef {{.Guard}}
#define {{.Guard}}

#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>

#ifdef __cplusplus
extern "C" {
#endif
{{range .Sigs}}
typedef struct {{.ClosureType}} {{.ClosureType}};
{{- end}}
{{range .Sigs}}
typedef {{.Ret.C}} (*{{.FnType}})({{.Decl}});

/* {{.ClosureType}} is a Go closure handed to C. Release it exactly once with
 * {{.ReleaseFunc}}. */
struct {{.ClosureType}} {
  {{.FnType}} function;
  void *data;
  void (*delete_data)(void *data);
};
{{end}}
{{- range .Returns}}
/* Releases {{.Type.C}} values returned by closure calls. */
void {{.Func}}({{.Type.C}} ret);
{{end}}
{{- range .Sigs}}
{{- if .IsVoid}}
void {{.CallFunc}}({{.SelfDecl}});
{{- else}}
/* The result may own Go resources: pass it to {{.ReleaseRet}}. */
{{.Ret.C}} {{.CallFunc}}({{.SelfDecl}});

void {{.CallNoReturnFunc}}({{.SelfDecl}});
{{- end}}

/* Idempotent: data and delete_data are null afterwards. */
void {{.ReleaseFunc}}({{.ClosureType}} *const self);

{{.ClosureType}} *{{.NewFunc}}(void *data);
{{end}}
#ifdef __cplusplus
}
#endif

#endif /* {{.Guard}} */
`))

var sourceTmpl = template.Must(template.New("source").Parse(`//go:build cgo

/* ` + generatedBanner + `
 * Source: {{.Source}}
 */

#include <stdlib.h>

#include "_cgo_export.h"
#include "{{.Header}}"
{{range .Sigs}}
{{.Ret.C}} {{.CallFunc}}({{.SelfDecl}}) {
{{- if .IsVoid}}
  (self->function)({{.Forward}});
{{- else}}
  return (self->function)({{.Forward}});
{{- end}}
}
{{if not .IsVoid}}
void {{.CallNoReturnFunc}}({{.SelfDecl}}) {
  {{.ReleaseRet}}({{.CallFunc}}({{.SelfArgs}}));
}
{{end}}
void {{.ReleaseFunc}}({{.ClosureType}} *const self) {
  if (self->delete_data && self->data) {
    self->delete_data(self->data);
  }
  self->data = NULL;
  self->delete_data = NULL;
}

{{.ClosureType}} *{{.NewFunc}}(void *data) {
  {{.ClosureType}} *self = malloc(sizeof *self);
  if (self == NULL) {
    return NULL;
  }
  self->function = ({{.FnType}}){{.Invoke}};
  self->data = data;
  self->delete_data = {{$.DeleteData}};
  return self;
}
{{end}}`))

var cgoTmpl = template.Must(template.New("cgo").Parse(`// ` + generatedBanner + `
// Source: {{.Source}}

//go:build cgo

package {{.Package}}

/*
#include <stdlib.h>
#include "{{.Header}}"
*/
import "C"

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/cclosures/cclosures-go/pkg/closure"
	"github.com/cclosures/cclosures-go/pkg/closure/logging"
)

var returnDestructors = closure.NewReturnTable()

// RegisterReturnDestructor installs the destructor run when C releases a
// returned value of the named return type.
func RegisterReturnDestructor(name string, destroy func(any)) error {
	return returnDestructors.Register(name, destroy)
}

// UnregisterReturnDestructor removes the destructor for name.
func UnregisterReturnDestructor(name string) {
	returnDestructors.Unregister(name)
}

//export {{.DeleteData}}
func {{.DeleteData}}(data unsafe.Pointer) {
	closure.Guard("{{.DeleteData}}", func() {
		if err := closure.ReleaseCaptured(data); err != nil {
			closure.Logger().Warn(context.Background(), "closure data released twice",
				logging.Pointer("data", data),
				logging.Handle("handle", uintptr(closure.HandleOf(data))),
				"error", err)
		}
	})
}
{{range .Returns}}
//export {{.Func}}
func {{.Func}}(ret {{.Type.Cgo}}) {
	closure.Guard("{{.Func}}", func() {
{{- if .Type.IsClosure}}
		C.{{.Type.Closure.ReleaseFunc}}(&ret)
{{- else}}
		returnDestructors.Release("{{.Name}}", {{.Type.ToGo "ret"}})
{{- end}}
	})
}
{{end}}
{{- range .Sigs}}
// {{.GoFunc}} is the Go body of a {{.ClosureType}}.
type {{.GoFunc}} func({{.GoParams}}){{.GoResult}}

// {{.ClosureType}} owns a C-allocated {{.ClosureType}} descriptor.
type {{.ClosureType}} struct {
	ptr *C.{{.ClosureType}}
}

// New{{.ClosureType}} returns a descriptor that calls fn. The onRelease hooks
// run when the captured state is released, whether by C or by Release.
func New{{.ClosureType}}(fn {{.GoFunc}}, onRelease ...func()) (*{{.ClosureType}}, error) {
	if fn == nil {
		return nil, closure.ErrNilFunction
	}
	data := closure.Capture(fn, onRelease...)
	ptr := C.{{.NewFunc}}(data)
	if ptr == nil {
		_ = closure.ReleaseCaptured(data)
		return nil, fmt.Errorf("{{.NewFunc}}: allocation failed")
	}
	return &{{.ClosureType}}{ptr: ptr}, nil
}
{{if .IsVoid}}
// New{{.Name}}Noop returns a {{.ClosureType}} whose calls do nothing.
func New{{.Name}}Noop() *{{.ClosureType}} {
	cl, err := New{{.ClosureType}}(func({{.GoParams}}) {})
	if err != nil {
		panic(err)
	}
	return cl
}
{{end}}
//export {{.Invoke}}
func {{.Invoke}}({{.CgoParams}}){{if not .IsVoid}} (ret {{.Ret.Cgo}}){{end}} {
	closure.Guard("{{.Invoke}}", func() {
		fn, err := closure.Captured[{{.GoFunc}}](data)
		if err != nil {
			panic(err)
		}
		{{.InvokeStmt}}
	})
{{- if not .IsVoid}}
	return ret
{{- end}}
}

func (cl *{{.ClosureType}}) descriptor() *C.{{.ClosureType}} {
	if cl == nil || cl.ptr == nil {
		panic(closure.ErrClosed)
	}
	return cl.ptr
}

// Call runs {{.CallFunc}}.
func (cl *{{.ClosureType}}) Call({{.GoParams}}){{.GoResult}} {
	{{.CallStmt}}
}
{{if not .IsVoid}}
// CallWithNoReturn runs {{.CallNoReturnFunc}}, releasing the result
// through {{.ReleaseRet}}.
func (cl *{{.ClosureType}}) CallWithNoReturn({{.GoParams}}) {
	{{.NoRetStmt}}
}
{{else}}
// CallWithNoReturn is Call; there is no result to release.
func (cl *{{.ClosureType}}) CallWithNoReturn({{.GoParams}}) {
	{{.CallStmt}}
}
{{end}}
// Release runs {{.ReleaseFunc}}. Releasing twice is a no-op.
func (cl *{{.ClosureType}}) Release() {
	C.{{.ReleaseFunc}}(cl.descriptor())
}

// Released reports whether the captured state is gone.
func (cl *{{.ClosureType}}) Released() bool {
	return cl == nil || cl.ptr == nil || cl.ptr.data == nil
}

// Pointer returns the descriptor address to hand to C.
func (cl *{{.ClosureType}}) Pointer() unsafe.Pointer {
	return unsafe.Pointer(cl.descriptor())
}

// Close releases the closure and frees its descriptor.
func (cl *{{.ClosureType}}) Close() error {
	if cl == nil || cl.ptr == nil {
		return closure.ErrClosed
	}
	C.{{.ReleaseFunc}}(cl.ptr)
	C.free(unsafe.Pointer(cl.ptr))
	cl.ptr = nil
	return nil
}
{{if .Referenced}}
// detach hands the descriptor to C by value and frees the Go-held copy.
func (cl *{{.ClosureType}}) detach() C.{{.ClosureType}} {
	if cl == nil || cl.ptr == nil {
		return C.{{.ClosureType}}{}
	}
	v := *cl.ptr
	C.free(unsafe.Pointer(cl.ptr))
	cl.ptr = nil
	return v
}

// adopt{{.ClosureType}} takes ownership of a descriptor passed by value.
func adopt{{.ClosureType}}(v C.{{.ClosureType}}) *{{.ClosureType}} {
	ptr := (*C.{{.ClosureType}})(C.malloc(C.size_t(unsafe.Sizeof(v))))
	*ptr = v
	return &{{.ClosureType}}{ptr: ptr}
}
{{end}}
{{end}}`))

var stubTmpl = template.Must(template.New("stub").Parse(`// ` + generatedBanner + `
// Source: {{.Source}}

//go:build !cgo

package {{.Package}}

import (
	"unsafe"

	"github.com/cclosures/cclosures-go/pkg/closure"
)

var returnDestructors = closure.NewReturnTable()

// RegisterReturnDestructor installs the destructor run when C releases a
// returned value of the named return type.
func RegisterReturnDestructor(name string, destroy func(any)) error {
	return returnDestructors.Register(name, destroy)
}

// UnregisterReturnDestructor removes the destructor for name.
func UnregisterReturnDestructor(name string) {
	returnDestructors.Unregister(name)
}
{{range .Sigs}}
// {{.GoFunc}} is the Go body of a {{.ClosureType}}.
type {{.GoFunc}} func({{.GoParams}}){{.GoResult}}

// {{.ClosureType}} is unavailable without cgo.
type {{.ClosureType}} struct{}

// New{{.ClosureType}} returns closure.ErrCGONotEnabled.
func New{{.ClosureType}}(fn {{.GoFunc}}, onRelease ...func()) (*{{.ClosureType}}, error) {
	return nil, closure.ErrCGONotEnabled
}
{{if .IsVoid}}
// New{{.Name}}Noop returns nil.
func New{{.Name}}Noop() *{{.ClosureType}} {
	return nil
}
{{end}}
func (cl *{{.ClosureType}}) Call({{.GoParams}}){{.GoResult}} {
{{- if not .IsVoid}}
	return {{.Ret.Zero}}
{{- end}}
}

func (cl *{{.ClosureType}}) CallWithNoReturn({{.GoParams}}) {}

func (cl *{{.ClosureType}}) Release() {}

func (cl *{{.ClosureType}}) Released() bool { return true }

func (cl *{{.ClosureType}}) Pointer() unsafe.Pointer { return nil }

func (cl *{{.ClosureType}}) Close() error { return closure.ErrCGONotEnabled }
{{end}}`))
