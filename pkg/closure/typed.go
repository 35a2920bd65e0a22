package closure

// Func is a statically typed facade over Closure for functions returning a
// value. Several parameters travel as one struct A.
type Func[A, R any] struct {
	core *Closure
}

// NewFunc wraps fn. Use WithReturnDestructor to give returned values an
// owner-side destructor.
func NewFunc[A, R any](fn func(A) R, opts ...Option) (*Func[A, R], error) {
	if fn == nil {
		return nil, ErrNilFunction
	}
	core := &Closure{
		Data: fn,
		Function: func(data, arg any) any {
			f, ok := data.(func(A) R)
			if !ok {
				panic(ErrReleased)
			}
			a, _ := arg.(A)
			return f(a)
		},
	}
	for _, opt := range opts {
		opt(core)
	}
	return &Func[A, R]{core: core}, nil
}

// Call invokes the function.
func (f *Func[A, R]) Call(a A) R {
	r, _ := f.core.Call(a).(R)
	return r
}

// ReleaseReturnValue hands r to the return destructor.
func (f *Func[A, R]) ReleaseReturnValue(r R) {
	f.core.ReleaseReturnValue(r)
}

// CallWithNoReturn calls the function and releases the result.
func (f *Func[A, R]) CallWithNoReturn(a A) {
	f.core.CallWithNoReturn(a)
}

// Release destroys the captured state. It is idempotent.
func (f *Func[A, R]) Release() {
	f.core.Release()
}

// Closure exposes the type-erased core.
func (f *Func[A, R]) Closure() *Closure {
	return f.core
}

// Proc is the facade for functions with no result. There is nothing to
// release after a call, so it has no CallWithNoReturn.
type Proc[A any] struct {
	core *Closure
}

// NewProc wraps fn.
func NewProc[A any](fn func(A), opts ...Option) (*Proc[A], error) {
	if fn == nil {
		return nil, ErrNilFunction
	}
	core := &Closure{
		Data: fn,
		Function: func(data, arg any) any {
			f, ok := data.(func(A))
			if !ok {
				panic(ErrReleased)
			}
			a, _ := arg.(A)
			f(a)
			return nil
		},
	}
	for _, opt := range opts {
		opt(core)
	}
	return &Proc[A]{core: core}, nil
}

// Call invokes the function.
func (p *Proc[A]) Call(a A) {
	p.core.Call(a)
}

// Release destroys the captured state. It is idempotent.
func (p *Proc[A]) Release() {
	p.core.Release()
}

// Closure exposes the type-erased core.
func (p *Proc[A]) Closure() *Closure {
	return p.core
}
