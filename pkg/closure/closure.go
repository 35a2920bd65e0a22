package closure

// Closure is the type-erased closure: a function, the state it captured and
// the destructors for that state and for returned values. It follows the same
// protocol as the C descriptor it is mirrored into.
type Closure struct {
	// Function is invoked with Data and the call argument. A nil Function
	// turns every call into a no-op returning nil.
	Function func(data, arg any) any

	// Data is the captured state, owned by the closure until Release.
	Data any

	// DeleteData destroys Data. Nil means Data needs no cleanup.
	DeleteData func(data any)

	// DeleteRet destroys values returned by Function. Nil means returned
	// values need no cleanup.
	DeleteRet func(ret any)
}

// Option configures a Closure built by New, NewFunc or NewProc.
type Option func(*Closure)

// OnRelease registers fn to run when the closure's captured state is
// released. Hooks run in registration order.
func OnRelease(fn func()) Option {
	return func(c *Closure) {
		if fn == nil {
			return
		}
		prev := c.DeleteData
		c.DeleteData = func(data any) {
			if prev != nil {
				prev(data)
			}
			fn()
		}
	}
}

// WithReturnDestructor registers the destructor for values returned by the
// closure.
func WithReturnDestructor(fn func(ret any)) Option {
	return func(c *Closure) {
		c.DeleteRet = fn
	}
}

// New wraps fn as a type-erased closure. fn becomes the captured state, so
// the closure is unusable once released.
func New(fn func(arg any) any, opts ...Option) *Closure {
	c := &Closure{}
	if fn != nil {
		c.Data = fn
		c.Function = func(data, arg any) any {
			f, ok := data.(func(any) any)
			if !ok {
				panic(ErrReleased)
			}
			return f(arg)
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Noop returns a closure with no function. Calling it does nothing.
func Noop() *Closure {
	return &Closure{}
}

// Call invokes the function with the captured state and arg. It returns nil
// when the closure has no function.
func (c *Closure) Call(arg any) any {
	if c.Function == nil {
		return nil
	}
	return c.Function(c.Data, arg)
}

// ReleaseReturnValue destroys a value returned by Call. It must run exactly
// once for every non-nil result the caller does not keep.
func (c *Closure) ReleaseReturnValue(ret any) {
	if ret != nil && c.DeleteRet != nil {
		c.DeleteRet(ret)
	}
}

// CallWithNoReturn calls the closure and immediately releases the result.
func (c *Closure) CallWithNoReturn(arg any) {
	c.ReleaseReturnValue(c.Call(arg))
}

// Release destroys the captured state and clears it, so a second Release is a
// no-op.
func (c *Closure) Release() {
	if c.DeleteData != nil {
		c.DeleteData(c.Data)
	}
	c.Data = nil
	c.DeleteData = nil
}
