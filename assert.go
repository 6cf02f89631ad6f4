package exceptions

// Assert raises RuntimeError with msg when cond is false and claims it
// immediately, calling the failure handler set with WithFailureHandler
// instead of propagating.
func (r *Runtime) Assert(cond bool, msg string) {
	r.assert(cond, msg, RuntimeError, r.caller(1))
}

// AssertType is Assert raising and claiming an error of type t.
func (r *Runtime) AssertType(cond bool, msg string, t *Type) {
	r.assert(cond, msg, t, r.caller(1))
}

func (r *Runtime) assert(cond bool, msg string, t *Type, loc *Location) {
	b := &Block{r: r, loc: loc, body: func() {
		if !cond {
			r.RaiseAt(t, loc, msg)
		}
	}}
	b.Catch(t, func(e Error) {
		if r.onFailure != nil {
			r.onFailure(e)
		}
	}).Run()
}
