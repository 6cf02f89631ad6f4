package exceptions

// Block is a protected block under construction. Build it with Try, add
// clauses, then call Run.
//
//	r.Try(func() {
//		r.Raise(IOError, "disk full")
//	}).Catch(IOError, func(e exceptions.Error) {
//		log.Println("recovered:", e.Message)
//	}).Finally(func() {
//		f.Close()
//	}).Run()
type Block struct {
	r        *Runtime
	loc      *Location
	body     func()
	handlers []handler
	finally  func()
}

type handler struct {
	t   *Type
	all bool
	fn  func(Error)
}

func (h handler) matches(r *Runtime) bool {
	return h.all || r.IsCurrentKindOf(h.t)
}

// Try starts a protected block whose try body is body. The block records the
// caller's location.
func (r *Runtime) Try(body func()) *Block {
	return &Block{r: r, loc: r.caller(1), body: body}
}

// Catch adds a clause claiming errors of type t and its descendants. Clauses
// are offered the error in the order they were added; the first match wins.
// A nil t catches NullReferenceError, the type raised for a nil type.
func (b *Block) Catch(t *Type, fn func(Error)) *Block {
	if t == nil {
		t = NullReferenceError
	}
	b.handlers = append(b.handlers, handler{t: t, fn: fn})
	return b
}

// CatchAll adds a clause claiming any error.
func (b *Block) CatchAll(fn func(Error)) *Block {
	b.handlers = append(b.handlers, handler{all: true, fn: fn})
	return b
}

// Finally sets the body that runs after the try body and any catch clause,
// whether or not an error was claimed.
func (b *Block) Finally(fn func()) *Block {
	b.finally = fn
	return b
}

// Run executes the block. An error no clause claims propagates to the
// enclosing block once the finally body has run.
func (b *Block) Run() {
	b.run()
}

// RunE executes the block and returns the claimed error, if any, as a
// PlatformError with CodeRaised. It returns nil when the try body completed
// without raising.
func (b *Block) RunE() error {
	if e, ok := b.run(); ok {
		return e.Err()
	}
	return nil
}

func (b *Block) run() (claimed Error, ok bool) {
	r := b.r
	r.Protect(b.loc, func() {
		switch {
		case r.InTryStage():
			if b.body != nil {
				b.body()
			}
		case r.InCatchStage():
			for _, h := range b.handlers {
				if h.matches(r) && r.Advance(true) {
					claimed, ok = r.current.snapshot(), true
					if h.fn != nil {
						h.fn(claimed)
					}
					return
				}
			}
		case r.InFinallyStage():
			if b.finally != nil {
				b.finally()
			}
		}
	})
	return claimed, ok
}
