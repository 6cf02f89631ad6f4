package exceptions

// Protect runs a protected block entered at loc. The clause is the block's
// dispatcher: it is invoked once per stage and uses InTryStage,
// InCatchStage and InFinallyStage to pick which body to run.
//
//	r.Protect(loc, func() {
//		switch {
//		case r.InTryStage():
//			doWork()
//		case r.InCatchStage() && r.IsCurrentKindOf(exceptions.RuntimeError) && r.Advance(true):
//			handle()
//		case r.InFinallyStage():
//			cleanup()
//		}
//	})
//
// Most callers want the Block builder instead.
func (r *Runtime) Protect(loc *Location, clause func()) {
	r.Enter(loc)
	depth := len(r.frames)

	for r.Advance(false) {
		r.resume(depth, clause)
	}
}

// resume is the resumption point of the frame at depth. A raise addressed to
// that frame stops the clause and returns here so the loop in Protect can
// advance the stage. Any other panic drops the frames from depth up and
// continues unwinding.
func (r *Runtime) resume(depth int, clause func()) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if sig, ok := v.(*unwind); ok && sig.r == r && sig.depth == depth {
			return
		}
		if len(r.frames) >= depth {
			r.frames = r.frames[:depth-1]
		}
		panic(v)
	}()

	clause()
}
