package exceptions

import (
	"github.com/jmgilman/go/exceptions/errors"
)

const overflowMessage = "Too many `try` blocks nested."

type frame struct {
	stage    Stage
	uncaught bool
	loc      *Location
}

func (r *Runtime) top() *frame {
	if len(r.frames) == 0 {
		return nil
	}
	return &r.frames[len(r.frames)-1]
}

// Depth returns the number of active protected blocks.
func (r *Runtime) Depth() int {
	return len(r.frames)
}

// Enter pushes a frame for a protected block entered at loc. If the stack is
// full it raises RuntimeError instead, which lands in the enclosing block.
//
// Enter is the first step of Protect. A raise aimed at the pushed frame is
// only received by the resumption point Protect installs, so Enter must not
// be paired with a hand-written Advance loop.
func (r *Runtime) Enter(loc *Location) {
	if len(r.frames) >= r.cfg.MaxFrames {
		r.logger.Warn("protected block overflow",
			"error", errors.WithContext(errors.New(errors.CodeFrameOverflow, overflowMessage), "max_frames", r.cfg.MaxFrames),
			"location", loc)
		r.RaiseAt(RuntimeError, loc, overflowMessage)
	}

	r.frames = append(r.frames, frame{stage: StageBeginning, loc: loc})
	r.logger.Debug("protected block entered", "depth", len(r.frames), "location", loc)
}

// Advance moves the top frame forward. It is called each time control
// reaches the block's resumption point, including the first time.
//
// With fromCatch set, a catch clause claims the pending error: the frame is
// marked caught and Advance reports true without changing stage. Otherwise
// the stage steps forward, skipping the catch stage when nothing is pending.
// Reaching the done stage pops the frame and, if the error was never
// claimed, propagates it to the enclosing block. Advance returns false once
// the block is finished.
func (r *Runtime) Advance(fromCatch bool) bool {
	f := r.top()
	if f == nil {
		return false
	}

	if fromCatch {
		f.uncaught = false
		r.logger.Debug("error claimed", "depth", len(r.frames), "type", r.current.typ)
		return true
	}

	uncaught := f.uncaught
	f.stage++
	if f.stage == StageCatching && !uncaught {
		f.stage++
	}

	if f.stage < StageDone {
		return true
	}

	r.frames = r.frames[:len(r.frames)-1]
	r.logger.Debug("protected block left", "depth", len(r.frames)+1, "uncaught", uncaught)

	if uncaught {
		r.propagate()
	}

	return false
}

// Stage returns the stage of the innermost block, or StageDone if none is active.
func (r *Runtime) Stage() Stage {
	if f := r.top(); f != nil {
		return f.stage
	}
	return StageDone
}

// InTryStage reports whether the innermost block should run its try body.
func (r *Runtime) InTryStage() bool {
	return r.Stage() == StageTrying
}

// InCatchStage reports whether the innermost block should offer its error to
// its catch clauses.
func (r *Runtime) InCatchStage() bool {
	return r.Stage() == StageCatching
}

// InFinallyStage reports whether the innermost block should run its finally body.
func (r *Runtime) InFinallyStage() bool {
	return r.Stage() == StageFinalizing
}
