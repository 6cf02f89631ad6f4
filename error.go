package exceptions

import (
	"fmt"

	"github.com/jmgilman/go/exceptions/errors"
)

// Location is the source position an error was raised at.
type Location struct {
	File string
	Line int
}

func (l *Location) String() string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Error is a snapshot of the current error of a Runtime.
type Error struct {
	// Type is the raised error type.
	Type *Type

	// Message is the raised message, truncated to the buffer capacity.
	Message string

	// Location is nil when provenance recording is disabled.
	Location *Location
}

func (e Error) Error() string {
	if e.Location == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Location)
}

// Is reports whether the error is of type t or one of its descendants.
func (e Error) Is(t *Type) bool {
	return IsKindOf(e.Type, t)
}

// Err converts the snapshot into a PlatformError with CodeRaised. The type
// name and location are attached as context.
func (e Error) Err() errors.PlatformError {
	ctx := map[string]interface{}{"type": e.Type.String()}
	if e.Location != nil {
		ctx["file"] = e.Location.File
		ctx["line"] = e.Location.Line
	}
	return errors.NewWithContext(errors.CodeRaised, e.Message, ctx)
}

// slot is the current-error storage of a Runtime. The message lives in a
// fixed buffer allocated once at construction.
type slot struct {
	buf []byte
	n   int
	typ *Type
	loc Location
	has bool
	set bool
}

func newSlot(size int) slot {
	return slot{buf: make([]byte, size)}
}

// store records a raised error. The message is cut to len(buf)-1 bytes.
func (s *slot) store(t *Type, loc *Location, msg string) {
	s.typ = t
	s.n = copy(s.buf[:len(s.buf)-1], msg)
	s.buf[s.n] = 0
	s.has = loc != nil
	if loc != nil {
		s.loc = *loc
	}
	s.set = true
}

func (s *slot) snapshot() Error {
	e := Error{Type: s.typ, Message: string(s.buf[:s.n])}
	if s.has {
		loc := s.loc
		e.Location = &loc
	}
	return e
}
