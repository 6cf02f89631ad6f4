package exceptions

import "log/slog"

// Type is a node in the error taxonomy. Types are immutable and form a tree:
// each type has exactly one supertype, and a root is its own supertype.
//
// Types are meant to be declared once as package-level variables:
//
//	var IOError = exceptions.Define("IOError", "I/O failure.", exceptions.RuntimeError)
type Type struct {
	name           string
	defaultMessage string
	supertype      *Type
}

var (
	// RuntimeError is the generic root of the predefined taxonomy.
	RuntimeError = Define("RuntimeError", "Runtime exception.", nil)

	// NullReferenceError is raised when Raise is called without a type.
	NullReferenceError = Define("NullReferenceError", "Null pointer.", RuntimeError)
)

// Define creates an error type. A nil supertype makes the new type a root.
func Define(name, defaultMessage string, supertype *Type) *Type {
	t := &Type{name: name, defaultMessage: defaultMessage, supertype: supertype}
	if supertype == nil {
		t.supertype = t
	}
	return t
}

// Declare creates a root error type without a default message.
func Declare(name string) *Type {
	return Define(name, "", nil)
}

// Name returns the type name printed in diagnostics.
func (t *Type) Name() string { return t.name }

// DefaultMessage returns the message used when an error is raised without one.
func (t *Type) DefaultMessage() string { return t.defaultMessage }

// Supertype returns the parent type. Roots return themselves.
func (t *Type) Supertype() *Type { return t.supertype }

// IsRoot reports whether t is a taxonomy root.
func (t *Type) IsRoot() bool { return t.supertype == t }

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// LogValue logs a type as its name.
func (t *Type) LogValue() slog.Value {
	return slog.StringValue(t.String())
}

// IsKindOf reports whether t is query or a descendant of query. The walk up
// the supertype chain stops at the root's self-loop.
func IsKindOf(t, query *Type) bool {
	if t == nil || query == nil {
		return false
	}
	if t == query {
		return true
	}
	for ; t.supertype != t; t = t.supertype {
		if t.supertype == query {
			return true
		}
	}
	return false
}
