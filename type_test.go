package exceptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	ioError      = Define("IOError", "I/O failure.", RuntimeError)
	timeoutError = Define("TimeoutError", "Timed out.", ioError)
	customError  = Define("CustomError", "msg", nil)
	childError   = Define("ChildError", "", customError)
)

func TestIsKindOf(t *testing.T) {
	tests := []struct {
		name  string
		t     *Type
		query *Type
		want  bool
	}{
		{"same type", timeoutError, timeoutError, true},
		{"direct parent", timeoutError, ioError, true},
		{"root ancestor", timeoutError, RuntimeError, true},
		{"null reference extends runtime", NullReferenceError, RuntimeError, true},
		{"root is kind of itself", RuntimeError, RuntimeError, true},
		{"parent is not kind of child", ioError, timeoutError, false},
		{"root is not kind of child", RuntimeError, NullReferenceError, false},
		{"sibling", NullReferenceError, ioError, false},
		{"separate tree", customError, RuntimeError, false},
		{"separate tree child", childError, RuntimeError, false},
		{"child of custom root", childError, customError, true},
		{"nil type", nil, RuntimeError, false},
		{"nil query", RuntimeError, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKindOf(tt.t, tt.query))
		})
	}
}

func TestDefine(t *testing.T) {
	assert.True(t, RuntimeError.IsRoot())
	assert.Same(t, RuntimeError, RuntimeError.Supertype())
	assert.Equal(t, "Runtime exception.", RuntimeError.DefaultMessage())

	assert.False(t, NullReferenceError.IsRoot())
	assert.Same(t, RuntimeError, NullReferenceError.Supertype())
	assert.Equal(t, "NullReferenceError", NullReferenceError.Name())
	assert.Equal(t, "Null pointer.", NullReferenceError.DefaultMessage())
}

func TestDeclare(t *testing.T) {
	d := Declare("Standalone")
	assert.True(t, d.IsRoot())
	assert.Equal(t, "Standalone", d.String())
	assert.Empty(t, d.DefaultMessage())
	assert.False(t, IsKindOf(d, RuntimeError))
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "trying", StageTrying.String())
	assert.Equal(t, "done", StageDone.String())
	assert.Equal(t, "invalid(9)", Stage(9).String())
}

func TestType_LogValue(t *testing.T) {
	assert.Equal(t, "IOError", ioError.LogValue().String())

	var nilType *Type
	assert.Equal(t, "<nil>", nilType.LogValue().String())
}
