package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(CodeRaised, "raised")
	err = WithContext(err, "type", "RuntimeError")
	err = WithContext(err, "line", 42)

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "RuntimeError", ctx["type"])
	require.Equal(t, 42, ctx["line"])
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, SeverityRecoverable, err.Severity())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"k": "v"}))
	require.Nil(t, WithSeverity(nil, SeverityFatal))
}

func TestWithContext_Immutability(t *testing.T) {
	original := New(CodeInternal, "internal")
	modified := WithContext(original, "key", "value")

	require.Nil(t, original.Context())
	require.NotNil(t, modified.Context())
}

func TestWithContextMap_Override(t *testing.T) {
	err := NewWithContext(CodeRaised, "raised", map[string]interface{}{"a": 1, "b": 2})
	err = WithContextMap(err, map[string]interface{}{"b": 3, "c": 4})

	require.Equal(t, map[string]interface{}{"a": 1, "b": 3, "c": 4}, err.Context())
}

func TestWithSeverity(t *testing.T) {
	err := NewWithContext(CodeRaised, "raised", map[string]interface{}{"type": "X"})
	require.False(t, IsFatal(err))

	fatal := WithSeverity(err, SeverityFatal)
	require.True(t, IsFatal(fatal))
	require.Equal(t, CodeRaised, fatal.Code())
	require.Equal(t, "X", fatal.Context()["type"])
	require.False(t, IsFatal(err))
}
