package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("original error")
	err := Wrap(cause, CodeConfigLoad, "operation failed")

	require.NotNil(t, err)
	require.Equal(t, CodeConfigLoad, err.Code())
	require.Equal(t, "operation failed", err.Message())
	require.Equal(t, cause, err.Unwrap())
	require.Nil(t, err.Context())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeConfigLoad, "test"))
	require.Nil(t, Wrapf(nil, CodeConfigLoad, "test %s", "arg"))
	require.Nil(t, WrapWithContext(nil, CodeConfigLoad, "test", nil))
}

func TestWrap_PreservesSeverity(t *testing.T) {
	original := New(CodeUncaught, "escaped")
	require.True(t, original.Severity().IsFatal())

	wrapped := Wrap(original, CodeRaised, "raised error")
	require.True(t, wrapped.Severity().IsFatal())
}

func TestWrap_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	wrapped := Wrap(stdErr, CodeInternal, "internal error")

	require.Equal(t, SeverityFatal, wrapped.Severity())
	require.Equal(t, stdErr, wrapped.Unwrap())
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrapf(cause, CodeConfigLoad, "failed to read %s", "exceptions.yaml")

	require.Equal(t, "failed to read exceptions.yaml", err.Message())
	require.True(t, stderrors.Is(err, cause))
}

func TestWrapWithContext(t *testing.T) {
	cause := stderrors.New("bad value")
	ctx := map[string]interface{}{"field": "max_frames"}
	err := WrapWithContext(cause, CodeInvalidConfig, "validation failed", ctx)

	ctx["field"] = "mutated"
	require.Equal(t, "max_frames", err.Context()["field"])
}
