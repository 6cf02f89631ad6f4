package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := New(CodeNoError, "nothing raised")
	wrapped := Wrap(sentinel, CodeNoContext, "lookup failed")

	require.True(t, Is(wrapped, sentinel))
	require.False(t, Is(wrapped, New(CodeNoError, "nothing raised")))
}

func TestAs(t *testing.T) {
	err := Wrap(stderrors.New("cause"), CodeInvalidConfig, "invalid")

	var platformErr PlatformError
	require.True(t, As(err, &platformErr))
	require.Equal(t, CodeInvalidConfig, platformErr.Code())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"platform error", New(CodeNoError, "x"), CodeNoError},
		{"wrapped platform error", Wrap(New(CodeUncaught, "x"), CodeRaised, "y"), CodeRaised},
		{"standard error", stderrors.New("x"), CodeUnknown},
		{"nil error", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"fatal error", New(CodeFrameOverflow, "overflow"), true},
		{"recoverable error", New(CodeRaised, "raised"), false},
		{"wrapped fatal error", Wrap(New(CodeUncaught, "x"), CodeRaised, "y"), true},
		{"standard error", stderrors.New("x"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsFatal(tt.err))
		})
	}
}
