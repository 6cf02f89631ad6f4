package exceptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	var failures []Error
	r := newTestRuntime(t, WithFailureHandler(func(e Error) { failures = append(failures, e) }))

	r.Assert(true, "holds")
	assert.Empty(t, failures)

	r.Assert(false, "msg")
	if assert.Len(t, failures, 1) {
		assert.Same(t, RuntimeError, failures[0].Type)
		assert.Equal(t, "msg", failures[0].Message)
		assert.NotNil(t, failures[0].Location)
	}
	assert.Equal(t, 0, r.Depth())
	assert.Empty(t, r.stderr.String())
}

func TestAssertType(t *testing.T) {
	var failures []Error
	r := newTestRuntime(t, WithFailureHandler(func(e Error) { failures = append(failures, e) }))

	r.AssertType(false, "sensor offline", ioError)

	if assert.Len(t, failures, 1) {
		assert.Same(t, ioError, failures[0].Type)
		assert.Equal(t, "sensor offline", failures[0].Message)
	}
}

func TestAssert_NoHandler(t *testing.T) {
	r := newTestRuntime(t)

	assert.NotPanics(t, func() { r.Assert(false, "ignored") })
	assert.Empty(t, r.exits)
}

func TestAssert_InsideBlock(t *testing.T) {
	failures := 0
	r := newTestRuntime(t, WithFailureHandler(func(Error) { failures++ }))
	var trace []string

	r.Try(func() {
		r.Assert(false, "inner")
		trace = append(trace, "after assert")
	}).CatchAll(func(Error) {
		trace = append(trace, "outer catch")
	}).Run()

	assert.Equal(t, 1, failures)
	assert.Equal(t, []string{"after assert"}, trace)
}
