package check_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/tychoish/ringq/assert"
	"github.com/tychoish/ringq/assert/check"
)

func TestCheck(t *testing.T) {
	t.Run("Passing", func(t *testing.T) {
		check.True(t, true)
		check.Equal(t, "a", "a")
		check.NotEqual(t, "a", "b")
		check.Zero(t, 0)
		check.Error(t, io.EOF)
		check.NotError(t, nil)
		check.ErrorIs(t, fmt.Errorf("wrap: %w", io.EOF), io.EOF)
		check.EqualItems(t, []int{1, 2}, []int{1, 2})
		check.Ordered(t, []string{"a", "b"}, false)
	})
	t.Run("Failures", func(t *testing.T) {
		assert.Failing(t, func(t *testing.T) { check.True(t, false) })
		assert.Failing(t, func(t *testing.T) { check.Equal(t, 1, 2) })
		assert.Failing(t, func(t *testing.T) { check.NotEqual(t, 1, 1) })
		assert.Failing(t, func(t *testing.T) { check.Zero(t, 1) })
		assert.Failing(t, func(t *testing.T) { check.Error(t, nil) })
		assert.Failing(t, func(t *testing.T) { check.NotError(t, errors.New("beep")) })
		assert.Failing(t, func(t *testing.T) { check.ErrorIs(t, io.EOF, io.ErrUnexpectedEOF) })
		assert.Failing(t, func(t *testing.T) { check.EqualItems(t, []int{1}, []int{2}) })
		assert.Failing(t, func(t *testing.T) { check.EqualItems(t, []int{1}, []int{}) })
		assert.Failing(t, func(t *testing.T) { check.Ordered(t, []int{2, 1}, false) })
	})
}
