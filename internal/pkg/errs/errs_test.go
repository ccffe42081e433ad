//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-checkout/internal/pkg/errs"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")
	cause := errors.New("cause")

	t.Run("marked error matches the sentinel with errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("marked error still matches its cause", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("wrapping keeps the sentinel visible", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, sentinel), "while settling")
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("marking nil yields the sentinel itself", func(t *testing.T) {
		require.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
	})
}

func TestWrap(t *testing.T) {
	t.Run("wrapping nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})
}
