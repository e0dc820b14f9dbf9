package catidx_test

import (
	"testing"

	"github.com/catalogix/catidx"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs to single spaces", func(t *testing.T) {
		t.Parallel()

		got := catidx.Normalize("DRIVE  PINS\n\n\tCAT #   1234\f next")
		assert.Equal(t, "DRIVE PINS CAT # 1234 next", got)
	})

	t.Run("trims leading and trailing whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", catidx.Normalize("  abc \n"))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", catidx.Normalize(""))
		assert.Equal(t, "", catidx.Normalize(" \n\f\t "))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"plain text",
			"  HAMMER \f DRILLS \n\n SDS-MAX  ",
			"\t\ttabs\tand\nnewlines\r\n",
		}
		for _, in := range inputs {
			once := catidx.Normalize(in)
			assert.Equal(t, once, catidx.Normalize(once))
		}
	})
}

func TestLines(t *testing.T) {
	t.Parallel()

	t.Run("preserves blank lines for positional windows", func(t *testing.T) {
		t.Parallel()

		lines := catidx.Lines("a\n\nb")
		assert.Equal(t, []string{"a", "", "b"}, lines)
	})

	t.Run("strips carriage returns", func(t *testing.T) {
		t.Parallel()

		lines := catidx.Lines("a\r\nb")
		assert.Equal(t, []string{"a", "b"}, lines)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, catidx.Lines(""))
	})
}
