package catidx_test

import (
	"testing"

	"github.com/catalogix/catidx"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSummary(t *testing.T) {
	t.Parallel()

	t.Run("lists up to three products in the lead sentence", func(t *testing.T) {
		t.Parallel()

		summary := catidx.GenerateSummary("", []string{"Drill", "Anchor", "Nailer"})

		assert.Equal(t, "Features Drill, Anchor, Nailer. This page includes product information.", summary)
	})

	t.Run("folds extra products into a count", func(t *testing.T) {
		t.Parallel()

		summary := catidx.GenerateSummary("", []string{"Drill", "Anchor", "Nailer", "Bit"})

		assert.Contains(t, summary, "Features Drill, Anchor, Nailer, and 1 more. ")
	})

	t.Run("omits the lead sentence without products", func(t *testing.T) {
		t.Parallel()

		summary := catidx.GenerateSummary("", nil)

		assert.Equal(t, "This page includes product information.", summary)
	})

	t.Run("joins content signals in fixed order", func(t *testing.T) {
		t.Parallel()

		summary := catidx.GenerateSummary("Model X100 accessories and specifications", nil)

		assert.Equal(t, "This page includes specifications and accessories and product listings.", summary)
	})

	t.Run("detects application details via substring match", func(t *testing.T) {
		t.Parallel()

		// "use" matches inside larger words as well; that looseness is part
		// of the output contract.
		summary := catidx.GenerateSummary("for household jobs", nil)

		assert.Equal(t, "This page includes application details.", summary)
	})

	t.Run("falls back to product information for empty text", func(t *testing.T) {
		t.Parallel()

		summary := catidx.GenerateSummary("", []string{"Drill"})

		assert.Equal(t, "Features Drill. This page includes product information.", summary)
	})
}
