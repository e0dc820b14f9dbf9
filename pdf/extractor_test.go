package pdf_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/catalogix/catidx/pdf"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("fails for a missing file", func(t *testing.T) {
		t.Parallel()

		e := pdf.NewExtractor()

		_, err := e.ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))

		require.Error(t, err)
	})

	t.Run("respects a cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		e := pdf.NewExtractor()

		_, err := e.ExtractText(ctx, "whatever.pdf")

		require.ErrorIs(t, err, context.Canceled)
	})
}
