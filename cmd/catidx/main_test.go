package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/catalogix/catidx"
	main "github.com/catalogix/catidx/cmd/catidx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain_Run_BuildEndToEnd exercises the full wiring with unreadable PDF
// stubs: every page degrades to its section/page fallback, but the run
// still succeeds and writes both documents.
func TestMain_Run_BuildEndToEnd(t *testing.T) {
	t.Parallel()

	corpus := t.TempDir()
	for _, name := range []string{"ocr_trim_page_0005.pdf", "ocr_trim_page_0075.pdf", "ocr_trim_page_0250.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(corpus, name), []byte("not a real pdf"), 0644))
	}
	out := t.TempDir()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(),
		[]string{"build", corpus, "--out", out, "--extractor", "go"},
		stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Found 3 page files")
	assert.Contains(t, stdout.String(), "Indexed 3 pages")

	data, err := os.ReadFile(filepath.Join(out, "index", "catalog_index.json"))
	require.NoError(t, err)

	var catalog []catidx.CatalogEntry
	require.NoError(t, json.Unmarshal(data, &catalog))
	require.Len(t, catalog, 3)
	assert.Equal(t, 5, catalog[0].Page)
	assert.Equal(t, 75, catalog[1].Page)
	assert.Equal(t, 250, catalog[2].Page)
	assert.Equal(t, "Fastener Anchoring Systems – Page 5", catalog[0].Title)
	assert.Equal(t, "This page includes product information.", catalog[0].Summary)

	data, err = os.ReadFile(filepath.Join(out, "index", "section_index.json"))
	require.NoError(t, err)

	var sections map[string]catidx.SectionPages
	require.NoError(t, json.Unmarshal(data, &sections))
	assert.Len(t, sections, 12)
	assert.Equal(t, []int{5}, sections["Fastener Anchoring Systems"].Pages)
	assert.Equal(t, []int{75}, sections["Fastening Systems"].Pages)
	assert.Equal(t, []int{250}, sections["Safety Equipment Supplies"].Pages)
	assert.Equal(t, []int{}, sections["Ladders"].Pages)
}

func TestMain_Run_BuildStoresEntriesWithDBFlag(t *testing.T) {
	t.Parallel()

	corpus := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(corpus, "ocr_trim_page_0101.pdf"), []byte("stub"), 0644))
	out := t.TempDir()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	m := main.NewMain()
	m.DBPath = dbPath

	err := m.Run(context.Background(),
		[]string{"build", corpus, "--out", out, "--extractor", "go", "--db"},
		&bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	// A fresh Main reads the stored entries back.
	m2 := main.NewMain()
	m2.DBPath = dbPath
	stdout := &bytes.Buffer{}

	err = m2.Run(context.Background(), []string{"list"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Hand Tools")
	assert.Contains(t, stdout.String(), "101")
}
