// Package fs provides filesystem-based page discovery and index output.
package fs

import (
	"context"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/catalogix/catidx"
)

// pageFileRe matches the corpus filename convention. The page number is
// zero padded in filenames but parsed as a plain integer.
var pageFileRe = regexp.MustCompile(`^ocr_trim_page_(\d+)\.pdf$`)

// Ensure DirSource implements catidx.PageSource at compile time.
var _ catidx.PageSource = (*DirSource)(nil)

// DirSource discovers page documents under a directory tree. The corpus
// lays pages out in per-section subdirectories, so discovery is recursive.
type DirSource struct {
	dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Discover walks the directory tree and returns one ref per page file,
// ascending by page number. An unreadable root is a run-level failure.
func (s *DirSource) Discover(ctx context.Context) ([]catidx.PageRef, error) {
	var refs []catidx.PageRef

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		m := pageFileRe.FindStringSubmatch(d.Name())
		if m == nil {
			return nil
		}
		page, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		refs = append(refs, catidx.PageRef{Page: page, Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Page < refs[j].Page })
	return refs, nil
}
