package catidx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SectionUnknown is the sentinel returned for page numbers outside every
// range in the section table. Callers must treat it as valid data, not as
// a failure.
const SectionUnknown = "Unknown"

// SectionRange maps a contiguous, inclusive range of page numbers to a
// named catalog section.
type SectionRange struct {
	Name  string // table name with underscores, e.g. "Hand_Tools"
	Start int
	End   int
}

// DisplayName returns the section name with separator characters converted
// to spaces, as used in output documents.
func (r SectionRange) DisplayName() string {
	return strings.ReplaceAll(r.Name, "_", " ")
}

// RangeLabel returns the "start–end" label for the section's page range.
func (r SectionRange) RangeLabel() string {
	return fmt.Sprintf("%d–%d", r.Start, r.End)
}

// SectionTable is an ordered list of section ranges. Lookup is
// first-match-wins in declaration order, so overlapping ranges are legal
// and resolved by priority rather than rejected.
type SectionTable []SectionRange

// DefaultSectionTable returns the section table for the catalog, taken
// from its table of contents.
func DefaultSectionTable() SectionTable {
	return SectionTable{
		{Name: "Fastener_Anchoring_Systems", Start: 3, End: 73},
		{Name: "Fastening_Systems", Start: 74, End: 91},
		{Name: "Material_Handling_Storage", Start: 92, End: 99},
		{Name: "Hand_Tools", Start: 100, End: 119},
		{Name: "Measuring_Marking", Start: 120, End: 131},
		{Name: "Ladders", Start: 132, End: 134},
		{Name: "Cleaning_Supplies", Start: 135, End: 143},
		{Name: "Jobsite_Supplies", Start: 144, End: 171},
		{Name: "Building_Materials", Start: 172, End: 184},
		{Name: "Adhesives_Caulks", Start: 185, End: 188},
		{Name: "Power_Tools_Equipment_Accessories", Start: 189, End: 246},
		{Name: "Safety_Equipment_Supplies", Start: 247, End: 298},
	}
}

// Resolve returns the display name of the first section whose range
// contains page, along with the page's 10-page range group label. Page
// numbers outside every range resolve to the ("Unknown", "Unknown")
// sentinel pair.
func (t SectionTable) Resolve(page int) (section, rangeGroup string) {
	for _, r := range t {
		if r.Start <= page && page <= r.End {
			return r.DisplayName(), PageRangeGroup(page)
		}
	}
	return SectionUnknown, SectionUnknown
}

// PageRangeGroup returns the 10-page bucket label for a page number,
// e.g. page 247 → "Pages 240–249". It is independent of the section table.
func PageRangeGroup(page int) string {
	lo := (page / 10) * 10
	return fmt.Sprintf("Pages %d–%d", lo, lo+9)
}

// SectionPages holds the page-number membership of one section.
type SectionPages struct {
	Range string `json:"range"`
	Pages []int  `json:"pages"`
}

// SectionIndex maps section display names to their page-range label and
// the ascending list of catalog pages that resolved to them. It contains
// one entry per section table row, including sections with no pages.
type SectionIndex struct {
	names    []string // display names in table order
	sections map[string]*SectionPages
}

// NewSectionIndex creates a section index covering every section in the
// table, each with an empty pages list.
func NewSectionIndex(table SectionTable) *SectionIndex {
	idx := &SectionIndex{
		sections: make(map[string]*SectionPages, len(table)),
	}
	for _, r := range table {
		name := r.DisplayName()
		if _, ok := idx.sections[name]; ok {
			continue
		}
		idx.names = append(idx.names, name)
		idx.sections[name] = &SectionPages{
			Range: r.RangeLabel(),
			Pages: []int{},
		}
	}
	return idx
}

// Add records a page under the named section. Pages whose section is not
// in the table (including the "Unknown" sentinel) are dropped; the index
// never grows entries beyond the fixed table.
func (idx *SectionIndex) Add(section string, page int) {
	sp, ok := idx.sections[section]
	if !ok {
		return
	}
	sp.Pages = append(sp.Pages, page)
}

// Sections returns the section display names in table order.
func (idx *SectionIndex) Sections() []string {
	return idx.names
}

// Get returns the pages entry for a section display name.
func (idx *SectionIndex) Get(section string) (*SectionPages, bool) {
	sp, ok := idx.sections[section]
	return sp, ok
}

// MarshalJSON serializes the index as a JSON object whose keys appear in
// section table order. Go maps marshal with sorted keys, which would
// reorder the output relative to the table; consumers rely on table order.
func (idx *SectionIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range idx.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(idx.sections[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
