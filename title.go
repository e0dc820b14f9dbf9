package catidx

import (
	"fmt"
	"strings"
	"unicode"
)

// tableHeaderMarkers flag lines that belong to product tables rather than
// headings. Matched case-insensitively.
var tableHeaderMarkers = []string{"CAT #", "PART NO", "SKU", "DESCRIPTION", "QTY", "BOX"}

const (
	headingScanLines  = 30
	fallbackScanLines = 20
	maxTitleLen       = 80
)

// isTableHeaderLine reports whether the line contains any table-header
// marker.
func isTableHeaderLine(line string) bool {
	upper := strings.ToUpper(line)
	for _, marker := range tableHeaderMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

// isHeading reports whether a trimmed line reads as a major heading: longer
// than 5 characters, mostly uppercase, and not a table header.
func isHeading(line string) bool {
	if len(line) <= 5 {
		return false
	}
	var letters, uppers int
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	if letters == 0 {
		letters = 1
	}
	if float64(uppers)/float64(letters) <= 0.6 {
		return false
	}
	return !isTableHeaderLine(line)
}

// ExtractTitle derives a human-readable page title from the logical lines
// of a page's raw text. It joins the first two detected headings, falls
// back to the first substantial line, and finally to the section name and
// page number, so the result is always non-empty.
func ExtractTitle(lines []string, page int, table SectionTable) string {
	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			trimmed = append(trimmed, s)
		}
	}

	var headings []string
	for _, line := range firstN(trimmed, headingScanLines) {
		if isHeading(line) {
			headings = append(headings, line)
		}
	}

	if len(headings) > 0 {
		if len(headings) > 2 {
			headings = headings[:2]
		}
		return truncateTitle(strings.Join(headings, " – "), true)
	}

	for _, line := range firstN(trimmed, fallbackScanLines) {
		if len(line) > 10 && !strings.HasPrefix(line, "CAT") {
			return truncateTitle(line, false)
		}
	}

	section, _ := table.Resolve(page)
	return fmt.Sprintf("%s – Page %d", section, page)
}

// truncateTitle limits a title to 80 characters. Headings get a trailing
// ellipsis when cut; the plain-line fallback is cut flush.
func truncateTitle(title string, ellipsis bool) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}
	if ellipsis {
		return string(runes[:maxTitleLen-3]) + "..."
	}
	return string(runes[:maxTitleLen])
}

// firstN returns at most the first n elements of lines.
func firstN(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
