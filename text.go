package catidx

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize collapses any run of whitespace (including newlines and
// form-feed page breaks) to a single space and trims the result. It is a
// total function: empty input yields empty output, and it is idempotent.
//
// Normalization destroys line structure, so line-based heuristics must use
// Lines on the raw text instead of re-splitting the normalized string.
func Normalize(raw string) string {
	raw = strings.ReplaceAll(raw, "\f", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, " "))
}

// Lines returns the logical lines of raw extractor output, preserving
// blank lines so that positional windows ("first N lines") match the
// source layout. Carriage returns are stripped.
func Lines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
