package catidx

import (
	"fmt"
	"strings"
)

// contentSignal pairs a summary label with the substrings that trigger it.
// Signals are checked in order and every firing signal contributes its
// label.
type contentSignal struct {
	label   string
	markers []string
}

var contentSignals = []contentSignal{
	{label: "specifications", markers: []string{"specifications", "spec"}},
	{label: "accessories", markers: []string{"accessories"}},
	{label: "product listings", markers: []string{"model", "cat #"}},
	{label: "application details", markers: []string{"application", "use"}},
}

// GenerateSummary synthesizes a one-to-two sentence description of a page
// from its extracted products and content-type signals found in the page
// text. The result is never empty.
func GenerateSummary(normalized string, products []string) string {
	var lead string
	if len(products) > 0 {
		var list string
		if len(products) <= 3 {
			list = strings.Join(products, ", ")
		} else {
			list = fmt.Sprintf("%s, and %d more", strings.Join(products[:3], ", "), len(products)-3)
		}
		lead = fmt.Sprintf("Features %s. ", list)
	}

	textLower := strings.ToLower(normalized)
	var labels []string
	for _, sig := range contentSignals {
		for _, marker := range sig.markers {
			if strings.Contains(textLower, marker) {
				labels = append(labels, sig.label)
				break
			}
		}
	}

	desc := "product information"
	if len(labels) > 0 {
		desc = strings.Join(labels, " and ")
	}

	return fmt.Sprintf("%sThis page includes %s.", lead, desc)
}
