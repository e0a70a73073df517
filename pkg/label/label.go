// Package label prepares pitch names for display in plot labels.
package label

import (
	"strings"

	"github.com/matzehuels/scoreplot/pkg/pitch"
)

// displayable lists the modifiers common plot fonts can draw.
var displayable = map[string]bool{"-": true, "#": true}

// Unicode replaces the ASCII accidental in label with its glyph:
// "B-4" becomes "B♭4" and "B--4" becomes "B♭♭4".
//
// Only the first displayable modifier found in [pitch.Modifiers] order is
// converted, so a label holding both "#" and "-" keeps the "-".
func Unicode(label string) string {
	for _, m := range pitch.Modifiers {
		if m.ASCII == "" || !displayable[m.ASCII] {
			continue
		}
		if strings.Contains(label, m.ASCII) {
			return strings.ReplaceAll(label, m.ASCII, m.Glyph)
		}
	}
	return label
}

// UnicodeValue applies [Unicode] to strings and returns any other value
// unchanged. Tick labels may be numbers.
func UnicodeValue(v any) any {
	if s, ok := v.(string); ok {
		return Unicode(s)
	}
	return v
}

// UnicodeAll applies [Unicode] to every label.
func UnicodeAll(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = Unicode(l)
	}
	return out
}
