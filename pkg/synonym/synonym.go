// Package synonym maps free-form plot option strings to canonical names.
//
// Users describe plots loosely ("Weighted Scatter", "piano", "pitchSpace").
// [ResolveFormat] and [ResolveValues] reduce those spellings to the fixed
// vocabularies in [Formats] and [Values]. Matching ignores case and spaces.
// Unrecognized input is never an error: it comes back normalized so the
// consumer can decide how to report it.
package synonym

import (
	"slices"
	"strings"
)

// Format is a canonical plot format name.
type Format string

// Canonical plot formats.
const (
	FormatHorizontalBar         Format = "horizontalbar"
	FormatHistogram             Format = "histogram"
	FormatScatter               Format = "scatter"
	FormatScatterWeighted       Format = "scatterweighted"
	Format3DBars                Format = "3dbars"
	FormatColorGrid             Format = "colorgrid"
	FormatHorizontalBarWeighted Format = "horizontalbarweighted"
)

// Formats lists the canonical plot formats.
var Formats = []Format{
	FormatHorizontalBar,
	FormatHistogram,
	FormatScatter,
	FormatScatterWeighted,
	Format3DBars,
	FormatColorGrid,
	FormatHorizontalBarWeighted,
}

// FormatSynonyms groups accepted spellings per format. The first entry of
// each group is the canonical name; groups are searched in order.
var FormatSynonyms = [][]string{
	{"horizontalbar", "bar", "horizontal", "pianoroll", "piano"},
	{"histogram", "histo", "count"},
	{"scatter", "point"},
	{"scatterweighted", "weightedscatter", "weighted"},
	{"3dbars", "3d"},
	{"colorgrid", "grid", "window", "windowed"},
	{"horizontalbarweighted", "barweighted", "weightedbar"},
}

// Known reports whether f is one of [Formats].
func (f Format) Known() bool {
	return slices.Contains(Formats, f)
}

// ResolveFormat returns the canonical format for text. Unmatched text is
// returned lowercased with spaces removed.
func ResolveFormat(text string) Format {
	value := normalize(text)
	for _, group := range FormatSynonyms {
		if slices.Contains(group, value) {
			return Format(group[0])
		}
	}
	return Format(value)
}

// Value is a canonical name for a plotted musical quantity.
type Value string

// Canonical plot values.
const (
	ValuePitch         Value = "pitch"
	ValuePitchClass    Value = "pitchclass"
	ValueQuarterLength Value = "quarterlength"
	ValueOffset        Value = "offset"
	ValueDynamics      Value = "dynamics"
	ValueInstrument    Value = "instrument"
)

// Values lists the canonical plot values.
var Values = []Value{
	ValuePitch,
	ValuePitchClass,
	ValueQuarterLength,
	ValueOffset,
	ValueDynamics,
	ValueInstrument,
}

var valueSynonyms = map[string]Value{
	"pitch":           ValuePitch,
	"pitchspace":      ValuePitch,
	"ps":              ValuePitch,
	"pitchclass":      ValuePitchClass,
	"pc":              ValuePitchClass,
	"duration":        ValueQuarterLength,
	"quarterlength":   ValueQuarterLength,
	"offset":          ValueOffset,
	"time":            ValueOffset,
	"dynamic":         ValueDynamics,
	"dynamics":        ValueDynamics,
	"instrument":      ValueInstrument,
	"instruments":     ValueInstrument,
	"instrumentation": ValueInstrument,
}

// Known reports whether v is one of [Values].
func (v Value) Known() bool {
	return slices.Contains(Values, v)
}

// ResolveValue returns the canonical value for text, or text lowercased
// with spaces removed when it matches no synonym.
func ResolveValue(text string) Value {
	value := normalize(text)
	if v, ok := valueSynonyms[value]; ok {
		return v
	}
	return Value(value)
}

// ResolveValues applies [ResolveValue] to each element, preserving order.
func ResolveValues(texts []string) []Value {
	out := make([]Value, len(texts))
	for i, text := range texts {
		out[i] = ResolveValue(text)
	}
	return out
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}
