// Package plot resolves user plot options into canonical form.
//
// A plot request names its format, the musical values on each axis, the
// series colors, and a few labels, all in whatever spelling the user chose.
// [Resolve] runs each through the matching normalizer so the renderer only
// ever sees canonical formats, canonical values, "#rrggbb" colors and
// display-ready labels. Options usually come from a TOML file, see
// [ParseConfig].
package plot

import (
	"fmt"
	"slices"

	"github.com/matzehuels/scoreplot/pkg/color"
	"github.com/matzehuels/scoreplot/pkg/label"
	"github.com/matzehuels/scoreplot/pkg/synonym"
)

// DefaultColors is the series color cycle used when no colors are given.
var DefaultColors = []string{
	color.MustNormalize("b"),
	color.MustNormalize("g"),
	color.MustNormalize("r"),
	color.MustNormalize("c"),
	color.MustNormalize("m"),
	color.MustNormalize("y"),
	color.MustNormalize("k"),
}

// Options are plot options as the user wrote them.
type Options struct {
	Format string   `toml:"format"` // Plot format or synonym; empty leaves the choice to the renderer
	Values []string `toml:"values"` // Axis values or synonyms
	Colors []any    `toml:"colors"` // Series colors in any form color.Normalize accepts
	Title  string   `toml:"title"`  // Plot title, may contain ASCII accidentals
	Labels []string `toml:"labels"` // Tick labels, may contain ASCII accidentals
}

// Resolved are plot options in canonical form.
type Resolved struct {
	Format synonym.Format
	Values []synonym.Value
	Colors []string
	Title  string
	Labels []string
}

// Resolve normalizes every field of o. Only colors can fail; the error names
// the index of the offending color and keeps its INVALID_COLOR code.
func Resolve(o Options) (Resolved, error) {
	r := Resolved{
		Values: synonym.ResolveValues(o.Values),
		Title:  label.Unicode(o.Title),
		Labels: label.UnicodeAll(o.Labels),
	}
	if o.Format != "" {
		r.Format = synonym.ResolveFormat(o.Format)
	}

	if len(o.Colors) == 0 {
		r.Colors = slices.Clone(DefaultColors)
		return r, nil
	}
	r.Colors = make([]string, len(o.Colors))
	for i, spec := range o.Colors {
		hex, err := color.Normalize(spec)
		if err != nil {
			return Resolved{}, fmt.Errorf("color %d: %w", i, err)
		}
		r.Colors[i] = hex
	}
	return r, nil
}

// SeriesColor returns the color for series i, cycling through r.Colors.
func (r Resolved) SeriesColor(i int) string {
	if len(r.Colors) == 0 {
		return DefaultColors[i%len(DefaultColors)]
	}
	return r.Colors[i%len(r.Colors)]
}
