// Package pkg provides the libraries behind scoreplot.
//
// # Overview
//
// Scoreplot prepares the options of a music plot for rendering. Users write
// options loosely; the renderer wants a fixed vocabulary. The packages here
// close that gap:
//
//  1. [synonym] - Plot format and value names ("piano" → "horizontalbar")
//  2. [color] - Series colors ("Steel Blue", 0.8, [255, 0, 0] → "#rrggbb")
//  3. [label] - Pitch labels ("B-4" → "B♭4"), using the [pitch] tables
//  4. [plot] - All of the above for a whole option set, read from TOML
//  5. [backend] - Lazy loading of the chart, Graphviz and export components
//
// # Architecture
//
//	user options (TOML, flags)
//	         ↓
//	    [plot] Resolve ── [synonym], [color], [label]
//	         ↓
//	    canonical options
//	         ↓
//	    [backend] Bundle → renderer
//
// Structured errors with machine-readable codes live in [errors].
//
// [synonym]: github.com/matzehuels/scoreplot/pkg/synonym
// [color]: github.com/matzehuels/scoreplot/pkg/color
// [label]: github.com/matzehuels/scoreplot/pkg/label
// [pitch]: github.com/matzehuels/scoreplot/pkg/pitch
// [plot]: github.com/matzehuels/scoreplot/pkg/plot
// [backend]: github.com/matzehuels/scoreplot/pkg/backend
// [errors]: github.com/matzehuels/scoreplot/pkg/errors
package pkg
