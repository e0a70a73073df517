// Package backend loads the plotting components on demand.
//
// # Overview
//
// Rendering is done by a separate component; this package only hands it the
// pieces it needs, bundled in a [Bundle]:
//
//   - the chart backend ([github.com/wcharczuk/go-chart/v2]) with its
//     TrueType font and SVG/PNG renderer providers (required)
//   - a Graphviz layout engine ([github.com/goccy/go-graphviz]) for graph
//     plots (optional)
//   - the rsvg-convert tool for PDF and PNG export of SVG output (optional)
//
// Loading the font and starting the Graphviz runtime are slow, so nothing
// happens until [Load] is called:
//
//	b, err := backend.Load(ctx, backend.WithLogger(logger))
//	if err != nil {
//	    return err // MISSING_DEPENDENCY: plotting is not allowed
//	}
//	defer b.Close()
//
//	if b.Graph == nil {
//	    // fall back to a chart without graph layout
//	}
//
// # Memoization
//
// [Load] builds a fresh bundle per call. Programs that want a single
// process-wide bundle opt in with [Shared].
package backend
