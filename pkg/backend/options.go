package backend

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"
	"github.com/golang/freetype/truetype"
)

// DefaultConverter is the SVG conversion tool looked up on PATH.
const DefaultConverter = "rsvg-convert"

// Option configures [Load].
type Option func(*loader)

// WithLogger sets the logger used to report components that fail to load.
func WithLogger(l *log.Logger) Option {
	return func(o *loader) { o.logger = l }
}

// WithoutChart disables the primary chart backend. Load then fails with
// [errors.ErrCodeMissingDependency]; this mirrors an installation without
// plotting support.
//
// [errors.ErrCodeMissingDependency]: github.com/matzehuels/scoreplot/pkg/errors.ErrCodeMissingDependency
func WithoutChart() Option {
	return func(o *loader) { o.chart = false }
}

// WithoutGraphviz skips starting the Graphviz runtime.
func WithoutGraphviz() Option {
	return func(o *loader) { o.graphviz = false }
}

// WithoutExport skips looking up the SVG converter.
func WithoutExport() Option {
	return func(o *loader) { o.export = false }
}

// WithConverter sets the name or path of the SVG converter (default [DefaultConverter]).
func WithConverter(name string) Option {
	return func(o *loader) {
		if name != "" {
			o.converter = name
		}
	}
}

// WithFontData uses the given TrueType font instead of the chart default.
func WithFontData(ttf []byte) Option {
	return func(o *loader) {
		o.loadFont = func() (*truetype.Font, error) { return truetype.Parse(ttf) }
	}
}

// WithFontLoader replaces the function that loads the chart font.
func WithFontLoader(fn func() (*truetype.Font, error)) Option {
	return func(o *loader) { o.loadFont = fn }
}

// WithGraphvizFactory replaces the function that starts Graphviz.
func WithGraphvizFactory(fn func(context.Context) (*graphviz.Graphviz, error)) Option {
	return func(o *loader) { o.newGraphviz = fn }
}

// WithLookPath replaces the PATH lookup used to find the converter.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(o *loader) { o.lookPath = fn }
}
