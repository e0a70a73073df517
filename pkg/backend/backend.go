package backend

import (
	"context"
	"os/exec"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/matzehuels/scoreplot/pkg/errors"
)

// Component names reported by [Bundle.Available].
const (
	ComponentChart    = "chart"
	ComponentGraphviz = "graphviz"
	ComponentExport   = "export"
)

// Bundle holds the plotting components that loaded successfully.
// Optional fields are zero when their component is unavailable.
type Bundle struct {
	// Font is the TrueType font charts are drawn with. Always set.
	Font *truetype.Font
	// SVG and PNG create chart renderers. Always set.
	SVG chart.RendererProvider
	PNG chart.RendererProvider

	// Graph is the Graphviz layout engine, or nil.
	Graph *graphviz.Graphviz
	// Converter is the resolved path of the SVG converter, or "".
	Converter string
}

// Available lists the loaded components, primary first.
func (b *Bundle) Available() []string {
	names := []string{ComponentChart}
	if b.Graph != nil {
		names = append(names, ComponentGraphviz)
	}
	if b.Converter != "" {
		names = append(names, ComponentExport)
	}
	return names
}

// Close releases the Graphviz runtime, if one was started.
func (b *Bundle) Close() error {
	if b.Graph == nil {
		return nil
	}
	err := b.Graph.Close()
	b.Graph = nil
	return err
}

type loader struct {
	logger    *log.Logger
	chart     bool
	graphviz  bool
	export    bool
	converter string

	loadFont    func() (*truetype.Font, error)
	newGraphviz func(context.Context) (*graphviz.Graphviz, error)
	lookPath    func(string) (string, error)
}

// Load initializes the plotting backend.
//
// The chart backend is required: if its font cannot be loaded Load fails
// with [errors.ErrCodeMissingDependency]. Graphviz and the SVG converter are
// optional; a failure to load either is logged as a warning and leaves the
// matching [Bundle] field empty.
//
// Load does the expensive work (parsing the font, compiling the Graphviz
// runtime), so call it only once plotting is actually requested. The caller
// must Close the returned bundle.
func Load(ctx context.Context, opts ...Option) (*Bundle, error) {
	l := loader{
		logger:      log.Default(),
		chart:       true,
		graphviz:    true,
		export:      true,
		converter:   DefaultConverter,
		loadFont:    chart.GetDefaultFont,
		newGraphviz: graphviz.New,
		lookPath:    exec.LookPath,
	}
	for _, opt := range opts {
		opt(&l)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !l.chart {
		return nil, errors.New(errors.ErrCodeMissingDependency, "chart backend not available, plotting is not allowed")
	}
	font, err := l.loadFont()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingDependency, err, "could not load chart font, plotting is not allowed")
	}
	b := &Bundle{Font: font, SVG: chart.SVG, PNG: chart.PNG}
	l.logger.Debug("Loaded chart backend")

	if l.graphviz {
		gv, err := l.newGraphviz(ctx)
		if err != nil {
			l.logger.Warn("Graphviz could not be started, graph layout disabled", "err", err)
		} else {
			b.Graph = gv
			l.logger.Debug("Started Graphviz runtime")
		}
	}

	if l.export {
		path, err := l.lookPath(l.converter)
		if err != nil {
			l.logger.Warn("SVG converter not found, PDF and PNG export disabled",
				"converter", l.converter,
				"hint", "brew install librsvg (macOS), apt install librsvg2-bin (Linux)")
		} else {
			b.Converter = path
			l.logger.Debug("Found SVG converter", "path", path)
		}
	}

	return b, nil
}

var shared = sync.OnceValues(func() (*Bundle, error) {
	return Load(context.Background())
})

// Shared returns a process-wide bundle loaded with default options on first
// use. Later calls return the same bundle and error. The shared bundle is
// never closed; callers must not Close it.
func Shared() (*Bundle, error) {
	return shared()
}
