package pipeline

import (
	"github.com/nilesh-iiita/hiveplot/pkg/errors"
	"github.com/nilesh-iiita/hiveplot/pkg/graph"
	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/layout"
	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/sink"
	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/styles"
	"github.com/nilesh-iiita/hiveplot/pkg/render/nodelink"
)

// RenderFromLayout renders output artifacts from a serialized layout.
// This is the preferred entry point when the layout was computed earlier
// or fetched from cache.
func RenderFromLayout(l graph.Layout, opts Options) (map[string][]byte, error) {
	if l.IsNodelink() {
		opts.VizType = graph.VizTypeNodelink
		return renderNodelink(l, opts)
	}
	return renderHive(layout.Parse(l), opts)
}

// RenderFromLayoutData renders output from serialized layout bytes.
func RenderFromLayoutData(data []byte, opts Options) (map[string][]byte, error) {
	parsed, err := graph.UnmarshalLayout(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse layout")
	}
	return RenderFromLayout(parsed, opts)
}

// renderHive generates hive plot outputs in the requested formats.
func renderHive(l layout.Layout, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l,
				sink.WithPNGSVGOptions(svgOpts...),
				sink.WithScale(DefaultPNGScale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, opts.Style)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported hive format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates nodelink outputs via Graphviz. The layout must
// carry a DOT string.
func renderNodelink(l graph.Layout, opts Options) (map[string][]byte, error) {
	if l.DOT == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nodelink layout missing DOT string")
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(l.DOT)
		case FormatPNG:
			data, err = nodelink.RenderPNG(l.DOT, DefaultPNGScale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(l.DOT)
		case FormatJSON:
			data, err = graph.MarshalLayout(l)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options from pipeline options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption

	switch opts.Style {
	case graph.StyleInk:
		svgOpts = append(svgOpts, sink.WithStyle(styles.Ink{}))
	case graph.StyleSimple:
		svgOpts = append(svgOpts, sink.WithStyle(styles.Simple{}))
	}

	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.Padding > 0 {
		svgOpts = append(svgOpts, sink.WithPadding(opts.Padding))
	}

	return svgOpts
}
