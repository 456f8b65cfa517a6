package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nilesh-iiita/hiveplot/pkg/errors"
)

// =============================================================================
// Layout - Computed Hive Plot Geometry
// =============================================================================

// Layout is the serialization format for computed hive plot layouts.
// It carries everything a renderer needs: axis lines, node positions, edge
// curve control points, and the bounding plot radius for the square
// viewport [-PlotRadius, PlotRadius]².
type Layout struct {
	// Discriminator; "hive" for layouts produced by the layout engine,
	// "nodelink" for Graphviz companion views.
	VizType string `json:"viz_type" bson:"viz_type"`

	PlotRadius float64 `json:"plot_radius" bson:"plot_radius"`
	DotRadius  float64 `json:"dot_radius" bson:"dot_radius"`
	Scale      float64 `json:"scale" bson:"scale"`
	Directed   bool    `json:"directed,omitempty" bson:"directed,omitempty"`
	Style      string  `json:"style,omitempty" bson:"style,omitempty"`

	Axes   []AxisLine        `json:"axes,omitempty" bson:"axes,omitempty"`
	Nodes  []NodePos         `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Paths  []Path            `json:"paths,omitempty" bson:"paths,omitempty"`
	Colors map[string]string `json:"colors,omitempty" bson:"colors,omitempty"`

	// Nodelink-specific
	DOT string `json:"dot,omitempty" bson:"dot,omitempty"`
}

// IsHive returns true if this is a hive layout.
func (l *Layout) IsHive() bool { return l.VizType == VizTypeHive }

// IsNodelink returns true if this is a nodelink layout.
func (l *Layout) IsNodelink() bool { return l.VizType == VizTypeNodelink }

// AxisLine is one radial axis descriptor: its angle and radial extent.
type AxisLine struct {
	Group string  `json:"group" bson:"group"`
	Theta float64 `json:"theta" bson:"theta"`
	Start float64 `json:"start" bson:"start"`
	End   float64 `json:"end" bson:"end"`
}

// NodePos is a placed node marker. Nodes of split groups appear once per
// duplicate axis.
type NodePos struct {
	ID     string  `json:"id" bson:"id"`
	Group  string  `json:"group" bson:"group"`
	Theta  float64 `json:"theta" bson:"theta"`
	Radius float64 `json:"radius" bson:"radius"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
}

// Path is a 4-point cubic edge curve: start, two control points, end.
type Path struct {
	Source string         `json:"source" bson:"source"`
	Target string         `json:"target" bson:"target"`
	Points [][2]float64   `json:"points" bson:"points"`
	Attrs  map[string]any `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that required fields are present for the viz type.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}

	if l.VizType == "" {
		l.VizType = VizTypeHive
	}

	if l.IsHive() && len(l.Axes) == 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "hive layout must contain axes")
	}
	if l.IsNodelink() && l.DOT == "" {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "nodelink layout must contain DOT string")
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
