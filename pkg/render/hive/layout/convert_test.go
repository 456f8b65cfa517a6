package layout

import (
	"reflect"
	"testing"

	"github.com/nilesh-iiita/hiveplot/pkg/graph"
	"github.com/nilesh-iiita/hiveplot/pkg/hive"
)

func TestExportParseRoundTrip(t *testing.T) {
	set, cfg := twoGroupSet(t)
	edges := []hive.Edge{
		{Source: "n1", Target: "n2"},
		{Source: "n1", Target: "n4", Attrs: map[string]any{"color": "#d62728"}},
	}

	l, err := Build(set, edges, cfg)
	if err != nil {
		t.Fatal(err)
	}

	exported := l.Export()
	if exported.VizType != graph.VizTypeHive {
		t.Errorf("VizType = %q, want hive", exported.VizType)
	}
	if len(exported.Axes) != len(l.Axes) {
		t.Errorf("exported %d axes, want %d", len(exported.Axes), len(l.Axes))
	}
	if exported.Colors["a"] != "#1f77b4" {
		t.Errorf("exported color for a = %q", exported.Colors["a"])
	}

	parsed := Parse(exported)
	if !reflect.DeepEqual(parsed, l) {
		t.Error("Parse(Export(l)) should reproduce the original layout")
	}
}

func TestExportSurvivesSerialization(t *testing.T) {
	set, cfg := twoGroupSet(t)
	l, err := Build(set, []hive.Edge{{Source: "n2", Target: "n4"}}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	data, err := graph.MarshalLayout(l.Export())
	if err != nil {
		t.Fatalf("MarshalLayout error: %v", err)
	}
	restored, err := graph.UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout error: %v", err)
	}

	parsed := Parse(restored)
	if parsed.PlotRadius != l.PlotRadius || len(parsed.Paths) != len(l.Paths) {
		t.Error("layout should survive a JSON round trip")
	}
	if parsed.Paths[0].Points != l.Paths[0].Points {
		t.Error("path points should survive a JSON round trip")
	}
}
