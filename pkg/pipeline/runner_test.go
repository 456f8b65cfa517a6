package pipeline

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nilesh-iiita/hiveplot/pkg/cache"
	"github.com/nilesh-iiita/hiveplot/pkg/graph"
)

func testGraph() graph.Graph {
	return graph.Graph{
		Groups: []graph.GroupSpec{
			{Name: "a", Color: "#1f77b4", Nodes: []string{"n1", "n2"}},
			{Name: "b", Color: "#ff7f0e", Nodes: []string{"n3"}},
		},
		Edges: []graph.Edge{
			{Source: "n1", Target: "n3"},
		},
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(cache.NewNullCache(), nil, quietLogger())
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	result, err := r.Execute(context.Background(), testGraph(), opts)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.GraphHash == "" {
		t.Error("GraphHash not set")
	}
	if result.Stats.NodeCount != 3 || result.Stats.EdgeCount != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if !result.Layout.IsHive() || len(result.Layout.Axes) != 2 {
		t.Errorf("layout = %+v", result.Layout)
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("null cache reported a hit")
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("svg artifact missing or malformed")
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("json artifact missing")
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())

	_, err := r.Execute(context.Background(), testGraph(), Options{Formats: []string{"bmp"}})
	if err == nil {
		t.Fatal("expected error for invalid format, got nil")
	}
}

func TestRunnerLayoutCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	r := NewRunner(fc, nil, quietLogger())
	ctx := context.Background()
	g := testGraph()

	l1, hit, err := r.GenerateLayoutWithCacheInfo(ctx, g, Options{})
	if err != nil {
		t.Fatalf("first layout failed: %v", err)
	}
	if hit {
		t.Error("first run reported a cache hit")
	}

	l2, hit, err := r.GenerateLayoutWithCacheInfo(ctx, g, Options{})
	if err != nil {
		t.Fatalf("second layout failed: %v", err)
	}
	if !hit {
		t.Error("second run missed the cache")
	}
	if l2.PlotRadius != l1.PlotRadius || len(l2.Nodes) != len(l1.Nodes) {
		t.Errorf("cached layout differs: %+v vs %+v", l2, l1)
	}

	// A different scale must not hit the first run's entry.
	_, hit, err = r.GenerateLayoutWithCacheInfo(ctx, g, Options{Scale: 20})
	if err != nil {
		t.Fatalf("scaled layout failed: %v", err)
	}
	if hit {
		t.Error("different scale hit the cache")
	}
}

func TestRunnerLayoutRefreshBypassesCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	r := NewRunner(fc, nil, quietLogger())
	ctx := context.Background()
	g := testGraph()

	if _, _, err := r.GenerateLayoutWithCacheInfo(ctx, g, Options{}); err != nil {
		t.Fatalf("first layout failed: %v", err)
	}
	_, hit, err := r.GenerateLayoutWithCacheInfo(ctx, g, Options{Refresh: true})
	if err != nil {
		t.Fatalf("refresh layout failed: %v", err)
	}
	if hit {
		t.Error("refresh run reported a cache hit")
	}
}

func TestRunnerRenderCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	r := NewRunner(fc, nil, quietLogger())
	ctx := context.Background()
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	l, err := r.GenerateLayout(ctx, testGraph(), opts)
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	first, hit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	if hit {
		t.Error("first render reported a cache hit")
	}

	second, hit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if !hit {
		t.Error("second render missed the cache")
	}
	if !bytes.Equal(first[FormatSVG], second[FormatSVG]) {
		t.Error("cached svg differs from rendered svg")
	}
}

func TestGenerateNodelinkLayout(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	g := testGraph()
	g.Directed = true

	l, err := r.GenerateLayout(context.Background(), g, Options{VizType: "nodelink"})
	if err != nil {
		t.Fatalf("GenerateLayout failed: %v", err)
	}

	if !l.IsNodelink() {
		t.Errorf("viz_type = %q, want nodelink", l.VizType)
	}
	if !l.Directed {
		t.Error("Directed flag dropped")
	}
	if !strings.Contains(l.DOT, "digraph") || !strings.Contains(l.DOT, "->") {
		t.Errorf("DOT output missing directed syntax:\n%s", l.DOT)
	}
}

func TestGenerateLayoutPropagatesGraphErrors(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	g := graph.Graph{
		Groups: []graph.GroupSpec{{Name: "a", Nodes: []string{"n1"}}},
		Edges:  []graph.Edge{{Source: "n1", Target: "ghost"}},
	}

	_, err := r.GenerateLayout(context.Background(), g, Options{})
	if err == nil {
		t.Fatal("expected error for unknown edge endpoint, got nil")
	}
}
