package sink

import (
	"strings"
	"testing"

	"github.com/nilesh-iiita/hiveplot/pkg/hive"
	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/layout"
	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/styles"
)

func testLayout(t *testing.T, directed bool) layout.Layout {
	t.Helper()

	set := hive.NewNodeSet()
	if err := set.AddGroup("a", "n1", "n2"); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if err := set.AddGroup("b", "n3"); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}

	edges := []hive.Edge{
		{Source: "n1", Target: "n3", Attrs: map[string]any{"color": "#d62728"}},
		{Source: "n2", Target: "n3"},
	}

	l, err := layout.Build(set, edges, layout.Config{
		Scale:    10,
		Directed: directed,
		Colors: map[hive.Group]string{
			"a": "#1f77b4",
			"b": "#ff7f0e",
		},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return l
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(testLayout(t, false)))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root element:\n%s", svg[:min(len(svg), 120)])
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing svg tag")
	}

	if got := strings.Count(svg, `class="axis"`); got != 2 {
		t.Errorf("axis count = %d, want 2", got)
	}
	if got := strings.Count(svg, `class="node"`); got != 3 {
		t.Errorf("node count = %d, want 3", got)
	}
	if got := strings.Count(svg, `class="edge"`); got != 2 {
		t.Errorf("edge count = %d, want 2", got)
	}
}

func TestRenderSVGViewBox(t *testing.T) {
	// PlotRadius 120 plus default padding 10 on each side.
	svg := string(RenderSVG(testLayout(t, false)))
	if !strings.Contains(svg, `viewBox="0 0 260.0 260.0"`) {
		t.Errorf("unexpected viewBox:\n%s", svg[:min(len(svg), 120)])
	}
}

func TestRenderSVGColors(t *testing.T) {
	svg := string(RenderSVG(testLayout(t, false)))

	if !strings.Contains(svg, `fill="#1f77b4"`) || !strings.Contains(svg, `fill="#ff7f0e"`) {
		t.Error("group colors missing from node markers")
	}
	// One edge carries an explicit color, the other gets the default.
	if !strings.Contains(svg, `stroke="#d62728"`) {
		t.Error("edge color attribute not honored")
	}
	if !strings.Contains(svg, `stroke="#555555"`) {
		t.Error("default edge color missing")
	}
}

func TestRenderSVGLabels(t *testing.T) {
	l := testLayout(t, false)

	plain := string(RenderSVG(l))
	if strings.Contains(plain, `class="node-label"`) {
		t.Error("labels rendered without WithLabels")
	}

	labeled := string(RenderSVG(l, WithLabels()))
	for _, id := range []string{">n1<", ">n2<", ">n3<"} {
		if !strings.Contains(labeled, id) {
			t.Errorf("label %s missing", id)
		}
	}
}

func TestRenderSVGDirectedArrows(t *testing.T) {
	undirected := string(RenderSVG(testLayout(t, false)))
	if strings.Contains(undirected, `marker-end`) {
		t.Error("undirected plot has arrow markers")
	}

	directed := string(RenderSVG(testLayout(t, true)))
	if !strings.Contains(directed, `marker-end="url(#arrow)"`) {
		t.Error("directed plot missing arrow markers")
	}
}

func TestRenderSVGInkStyle(t *testing.T) {
	svg := string(RenderSVG(testLayout(t, false), WithStyle(styles.Ink{})))

	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, `class="node"`) {
		t.Error("ink style lost document structure")
	}
	if strings.Contains(svg, `fill="white"`) {
		t.Error("ink style should not use the light backdrop")
	}
}

func TestRenderSVGPadding(t *testing.T) {
	svg := string(RenderSVG(testLayout(t, false), WithPadding(40)))
	if !strings.Contains(svg, `viewBox="0 0 320.0 320.0"`) {
		t.Errorf("padding not applied:\n%s", svg[:min(len(svg), 120)])
	}
}
