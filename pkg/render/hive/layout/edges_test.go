package layout

import (
	"math"
	"testing"

	"github.com/nilesh-iiita/hiveplot/pkg/hive"
)

func pointNear(t *testing.T, got Point, r, theta float64, label string) {
	t.Helper()
	want := Cartesian(r, theta)
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Errorf("%s = (%v, %v), want Cartesian(%v, %v) = (%v, %v)",
			label, got.X, got.Y, r, theta, want.X, want.Y)
	}
}

func TestCrossGroupPathSeamShift(t *testing.T) {
	set, cfg := twoGroupSet(t)

	// n1 (group a, theta 0) to n4 (group b, theta π). The ordering shift
	// and the first-to-last seam shift combine: the start lands at -π/6
	// and the end at 7π/6, routing across the seam.
	l, err := Build(set, []hive.Edge{{Source: "n1", Target: "n4"}}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Paths) != 1 {
		t.Fatalf("len(Paths) = %d, want 1", len(l.Paths))
	}

	p := l.Paths[0]
	if p.Source != "n1" || p.Target != "n4" {
		t.Errorf("path endpoints = %s → %s", p.Source, p.Target)
	}

	startT := -math.Pi / 6
	endT := 7 * math.Pi / 6
	midT := (startT + endT) / 2 // π/2

	pointNear(t, p.Points[0], 100, startT, "start")
	pointNear(t, p.Points[1], 100, midT, "control 1")
	pointNear(t, p.Points[2], 100, midT, "control 2")
	pointNear(t, p.Points[3], 100, endT, "end")
}

func TestReversedPathMirrorsShift(t *testing.T) {
	set, cfg := twoGroupSet(t)

	l, err := Build(set, []hive.Edge{{Source: "n4", Target: "n1"}}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	p := l.Paths[0]
	pointNear(t, p.Points[0], 100, 7*math.Pi/6, "start")
	pointNear(t, p.Points[3], 100, -math.Pi/6, "end")
}

func TestInternalPathBowsApart(t *testing.T) {
	set, cfg := twoGroupSet(t)

	// Both endpoints in group a at theta 0: the coincident angles bow
	// apart by one minor angle each, matching the split axis pair.
	l, err := Build(set, []hive.Edge{{Source: "n1", Target: "n2"}}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	p := l.Paths[0]
	minor := math.Pi / 6
	pointNear(t, p.Points[0], 100, -minor, "start")
	pointNear(t, p.Points[3], 110, minor, "end")

	// Outward edge: control radii are (min, max) with no reversal.
	pointNear(t, p.Points[1], 100, 0, "control 1")
	pointNear(t, p.Points[2], 110, 0, "control 2")
}

func TestInwardPathReversesControls(t *testing.T) {
	set, cfg := twoGroupSet(t)

	// n3 (radius 120) to n4 (radius 100): for inward edges the control
	// points come out in reversed radial order, outer first.
	l, err := Build(set, []hive.Edge{{Source: "n3", Target: "n4"}}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	p := l.Paths[0]
	startT := -math.Pi / 6
	endT := 7 * math.Pi / 6
	midT := (startT + endT) / 2

	pointNear(t, p.Points[0], 120, startT, "start")
	pointNear(t, p.Points[1], 120, midT, "control 1")
	pointNear(t, p.Points[2], 100, midT, "control 2")
	pointNear(t, p.Points[3], 100, endT, "end")
}

func TestThreeGroupWrapAroundPath(t *testing.T) {
	set := hive.NewNodeSet()
	for _, g := range []struct {
		name  hive.Group
		nodes []string
	}{
		{"a", []string{"a1"}},
		{"b", []string{"b1"}},
		{"c", []string{"c1"}},
	} {
		if err := set.AddGroup(g.name, g.nodes...); err != nil {
			t.Fatal(err)
		}
	}
	cfg := Config{Scale: 10, Colors: DefaultColors(set.Groups())}

	// a1 (theta 0) to c1 (theta 4π/3): the start angle is more than half
	// a turn from the end, so it rebases to 2π before the seam shift.
	// Net angles: start 2π − π/9, end 4π/3 + π/9.
	l, err := Build(set, []hive.Edge{{Source: "a1", Target: "c1"}}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	minor := math.Pi / 9
	p := l.Paths[0]
	pointNear(t, p.Points[0], 100, 2*math.Pi-minor, "start")
	pointNear(t, p.Points[3], 100, 4*math.Pi/3+minor, "end")
}

func TestPathsPreserveOrderAndAttrs(t *testing.T) {
	set, cfg := twoGroupSet(t)

	edges := []hive.Edge{
		{Source: "n1", Target: "n4", Attrs: map[string]any{"color": "#d62728"}},
		{Source: "n2", Target: "n4"},
		{Source: "n3", Target: "n4"},
	}
	l, err := Build(set, edges, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(l.Paths) != 3 {
		t.Fatalf("len(Paths) = %d, want 3", len(l.Paths))
	}
	for i, e := range edges {
		if l.Paths[i].Source != e.Source {
			t.Errorf("path %d source = %s, want %s (input order)", i, l.Paths[i].Source, e.Source)
		}
	}
	if l.Paths[0].Attrs["color"] != "#d62728" {
		t.Error("edge attrs should flow through to the path")
	}
	if l.Paths[1].Attrs != nil {
		t.Error("absent attrs should stay nil")
	}
}
