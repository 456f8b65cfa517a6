package hive

import (
	"testing"

	"github.com/nilesh-iiita/hiveplot/pkg/errors"
)

func TestAddGroup(t *testing.T) {
	s := NewNodeSet()

	if err := s.AddGroup("genes", "g1", "g2"); err != nil {
		t.Fatalf("AddGroup error: %v", err)
	}
	if err := s.AddGroup("proteins", "p1"); err != nil {
		t.Fatalf("AddGroup error: %v", err)
	}

	if got := s.NumGroups(); got != 2 {
		t.Errorf("NumGroups = %d, want 2", got)
	}
	if got := s.TotalNodes(); got != 3 {
		t.Errorf("TotalNodes = %d, want 3", got)
	}
	if got := s.AxisLength("genes"); got != 2 {
		t.Errorf("AxisLength(genes) = %d, want 2", got)
	}
}

func TestAddGroupDuplicate(t *testing.T) {
	s := NewNodeSet()
	if err := s.AddGroup("genes", "g1"); err != nil {
		t.Fatalf("AddGroup error: %v", err)
	}

	err := s.AddGroup("genes", "g2")
	if !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("duplicate group should be INVALID_GRAPH, got %v", err)
	}
}

func TestAddGroupMaxGroups(t *testing.T) {
	s := NewNodeSet()
	for _, g := range []Group{"a", "b", "c"} {
		if err := s.AddGroup(g, "n-"+string(g)); err != nil {
			t.Fatalf("AddGroup(%s) error: %v", g, err)
		}
	}

	err := s.AddGroup("d", "n-d")
	if !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("fourth group should be INVALID_GRAPH, got %v", err)
	}
	if got := s.NumGroups(); got != MaxGroups {
		t.Errorf("NumGroups after failed add = %d, want %d", got, MaxGroups)
	}
}

func TestAddGroupInvalidNames(t *testing.T) {
	tests := []struct {
		name  string
		group Group
		nodes []string
	}{
		{"empty group name", "", nil},
		{"comma in group name", "a,b", nil},
		{"empty node id", "genes", []string{""}},
		{"control char in node id", "genes", []string{"g\x001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewNodeSet()
			if err := s.AddGroup(tt.group, tt.nodes...); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGroupsOrderAndClone(t *testing.T) {
	s := NewNodeSet()
	_ = s.AddGroup("b", "n1")
	_ = s.AddGroup("a", "n2")

	groups := s.Groups()
	if groups[0] != "b" || groups[1] != "a" {
		t.Errorf("Groups should preserve insertion order, got %v", groups)
	}

	// Mutating the returned slices must not affect the set.
	groups[0] = "mutated"
	nodes := s.Nodes("b")
	nodes[0] = "mutated"

	if s.Groups()[0] != "b" {
		t.Error("Groups should return a copy")
	}
	if s.Nodes("b")[0] != "n1" {
		t.Error("Nodes should return a copy")
	}
}

func TestGroupIndex(t *testing.T) {
	s := NewNodeSet()
	_ = s.AddGroup("x", "n1")
	_ = s.AddGroup("y", "n2")

	if idx, ok := s.GroupIndex("y"); !ok || idx != 1 {
		t.Errorf("GroupIndex(y) = %d, %v; want 1, true", idx, ok)
	}
	if _, ok := s.GroupIndex("missing"); ok {
		t.Error("GroupIndex should report missing groups")
	}
}

func TestNodesUnknownGroup(t *testing.T) {
	s := NewNodeSet()
	if nodes := s.Nodes("missing"); nodes != nil {
		t.Errorf("Nodes(missing) = %v, want nil", nodes)
	}
}
