package hive

import (
	"testing"

	"github.com/nilesh-iiita/hiveplot/pkg/errors"
)

func buildSet(t *testing.T) *NodeSet {
	t.Helper()
	s := NewNodeSet()
	if err := s.AddGroup("genes", "g1", "g2", "g3"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddGroup("proteins", "p1", "p2"); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestIndexLookups(t *testing.T) {
	ix, err := buildSet(t).Index()
	if err != nil {
		t.Fatalf("Index error: %v", err)
	}

	group, err := ix.FindGroup("g2")
	if err != nil || group != "genes" {
		t.Errorf("FindGroup(g2) = %q, %v; want genes", group, err)
	}

	rank, err := ix.Rank("g3")
	if err != nil || rank != 2 {
		t.Errorf("Rank(g3) = %d, %v; want 2", rank, err)
	}

	gi, err := ix.GroupIndexOf("p1")
	if err != nil || gi != 1 {
		t.Errorf("GroupIndexOf(p1) = %d, %v; want 1", gi, err)
	}

	if !ix.Contains("p2") {
		t.Error("Contains(p2) should be true")
	}
	if ix.Contains("missing") {
		t.Error("Contains(missing) should be false")
	}
}

func TestIndexNodeNotFound(t *testing.T) {
	ix, err := buildSet(t).Index()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ix.FindGroup("missing"); !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("FindGroup(missing) should be NODE_NOT_FOUND, got %v", err)
	}
	if _, err := ix.Rank("missing"); !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("Rank(missing) should be NODE_NOT_FOUND, got %v", err)
	}
}

func TestIndexDuplicateWithinGroup(t *testing.T) {
	s := NewNodeSet()
	_ = s.AddGroup("genes", "g1", "g1")

	_, err := s.Index()
	if !errors.Is(err, errors.ErrCodeDuplicateNode) {
		t.Errorf("duplicate within group should be DUPLICATE_NODE, got %v", err)
	}
}

func TestIndexDuplicateAcrossGroups(t *testing.T) {
	s := NewNodeSet()
	_ = s.AddGroup("genes", "shared")
	_ = s.AddGroup("proteins", "shared")

	_, err := s.Index()
	if !errors.Is(err, errors.ErrCodeDuplicateNode) {
		t.Errorf("cross-group duplicate should be DUPLICATE_NODE, got %v", err)
	}
}

func TestValidateEdges(t *testing.T) {
	ix, err := buildSet(t).Index()
	if err != nil {
		t.Fatal(err)
	}

	good := []Edge{{Source: "g1", Target: "p1"}, {Source: "p2", Target: "g3"}}
	if err := ix.Validate(good); err != nil {
		t.Errorf("Validate(good) error: %v", err)
	}

	badSource := []Edge{{Source: "ghost", Target: "p1"}}
	if err := ix.Validate(badSource); !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("missing source should be NODE_NOT_FOUND, got %v", err)
	}

	badTarget := []Edge{{Source: "g1", Target: "ghost"}}
	if err := ix.Validate(badTarget); !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("missing target should be NODE_NOT_FOUND, got %v", err)
	}
}

func TestHasInternalEdges(t *testing.T) {
	ix, err := buildSet(t).Index()
	if err != nil {
		t.Fatal(err)
	}

	edges := []Edge{
		{Source: "g1", Target: "g2"}, // internal to genes
		{Source: "g1", Target: "p1"}, // cross-group
	}

	if !ix.HasInternalEdges("genes", edges) {
		t.Error("genes should have internal edges")
	}
	if ix.HasInternalEdges("proteins", edges) {
		t.Error("proteins should not have internal edges")
	}
	if ix.HasInternalEdges("genes", nil) {
		t.Error("empty edge list should report no internal edges")
	}
}
