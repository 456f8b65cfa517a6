package hive

import (
	"github.com/nilesh-iiita/hiveplot/pkg/errors"
)

// membership records where a node lives: its owning group, the group's
// position in the display order, and the node's rank within the group.
type membership struct {
	group    Group
	groupIdx int
	rank     int
}

// Index is the validated node→group lookup built from a NodeSet.
// Construction performs the eager membership checks; lookups on a built
// Index never fail for nodes that passed validation. An Index is immutable
// and safe for concurrent use.
type Index struct {
	set     *NodeSet
	members map[string]membership
}

// Index builds the membership index, checking the uniqueness invariant:
// every node ID appears in exactly one group, exactly once. Violations
// return a DUPLICATE_NODE error and no index.
func (s *NodeSet) Index() (*Index, error) {
	members := make(map[string]membership, s.TotalNodes())
	for gi, g := range s.groups {
		for rank, id := range s.nodes[g] {
			if prev, seen := members[id]; seen {
				if prev.group == g {
					return nil, errors.New(errors.ErrCodeDuplicateNode,
						"node %q appears twice in group %q", id, g)
				}
				return nil, errors.New(errors.ErrCodeDuplicateNode,
					"node %q belongs to both %q and %q", id, prev.group, g)
			}
			members[id] = membership{group: g, groupIdx: gi, rank: rank}
		}
	}
	return &Index{set: s, members: members}, nil
}

// NodeSet returns the node set this index was built from.
func (ix *Index) NodeSet() *NodeSet { return ix.set }

// FindGroup returns the group that owns node, or a NODE_NOT_FOUND error if
// the node is absent from every group's sequence.
func (ix *Index) FindGroup(node string) (Group, error) {
	m, ok := ix.members[node]
	if !ok {
		return "", errors.New(errors.ErrCodeNodeNotFound, "node %q not in any group", node)
	}
	return m.group, nil
}

// Rank returns the node's 0-based position within its group's sequence.
func (ix *Index) Rank(node string) (int, error) {
	m, ok := ix.members[node]
	if !ok {
		return 0, errors.New(errors.ErrCodeNodeNotFound, "node %q not in any group", node)
	}
	return m.rank, nil
}

// GroupIndexOf returns the display-order position of the node's group.
func (ix *Index) GroupIndexOf(node string) (int, error) {
	m, ok := ix.members[node]
	if !ok {
		return 0, errors.New(errors.ErrCodeNodeNotFound, "node %q not in any group", node)
	}
	return m.groupIdx, nil
}

// Contains reports whether the node exists in the set.
func (ix *Index) Contains(node string) bool {
	_, ok := ix.members[node]
	return ok
}

// Validate checks that every edge endpoint exists in the node set.
// This is the up-front pass that lets per-edge layout code skip existence
// checks entirely; the first missing endpoint aborts with NODE_NOT_FOUND.
func (ix *Index) Validate(edges []Edge) error {
	for _, e := range edges {
		if !ix.Contains(e.Source) {
			return errors.New(errors.ErrCodeNodeNotFound,
				"edge source %q not in any group", e.Source)
		}
		if !ix.Contains(e.Target) {
			return errors.New(errors.ErrCodeNodeNotFound,
				"edge target %q not in any group", e.Target)
		}
	}
	return nil
}

// HasInternalEdges reports whether any edge has both endpoints inside g.
// The scan is O(E); layout code caches the result per group rather than
// recomputing it per edge.
func (ix *Index) HasInternalEdges(g Group, edges []Edge) bool {
	for _, e := range edges {
		src, srcOK := ix.members[e.Source]
		dst, dstOK := ix.members[e.Target]
		if srcOK && dstOK && src.group == g && dst.group == g {
			return true
		}
	}
	return false
}
