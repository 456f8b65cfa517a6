package hive

import (
	"slices"

	"github.com/nilesh-iiita/hiveplot/pkg/errors"
)

// MaxGroups is the maximum number of node groups a hive plot supports.
// Each group occupies one radial axis (or an axis pair when the group has
// within-group edges), and the visual idiom breaks down past three axes.
const MaxGroups = 3

// Group identifies one node category. Groups are rendered on their own axis
// in the order they were added to the NodeSet.
type Group string

// Edge represents a connection between two nodes, with an opaque attribute
// payload that flows through the layout untouched (e.g. a pre-mapped color).
type Edge struct {
	Source string
	Target string
	Attrs  map[string]any
}

// NodeSet holds the grouped, ordered node universe for one hive plot.
// Group insertion order is significant: the first group is the zero-angle
// reference axis. Within a group, node order is rank; position zero sits
// closest to the plot center.
//
// The zero value is not usable; create instances with NewNodeSet.
type NodeSet struct {
	groups []Group
	nodes  map[Group][]string
}

// NewNodeSet creates an empty node set.
func NewNodeSet() *NodeSet {
	return &NodeSet{nodes: make(map[Group][]string)}
}

// AddGroup appends a group with its ordered node sequence.
// Returns an INVALID_GRAPH error if the group name is invalid or already
// present, or if adding it would exceed MaxGroups. Node-level invariants
// (uniqueness across groups) are checked later by Index.
func (s *NodeSet) AddGroup(g Group, nodeIDs ...string) error {
	if err := errors.ValidateGroupName(string(g)); err != nil {
		return err
	}
	if _, exists := s.nodes[g]; exists {
		return errors.New(errors.ErrCodeInvalidGraph, "duplicate group %q", g)
	}
	if len(s.groups) >= MaxGroups {
		return errors.New(errors.ErrCodeInvalidGraph, "at most %d groups supported", MaxGroups)
	}
	for _, id := range nodeIDs {
		if err := errors.ValidateNodeID(id); err != nil {
			return err
		}
	}
	s.groups = append(s.groups, g)
	s.nodes[g] = slices.Clone(nodeIDs)
	return nil
}

// Groups returns the groups in insertion order.
// The returned slice is a copy and safe to modify.
func (s *NodeSet) Groups() []Group {
	return slices.Clone(s.groups)
}

// NumGroups returns the number of groups.
func (s *NodeSet) NumGroups() int { return len(s.groups) }

// Nodes returns the ordered node sequence for a group, or nil if the group
// is unknown. The returned slice is a copy and safe to modify.
func (s *NodeSet) Nodes(g Group) []string {
	return slices.Clone(s.nodes[g])
}

// AxisLength returns the number of nodes in a group, which is the length of
// the group's axis in radial units.
func (s *NodeSet) AxisLength(g Group) int {
	return len(s.nodes[g])
}

// TotalNodes returns the number of nodes across all groups.
func (s *NodeSet) TotalNodes() int {
	total := 0
	for _, ids := range s.nodes {
		total += len(ids)
	}
	return total
}

// GroupIndex returns the 0-based position of g in the group order.
// The second return value reports whether the group exists.
func (s *NodeSet) GroupIndex(g Group) (int, bool) {
	for i, cand := range s.groups {
		if cand == g {
			return i, true
		}
	}
	return 0, false
}
