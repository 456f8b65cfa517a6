package layout

import (
	"github.com/nilesh-iiita/hiveplot/pkg/errors"
	"github.com/nilesh-iiita/hiveplot/pkg/hive"
)

// DefaultScale is the radial spacing unit used when the caller does not
// choose one. One rank step along an axis spans one scale unit.
const DefaultScale = 10.0

// defaultPalette cycles through up to MaxGroups entries when the caller
// supplies no color map of their own.
var defaultPalette = []string{"#1f77b4", "#ff7f0e", "#2ca02c"}

// Config holds the tunable inputs of a layout computation.
type Config struct {
	// Scale is the radial spacing unit. Derived constants: the node marker
	// radius is Scale/4 and the internal exclusion radius is Scale².
	Scale float64

	// Directed records whether the edge list is directed. It does not alter
	// the path math; renderers may use it, e.g. for arrowheads.
	Directed bool

	// Colors maps each group to a color token, passed through to the
	// renderer unchanged. Every group in the node set needs an entry.
	Colors map[hive.Group]string
}

// DefaultColors returns a color map assigning the default palette to the
// given groups in order.
func DefaultColors(groups []hive.Group) map[hive.Group]string {
	colors := make(map[hive.Group]string, len(groups))
	for i, g := range groups {
		colors[g] = defaultPalette[i%len(defaultPalette)]
	}
	return colors
}

// InternalRadius returns the inner exclusion radius (Scale²) that keeps
// axes from starting at the origin.
func (c Config) InternalRadius() float64 { return c.Scale * c.Scale }

// DotRadius returns the node marker radius (Scale/4).
func (c Config) DotRadius() float64 { return c.Scale / 4 }

// validate checks the config against a node set. Failures are INVALID_CONFIG
// errors: no groups, non-positive scale, or a group without a color entry.
func (c Config) validate(set *hive.NodeSet) error {
	if set.NumGroups() == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "node set has no groups")
	}
	if c.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %v", c.Scale)
	}
	for _, g := range set.Groups() {
		token, ok := c.Colors[g]
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "no color for group %q", g)
		}
		if err := errors.ValidateColor(token); err != nil {
			return err
		}
	}
	return nil
}
