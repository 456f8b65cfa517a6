package sink

import (
	"github.com/nilesh-iiita/hiveplot/pkg/graph"
	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/layout"
)

// RenderJSON serializes the layout to its JSON wire format.
// The optional style name is recorded so a later render pass can reproduce
// the same visual settings.
func RenderJSON(l layout.Layout, style string) ([]byte, error) {
	exported := l.Export()
	exported.Style = style
	return graph.MarshalLayout(exported)
}
