package layout_test

import (
	"fmt"

	"github.com/nilesh-iiita/hiveplot/pkg/hive"
	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/layout"
)

func Example() {
	set := hive.NewNodeSet()
	_ = set.AddGroup("genes", "tp53", "brca1")
	_ = set.AddGroup("proteins", "p53")

	cfg := layout.Config{
		Scale:  10,
		Colors: layout.DefaultColors(set.Groups()),
	}

	l, err := layout.Build(set, []hive.Edge{{Source: "tp53", Target: "p53"}}, cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("axes: %d\n", len(l.Axes))
	fmt.Printf("nodes: %d\n", len(l.Nodes))
	fmt.Printf("paths: %d\n", len(l.Paths))
	fmt.Printf("plot radius: %.0f\n", l.PlotRadius)
	// Output:
	// axes: 2
	// nodes: 3
	// paths: 1
	// plot radius: 120
}
