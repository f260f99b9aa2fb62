package graph_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/theseus-aligner/seqtools/pkg/gfa"
	"github.com/theseus-aligner/seqtools/pkg/graph"
)

func ExampleLoad() {
	input := "S\t1\tACGT\nS\t2\tTT\nL\t1\t+\t2\t+\t0M\nL\t2\t+\t3\t+\t0M\n"

	g, err := graph.Load(context.Background(), strings.NewReader(input), gfa.ScanOptions{})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	st := g.Stats()
	fmt.Println("segments:", st.Segments)
	fmt.Println("links:", st.Links)
	fmt.Println("undeclared:", st.Undeclared)
	fmt.Println("length:", st.TotalLength)
	// Output:
	// segments: 2
	// links: 2
	// undeclared: [3]
	// length: 6
}

func ExampleWriteJSON() {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: "1", Sequence: "ACGT"})
	_ = g.AddEdge(graph.Edge{From: "1", To: "2", Overlap: "0M"})

	if err := graph.WriteJSON(g, os.Stdout); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// {
	//   "nodes": [
	//     {
	//       "id": "1",
	//       "sequence": "ACGT"
	//     },
	//     {
	//       "id": "2",
	//       "undeclared": true
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "from": "1",
	//       "to": "2",
	//       "overlap": "0M"
	//     }
	//   ]
	// }
}
