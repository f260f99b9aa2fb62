package graph

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID         string `json:"id"`
	Sequence   string `json:"sequence,omitempty"`
	Undeclared bool   `json:"undeclared,omitempty"`
}

type jsonEdge struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Overlap string `json:"overlap,omitempty"`
}

// WriteJSON encodes the graph as indented JSON:
//
//	{
//	  "nodes": [{"id": "1", "sequence": "ACGT"}, {"id": "9", "undeclared": true}],
//	  "edges": [{"from": "1", "to": "9", "overlap": "0M"}]
//	}
//
// Nodes and edges appear in input order.
func WriteJSON(g *Graph, w io.Writer) error {
	out := jsonGraph{
		Nodes: make([]jsonNode, len(g.order)),
		Edges: make([]jsonEdge, len(g.edges)),
	}
	for i, n := range g.order {
		out.Nodes[i] = jsonNode{ID: n.ID, Sequence: n.Sequence, Undeclared: !n.Declared}
	}
	for i, e := range g.edges {
		out.Edges[i] = jsonEdge(e)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
