package graph

// Stats summarises a loaded graph.
type Stats struct {
	Segments         int      `json:"segments"`
	Links            int      `json:"links"`
	Undeclared       []string `json:"undeclared,omitempty"` // link endpoints with no segment, first-seen order
	Duplicates       []string `json:"duplicates,omitempty"` // segment names declared more than once
	TotalLength      int      `json:"total_length"`         // sum of known sequence lengths
	UnknownSequences int      `json:"unknown_sequences"`    // segments whose sequence is "*"
	Sources          int      `json:"sources"`              // declared nodes with no incoming edge
	Sinks            int      `json:"sinks"`                // declared nodes with no outgoing edge
	SelfLoops        int      `json:"self_loops"`
}

// Stats computes summary counts in one pass over nodes and edges.
func (g *Graph) Stats() Stats {
	st := Stats{
		Links:      len(g.edges),
		Duplicates: g.duplicates,
	}

	for _, n := range g.order {
		if !n.Declared {
			st.Undeclared = append(st.Undeclared, n.ID)
			continue
		}
		st.Segments++
		if n.Sequence == "*" {
			st.UnknownSequences++
		} else {
			st.TotalLength += len(n.Sequence)
		}
		if g.incoming[n.ID] == 0 {
			st.Sources++
		}
		if g.outgoing[n.ID] == 0 {
			st.Sinks++
		}
	}

	for _, e := range g.edges {
		if e.From == e.To {
			st.SelfLoops++
		}
	}
	return st
}
