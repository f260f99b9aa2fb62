// Package graph holds a GFA graph in memory for inspection.
//
// The DOT converter in package dot is purely streaming and never looks back.
// This package is for the cases where the whole graph is needed at once:
// counting nodes and edges, finding links whose endpoints were never
// declared, and exporting the graph as JSON.
//
// # Model
//
// A [Graph] keeps nodes and edges in input order. Segments become declared
// [Node] values; a link endpoint that no segment declared becomes an
// undeclared node the first time it is seen, so [Graph.AddEdge] never fails
// on dangling references. Duplicate segment names are rejected by
// [Graph.AddNode] and recorded by [Load].
//
// # Usage
//
//	g, err := graph.Load(ctx, f, gfa.ScanOptions{})
//	if err != nil {
//	    return err
//	}
//	st := g.Stats()
//	fmt.Println(st.Segments, st.Links, len(st.Undeclared))
package graph
