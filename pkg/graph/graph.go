package graph

import (
	"errors"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] and [Graph.AddEdge]
	// when an identifier is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a declared node
	// with the same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")
)

// Node is a graph vertex. Declared is false for IDs that only appear as
// link endpoints.
type Node struct {
	ID       string
	Sequence string
	Declared bool
}

// Edge is a directed connection. Overlap is the link's CIGAR string.
type Edge struct {
	From    string
	To      string
	Overlap string
}

// Graph is a directed multigraph that preserves insertion order.
//
// The zero value is not usable - use New. Graph is not safe for concurrent use.
type Graph struct {
	nodes    map[string]*Node
	order    []*Node
	edges    []Edge
	outgoing map[string]int
	incoming map[string]int

	duplicates []string // redeclared segment names, recorded by Load
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string]int),
		incoming: make(map[string]int),
	}
}

// AddNode declares a node. If the ID was already seen as an undeclared link
// endpoint, the existing node is promoted in place and keeps its position.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if existing, ok := g.nodes[n.ID]; ok {
		if existing.Declared {
			return ErrDuplicateNodeID
		}
		existing.Sequence = n.Sequence
		existing.Declared = true
		return nil
	}
	n.Declared = true
	g.insert(&n)
	return nil
}

// AddEdge adds a directed edge. Unknown endpoints are added as undeclared
// nodes. Parallel edges are kept.
func (g *Graph) AddEdge(e Edge) error {
	if e.From == "" || e.To == "" {
		return ErrInvalidNodeID
	}
	g.touch(e.From)
	g.touch(e.To)
	g.edges = append(g.edges, e)
	g.outgoing[e.From]++
	g.incoming[e.To]++
	return nil
}

func (g *Graph) touch(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.insert(&Node{ID: id})
	}
}

func (g *Graph) insert(n *Node) {
	g.nodes[n.ID] = n
	g.order = append(g.order, n)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in first-seen order.
func (g *Graph) Nodes() []*Node { return g.order }

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of nodes, declared or not.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of edges leaving id.
func (g *Graph) OutDegree(id string) int { return g.outgoing[id] }

// InDegree returns the number of edges entering id.
func (g *Graph) InDegree(id string) int { return g.incoming[id] }
