// Package graph provides the undirected weighted graph built from an edge list.
//
// The container is a simple graph: one edge per unordered node pair, with a
// float64 weight attribute. Nodes exist only because an edge names them, so
// a built graph never contains isolated nodes. Accessors return node and
// edge slices in sorted order for deterministic downstream output.
package graph

import (
	"slices"
)

// Edge is an undirected weighted edge. A and B are stored in sorted order
// so that (x, y) and (y, x) describe the same edge.
type Edge struct {
	A      string
	B      string
	Weight float64
}

// Graph is an undirected weighted simple graph keyed by node identifier.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// mutation without external synchronization.
type Graph struct {
	adj       map[string]map[string]float64
	edgeCount int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]float64)}
}

// AddEdge inserts or updates the undirected edge between a and b.
// Adding the same unordered pair again replaces the stored weight
// (last write wins) without creating a second edge. Self-loops are
// stored as a single loop edge.
func (g *Graph) AddEdge(a, b string, weight float64) {
	if _, exists := g.adj[a][b]; !exists {
		g.edgeCount++
	}
	g.link(a, b, weight)
	if a != b {
		g.link(b, a, weight)
	}
}

func (g *Graph) link(from, to string, weight float64) {
	if g.adj[from] == nil {
		g.adj[from] = make(map[string]float64)
	}
	g.adj[from][to] = weight
}

// HasNode reports whether id is in the node set.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct unordered edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Nodes returns all node identifiers in sorted order.
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Neighbors returns the sorted neighbor identifiers of id.
// Returns nil if id is not in the graph. A self-loop makes a node its
// own neighbor.
func (g *Graph) Neighbors(id string) []string {
	nbrs := g.adj[id]
	if nbrs == nil {
		return nil
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Degree returns the number of distinct neighbors of id, or 0 if id is
// not in the graph.
func (g *Graph) Degree(id string) int { return len(g.adj[id]) }

// Weight returns the weight of the edge between a and b, and whether
// such an edge exists.
func (g *Graph) Weight(a, b string) (float64, bool) {
	w, ok := g.adj[a][b]
	return w, ok
}

// Edges returns all edges sorted by (A, B), with A <= B within each edge.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for a, nbrs := range g.adj {
		for b, w := range nbrs {
			if a <= b {
				edges = append(edges, Edge{A: a, B: b, Weight: w})
			}
		}
	}
	slices.SortFunc(edges, func(x, y Edge) int {
		if x.A != y.A {
			if x.A < y.A {
				return -1
			}
			return 1
		}
		if x.B < y.B {
			return -1
		}
		if x.B > y.B {
			return 1
		}
		return 0
	})
	return edges
}
