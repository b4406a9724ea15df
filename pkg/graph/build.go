package graph

import (
	"github.com/edgeviz/edgeviz/pkg/edgelist"
	"github.com/edgeviz/edgeviz/pkg/errors"
)

// Build constructs an undirected weighted graph from a filtered edge table.
//
// The node set is the union of both endpoint columns; each row becomes one
// edge. When the same unordered pair appears more than once, the last-seen
// weight wins and the pair still counts as a single edge.
//
// Returns an EMPTY_GRAPH error when the table has no rows: every downstream
// consumer (layout, centrality) requires at least one node.
func Build(t *edgelist.Table) (*Graph, error) {
	if t.Len() == 0 {
		return nil, errors.New(errors.ErrCodeEmptyGraph,
			"no edges in relation; lower the weight threshold or check the input")
	}
	g := New()
	for _, r := range t.Records() {
		g.AddEdge(r.NodeA, r.NodeB, r.Weight)
	}
	return g, nil
}
