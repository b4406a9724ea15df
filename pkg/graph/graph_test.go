package graph

import (
	"slices"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/edgelist"
	"github.com/edgeviz/edgeviz/pkg/errors"
)

func TestAddEdge(t *testing.T) {
	g := New()
	g.AddEdge("a", "b", 600)
	g.AddEdge("a", "c", 700)

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if !slices.Equal(g.Nodes(), []string{"a", "b", "c"}) {
		t.Errorf("Nodes() = %v, want [a b c]", g.Nodes())
	}
	if !slices.Equal(g.Neighbors("a"), []string{"b", "c"}) {
		t.Errorf("Neighbors(a) = %v, want [b c]", g.Neighbors("a"))
	}
	if w, ok := g.Weight("b", "a"); !ok || w != 600 {
		t.Errorf("Weight(b,a) = %v, %v, want 600, true", w, ok)
	}
}

// The same unordered pair collapses into one edge; the last weight wins.
func TestAddEdgeDuplicatePair(t *testing.T) {
	g := New()
	g.AddEdge("a", "b", 600)
	g.AddEdge("b", "a", 900)

	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if w, _ := g.Weight("a", "b"); w != 900 {
		t.Errorf("Weight(a,b) = %v, want 900 (last write wins)", w)
	}
	if w, _ := g.Weight("b", "a"); w != 900 {
		t.Errorf("Weight(b,a) = %v, want 900 (last write wins)", w)
	}
}

func TestSelfLoop(t *testing.T) {
	g := New()
	g.AddEdge("a", "a", 5)

	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if !slices.Equal(g.Neighbors("a"), []string{"a"}) {
		t.Errorf("Neighbors(a) = %v, want [a]", g.Neighbors("a"))
	}
}

func TestEdges(t *testing.T) {
	g := New()
	g.AddEdge("c", "a", 1)
	g.AddEdge("b", "a", 2)

	want := []Edge{{A: "a", B: "b", Weight: 2}, {A: "a", B: "c", Weight: 1}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestBuild(t *testing.T) {
	table := edgelist.NewTable([]edgelist.Record{
		{NodeA: "a", NodeB: "b", Weight: 600},
		{NodeA: "a", NodeB: "c", Weight: 700},
	})
	g, err := Build(table)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 2 {
		t.Errorf("Build() = %d nodes, %d edges, want 3, 2", g.NodeCount(), g.EdgeCount())
	}
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(edgelist.NewTable(nil))
	if !errors.Is(err, errors.ErrCodeEmptyGraph) {
		t.Fatalf("Build(empty) error = %v, want code EMPTY_GRAPH", err)
	}
}

// Every node in a built graph appears in at least one edge.
func TestBuildNoIsolatedNodes(t *testing.T) {
	table := edgelist.NewTable([]edgelist.Record{
		{NodeA: "a", NodeB: "b", Weight: 600},
		{NodeA: "b", NodeB: "c", Weight: 400},
		{NodeA: "a", NodeB: "c", Weight: 700},
	})
	g, err := Build(table)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for _, id := range g.Nodes() {
		if g.Degree(id) == 0 {
			t.Errorf("node %q has no incident edge", id)
		}
	}
}

// Graph content depends only on table content, not row order,
// except where duplicate pairs make order meaningful by policy.
func TestBuildDeterministic(t *testing.T) {
	forward := edgelist.NewTable([]edgelist.Record{
		{NodeA: "a", NodeB: "b", Weight: 600},
		{NodeA: "b", NodeB: "c", Weight: 400},
	})
	reversed := edgelist.NewTable([]edgelist.Record{
		{NodeA: "b", NodeB: "c", Weight: 400},
		{NodeA: "a", NodeB: "b", Weight: 600},
	})

	g1, err := Build(forward)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	g2, err := Build(reversed)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !slices.Equal(g1.Nodes(), g2.Nodes()) {
		t.Errorf("node sets differ: %v vs %v", g1.Nodes(), g2.Nodes())
	}
	if !slices.Equal(g1.Edges(), g2.Edges()) {
		t.Errorf("edge sets differ: %v vs %v", g1.Edges(), g2.Edges())
	}
}
