package centrality

// Scores maps node identifiers to a centrality value.
type Scores map[string]float64

// Graph is the capability the centrality measures need from a graph
// container.
type Graph interface {
	Nodes() []string
	Neighbors(id string) []string
	Degree(id string) int
	NodeCount() int
}

// Degree returns the degree centrality of every node: its degree divided
// by n-1, the maximum possible in a simple graph. A self-loop contributes
// one to the degree. For a single-node graph every score is zero.
func Degree(g Graph) Scores {
	nodes := g.Nodes()
	n := len(nodes)

	scores := make(Scores, n)
	if n <= 1 {
		for _, id := range nodes {
			scores[id] = 0
		}
		return scores
	}

	norm := 1 / float64(n-1)
	for _, id := range nodes {
		scores[id] = float64(g.Degree(id)) * norm
	}
	return scores
}
