package centrality

// Betweenness returns the betweenness centrality of every node: the
// fraction of shortest paths between other node pairs that pass through
// it, accumulated with Brandes' algorithm over unweighted breadth-first
// shortest paths. Scores are normalized by 2/((n-1)(n-2)); for fewer than
// three nodes every score is zero.
func Betweenness(g Graph) Scores {
	nodes := g.Nodes()
	n := len(nodes)

	scores := make(Scores, n)
	for _, id := range nodes {
		scores[id] = 0
	}
	if n < 3 {
		return scores
	}

	for _, source := range nodes {
		// Single-source shortest path counts via BFS.
		stack := make([]string, 0, n)
		preds := make(map[string][]string, n)
		sigma := map[string]float64{source: 1}
		dist := map[string]int{source: 0}

		queue := []string{source}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, w := range g.Neighbors(v) {
				if w == v {
					continue // self-loops lie on no shortest path
				}
				d, seen := dist[w]
				if !seen {
					d = dist[v] + 1
					dist[w] = d
					queue = append(queue, w)
				}
				if d == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		// Back-propagate dependencies in reverse BFS order.
		delta := make(map[string]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			coeff := (1 + delta[w]) / sigma[w]
			for _, v := range preds[w] {
				delta[v] += sigma[v] * coeff
			}
			if w != source {
				scores[w] += delta[w]
			}
		}
	}

	// Each undirected pair was counted from both endpoints; fold that into
	// the pair-count normalization.
	norm := 1 / (float64(n-1) * float64(n-2))
	for id := range scores {
		scores[id] *= norm
	}
	return scores
}
