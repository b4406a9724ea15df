package centrality

import (
	"math"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

// Power iteration defaults, matching the usual convergence criteria for
// eigenvector centrality on sparse graphs.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

type eigenConfig struct {
	tolerance     float64
	maxIterations int
}

// EigenOption configures the eigenvector power iteration.
type EigenOption func(*eigenConfig)

// WithTolerance sets the per-node convergence tolerance.
func WithTolerance(tol float64) EigenOption {
	return func(c *eigenConfig) { c.tolerance = tol }
}

// WithMaxIterations caps the number of power iteration steps.
func WithMaxIterations(n int) EigenOption {
	return func(c *eigenConfig) { c.maxIterations = n }
}

// Eigenvector returns the eigenvector centrality of every node, computed
// by power iteration on the unweighted adjacency structure and normalized
// to unit Euclidean length. Iteration stops once the total change falls
// below tolerance scaled by the node count; exceeding the iteration cap
// without converging returns a NO_CONVERGENCE error.
func Eigenvector(g Graph, opts ...EigenOption) (Scores, error) {
	cfg := eigenConfig{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return Scores{}, nil
	}

	// Uniform start vector.
	x := make(Scores, n)
	for _, id := range nodes {
		x[id] = 1 / float64(n)
	}

	for iter := 0; iter < cfg.maxIterations; iter++ {
		last := x
		x = make(Scores, n)
		for _, id := range nodes {
			x[id] = last[id]
		}
		for _, id := range nodes {
			for _, nbr := range g.Neighbors(id) {
				x[nbr] += last[id]
			}
		}

		// Scale to unit Euclidean length; an all-zero vector (no edges)
		// keeps its values so iteration terminates on the change test.
		var norm float64
		for _, v := range x {
			norm += v * v
		}
		if norm = math.Sqrt(norm); norm > 0 {
			for id := range x {
				x[id] /= norm
			}
		}

		var change float64
		for id, v := range x {
			change += math.Abs(v - last[id])
		}
		if change < float64(n)*cfg.tolerance {
			return x, nil
		}
	}

	return nil, errors.New(errors.ErrCodeNoConvergence,
		"eigenvector centrality did not converge within %d iterations", cfg.maxIterations)
}
