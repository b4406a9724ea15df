// Package layout computes 2D node positions for network rendering.
//
// The placement uses a Fruchterman-Reingold force simulation: connected
// nodes attract, all node pairs repel, and a cooling temperature caps
// per-step movement. The simulation is deterministic for a given seed and
// graph, but coordinate values are an internal rendering detail - only
// validity (finite coordinates for every node) is part of the contract.
package layout

import (
	"math"
	"math/rand/v2"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

// Graph is the capability the layout engine needs from a graph container.
type Graph interface {
	Nodes() []string
	Neighbors(id string) []string
	NodeCount() int
}

// Point is a 2D node coordinate in layout space.
type Point struct {
	X float64
	Y float64
}

// Layout maps each node identifier to its computed position.
type Layout map[string]Point

// Defaults for the force simulation.
const (
	DefaultSeed       = uint64(42)
	DefaultIterations = 100
	DefaultWidth      = 1.0
	DefaultHeight     = 1.0
)

type config struct {
	seed       uint64
	iterations int
	width      float64
	height     float64
}

// Option configures the force simulation.
type Option func(*config)

// WithSeed sets the random seed for initial node placement.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithIterations sets the number of simulation steps.
func WithIterations(n int) Option {
	return func(c *config) { c.iterations = n }
}

// WithSize sets the extent of the layout frame.
func WithSize(width, height float64) Option {
	return func(c *config) { c.width = width; c.height = height }
}

// Compute runs the force simulation and returns a position for every node.
//
// It is a pure function of the graph topology and options: the input graph
// is never mutated. Returns an EMPTY_GRAPH error for a graph with no nodes.
func Compute(g Graph, opts ...Option) (Layout, error) {
	cfg := config{
		seed:       DefaultSeed,
		iterations: DefaultIterations,
		width:      DefaultWidth,
		height:     DefaultHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeEmptyGraph, "cannot lay out a graph with no nodes")
	}
	if n == 1 {
		return Layout{nodes[0]: {X: cfg.width / 2, Y: cfg.height / 2}}, nil
	}

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0xdeadbeef))

	pos := make([]Point, n)
	for i := range pos {
		pos[i] = Point{X: rng.Float64() * cfg.width, Y: rng.Float64() * cfg.height}
	}

	index := make(map[string]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	// Optimal pairwise distance for the available area.
	area := cfg.width * cfg.height
	k := math.Sqrt(area / float64(n))

	disp := make([]Point, n)
	temp := cfg.width / 10

	for iter := 0; iter < cfg.iterations; iter++ {
		for i := range disp {
			disp[i] = Point{}
		}

		// Repulsion between every node pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy, d := delta(pos[i], pos[j], rng)
				f := k * k / d
				disp[i].X += dx / d * f
				disp[i].Y += dy / d * f
				disp[j].X -= dx / d * f
				disp[j].Y -= dy / d * f
			}
		}

		// Attraction along edges.
		for i, id := range nodes {
			for _, nbr := range g.Neighbors(id) {
				j := index[nbr]
				if j <= i {
					continue // each edge once; skips self-loops, which exert no force
				}
				dx, dy, d := delta(pos[i], pos[j], rng)
				f := d * d / k
				disp[i].X -= dx / d * f
				disp[i].Y -= dy / d * f
				disp[j].X += dx / d * f
				disp[j].Y += dy / d * f
			}
		}

		// Move, capped by temperature, clamped to the frame.
		for i := range pos {
			dlen := math.Hypot(disp[i].X, disp[i].Y)
			if dlen == 0 {
				continue
			}
			step := math.Min(dlen, temp)
			pos[i].X = clamp(pos[i].X+disp[i].X/dlen*step, 0, cfg.width)
			pos[i].Y = clamp(pos[i].Y+disp[i].Y/dlen*step, 0, cfg.height)
		}

		// Linear cooling.
		temp -= cfg.width / 10 / float64(cfg.iterations+1)
		if temp < 1e-6 {
			temp = 1e-6
		}
	}

	result := make(Layout, n)
	for i, id := range nodes {
		p := pos[i]
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return nil, errors.New(errors.ErrCodeInternal, "non-finite coordinate for node %q", id)
		}
		result[id] = p
	}
	return result, nil
}

// delta returns the displacement vector and distance between two points,
// jittering coincident points so force terms never divide by zero.
func delta(a, b Point, rng *rand.Rand) (dx, dy, d float64) {
	dx = a.X - b.X
	dy = a.Y - b.Y
	d = math.Hypot(dx, dy)
	if d < 1e-9 {
		dx = (rng.Float64() - 0.5) * 1e-4
		dy = (rng.Float64() - 0.5) * 1e-4
		d = math.Hypot(dx, dy)
	}
	return dx, dy, d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
