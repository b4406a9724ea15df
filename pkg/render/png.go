// Package render draws network visualizations from a graph and a layout.
//
// The raster path produces a PNG with plain circular nodes and straight
// edges, optionally labeled with node identities. Edge weight is not
// encoded visually. The export path serializes the graph to Graphviz DOT
// and can render it to SVG with the neato engine.
package render

import (
	"bytes"
	"math"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
)

// Graph is the capability the renderer needs from a graph container.
type Graph interface {
	Nodes() []string
	Edges() []graph.Edge
}

// Canvas defaults: a 6.4 x 4.8 inch frame at 300 DPI with a tight margin
// around the drawn extent.
const (
	DefaultDPI   = 300
	widthInches  = 6.4
	heightInches = 4.8
	marginFrac   = 0.05
)

// Candidate label fonts, tried in order. Rendering falls back to the
// built-in bitmap face when none is installed.
var labelFonts = []string{"DejaVuSans.ttf", "Arial.ttf", "Helvetica.ttf"}

type config struct {
	labels bool
	dpi    int
}

// Option configures PNG rendering.
type Option func(*config)

// WithLabels draws each node's identity next to it.
func WithLabels() Option {
	return func(c *config) { c.labels = true }
}

// WithDPI overrides the output resolution.
func WithDPI(dpi int) Option {
	return func(c *config) { c.dpi = dpi }
}

// PNG renders the graph at the given layout positions and returns the
// encoded image bytes. Every node in the graph must have a position;
// a missing position is an internal invariant violation.
func PNG(g Graph, l layout.Layout, opts ...Option) ([]byte, error) {
	cfg := config{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, id := range g.Nodes() {
		if _, ok := l[id]; !ok {
			return nil, errors.New(errors.ErrCodeInternal, "no layout position for node %q", id)
		}
	}

	w := int(widthInches * float64(cfg.dpi))
	h := int(heightInches * float64(cfg.dpi))
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	place := fitToCanvas(l, float64(w), float64(h))

	// Edges first so nodes draw on top.
	dc.SetRGBA(0, 0, 0, 0.55)
	dc.SetLineWidth(float64(cfg.dpi) / 150)
	for _, e := range g.Edges() {
		if e.A == e.B {
			continue // loops have no extent to draw
		}
		pa := place(l[e.A])
		pb := place(l[e.B])
		dc.DrawLine(pa.X, pa.Y, pb.X, pb.Y)
		dc.Stroke()
	}

	radius := float64(cfg.dpi) / 36
	dc.SetRGB(0.12, 0.35, 0.66)
	for _, id := range g.Nodes() {
		p := place(l[id])
		dc.DrawCircle(p.X, p.Y, radius)
		dc.Fill()
	}

	if cfg.labels {
		loadLabelFont(dc, float64(cfg.dpi)/7.5)
		dc.SetRGB(0, 0, 0)
		for _, id := range g.Nodes() {
			p := place(l[id])
			dc.DrawStringAnchored(id, p.X, p.Y-radius*1.6, 0.5, 0)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// fitToCanvas maps layout space onto the pixel canvas, preserving aspect
// ratio and leaving a margin so nodes at the extent stay fully visible.
func fitToCanvas(l layout.Layout, w, h float64) func(layout.Point) layout.Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range l {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	marginX := w * marginFrac
	marginY := h * marginFrac

	scale := 1.0
	if spanX > 0 || spanY > 0 {
		sx := (w - 2*marginX) / max(spanX, 1e-12)
		sy := (h - 2*marginY) / max(spanY, 1e-12)
		scale = min(sx, sy)
	}

	// Center the scaled extent on the canvas.
	offX := (w - spanX*scale) / 2
	offY := (h - spanY*scale) / 2

	return func(p layout.Point) layout.Point {
		return layout.Point{
			X: offX + (p.X-minX)*scale,
			Y: offY + (p.Y-minY)*scale,
		}
	}
}

// loadLabelFont tries system fonts for crisp labels at print resolution.
// On failure the context keeps its built-in face, which is still legible.
func loadLabelFont(dc *gg.Context, points float64) {
	for _, name := range labelFonts {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		if err := dc.LoadFontFace(path, points); err == nil {
			return
		}
	}
}
