package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
)

func testGraph() *graph.Graph {
	g := graph.New()
	g.AddEdge("a", "b", 600)
	g.AddEdge("a", "c", 700)
	return g
}

func testLayout() layout.Layout {
	return layout.Layout{
		"a": {X: 0.5, Y: 0.5},
		"b": {X: 0.1, Y: 0.2},
		"c": {X: 0.9, Y: 0.8},
	}
}

func TestPNG(t *testing.T) {
	data, err := PNG(testGraph(), testLayout())
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}

	bounds := img.Bounds()
	wantW := int(widthInches * DefaultDPI)
	wantH := int(heightInches * DefaultDPI)
	if bounds.Dx() != wantW || bounds.Dy() != wantH {
		t.Errorf("image = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantW, wantH)
	}
}

func TestPNGWithLabels(t *testing.T) {
	plain, err := PNG(testGraph(), testLayout(), WithDPI(72))
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	labeled, err := PNG(testGraph(), testLayout(), WithDPI(72), WithLabels())
	if err != nil {
		t.Fatalf("PNG(WithLabels) error = %v", err)
	}
	if bytes.Equal(plain, labeled) {
		t.Error("labeled output is identical to unlabeled output")
	}
}

func TestPNGMissingPosition(t *testing.T) {
	l := testLayout()
	delete(l, "c")
	if _, err := PNG(testGraph(), l); err == nil {
		t.Fatal("PNG() with missing position succeeded, want error")
	}
}

func TestPNGDegenerateLayout(t *testing.T) {
	// All nodes at the same point must still render without dividing by zero.
	l := layout.Layout{
		"a": {X: 0.5, Y: 0.5},
		"b": {X: 0.5, Y: 0.5},
		"c": {X: 0.5, Y: 0.5},
	}
	if _, err := PNG(testGraph(), l, WithDPI(72)); err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph())

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("DOT is not an undirected graph:\n%s", dot)
	}
	for _, want := range []string{
		"layout=neato;",
		`"a";`,
		`"b";`,
		`"c";`,
		`"a" -- "b" [weight=600];`,
		`"a" -- "c" [weight=700];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Errorf("DOT contains directed edges:\n%s", dot)
	}
}
