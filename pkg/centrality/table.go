package centrality

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

// Row holds all three centrality measures for one node.
type Row struct {
	Node        string
	Degree      float64
	Betweenness float64
	Eigenvector float64
}

// Table is the joined centrality result, one row per node in ascending
// node order.
type Table struct {
	rows []Row
}

// Analyze computes all three measures and joins them into a single table.
// Every node receives exactly one row; the join is total by construction
// since all measures run on the same graph.
func Analyze(g Graph, opts ...EigenOption) (*Table, error) {
	degree := Degree(g)
	betweenness := Betweenness(g)
	eigenvector, err := Eigenvector(g, opts...)
	if err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	rows := make([]Row, 0, len(nodes))
	for _, id := range nodes {
		d, okD := degree[id]
		b, okB := betweenness[id]
		e, okE := eigenvector[id]
		if !okD || !okB || !okE {
			return nil, errors.New(errors.ErrCodeInternal, "centrality join lost node %q", id)
		}
		rows = append(rows, Row{Node: id, Degree: d, Betweenness: b, Eigenvector: e})
	}
	return &Table{rows: rows}, nil
}

// Rows returns the table rows in ascending node order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// WriteCSV writes the table as CSV with a node,degree,betweenness,
// eigenvector header. Floats use the shortest exact representation.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"node", "degree", "betweenness", "eigenvector"}); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "write csv header")
	}
	for _, r := range t.rows {
		record := []string{
			r.Node,
			strconv.FormatFloat(r.Degree, 'g', -1, 64),
			strconv.FormatFloat(r.Betweenness, 'g', -1, 64),
			strconv.FormatFloat(r.Eigenvector, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(errors.ErrCodeFilesystem, err, "write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "flush csv")
	}
	return nil
}

// WriteFile writes the table as CSV to path, creating parent directories
// as needed and replacing any existing file.
func (t *Table) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeFilesystem, err, "create output directory %q", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "create %q", path)
	}
	defer f.Close()

	if err := t.WriteCSV(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "close %q", path)
	}
	return nil
}
