// Package edgelist loads weighted edge lists from CSV files.
//
// An edge list is a tabular representation of a graph where each row names
// one edge: two endpoint identifiers and a numeric weight. The input must
// carry a header row with at least the columns "nodeA", "nodeB" and "weight";
// extra columns are ignored and column order does not matter.
package edgelist

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

// Column names required in the input header.
const (
	ColumnNodeA  = "nodeA"
	ColumnNodeB  = "nodeB"
	ColumnWeight = "weight"
)

// Record is a single weighted edge read from the input table.
type Record struct {
	NodeA  string
	NodeB  string
	Weight float64
}

// Table is an ordered, in-memory edge relation.
// Row order is preserved from the source file; duplicate (NodeA, NodeB)
// pairs are allowed at this layer and only collapse during graph construction.
type Table struct {
	records []Record
}

// NewTable builds a table from pre-constructed records.
// Mostly useful in tests and for programmatic pipelines.
func NewTable(records []Record) *Table {
	return &Table{records: records}
}

// ReadFile loads the full edge list at path into memory.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open edge list %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a CSV edge list from r.
// It returns an INVALID_FORMAT error when the header lacks a required
// column or a weight cell does not parse as a number.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "edge list is empty: missing header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read header")
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read row %d", line)
		}

		weight, err := strconv.ParseFloat(row[cols.weight], 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"row %d: weight %q is not numeric", line, row[cols.weight])
		}
		records = append(records, Record{
			NodeA:  row[cols.nodeA],
			NodeB:  row[cols.nodeB],
			Weight: weight,
		})
	}

	return &Table{records: records}, nil
}

// columnIndex holds the positions of the required columns in the header.
type columnIndex struct {
	nodeA, nodeB, weight int
}

func resolveColumns(header []string) (columnIndex, error) {
	cols := columnIndex{nodeA: -1, nodeB: -1, weight: -1}
	for i, name := range header {
		switch name {
		case ColumnNodeA:
			cols.nodeA = i
		case ColumnNodeB:
			cols.nodeB = i
		case ColumnWeight:
			cols.weight = i
		}
	}
	for _, c := range []struct {
		name string
		idx  int
	}{
		{ColumnNodeA, cols.nodeA},
		{ColumnNodeB, cols.nodeB},
		{ColumnWeight, cols.weight},
	} {
		if c.idx < 0 {
			return cols, errors.New(errors.ErrCodeInvalidFormat, "missing required column %q", c.name)
		}
	}
	return cols, nil
}

// Filter returns a new table keeping only rows whose weight is strictly
// greater than threshold. An empty result is not an error: downstream graph
// construction decides how to fail on an empty relation.
func (t *Table) Filter(threshold float64) *Table {
	kept := make([]Record, 0, len(t.records))
	for _, r := range t.records {
		if r.Weight > threshold {
			kept = append(kept, r)
		}
	}
	return &Table{records: kept}
}

// Records returns the rows in source order.
// The returned slice is a read-only view; callers must not modify it.
func (t *Table) Records() []Record { return t.records }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.records) }
