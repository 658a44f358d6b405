package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind classifies a column so the renderer can reject invalid
// column/plot-type combinations before drawing anything.
type Kind int

const (
	Categorical Kind = iota
	Numeric
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "categorical"
}

// Column is a named, ordered column of cell values. Numeric columns also
// carry their parsed values.
type Column struct {
	Name   string
	Kind   Kind
	Values []string
	floats []float64
}

// Floats returns the parsed values of a numeric column. For categorical
// columns it returns nil.
func (c *Column) Floats() []float64 { return c.floats }

func (c *Column) Len() int { return len(c.Values) }

// Table is the in-memory form of a downloaded dataset. The first column is
// always the categorical/ordinal axis; every other column is a candidate
// value axis.
type Table struct {
	Columns []Column
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i := range t.Columns {
		names[i] = t.Columns[i].Name
	}
	return names
}

// Column finds a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// XColumn is the table's first column, the fixed x-axis of every plot.
func (t *Table) XColumn() *Column { return &t.Columns[0] }

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// FromRecords builds a typed table from header + data rows. A column is
// numeric when every non-empty cell parses as a float and at least one
// cell is non-empty.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset has no header row")
	}
	header := records[0]
	if len(header) == 0 {
		return nil, fmt.Errorf("dataset header is empty")
	}

	rows := records[1:]
	table := &Table{Columns: make([]Column, len(header))}

	for i, name := range header {
		col := Column{
			Name:   strings.TrimSpace(name),
			Values: make([]string, len(rows)),
		}
		for j, row := range rows {
			if i < len(row) {
				col.Values[j] = strings.TrimSpace(row[i])
			}
		}
		col.Kind, col.floats = classify(col.Values)
		table.Columns[i] = col
	}

	return table, nil
}

func classify(values []string) (Kind, []float64) {
	floats := make([]float64, len(values))
	seen := false
	for i, v := range values {
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			// ParseFloat accepts NaN/Inf tokens, but they cannot serve as
			// plot values, so such columns stay categorical.
			return Categorical, nil
		}
		floats[i] = f
		seen = true
	}
	if !seen {
		return Categorical, nil
	}
	return Numeric, floats
}
