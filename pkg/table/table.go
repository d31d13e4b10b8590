// Package table holds the in-memory representation the cleaning steps work on:
// named, typed columns over ordered rows of cells.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the declared type of a column.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column describes one named vertical slice of the table.
type Column struct {
	Name string
	Kind Kind
}

// Row holds one cell per column, in column order.
type Row []Value

// Table is an ordered set of columns and rows.
type Table struct {
	Columns []Column
	Rows    []Row
}

// New creates an empty table with the given columns.
func New(cols ...Column) *Table {
	c := make([]Column, len(cols))
	copy(c, cols)
	return &Table{Columns: c}
}

// Append adds a row. Short rows are padded with missing cells and long rows
// are truncated so every row matches the column count.
func (t *Table) Append(cells ...Value) *Table {
	row := make(Row, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns a copy of the cells of column j.
func (t *Table) Column(j int) []Value {
	out := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[j]
	}
	return out
}

// Floats returns the present numeric cells of column j.
func (t *Table) Floats(j int) []float64 {
	var out []float64
	for _, row := range t.Rows {
		if f, ok := row[j].Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// MissingCount returns the number of missing cells in column j.
func (t *Table) MissingCount(j int) int {
	n := 0
	for _, row := range t.Rows {
		if row[j].IsMissing() {
			n++
		}
	}
	return n
}

// Fill replaces every missing cell of column j with v and returns the number
// of cells replaced.
func (t *Table) Fill(j int, v Value) int {
	n := 0
	for _, row := range t.Rows {
		if row[j].IsMissing() {
			row[j] = v
			n++
		}
	}
	return n
}

// Filter keeps the rows for which keep returns true, preserving order, and
// returns the number of rows removed.
func (t *Table) Filter(keep func(Row) bool) int {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	removed := len(t.Rows) - len(kept)
	// clear the tail so dropped rows can be collected
	for i := len(kept); i < len(t.Rows); i++ {
		t.Rows[i] = nil
	}
	t.Rows = kept
	return removed
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: make([]Column, len(t.Columns)),
		Rows:    make([]Row, len(t.Rows)),
	}
	copy(out.Columns, t.Columns)
	for i, row := range t.Rows {
		r := make(Row, len(row))
		copy(r, row)
		out.Rows[i] = r
	}
	return out
}

// Equal reports whether both tables have the same columns and the same rows
// in the same order.
func (t *Table) Equal(o *Table) bool {
	if len(t.Columns) != len(o.Columns) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Columns {
		if t.Columns[i] != o.Columns[i] {
			return false
		}
	}
	for i := range t.Rows {
		if !t.Rows[i].Equal(o.Rows[i]) {
			return false
		}
	}
	return true
}

// Equal reports cell-wise equality.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Key returns a string identifying the row's values, usable as a map key.
func (r Row) Key() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		if s, ok := v.Text(); ok {
			b.WriteString(strconv.Quote(s))
			continue
		}
		if f, ok := v.Float(); ok {
			b.WriteByte('n')
			b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
			continue
		}
		b.WriteByte('m')
	}
	return b.String()
}

// String renders the table as tab-separated text, mostly for debugging.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Names(), "\t"))
	for _, row := range t.Rows {
		b.WriteByte('\n')
		for j, v := range row {
			if j > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(v.String())
		}
	}
	return b.String()
}
