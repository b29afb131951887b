package model

import "time"

// CellKind discriminates the closed set of cell variants a table may carry.
type CellKind int

const (
	CellMissing CellKind = iota
	CellNumber
	CellDate
	CellText
)

// Cell is one table value: a native number, a native date, free text, or
// missing. Typed coercions in the parser consume cells per logical field so
// that runtime type inspection stays out of the row pipeline.
type Cell struct {
	Kind   CellKind
	Number float64
	Date   time.Time
	Text   string
}

// MissingCell is the absent-value cell.
var MissingCell = Cell{Kind: CellMissing}

// NumberCell builds a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// DateCell builds a native date cell.
func DateCell(t time.Time) Cell {
	return Cell{Kind: CellDate, Date: t}
}

// TextCell builds a free-text cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// IsMissing reports whether the cell carries no value.
func (c Cell) IsMissing() bool {
	return c.Kind == CellMissing
}

// Table is a column-named tabular value. Rows are aligned with Headers;
// column order carries no meaning beyond the positional fallback applied
// when no header can be resolved.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Cell returns the cell at (row, col), or MissingCell when the row is
// shorter than the header set.
func (t *Table) Cell(row, col int) Cell {
	if row < 0 || row >= len(t.Rows) {
		return MissingCell
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return MissingCell
	}
	return r[col]
}
