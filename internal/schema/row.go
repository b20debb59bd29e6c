package schema

import "github.com/quasdata/colfam/internal/errs"

// Cell pairs one of a table's declared columns with a value staged for a
// write.
type Cell struct {
	Column *Column
	Value  any
}

// Row is an ordered mapping from column to value, scoped to one table.
// Rows are assembled through RowBuilder before a write; a valid Row only
// ever references columns declared on its table, with at most one value
// for the identifier column.
type Row struct {
	table *Table
	cells []Cell
}

// Table returns the table this row is scoped to.
func (r *Row) Table() *Table { return r.table }

// Cells returns the row's cells in the order they were set.
func (r *Row) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// Columns returns the row's columns in the order they were set.
func (r *Row) Columns() []*Column {
	out := make([]*Column, len(r.cells))
	for i, c := range r.cells {
		out[i] = c.Column
	}
	return out
}

// Value returns the value staged for the named column.
func (r *Row) Value(column string) (any, bool) {
	for _, c := range r.cells {
		if c.Column.Name == column {
			return c.Value, true
		}
	}
	return nil, false
}

// ID returns the value staged for the identifier column, if any.
func (r *Row) ID() (any, bool) {
	for _, c := range r.cells {
		if c.Column.IsID {
			return c.Value, true
		}
	}
	return nil, false
}

// RowBuilder assembles a Row for one table. Errors are recorded on first
// occurrence and surfaced by Build, so calls can be chained:
//
//	row, err := schema.NewRowBuilder(table).
//		SetID("k1").
//		Set("name", "alice").
//		Build()
type RowBuilder struct {
	table *Table
	cells []Cell
	idSet bool
	err   error
}

// NewRowBuilder returns a builder for a row in table.
func NewRowBuilder(table *Table) *RowBuilder {
	return &RowBuilder{table: table}
}

// SetID stages the identifier value. At most one identifier value may be
// supplied per row.
func (b *RowBuilder) SetID(value any) *RowBuilder {
	if b.err != nil {
		return b
	}
	id := b.table.IDColumn()
	if id == nil {
		b.err = errs.Newf(errs.ErrKindInvalidInput,
			"table %q has no identifier column", b.table.Name())
		return b
	}
	return b.stage(id, value)
}

// Set stages a value for the named declared column. Setting the identifier
// column by name counts toward the single identifier slot.
func (b *RowBuilder) Set(column string, value any) *RowBuilder {
	if b.err != nil {
		return b
	}
	col := b.table.Column(column)
	if col == nil {
		b.err = errs.Newf(errs.ErrKindInvalidInput,
			"column %q doesn't belong to table %q", column, b.table.Name())
		return b
	}
	return b.stage(col, value)
}

func (b *RowBuilder) stage(col *Column, value any) *RowBuilder {
	if col.IsID {
		if b.idSet {
			b.err = errs.Newf(errs.ErrKindInvalidInput,
				"more than one value supplied for the identifier column of table %q",
				b.table.Name())
			return b
		}
		b.idSet = true
	}
	for i := range b.cells {
		if b.cells[i].Column == col {
			b.cells[i].Value = value // last write wins
			return b
		}
	}
	b.cells = append(b.cells, Cell{Column: col, Value: value})
	return b
}

// Build validates and returns the assembled row. A failed builder returns
// the first error recorded; the row is nil in that case.
func (b *RowBuilder) Build() (*Row, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Row{table: b.table, cells: b.cells}, nil
}
