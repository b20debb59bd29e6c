package schema

import "github.com/quasdata/colfam/internal/errs"

// IDColumnName is the name of the identifier column every table created
// through this engine carries. Its value becomes the record's store key
// rather than a stored cell value.
const IDColumnName = "_id"

// ColumnType is the logical type of a column's values. The store itself
// only ever sees bytes; the type drives encoding on the write path.
type ColumnType int

const (
	TypeString ColumnType = iota + 1
	TypeInt
	TypeFloat
	TypeBool
	TypeBytes
)

func (t ColumnType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Column is a named, typed column. Every non-identifier column belongs to
// exactly one column family; the identifier column belongs to none.
type Column struct {
	Name   string
	Type   ColumnType
	Family string // empty for the identifier column
	IsID   bool
}

// Table is a named, ordered collection of columns owned by one schema.
// The store persists the table's column families, not the declared columns —
// columns exist only in this in-memory view.
type Table struct {
	name     string
	schema   Schema // back-reference, non-owning
	families []string
	columns  []*Column
}

func newTable(s Schema, name string, families []string) *Table {
	t := &Table{
		name:     name,
		schema:   s,
		families: append([]string(nil), families...),
	}
	t.columns = append(t.columns, &Column{
		Name: IDColumnName,
		Type: TypeString,
		IsID: true,
	})
	return t
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Schema returns the schema this table belongs to.
func (t *Table) Schema() Schema { return t.schema }

// Families returns the table's column families, in declaration order.
func (t *Table) Families() []string {
	out := make([]string, len(t.families))
	copy(out, t.families)
	return out
}

// Columns returns the declared columns in declaration order, the identifier
// column first.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Column returns the declared column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IDColumn returns the table's identifier column.
func (t *Table) IDColumn() *Column {
	for _, c := range t.columns {
		if c.IsID {
			return c
		}
	}
	return nil
}

// DefineColumn declares a qualified column under one of the table's column
// families. Declaring is a client-side act only — the store never sees
// individual columns.
func (t *Table) DefineColumn(family, name string, typ ColumnType) (*Column, error) {
	if name == "" {
		return nil, errs.New(errs.ErrKindInvalidInput, "column name is empty")
	}
	if !t.hasFamily(family) {
		return nil, errs.Newf(errs.ErrKindInvalidInput,
			"unknown column family %q on table %q", family, t.name)
	}
	if t.Column(name) != nil {
		return nil, errs.Newf(errs.ErrKindInvalidInput,
			"column %q already declared on table %q", name, t.name)
	}
	c := &Column{Name: name, Type: typ, Family: family}
	t.columns = append(t.columns, c)
	return c, nil
}

func (t *Table) hasFamily(family string) bool {
	for _, f := range t.families {
		if f == family {
			return true
		}
	}
	return false
}

// --- shared error helpers ---

var errEmptyTableName = errs.New(errs.ErrKindInvalidInput, "table name is empty")

func errDuplicateTable(table, schema string) *errs.Error {
	return errs.Newf(errs.ErrKindInvalidInput,
		"table %q already exists in schema %q", table, schema)
}
