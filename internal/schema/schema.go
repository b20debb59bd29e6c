// Package schema models relational-style table definitions over a
// column-family oriented store: schemas, tables, typed columns, the
// column-family grouping the store actually persists, and the row shape
// validated before a write.
//
// A Schema comes in two capability variants. *MutableSchema supports
// structural changes (tables added after a successful creation call);
// *ImmutableSchema is a read-only view with no mutator methods at all.
// Code that needs to alter structure checks for the mutable variant and
// rejects everything else — see the mutate package.
package schema

// Schema is a named collection of table definitions.
type Schema interface {
	// Name returns the schema name.
	Name() string

	// Tables returns all table definitions, in creation order.
	Tables() []*Table

	// Table returns the table with the given name, or nil when absent.
	Table(name string) *Table
}

// MutableSchema is the variant of Schema that supports structural changes.
// It is not safe for concurrent mutation; callers sharing one instance
// across goroutines must synchronise externally.
type MutableSchema struct {
	name   string
	tables []*Table
}

// NewMutable returns an empty mutable schema with the given name.
func NewMutable(name string) *MutableSchema {
	return &MutableSchema{name: name}
}

func (s *MutableSchema) Name() string { return s.name }

func (s *MutableSchema) Tables() []*Table {
	out := make([]*Table, len(s.tables))
	copy(out, s.tables)
	return out
}

func (s *MutableSchema) Table(name string) *Table {
	for _, t := range s.tables {
		if t.name == name {
			return t
		}
	}
	return nil
}

// AddTable registers a new table under this schema. The table starts out
// with the default identifier column and the given column families;
// qualified columns are declared afterwards via Table.DefineColumn.
func (s *MutableSchema) AddTable(name string, families ...string) (*Table, error) {
	if name == "" {
		return nil, errEmptyTableName
	}
	if s.Table(name) != nil {
		return nil, errDuplicateTable(name, s.name)
	}
	t := newTable(s, name, families)
	s.tables = append(s.tables, t)
	return t, nil
}

// RemoveTable drops the table from this schema's view and reports whether
// it was present. The backing store is not touched.
func (s *MutableSchema) RemoveTable(name string) bool {
	for i, t := range s.tables {
		if t.name == name {
			s.tables = append(s.tables[:i], s.tables[i+1:]...)
			return true
		}
	}
	return false
}

// ImmutableSchema is a read-only view over another schema. It intentionally
// has no mutator methods, so the structure behind it cannot be changed
// through this handle even by type assertion.
type ImmutableSchema struct {
	inner Schema
}

// NewImmutable wraps s in a read-only view.
func NewImmutable(s Schema) *ImmutableSchema {
	return &ImmutableSchema{inner: s}
}

func (s *ImmutableSchema) Name() string            { return s.inner.Name() }
func (s *ImmutableSchema) Tables() []*Table        { return s.inner.Tables() }
func (s *ImmutableSchema) Table(name string) *Table { return s.inner.Table(name) }
