// Package memory provides an in-memory implementation of store.Driver.
//
// It behaves like a very small column-family store: tables hold a fixed
// family set, rows are keyed bytes grouped family → qualifier. Used by
// tests and local development; nothing is persisted.
package memory

import (
	"context"
	"sync"

	"github.com/quasdata/colfam/internal/errs"
)

// Driver is an in-memory store.Driver. It is safe for concurrent use by
// multiple goroutines.
type Driver struct {
	mu     sync.RWMutex
	tables map[string]*table
}

type table struct {
	families []string
	rows     map[string]map[string]map[string][]byte // key → family → qualifier
}

// New returns an empty in-memory store.
func New() *Driver {
	return &Driver{tables: make(map[string]*table)}
}

// Ping always succeeds.
func (d *Driver) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (d *Driver) Close() error { return nil }

// CreateTable creates a table; a duplicate name is a store failure, matching
// how a real store rejects re-creation.
func (d *Driver) CreateTable(ctx context.Context, name string, families []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.tables[name]; ok {
		return errs.Newf(errs.ErrKindStoreFailed, "table %q already exists", name)
	}
	d.tables[name] = &table{
		families: append([]string(nil), families...),
		rows:     make(map[string]map[string]map[string][]byte),
	}
	return nil
}

// DeleteTable removes the table and all its rows.
func (d *Driver) DeleteTable(ctx context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.tables[name]; !ok {
		return errs.Newf(errs.ErrKindNotFound, "table %q not found", name)
	}
	delete(d.tables, name)
	return nil
}

// TableExists reports whether the table exists.
func (d *Driver) TableExists(ctx context.Context, name string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.tables[name]
	return ok, nil
}

// TableFamilies returns the families the table was created with, in
// creation order.
func (d *Driver) TableFamilies(ctx context.Context, name string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.tables[name]
	if !ok {
		return nil, errs.Newf(errs.ErrKindNotFound, "table %q not found", name)
	}
	return append([]string(nil), t.families...), nil
}

// Put writes one row's cells. Writing to an unknown table or an undeclared
// family fails the way the real store would.
func (d *Driver) Put(ctx context.Context, name, key string, cells map[string]map[string][]byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.tables[name]
	if !ok {
		return errs.Newf(errs.ErrKindNotFound, "table %q not found", name)
	}
	for family := range cells {
		if !t.hasFamily(family) {
			return errs.Newf(errs.ErrKindStoreFailed,
				"unknown column family %q in table %q", family, name)
		}
	}

	row := t.rows[key]
	if row == nil {
		row = make(map[string]map[string][]byte)
		t.rows[key] = row
	}
	for family, quals := range cells {
		fam := row[family]
		if fam == nil {
			fam = make(map[string][]byte)
			row[family] = fam
		}
		for q, v := range quals {
			fam[q] = append([]byte(nil), v...)
		}
	}
	return nil
}

// DeleteRow removes one row. Deleting an absent row succeeds, matching the
// real store's delete semantics.
func (d *Driver) DeleteRow(ctx context.Context, name, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.tables[name]
	if !ok {
		return errs.Newf(errs.ErrKindNotFound, "table %q not found", name)
	}
	delete(t.rows, key)
	return nil
}

// GetRow returns a copy of one row's cells. Not part of store.Driver —
// a read-back hook for tests and demos.
func (d *Driver) GetRow(name, key string) (map[string]map[string][]byte, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.tables[name]
	if !ok {
		return nil, false
	}
	row, ok := t.rows[key]
	if !ok {
		return nil, false
	}

	out := make(map[string]map[string][]byte, len(row))
	for family, quals := range row {
		fam := make(map[string][]byte, len(quals))
		for q, v := range quals {
			fam[q] = append([]byte(nil), v...)
		}
		out[family] = fam
	}
	return out, true
}

// RowCount returns the number of rows stored in a table. Test hook.
func (d *Driver) RowCount(name string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.tables[name]
	if !ok {
		return 0
	}
	return len(t.rows)
}

// Keys returns the row keys stored in a table. Test hook.
func (d *Driver) Keys(name string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.tables[name]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	return keys
}

func (t *table) hasFamily(family string) bool {
	for _, f := range t.families {
		if f == family {
			return true
		}
	}
	return false
}
