// Package store is the thin facade through which table creations and row
// writes reach the backing column-family store.
//
// The physical store sits behind the Driver interface; rest and memory
// provide implementations. Client wraps a Driver and owns the argument
// guards that must hold no matter which driver is behind it — a malformed
// request never reaches a driver, even when a caller bypasses the builders
// in the mutate package.
//
// Usage:
//
//	drv := memory.New()
//	client := store.NewClient(drv, nil)
//	err := client.CreateTable(ctx, "events", []string{"meta", "payload"})
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/quasdata/colfam/internal/errs"
	"github.com/quasdata/colfam/internal/logger"
	"github.com/quasdata/colfam/internal/schema"
)

// Driver is the physical operation set a backing store must provide.
// Drivers translate their native errors into *errs.Error; they perform no
// argument validation of their own beyond what the store forces on them.
type Driver interface {
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the driver.
	Close() error

	// CreateTable creates a table with the given column families.
	CreateTable(ctx context.Context, name string, families []string) error

	// DeleteTable removes a table and all its data.
	DeleteTable(ctx context.Context, name string) error

	// TableExists reports whether a table with the given name exists.
	TableExists(ctx context.Context, name string) (bool, error)

	// TableFamilies returns the column families the store reports for a table.
	TableFamilies(ctx context.Context, name string) ([]string, error)

	// Put writes one row's cells, grouped family → qualifier → value.
	Put(ctx context.Context, table, key string, cells map[string]map[string][]byte) error

	// DeleteRow removes one row by key. Deleting an absent row is not an error.
	DeleteRow(ctx context.Context, table, key string) error
}

// Client is the store-facing facade. All calls are synchronous and block
// until the driver confirms or rejects the operation; no retry policy is
// applied here.
type Client struct {
	drv Driver
	log *logger.Logger
}

// NewClient wraps drv. A nil log discards all logging.
func NewClient(drv Driver, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{drv: drv, log: log}
}

// Ping verifies the backing store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.drv.Ping(ctx)
}

// Close releases the underlying driver's resources.
func (c *Client) Close() error {
	return c.drv.Close()
}

// CreateTable creates a table with the given column families. A table
// identity always needs both a non-empty name and a non-empty family set;
// requests missing either never reach the driver.
func (c *Client) CreateTable(ctx context.Context, name string, families []string) error {
	if name == "" || len(families) == 0 {
		return errs.New(errs.ErrKindInvalidInput,
			"Can't create a table without having the tableName or columnFamilies")
	}
	c.log.With().Str("table", name).Strs("families", families).Logger().
		Debug("creating table")
	return c.drv.CreateTable(ctx, name, families)
}

// DeleteTable removes a table and all its data from the store.
func (c *Client) DeleteTable(ctx context.Context, name string) error {
	if name == "" {
		return errs.New(errs.ErrKindInvalidInput,
			"Can't delete a table without having the tableName")
	}
	c.log.With().Str("table", name).Logger().Debug("deleting table")
	return c.drv.DeleteTable(ctx, name)
}

// TableExists reports whether the store knows a table with the given name.
func (c *Client) TableExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, errs.New(errs.ErrKindInvalidInput,
			"Can't inspect a table without having the tableName")
	}
	return c.drv.TableExists(ctx, name)
}

// TableFamilies returns the column families the store reports for a table.
func (c *Client) TableFamilies(ctx context.Context, name string) ([]string, error) {
	if name == "" {
		return nil, errs.New(errs.ErrKindInvalidInput,
			"Can't inspect a table without having the tableName")
	}
	return c.drv.TableFamilies(ctx, name)
}

// PutRow submits a previously built row. The row's identifier value becomes
// the store key; when no identifier value was staged, a generated key is
// used instead. Store failures propagate unmodified.
func (c *Client) PutRow(ctx context.Context, row *schema.Row) error {
	if row == nil || len(row.Cells()) == 0 {
		return errs.New(errs.ErrKindInvalidInput,
			"Can't put a row without having columns or values")
	}

	key := ""
	if id, ok := row.ID(); ok {
		key = string(encodeValue(id))
	}
	if key == "" {
		key = uuid.NewString()
	}

	cells := make(map[string]map[string][]byte)
	for _, cell := range row.Cells() {
		if cell.Column.IsID {
			continue
		}
		fam := cells[cell.Column.Family]
		if fam == nil {
			fam = make(map[string][]byte)
			cells[cell.Column.Family] = fam
		}
		fam[cell.Column.Name] = encodeValue(cell.Value)
	}

	table := row.Table().Name()
	c.log.With().Str("table", table).Str("key", key).Int("cells", len(row.Cells())).Logger().
		Debug("putting row")
	return c.drv.Put(ctx, table, key, cells)
}

// DeleteRow removes one row by key.
func (c *Client) DeleteRow(ctx context.Context, table, key string) error {
	if table == "" || key == "" {
		return errs.New(errs.ErrKindInvalidInput,
			"Can't delete a row without having tableName or rowKey")
	}
	c.log.With().Str("table", table).Str("key", key).Logger().Debug("deleting row")
	return c.drv.DeleteRow(ctx, table, key)
}
