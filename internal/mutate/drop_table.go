package mutate

import (
	"context"

	"github.com/quasdata/colfam/internal/errs"
	"github.com/quasdata/colfam/internal/logger"
	"github.com/quasdata/colfam/internal/schema"
	"github.com/quasdata/colfam/internal/store"
)

// DropTableBuilder stages a table-removal request. Single-use, same
// open → executed lifecycle as CreateTableBuilder.
type DropTableBuilder struct {
	schema   *schema.MutableSchema
	name     string
	client   *store.Client
	log      *logger.Logger
	executed bool
}

// Execute removes the table from the store and from the schema's view.
// A store failure (including an unknown table) propagates and leaves the
// builder open.
func (b *DropTableBuilder) Execute(ctx context.Context) error {
	if b.executed {
		return errs.New(errs.ErrKindInvalidInput, "drop table builder already executed")
	}

	if err := b.client.DeleteTable(ctx, b.name); err != nil {
		return err
	}
	b.schema.RemoveTable(b.name)
	b.executed = true

	b.log.With().
		Str("schema", b.schema.Name()).
		Str("table", b.name).
		Logger().Info("table dropped")
	return nil
}
