package mutate

import (
	"context"

	"github.com/quasdata/colfam/internal/errs"
	"github.com/quasdata/colfam/internal/logger"
	"github.com/quasdata/colfam/internal/schema"
	"github.com/quasdata/colfam/internal/store"
)

// CreateTableBuilder stages a table-creation request. It moves through two
// states: open, where the column-family set may still change, and executed,
// which is terminal. Validation runs as a whole at the transition, not in
// the setters.
type CreateTableBuilder struct {
	schema   *schema.MutableSchema
	name     string
	families []string
	client   *store.Client
	log      *logger.Logger
	executed bool
}

// SetColumnFamilies replaces the staged column-family set. Callable any
// number of times before execution; emptiness is checked only by Execute.
func (b *CreateTableBuilder) SetColumnFamilies(families []string) *CreateTableBuilder {
	b.families = append([]string(nil), families...)
	return b
}

// ColumnFamilies returns the currently staged column-family set.
func (b *CreateTableBuilder) ColumnFamilies() []string {
	return append([]string(nil), b.families...)
}

// Execute validates the staged request, forwards it to the store, and on
// success registers the new table under the schema. The builder is terminal
// afterwards. A validation or store failure leaves the builder open, so the
// request can be corrected and executed again.
func (b *CreateTableBuilder) Execute(ctx context.Context) (*schema.Table, error) {
	if b.executed {
		return nil, errs.New(errs.ErrKindInvalidInput, "create table builder already executed")
	}
	if len(b.families) == 0 {
		// Fires identically whether the set was never supplied, supplied
		// empty, or supplied nil. The store would accept or mangle a
		// family-less table; it must never see one.
		return nil, errs.New(errs.ErrKindSchemaViolation, "Creating a table without columnFamilies")
	}

	if err := b.client.CreateTable(ctx, b.name, b.families); err != nil {
		return nil, err
	}

	table, err := b.schema.AddTable(b.name, b.families...)
	if err != nil {
		// The store accepted the table but the local view already had one
		// under this name. Surface it; the caller's view and the store are
		// now reconciled by the caller, not silently here.
		return nil, err
	}
	b.executed = true

	b.log.With().
		Str("schema", b.schema.Name()).
		Str("table", b.name).
		Int("families", len(b.families)).
		Logger().Info("table created")
	return table, nil
}
