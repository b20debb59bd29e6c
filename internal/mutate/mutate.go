// Package mutate implements the staged builders that alter a schema's
// structure in the backing store: table creation and table removal.
//
// Builders are deferred-execution objects. They collect a request over
// multiple calls, validate it as a whole when Execute is invoked, and only
// then forward it to the store client. Validation failures leave the
// builder open, so the caller can correct the request and execute again;
// a successful Execute is terminal.
//
// Usage:
//
//	m := mutate.New(client, nil)
//	b, err := m.CreateTable(sch, "events")
//	if err != nil { ... }
//	b.SetColumnFamilies([]string{"meta", "payload"})
//	table, err := b.Execute(ctx)
package mutate

import (
	"github.com/quasdata/colfam/internal/errs"
	"github.com/quasdata/colfam/internal/logger"
	"github.com/quasdata/colfam/internal/schema"
	"github.com/quasdata/colfam/internal/store"
)

// Mutator is the entry point for structural changes. It is bound to one
// store client; each builder it hands out is single-use.
type Mutator struct {
	client *store.Client
	log    *logger.Logger
}

// New returns a Mutator backed by client. A nil log discards all logging.
func New(client *store.Client, log *logger.Logger) *Mutator {
	if log == nil {
		log = logger.Nop()
	}
	return &Mutator{client: client, log: log}
}

// CreateTable returns an open builder for a new table under s. Column
// families may be supplied here or staged later via SetColumnFamilies;
// their presence is checked only at execution time.
//
// Fails immediately when s is not the mutable schema variant — creating a
// table can never succeed against a read-only view, so there is nothing to
// stage.
func (m *Mutator) CreateTable(s schema.Schema, name string, families ...string) (*CreateTableBuilder, error) {
	ms, err := mutableOf(s)
	if err != nil {
		return nil, err
	}
	return &CreateTableBuilder{
		schema:   ms,
		name:     name,
		families: append([]string(nil), families...),
		client:   m.client,
		log:      m.log,
	}, nil
}

// DropTable returns an open builder that removes a table from the store
// and from s's view. Same capability check as CreateTable.
func (m *Mutator) DropTable(s schema.Schema, name string) (*DropTableBuilder, error) {
	ms, err := mutableOf(s)
	if err != nil {
		return nil, err
	}
	return &DropTableBuilder{
		schema: ms,
		name:   name,
		client: m.client,
		log:    m.log,
	}, nil
}

// mutableOf performs the capability check shared by all builders: structural
// changes require the mutable schema variant.
func mutableOf(s schema.Schema) (*schema.MutableSchema, error) {
	ms, ok := s.(*schema.MutableSchema)
	if !ok {
		return nil, errs.New(errs.ErrKindInvalidInput, "Not a mutable schema: "+s.Name())
	}
	return ms, nil
}
