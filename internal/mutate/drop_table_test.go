package mutate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quasdata/colfam/internal/errs"
	"github.com/quasdata/colfam/internal/schema"
)

func TestDropTable_Succeeds(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestMutator()
	sch := schema.NewMutable("app")

	cb, err := m.CreateTable(sch, "users", "profile")
	require.NoError(t, err)
	_, err = cb.Execute(ctx)
	require.NoError(t, err)

	db, err := m.DropTable(sch, "users")
	require.NoError(t, err)
	require.NoError(t, db.Execute(ctx))

	assert.Nil(t, sch.Table("users"))
	exists, err := client.TableExists(ctx, "users")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDropTable_ImmutableSchema(t *testing.T) {
	m, _, _ := newTestMutator()
	view := schema.NewImmutable(schema.NewMutable("app"))

	_, err := m.DropTable(view, "users")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
	assert.Equal(t, "Not a mutable schema: app", err.Error())
}

func TestDropTable_UnknownTable(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestMutator()
	sch := schema.NewMutable("app")

	b, err := m.DropTable(sch, "missing")
	require.NoError(t, err)

	err = b.Execute(ctx)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDropTable_ExecuteTwice(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestMutator()
	sch := schema.NewMutable("app")

	cb, err := m.CreateTable(sch, "users", "profile")
	require.NoError(t, err)
	_, err = cb.Execute(ctx)
	require.NoError(t, err)

	b, err := m.DropTable(sch, "users")
	require.NoError(t, err)
	require.NoError(t, b.Execute(ctx))

	err = b.Execute(ctx)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
}
