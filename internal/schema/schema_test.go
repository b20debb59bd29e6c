package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quasdata/colfam/internal/errs"
)

func TestMutableSchema_AddTable(t *testing.T) {
	s := NewMutable("app")

	table, err := s.AddTable("users", "profile", "contact")
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, "users", table.Name())
	assert.Equal(t, []string{"profile", "contact"}, table.Families())
	assert.Same(t, table, s.Table("users"))
	assert.Len(t, s.Tables(), 1)

	// New tables always carry the identifier column.
	id := table.IDColumn()
	require.NotNil(t, id)
	assert.Equal(t, IDColumnName, id.Name)
	assert.True(t, id.IsID)
	assert.Empty(t, id.Family)
}

func TestMutableSchema_AddTableErrors(t *testing.T) {
	s := NewMutable("app")
	_, err := s.AddTable("users", "profile")
	require.NoError(t, err)

	tests := []struct {
		name      string
		tableName string
	}{
		{name: "empty name", tableName: ""},
		{name: "duplicate name", tableName: "users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddTable(tt.tableName, "f")
			require.Error(t, err)
			assert.True(t, errs.IsInvalidInput(err))
		})
	}
}

func TestMutableSchema_RemoveTable(t *testing.T) {
	s := NewMutable("app")
	_, err := s.AddTable("users", "profile")
	require.NoError(t, err)

	assert.True(t, s.RemoveTable("users"))
	assert.Nil(t, s.Table("users"))
	assert.False(t, s.RemoveTable("users"))
}

func TestImmutableSchema_IsReadOnlyView(t *testing.T) {
	inner := NewMutable("app")
	_, err := inner.AddTable("users", "profile")
	require.NoError(t, err)

	var view Schema = NewImmutable(inner)

	assert.Equal(t, "app", view.Name())
	require.Len(t, view.Tables(), 1)
	assert.NotNil(t, view.Table("users"))

	// The read-only view is not the mutable variant, no matter what it wraps.
	_, ok := view.(*MutableSchema)
	assert.False(t, ok)

	// Changes to the underlying schema stay visible through the view.
	_, err = inner.AddTable("events", "meta")
	require.NoError(t, err)
	assert.NotNil(t, view.Table("events"))
}

func TestTable_DefineColumn(t *testing.T) {
	s := NewMutable("app")
	table, err := s.AddTable("users", "profile", "contact")
	require.NoError(t, err)

	name, err := table.DefineColumn("profile", "name", TypeString)
	require.NoError(t, err)
	assert.Equal(t, "profile", name.Family)
	assert.False(t, name.IsID)

	_, err = table.DefineColumn("contact", "email", TypeString)
	require.NoError(t, err)

	// Identifier first, then declaration order.
	cols := table.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, IDColumnName, cols[0].Name)
	assert.Equal(t, "name", cols[1].Name)
	assert.Equal(t, "email", cols[2].Name)

	assert.Same(t, name, table.Column("name"))
	assert.Nil(t, table.Column("missing"))
}

func TestTable_DefineColumnErrors(t *testing.T) {
	s := NewMutable("app")
	table, err := s.AddTable("users", "profile")
	require.NoError(t, err)
	_, err = table.DefineColumn("profile", "name", TypeString)
	require.NoError(t, err)

	tests := []struct {
		name   string
		family string
		column string
	}{
		{name: "unknown family", family: "nope", column: "age"},
		{name: "duplicate column", family: "profile", column: "name"},
		{name: "empty column name", family: "profile", column: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.DefineColumn(tt.family, tt.column, TypeInt)
			require.Error(t, err)
			assert.True(t, errs.IsInvalidInput(err))
		})
	}
}
