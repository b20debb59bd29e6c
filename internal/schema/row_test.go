package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quasdata/colfam/internal/errs"
)

func newRowTestTable(t *testing.T) *Table {
	t.Helper()
	s := NewMutable("app")
	table, err := s.AddTable("users", "profile", "contact")
	require.NoError(t, err)
	_, err = table.DefineColumn("profile", "name", TypeString)
	require.NoError(t, err)
	_, err = table.DefineColumn("profile", "age", TypeInt)
	require.NoError(t, err)
	_, err = table.DefineColumn("contact", "email", TypeString)
	require.NoError(t, err)
	return table
}

func TestRowBuilder_Build(t *testing.T) {
	table := newRowTestTable(t)

	row, err := NewRowBuilder(table).
		SetID("u-1").
		Set("name", "alice").
		Set("age", 30).
		Build()
	require.NoError(t, err)

	assert.Same(t, table, row.Table())

	// The row holds exactly the columns that were given a value.
	cols := row.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, IDColumnName, cols[0].Name)
	assert.Equal(t, "name", cols[1].Name)
	assert.Equal(t, "age", cols[2].Name)

	id, ok := row.ID()
	require.True(t, ok)
	assert.Equal(t, "u-1", id)

	v, ok := row.Value("age")
	require.True(t, ok)
	assert.Equal(t, 30, v)

	_, ok = row.Value("email")
	assert.False(t, ok)
}

func TestRowBuilder_WithoutIdentifier(t *testing.T) {
	table := newRowTestTable(t)

	row, err := NewRowBuilder(table).Set("name", "bob").Build()
	require.NoError(t, err)

	_, ok := row.ID()
	assert.False(t, ok)
	assert.Len(t, row.Cells(), 1)
}

func TestRowBuilder_UnknownColumn(t *testing.T) {
	table := newRowTestTable(t)

	_, err := NewRowBuilder(table).Set("nickname", "x").Build()
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "doesn't belong to table")
}

func TestRowBuilder_MultipleIdentifierValues(t *testing.T) {
	table := newRowTestTable(t)

	tests := []struct {
		name  string
		build func() (*Row, error)
	}{
		{
			name: "SetID twice",
			build: func() (*Row, error) {
				return NewRowBuilder(table).SetID("a").SetID("b").Build()
			},
		},
		{
			name: "SetID then Set by name",
			build: func() (*Row, error) {
				return NewRowBuilder(table).SetID("a").Set(IDColumnName, "b").Build()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.Error(t, err)
			assert.True(t, errs.IsInvalidInput(err))
			assert.Contains(t, err.Error(), "more than one value")
		})
	}
}

func TestRowBuilder_LastWriteWins(t *testing.T) {
	table := newRowTestTable(t)

	row, err := NewRowBuilder(table).
		Set("name", "first").
		Set("name", "second").
		Build()
	require.NoError(t, err)

	require.Len(t, row.Cells(), 1)
	v, ok := row.Value("name")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}
