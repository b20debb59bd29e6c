package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilies(t *testing.T) {
	tests := []struct {
		name string
		cols []*Column
		want []string
	}{
		{
			name: "duplicates collapse, identifier excluded",
			cols: []*Column{
				{Name: "a", Family: "foo"},
				{Name: "b", Family: "foo"},
				{Name: "c", Family: "bar"},
				{Name: IDColumnName, IsID: true},
			},
			want: []string{"foo", "bar"},
		},
		{
			name: "empty input",
			cols: nil,
			want: []string{},
		},
		{
			name: "identifier only",
			cols: []*Column{{Name: IDColumnName, IsID: true}},
			want: []string{},
		},
		{
			name: "nil entries skipped",
			cols: []*Column{nil, {Name: "a", Family: "foo"}, nil},
			want: []string{"foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Families(tt.cols)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFamilies_FromRowColumns(t *testing.T) {
	s := NewMutable("app")
	table, err := s.AddTable("users", "foo", "bar")
	assert.NoError(t, err)
	_, err = table.DefineColumn("foo", "a", TypeString)
	assert.NoError(t, err)
	_, err = table.DefineColumn("foo", "b", TypeString)
	assert.NoError(t, err)
	_, err = table.DefineColumn("bar", "c", TypeInt)
	assert.NoError(t, err)

	row, err := NewRowBuilder(table).
		SetID("k").
		Set("a", "1").
		Set("b", "2").
		Set("c", 3).
		Build()
	assert.NoError(t, err)

	// Whether or not the identifier was staged makes no difference to the
	// derived family set.
	assert.Equal(t, []string{"foo", "bar"}, Families(row.Columns()))

	noID, err := NewRowBuilder(table).Set("a", "1").Set("c", 3).Build()
	assert.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, Families(noID.Columns()))
}
