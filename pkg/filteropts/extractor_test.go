package filteropts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id    string
	label string
}

func dim(r row) Option { return Option{ID: r.id, Label: r.label} }

func TestOptions_DedupeAndSort(t *testing.T) {
	rows := []row{
		{"b", "B"},
		{"a", "A"},
		{"a", "A"},
		{"c", "C"},
	}

	got := Options(NewFrenchExtractor(), rows, dim)

	require.Len(t, got, 3)
	assert.Equal(t, []Option{{"a", "A"}, {"b", "B"}, {"c", "C"}}, got)
}

func TestOptions_FirstOccurrenceWins(t *testing.T) {
	rows := []row{
		{"1", "Baguette"},
		{"1", "baguette renamed"},
	}

	got := Options(NewFrenchExtractor(), rows, dim)

	require.Len(t, got, 1)
	assert.Equal(t, "Baguette", got[0].Label)
}

func TestOptions_AccentsCollateWithFrenchOrder(t *testing.T) {
	rows := []row{
		{"2", "éclair"},
		{"1", "croissant"},
		{"3", "flan"},
	}

	got := Options(NewFrenchExtractor(), rows, dim)

	// naive byte order would put "éclair" last
	require.Len(t, got, 3)
	assert.Equal(t, "croissant", got[0].Label)
	assert.Equal(t, "éclair", got[1].Label)
	assert.Equal(t, "flan", got[2].Label)
}

func TestOptions_MissingLabelSortsFirst(t *testing.T) {
	rows := []row{
		{"1", "pain"},
		{"2", ""},
	}

	got := Options(NewFrenchExtractor(), rows, dim)

	require.Len(t, got, 2)
	assert.Equal(t, "", got[0].Label)
}

func TestOptions_EmptyInput(t *testing.T) {
	got := Options(NewFrenchExtractor(), nil, dim)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
