package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
)

func TestGroupRows(t *testing.T) {
	rows := []store.RecipeRow{
		{RecipeID: 1, RecipeName: "Baguette tradition", ArticleID: 2, Yield: 40, LineID: 10, Ingredient: "Farine", Quantity: 10, Unit: "kg"},
		{RecipeID: 1, RecipeName: "Baguette tradition", ArticleID: 2, Yield: 40, LineID: 11, Ingredient: "Levure", Quantity: 0.2, Unit: "kg"},
		{RecipeID: 3, RecipeName: "Croissant", ArticleID: 5, Yield: 60, LineID: 12, Ingredient: "Beurre", Quantity: 3, Unit: "kg"},
	}

	recipes := GroupRows(rows)

	require.Len(t, recipes, 2)
	assert.Equal(t, "Baguette tradition", recipes[0].Name)
	require.Len(t, recipes[0].Lines, 2)
	assert.Equal(t, "Levure", recipes[0].Lines[1].Ingredient)
	assert.Equal(t, "Croissant", recipes[1].Name)
	require.Len(t, recipes[1].Lines, 1)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		recipe domain.Recipe
	}{
		{
			name:   "missing name",
			recipe: domain.Recipe{Lines: []domain.RecipeLine{{Ingredient: "Farine", Quantity: 1}}},
		},
		{
			name:   "no lines",
			recipe: domain.Recipe{Name: "Baguette"},
		},
		{
			name: "line without ingredient",
			recipe: domain.Recipe{
				Name:  "Baguette",
				Lines: []domain.RecipeLine{{Quantity: 1}},
			},
		},
		{
			name: "line with zero quantity",
			recipe: domain.Recipe{
				Name:  "Baguette",
				Lines: []domain.RecipeLine{{Ingredient: "Farine"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(nil)

			_, err := svc.Create(context.Background(), tt.recipe)

			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestUpdate_RequiresID(t *testing.T) {
	svc := NewService(nil)

	err := svc.Update(context.Background(), domain.Recipe{
		Name:  "Baguette",
		Lines: []domain.RecipeLine{{Ingredient: "Farine", Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrInvalid)
}
