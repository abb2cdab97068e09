// Package recipe manages recettes. Listings come back from the store as
// flat ingredient rows and are folded into recipes with the same grouping
// pass the sales screens use.
package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/fournil-tools/fournil/pkg/aggregate"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
)

var ErrInvalid = errors.New("invalid input")

type Store interface {
	CollectRows(ctx context.Context) ([]store.RecipeRow, error)
	Create(ctx context.Context, name string, articleID int64, yield float64, lines []store.RecipeRow) (int64, error)
	Update(ctx context.Context, id int64, name string, articleID int64, yield float64, lines []store.RecipeRow) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store Store
}

func NewService(st Store) *Service {
	return &Service{store: st}
}

// GroupRows folds flat ingredient rows into one Recipe per recipe id.
func GroupRows(rows []store.RecipeRow) []domain.Recipe {
	return aggregate.Group(rows,
		func(r store.RecipeRow) int64 { return r.RecipeID },
		func(r store.RecipeRow) *domain.Recipe {
			return &domain.Recipe{
				ID:        r.RecipeID,
				Name:      r.RecipeName,
				ArticleID: r.ArticleID,
				Yield:     r.Yield,
			}
		},
		func(rec *domain.Recipe, r store.RecipeRow) {
			rec.Lines = append(rec.Lines, domain.RecipeLine{
				ID:         r.LineID,
				Ingredient: r.Ingredient,
				Quantity:   r.Quantity,
				Unit:       r.Unit,
			})
		})
}

func (s *Service) List(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := s.store.CollectRows(ctx)
	if err != nil {
		return nil, err
	}
	return GroupRows(rows), nil
}

func (s *Service) Create(ctx context.Context, r domain.Recipe) (domain.Recipe, error) {
	if err := validate(r); err != nil {
		return domain.Recipe{}, err
	}
	id, err := s.store.Create(ctx, r.Name, r.ArticleID, r.Yield, storeLines(r.Lines))
	if err != nil {
		return domain.Recipe{}, err
	}
	r.ID = id
	return r, nil
}

func (s *Service) Update(ctx context.Context, r domain.Recipe) error {
	if r.ID == 0 {
		return fmt.Errorf("%w: recipe id is required", ErrInvalid)
	}
	if err := validate(r); err != nil {
		return err
	}
	return s.store.Update(ctx, r.ID, r.Name, r.ArticleID, r.Yield, storeLines(r.Lines))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func validate(r domain.Recipe) error {
	if r.Name == "" {
		return fmt.Errorf("%w: recipe name is required", ErrInvalid)
	}
	if len(r.Lines) == 0 {
		return fmt.Errorf("%w: a recipe needs at least one ingredient line", ErrInvalid)
	}
	for _, l := range r.Lines {
		if l.Ingredient == "" {
			return fmt.Errorf("%w: ingredient name is required", ErrInvalid)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: ingredient quantity must be positive", ErrInvalid)
		}
	}
	return nil
}

func storeLines(lines []domain.RecipeLine) []store.RecipeRow {
	out := make([]store.RecipeRow, 0, len(lines))
	for _, l := range lines {
		out = append(out, store.RecipeRow{
			Ingredient: l.Ingredient,
			Quantity:   l.Quantity,
			Unit:       l.Unit,
		})
	}
	return out
}
