package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fournil-tools/fournil/pkg/models/store"
	"github.com/rs/zerolog"
)

// RecipeStore returns recipes as flat ingredient rows; the service layer
// folds them back into recipes the same way sales are grouped.
type RecipeStore struct {
	db *sql.DB
}

func NewRecipeStore(db *sql.DB) (*RecipeStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &RecipeStore{db: db}, nil
}

func (s *RecipeStore) CollectRows(ctx context.Context) ([]store.RecipeRow, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, l.id, r.nom, r.article_id, r.rendement,
		       l.ingredient, l.quantite, l.unite
		FROM recettes r
		JOIN recette_lignes l ON l.recette_id = r.id
		ORDER BY r.nom ASC, l.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query recipe rows: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close recipe rows")
		}
	}(rows)

	out := make([]store.RecipeRow, 0)
	for rows.Next() {
		var r store.RecipeRow
		if err := rows.Scan(
			&r.RecipeID, &r.LineID, &r.RecipeName, &r.ArticleID, &r.Yield,
			&r.Ingredient, &r.Quantity, &r.Unit,
		); err != nil {
			return nil, fmt.Errorf("scan recipe row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe rows: %w", err)
	}

	return out, nil
}

// Create inserts the recipe and its lines in one transaction.
func (s *RecipeStore) Create(ctx context.Context, name string, articleID int64, yield float64, lines []store.RecipeRow) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin recipe tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO recettes (nom, article_id, rendement) VALUES ($1, $2, $3) RETURNING id`,
		name, articleID, yield,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert recipe: %w", err)
	}

	for _, l := range lines {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO recette_lignes (recette_id, ingredient, quantite, unite) VALUES ($1, $2, $3, $4)`,
			id, l.Ingredient, l.Quantity, l.Unit,
		)
		if err != nil {
			return 0, fmt.Errorf("insert recipe line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit recipe tx: %w", err)
	}
	return id, nil
}

// Update replaces the recipe head and rewrites its lines.
func (s *RecipeStore) Update(ctx context.Context, id int64, name string, articleID int64, yield float64, lines []store.RecipeRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin recipe tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE recettes SET nom = $1, article_id = $2, rendement = $3 WHERE id = $4`,
		name, articleID, yield, id,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM recette_lignes WHERE recette_id = $1`, id); err != nil {
		return fmt.Errorf("clear recipe lines: %w", err)
	}
	for _, l := range lines {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO recette_lignes (recette_id, ingredient, quantite, unite) VALUES ($1, $2, $3, $4)`,
			id, l.Ingredient, l.Quantity, l.Unit,
		)
		if err != nil {
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit recipe tx: %w", err)
	}
	return nil
}

func (s *RecipeStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin recipe tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recette_lignes WHERE recette_id = $1`, id); err != nil {
		return fmt.Errorf("delete recipe lines: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM recettes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	return tx.Commit()
}
