package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fournil-tools/fournil/pkg/models/store"
	"github.com/rs/zerolog"
)

// ProductionStore issues the flat cuisson query and its companion count.
type ProductionStore struct {
	db *sql.DB
}

func NewProductionStore(db *sql.DB) (*ProductionStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &ProductionStore{db: db}, nil
}

func productionClauses(f store.ProductionFilter) *clauseBuilder {
	b := &clauseBuilder{}
	if f.From != nil {
		b.add("cu.date_cuisson >= $%d", *f.From)
	}
	if f.To != nil {
		b.add("cu.date_cuisson <= $%d", *f.To)
	}
	if f.SiteID != nil {
		b.add("cu.site_id = $%d", *f.SiteID)
	}
	if f.AgentID != nil {
		b.add("cu.agent_id = $%d", *f.AgentID)
	}
	if f.ArticleID != nil {
		b.add("EXISTS (SELECT 1 FROM cuisson_details da WHERE da.cuisson_id = cu.id AND da.article_id = $%d)", *f.ArticleID)
	}
	return b
}

func (s *ProductionStore) CollectRows(ctx context.Context, f store.ProductionFilter) ([]store.ProductionRow, error) {
	logger := zerolog.Ctx(ctx)
	b := productionClauses(f)

	query := fmt.Sprintf(`
		SELECT cu.id, d.id, cu.site_id, st.nom, cu.agent_id, u.nom,
		       d.article_id, a.nom, cu.date_cuisson,
		       d.quantite_produite, d.invendus
		FROM cuissons cu
		JOIN cuisson_details d ON d.cuisson_id = cu.id
		JOIN sites st ON st.id = cu.site_id
		JOIN utilisateurs u ON u.id = cu.agent_id
		JOIN articles a ON a.id = d.article_id
		%s
		ORDER BY cu.id DESC, d.id ASC`, b.where())

	rows, err := s.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("query production rows: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close production rows")
		}
	}(rows)

	out := make([]store.ProductionRow, 0)
	for rows.Next() {
		var r store.ProductionRow
		if err := rows.Scan(
			&r.BatchID, &r.LineID, &r.SiteID, &r.SiteName,
			&r.AgentID, &r.AgentName,
			&r.ArticleID, &r.ArticleName, &r.Date,
			&r.Produced, &r.Unsold,
		); err != nil {
			return nil, fmt.Errorf("scan production row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate production rows: %w", err)
	}

	return out, nil
}

func (s *ProductionStore) CountBatches(ctx context.Context, f store.ProductionFilter) (int, error) {
	b := productionClauses(f)

	query := fmt.Sprintf(`SELECT COUNT(DISTINCT cu.id) FROM cuissons cu %s`, b.where())

	var total int
	if err := s.db.QueryRowContext(ctx, query, b.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count production batches: %w", err)
	}
	return total, nil
}
