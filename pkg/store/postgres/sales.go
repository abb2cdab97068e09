package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fournil-tools/fournil/pkg/models/store"
	"github.com/rs/zerolog"
)

// SalesStore issues the flat sales query and its companion count. One call
// per load cycle each; no query text is cached between calls.
type SalesStore struct {
	db *sql.DB
}

func NewSalesStore(db *sql.DB) (*SalesStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &SalesStore{db: db}, nil
}

func saleClauses(f store.SaleFilter) *clauseBuilder {
	b := &clauseBuilder{}
	if f.From != nil {
		b.add("v.date_vente >= $%d", *f.From)
	}
	if f.To != nil {
		b.add("v.date_vente <= $%d", *f.To)
	}
	if f.SiteID != nil {
		b.add("v.site_id = $%d", *f.SiteID)
	}
	if f.Type != nil {
		b.add("v.type_vente = $%d", *f.Type)
	}
	if f.AgentID != nil {
		b.add("v.agent_id = $%d", *f.AgentID)
	}
	if f.ArticleID != nil {
		// article is a line-level dimension: keep sales that have at least
		// one matching line, not just the matching lines themselves
		b.add("EXISTS (SELECT 1 FROM vente_details da WHERE da.vente_id = v.id AND da.article_id = $%d)", *f.ArticleID)
	}
	return b
}

// CollectRows returns every flat line row matching the filter, most recent
// sale first, lines in their original order within each sale.
func (s *SalesStore) CollectRows(ctx context.Context, f store.SaleFilter) ([]store.SaleRow, error) {
	logger := zerolog.Ctx(ctx)
	b := saleClauses(f)

	query := fmt.Sprintf(`
		SELECT v.id, d.id, v.site_id, st.nom, v.type_vente, v.agent_id, u.nom, c.nom,
		       d.article_id, a.nom, v.date_vente,
		       d.quantite, d.prix_unitaire, d.montant, d.montant_encaisse
		FROM ventes v
		JOIN vente_details d ON d.vente_id = v.id
		JOIN sites st ON st.id = v.site_id
		JOIN utilisateurs u ON u.id = v.agent_id
		LEFT JOIN clients c ON c.id = v.client_id
		JOIN articles a ON a.id = d.article_id
		%s
		ORDER BY v.id DESC, d.id ASC`, b.where())

	rows, err := s.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("query sale rows: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close sale rows")
		}
	}(rows)

	out := make([]store.SaleRow, 0)
	for rows.Next() {
		var r store.SaleRow
		if err := rows.Scan(
			&r.SaleID, &r.LineID, &r.SiteID, &r.SiteName, &r.Type,
			&r.AgentID, &r.AgentName, &r.ClientName,
			&r.ArticleID, &r.ArticleName, &r.Date,
			&r.Quantity, &r.UnitPrice, &r.LineTotal, &r.Collected,
		); err != nil {
			return nil, fmt.Errorf("scan sale row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sale rows: %w", err)
	}

	return out, nil
}

// CountSales counts distinct parent sales under the same filter, so paging
// totals are independent of how many line rows each sale carries.
func (s *SalesStore) CountSales(ctx context.Context, f store.SaleFilter) (int, error) {
	b := saleClauses(f)

	query := fmt.Sprintf(`SELECT COUNT(DISTINCT v.id) FROM ventes v %s`, b.where())

	var total int
	if err := s.db.QueryRowContext(ctx, query, b.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return total, nil
}
