package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fournil-tools/fournil/pkg/models/store"
)

// CatalogStore covers the reference dimensions: articles, sites, clients and
// the distinct sale types.
type CatalogStore struct {
	db *sql.DB
}

func NewCatalogStore(db *sql.DB) (*CatalogStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &CatalogStore{db: db}, nil
}

func (s *CatalogStore) ListArticles(ctx context.Context, activeOnly bool) ([]store.Article, error) {
	query := `SELECT id, nom, type, prix_unitaire, actif FROM articles`
	if activeOnly {
		query += ` WHERE actif = true`
	}
	query += ` ORDER BY nom`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	out := make([]store.Article, 0)
	for rows.Next() {
		var a store.Article
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.UnitPrice, &a.Active); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *CatalogStore) CreateArticle(ctx context.Context, a store.Article) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO articles (nom, type, prix_unitaire, actif) VALUES ($1, $2, $3, true) RETURNING id`,
		a.Name, a.Type, a.UnitPrice,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	return id, nil
}

func (s *CatalogStore) UpdateArticle(ctx context.Context, a store.Article) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE articles SET nom = $1, type = $2, prix_unitaire = $3 WHERE id = $4`,
		a.Name, a.Type, a.UnitPrice, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return requireAffected(res)
}

// DeactivateArticle soft-deletes: sold articles stay referenced by old sales.
func (s *CatalogStore) DeactivateArticle(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE articles SET actif = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate article: %w", err)
	}
	return requireAffected(res)
}

func (s *CatalogStore) ListSites(ctx context.Context) ([]store.Site, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nom, adresse FROM sites ORDER BY nom`)
	if err != nil {
		return nil, fmt.Errorf("query sites: %w", err)
	}
	defer rows.Close()

	out := make([]store.Site, 0)
	for rows.Next() {
		var site store.Site
		if err := rows.Scan(&site.ID, &site.Name, &site.Address); err != nil {
			return nil, fmt.Errorf("scan site: %w", err)
		}
		out = append(out, site)
	}
	return out, rows.Err()
}

func (s *CatalogStore) CreateSite(ctx context.Context, site store.Site) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO sites (nom, adresse) VALUES ($1, $2) RETURNING id`,
		site.Name, site.Address,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert site: %w", err)
	}
	return id, nil
}

func (s *CatalogStore) UpdateSite(ctx context.Context, site store.Site) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sites SET nom = $1, adresse = $2 WHERE id = $3`,
		site.Name, site.Address, site.ID,
	)
	if err != nil {
		return fmt.Errorf("update site: %w", err)
	}
	return requireAffected(res)
}

func (s *CatalogStore) ListClients(ctx context.Context) ([]store.Client, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nom FROM clients ORDER BY nom`)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	out := make([]store.Client, 0)
	for rows.Next() {
		var c store.Client
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *CatalogStore) ListAgents(ctx context.Context) ([]store.Agent, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nom FROM utilisateurs ORDER BY nom`)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	defer rows.Close()

	out := make([]store.Agent, 0)
	for rows.Next() {
		var a store.Agent
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListSaleTypes returns the distinct sale types present in the data.
func (s *CatalogStore) ListSaleTypes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT type_vente FROM ventes ORDER BY type_vente`)
	if err != nil {
		return nil, fmt.Errorf("query sale types: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan sale type: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
