package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fournil-tools/fournil/pkg/models/store"
)

type ExpenseStore struct {
	db *sql.DB
}

func NewExpenseStore(db *sql.DB) (*ExpenseStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &ExpenseStore{db: db}, nil
}

func expenseClauses(f store.ExpenseFilter) *clauseBuilder {
	b := &clauseBuilder{}
	if f.From != nil {
		b.add("e.date_depense >= $%d", *f.From)
	}
	if f.To != nil {
		b.add("e.date_depense <= $%d", *f.To)
	}
	if f.SiteID != nil {
		b.add("e.site_id = $%d", *f.SiteID)
	}
	return b
}

func (s *ExpenseStore) List(ctx context.Context, f store.ExpenseFilter) ([]store.Expense, error) {
	b := expenseClauses(f)

	query := fmt.Sprintf(`
		SELECT e.id, e.site_id, st.nom, e.libelle, e.montant, e.date_depense
		FROM depenses e
		JOIN sites st ON st.id = e.site_id
		%s
		ORDER BY e.date_depense DESC, e.id DESC`, b.where())

	rows, err := s.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	out := make([]store.Expense, 0)
	for rows.Next() {
		var e store.Expense
		if err := rows.Scan(&e.ID, &e.SiteID, &e.SiteName, &e.Label, &e.Amount, &e.Date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *ExpenseStore) Create(ctx context.Context, e store.Expense) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO depenses (site_id, libelle, montant, date_depense) VALUES ($1, $2, $3, $4) RETURNING id`,
		e.SiteID, e.Label, e.Amount, e.Date,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	return id, nil
}

func (s *ExpenseStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM depenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return requireAffected(res)
}

// SummaryBySite aggregates expense totals per site under the same filter.
func (s *ExpenseStore) SummaryBySite(ctx context.Context, f store.ExpenseFilter) ([]store.ExpenseSummaryRow, error) {
	b := expenseClauses(f)

	query := fmt.Sprintf(`
		SELECT e.site_id, st.nom, COALESCE(SUM(e.montant), 0)
		FROM depenses e
		JOIN sites st ON st.id = e.site_id
		%s
		GROUP BY e.site_id, st.nom
		ORDER BY st.nom`, b.where())

	rows, err := s.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("query expense summary: %w", err)
	}
	defer rows.Close()

	out := make([]store.ExpenseSummaryRow, 0)
	for rows.Next() {
		var r store.ExpenseSummaryRow
		if err := rows.Scan(&r.SiteID, &r.SiteName, &r.Total); err != nil {
			return nil, fmt.Errorf("scan expense summary: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
