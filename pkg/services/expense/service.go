// Package expense covers the dépenses screen: filtered listings, creation,
// deletion and per-site totals.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/fournil-tools/fournil/pkg/adapters"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
)

var ErrInvalid = errors.New("invalid input")

type Store interface {
	List(ctx context.Context, f store.ExpenseFilter) ([]store.Expense, error)
	Create(ctx context.Context, e store.Expense) (int64, error)
	Delete(ctx context.Context, id int64) error
	SummaryBySite(ctx context.Context, f store.ExpenseFilter) ([]store.ExpenseSummaryRow, error)
}

type Service struct {
	store Store
}

func NewService(st Store) *Service {
	return &Service{store: st}
}

func (s *Service) List(ctx context.Context, f domain.ExpenseFilter) ([]domain.Expense, error) {
	expenses, err := s.store.List(ctx, adapters.MapExpenseFilterDomainToStore(f))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, adapters.MapExpenseStoreToDomain(e))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	if e.Label == "" {
		return domain.Expense{}, fmt.Errorf("%w: expense label is required", ErrInvalid)
	}
	if e.Amount <= 0 {
		return domain.Expense{}, fmt.Errorf("%w: expense amount must be positive", ErrInvalid)
	}
	if e.SiteID == 0 {
		return domain.Expense{}, fmt.Errorf("%w: expense site is required", ErrInvalid)
	}

	id, err := s.store.Create(ctx, store.Expense{
		SiteID: e.SiteID,
		Label:  e.Label,
		Amount: e.Amount,
		Date:   e.Date,
	})
	if err != nil {
		return domain.Expense{}, err
	}
	e.ID = id
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) SummaryBySite(ctx context.Context, f domain.ExpenseFilter) ([]domain.ExpenseSummary, error) {
	rows, err := s.store.SummaryBySite(ctx, adapters.MapExpenseFilterDomainToStore(f))
	if err != nil {
		return nil, err
	}
	out := make([]domain.ExpenseSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ExpenseSummary{SiteID: r.SiteID, Site: r.SiteName, Total: r.Total})
	}
	return out, nil
}
