package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/fournil-tools/fournil/pkg/adapters"
	"github.com/fournil-tools/fournil/pkg/handlers/params"
	"github.com/fournil-tools/fournil/pkg/models/api"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/services/expense"
)

type Service interface {
	List(ctx context.Context, f domain.ExpenseFilter) ([]domain.Expense, error)
	Create(ctx context.Context, e domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id int64) error
	SummaryBySite(ctx context.Context, f domain.ExpenseFilter) ([]domain.ExpenseSummary, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseFilter(r)
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	expenses, err := h.svc.List(ctx, filter)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list expenses")
		params.WriteError(w, r, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	response := make([]api.Expense, 0, len(expenses))
	for _, e := range expenses {
		response = append(response, adapters.MapExpenseDomainToApi(e))
	}
	params.WriteJSON(w, r, http.StatusOK, response)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req api.SaveExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		params.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			params.WriteError(w, r, http.StatusBadRequest, "invalid 'date' format, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	created, err := h.svc.Create(r.Context(), domain.Expense{
		SiteID: req.SiteID,
		Label:  req.Label,
		Amount: req.Amount,
		Date:   date,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create expense")
		return
	}
	params.WriteJSON(w, r, http.StatusCreated, adapters.MapExpenseDomainToApi(created))
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(chi.URLParam(r, "id"))
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, "failed to delete expense")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseFilter(r)
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.svc.SummaryBySite(ctx, filter)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to summarize expenses")
		params.WriteError(w, r, http.StatusInternalServerError, "failed to summarize expenses")
		return
	}

	response := make([]api.ExpenseSummary, 0, len(rows))
	for _, s := range rows {
		response = append(response, api.ExpenseSummary{SiteID: s.SiteID, Site: s.Site, Total: s.Total})
	}
	params.WriteJSON(w, r, http.StatusOK, response)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, expense.ErrInvalid):
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		params.WriteError(w, r, http.StatusNotFound, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
		params.WriteError(w, r, http.StatusInternalServerError, msg)
	}
}

func parseFilter(r *http.Request) (domain.ExpenseFilter, error) {
	var f domain.ExpenseFilter
	var err error

	if f.From, err = params.Date(r, "from"); err != nil {
		return f, err
	}
	if f.To, err = params.Date(r, "to"); err != nil {
		return f, err
	}
	if f.SiteID, err = params.ID(r, "site"); err != nil {
		return f, err
	}
	return f, nil
}
