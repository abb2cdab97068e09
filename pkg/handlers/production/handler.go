package production

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/fournil-tools/fournil/pkg/adapters"
	"github.com/fournil-tools/fournil/pkg/handlers/params"
	"github.com/fournil-tools/fournil/pkg/models/api"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/services/production"
)

const defaultPageSize = 15

type Explorer interface {
	Explore(ctx context.Context, f domain.ProductionFilter, page, pageSize int) (*production.View, error)
	Options(ctx context.Context, f domain.ProductionFilter) (domain.ProductionFilterOptions, error)
}

type Handler struct {
	explorer Explorer
	pageSize int
}

func NewHandler(explorer Explorer, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Handler{explorer: explorer, pageSize: pageSize}
}

func (h *Handler) GetProduction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	filter, err := parseFilter(r)
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	page, err := params.PositiveInt(r, "page", 1)
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	pageSize, err := params.PositiveInt(r, "page_size", h.pageSize)
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.explorer.Explore(ctx, filter, page, pageSize)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load production batches")
		params.WriteError(w, r, http.StatusInternalServerError, "failed to load production batches")
		return
	}

	response := api.PaginatedProduction{
		Data:       make([]api.ProductionBatch, 0, len(view.Batches)),
		Pagination: adapters.MapPageStateToApi(view.Page),
	}
	for _, b := range view.Batches {
		response.Data = append(response.Data, adapters.MapProductionBatchDomainToApi(b))
	}
	params.WriteJSON(w, r, http.StatusOK, response)
}

// GetOptions derives choices from the current result set. The cuisson
// screen never had catalog-backed dropdowns, so there is no policy switch
// here.
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	filter, err := parseFilter(r)
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	options, err := h.explorer.Options(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load production options")
		params.WriteError(w, r, http.StatusInternalServerError, "failed to load production options")
		return
	}
	params.WriteJSON(w, r, http.StatusOK, adapters.MapProductionOptionsDomainToApi(options))
}

func parseFilter(r *http.Request) (domain.ProductionFilter, error) {
	var f domain.ProductionFilter
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
	if f.ArticleID, err = params.ID(r, "article"); err != nil {
		return f, err
	}
	if f.AgentID, err = params.ID(r, "agent"); err != nil {
		return f, err
	}
	return f, nil
}
