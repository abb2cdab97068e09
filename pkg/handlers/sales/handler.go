package sales

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/fournil-tools/fournil/pkg/adapters"
	"github.com/fournil-tools/fournil/pkg/handlers/params"
	"github.com/fournil-tools/fournil/pkg/models/api"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/services/sales"
)

const defaultPageSize = 10

// Explorer runs one sales load cycle per request. Options is the rows-only
// path used when no page metadata is needed.
type Explorer interface {
	Explore(ctx context.Context, f domain.SaleFilter, page, pageSize int) (*sales.View, error)
	Options(ctx context.Context, f domain.SaleFilter) (domain.SaleFilterOptions, error)
}

// CatalogOptions serves dropdown choices from the preloaded reference data.
type CatalogOptions interface {
	SaleOptions() domain.SaleFilterOptions
}

type Handler struct {
	explorer Explorer
	catalog  CatalogOptions
	source   domain.OptionsSource
	pageSize int
}

func NewHandler(explorer Explorer, catalog CatalogOptions, source domain.OptionsSource, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Handler{
		explorer: explorer,
		catalog:  catalog,
		source:   source,
		pageSize: pageSize,
	}
}

func (h *Handler) GetSales(w http.ResponseWriter, r *http.Request) {
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
		logger.Error().Err(err).Msg("failed to load sales")
		params.WriteError(w, r, http.StatusInternalServerError, "failed to load sales")
		return
	}

	response := api.PaginatedSales{
		Data:       make([]api.Sale, 0, len(view.Sales)),
		Pagination: adapters.MapPageStateToApi(view.Page),
	}
	for _, s := range view.Sales {
		response.Data = append(response.Data, adapters.MapSaleDomainToApi(s))
	}
	params.WriteJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.source == domain.OptionsFromCatalog && h.catalog != nil {
		params.WriteJSON(w, r, http.StatusOK, adapters.MapSaleOptionsDomainToApi(h.catalog.SaleOptions()))
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	options, err := h.explorer.Options(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load sale options")
		params.WriteError(w, r, http.StatusInternalServerError, "failed to load sale options")
		return
	}
	params.WriteJSON(w, r, http.StatusOK, adapters.MapSaleOptionsDomainToApi(options))
}

func parseFilter(r *http.Request) (domain.SaleFilter, error) {
	var f domain.SaleFilter
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
	f.Type = params.Text(r, "type")
	return f, nil
}
