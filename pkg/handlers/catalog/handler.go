package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/fournil-tools/fournil/pkg/adapters"
	"github.com/fournil-tools/fournil/pkg/handlers/params"
	"github.com/fournil-tools/fournil/pkg/models/api"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/services/catalog"
)

// Service is the slice of the catalog service this handler needs.
type Service interface {
	ListArticles(ctx context.Context, activeOnly bool) ([]domain.Article, error)
	CreateArticle(ctx context.Context, a domain.Article) (domain.Article, error)
	UpdateArticle(ctx context.Context, a domain.Article) error
	DeactivateArticle(ctx context.Context, id int64) error
	ListSites(ctx context.Context) ([]domain.Site, error)
	CreateSite(ctx context.Context, s domain.Site) (domain.Site, error)
	UpdateSite(ctx context.Context, s domain.Site) error
}

// Refs serves the reference data preloaded at startup.
type Refs interface {
	References() domain.ReferenceData
}

type Handler struct {
	svc  Service
	refs Refs
}

func NewHandler(svc Service, refs Refs) *Handler {
	return &Handler{svc: svc, refs: refs}
}

func (h *Handler) GetReferences(w http.ResponseWriter, r *http.Request) {
	params.WriteJSON(w, r, http.StatusOK, adapters.MapReferenceDataDomainToApi(h.refs.References()))
}

func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	activeOnly := r.URL.Query().Get("active") == "true"

	articles, err := h.svc.ListArticles(ctx, activeOnly)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list articles")
		params.WriteError(w, r, http.StatusInternalServerError, "failed to list articles")
		return
	}

	response := make([]api.Article, 0, len(articles))
	for _, a := range articles {
		response = append(response, adapters.MapArticleDomainToApi(a))
	}
	params.WriteJSON(w, r, http.StatusOK, response)
}

func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req api.SaveArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		params.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateArticle(r.Context(), domain.Article{
		Name:      req.Name,
		Type:      req.Type,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create article")
		return
	}
	params.WriteJSON(w, r, http.StatusCreated, adapters.MapArticleDomainToApi(created))
}

func (h *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(chi.URLParam(r, "id"))
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req api.SaveArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		params.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.svc.UpdateArticle(r.Context(), domain.Article{
		ID:        id,
		Name:      req.Name,
		Type:      req.Type,
		UnitPrice: req.UnitPrice,
		Active:    true,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to update article")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeactivateArticle soft-deletes: the article disappears from active
// listings but stays resolvable from historical sale lines.
func (h *Handler) DeactivateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(chi.URLParam(r, "id"))
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.DeactivateArticle(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, "failed to deactivate article")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListSites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sites, err := h.svc.ListSites(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list sites")
		params.WriteError(w, r, http.StatusInternalServerError, "failed to list sites")
		return
	}

	response := make([]api.Site, 0, len(sites))
	for _, s := range sites {
		response = append(response, adapters.MapSiteDomainToApi(s))
	}
	params.WriteJSON(w, r, http.StatusOK, response)
}

func (h *Handler) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req api.SaveSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		params.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateSite(r.Context(), domain.Site{Name: req.Name, Address: req.Address})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create site")
		return
	}
	params.WriteJSON(w, r, http.StatusCreated, adapters.MapSiteDomainToApi(created))
}

func (h *Handler) UpdateSite(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(chi.URLParam(r, "id"))
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req api.SaveSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		params.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.svc.UpdateSite(r.Context(), domain.Site{ID: id, Name: req.Name, Address: req.Address})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to update site")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, catalog.ErrInvalid):
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		params.WriteError(w, r, http.StatusNotFound, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
		params.WriteError(w, r, http.StatusInternalServerError, msg)
	}
}
