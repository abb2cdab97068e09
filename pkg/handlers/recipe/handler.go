package recipe

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
	"github.com/fournil-tools/fournil/pkg/services/recipe"
)

type Service interface {
	List(ctx context.Context) ([]domain.Recipe, error)
	Create(ctx context.Context, r domain.Recipe) (domain.Recipe, error)
	Update(ctx context.Context, r domain.Recipe) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recipes, err := h.svc.List(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list recipes")
		params.WriteError(w, r, http.StatusInternalServerError, "failed to list recipes")
		return
	}

	response := make([]api.Recipe, 0, len(recipes))
	for _, rec := range recipes {
		response = append(response, adapters.MapRecipeDomainToApi(rec))
	}
	params.WriteJSON(w, r, http.StatusOK, response)
}

func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req api.SaveRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		params.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), mapRequest(0, req))
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create recipe")
		return
	}
	params.WriteJSON(w, r, http.StatusCreated, adapters.MapRecipeDomainToApi(created))
}

func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(chi.URLParam(r, "id"))
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req api.SaveRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		params.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Update(r.Context(), mapRequest(id, req)); err != nil {
		h.writeServiceError(w, r, err, "failed to update recipe")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(chi.URLParam(r, "id"))
	if err != nil {
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, "failed to delete recipe")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, recipe.ErrInvalid):
		params.WriteError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		params.WriteError(w, r, http.StatusNotFound, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
		params.WriteError(w, r, http.StatusInternalServerError, msg)
	}
}

func mapRequest(id int64, req api.SaveRecipeRequest) domain.Recipe {
	lines := make([]domain.RecipeLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, domain.RecipeLine{
			Ingredient: l.Ingredient,
			Quantity:   l.Quantity,
			Unit:       l.Unit,
		})
	}
	return domain.Recipe{
		ID:        id,
		Name:      req.Name,
		ArticleID: req.ArticleID,
		Yield:     req.Yield,
		Lines:     lines,
	}
}
