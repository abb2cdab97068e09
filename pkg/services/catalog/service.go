// Package catalog manages the reference dimensions: articles, sites,
// clients and sale types.
package catalog

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
	ListArticles(ctx context.Context, activeOnly bool) ([]store.Article, error)
	CreateArticle(ctx context.Context, a store.Article) (int64, error)
	UpdateArticle(ctx context.Context, a store.Article) error
	DeactivateArticle(ctx context.Context, id int64) error
	ListSites(ctx context.Context) ([]store.Site, error)
	CreateSite(ctx context.Context, s store.Site) (int64, error)
	UpdateSite(ctx context.Context, s store.Site) error
	ListClients(ctx context.Context) ([]store.Client, error)
	ListAgents(ctx context.Context) ([]store.Agent, error)
	ListSaleTypes(ctx context.Context) ([]string, error)
}

type Service struct {
	store Store
}

func NewService(st Store) *Service {
	return &Service{store: st}
}

func (s *Service) ListArticles(ctx context.Context, activeOnly bool) ([]domain.Article, error) {
	articles, err := s.store.ListArticles(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, adapters.MapArticleStoreToDomain(a))
	}
	return out, nil
}

func (s *Service) CreateArticle(ctx context.Context, a domain.Article) (domain.Article, error) {
	if err := validateArticle(a); err != nil {
		return domain.Article{}, err
	}
	id, err := s.store.CreateArticle(ctx, adapters.MapArticleDomainToStore(a))
	if err != nil {
		return domain.Article{}, err
	}
	a.ID = id
	a.Active = true
	return a, nil
}

func (s *Service) UpdateArticle(ctx context.Context, a domain.Article) error {
	if a.ID == 0 {
		return fmt.Errorf("%w: article id is required", ErrInvalid)
	}
	if err := validateArticle(a); err != nil {
		return err
	}
	return s.store.UpdateArticle(ctx, adapters.MapArticleDomainToStore(a))
}

func (s *Service) DeactivateArticle(ctx context.Context, id int64) error {
	return s.store.DeactivateArticle(ctx, id)
}

func validateArticle(a domain.Article) error {
	if a.Name == "" {
		return fmt.Errorf("%w: article name is required", ErrInvalid)
	}
	if a.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price cannot be negative", ErrInvalid)
	}
	return nil
}

func (s *Service) ListSites(ctx context.Context) ([]domain.Site, error) {
	sites, err := s.store.ListSites(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Site, 0, len(sites))
	for _, site := range sites {
		out = append(out, adapters.MapSiteStoreToDomain(site))
	}
	return out, nil
}

func (s *Service) CreateSite(ctx context.Context, site domain.Site) (domain.Site, error) {
	if site.Name == "" {
		return domain.Site{}, fmt.Errorf("%w: site name is required", ErrInvalid)
	}
	id, err := s.store.CreateSite(ctx, adapters.MapSiteDomainToStore(site))
	if err != nil {
		return domain.Site{}, err
	}
	site.ID = id
	return site, nil
}

func (s *Service) UpdateSite(ctx context.Context, site domain.Site) error {
	if site.ID == 0 || site.Name == "" {
		return fmt.Errorf("%w: site id and name are required", ErrInvalid)
	}
	return s.store.UpdateSite(ctx, adapters.MapSiteDomainToStore(site))
}

// References loads the full reference set served to non-derived dropdowns.
func (s *Service) References(ctx context.Context) (domain.ReferenceData, error) {
	var refs domain.ReferenceData

	sites, err := s.ListSites(ctx)
	if err != nil {
		return refs, fmt.Errorf("load sites: %w", err)
	}
	types, err := s.store.ListSaleTypes(ctx)
	if err != nil {
		return refs, fmt.Errorf("load sale types: %w", err)
	}
	articles, err := s.ListArticles(ctx, true)
	if err != nil {
		return refs, fmt.Errorf("load articles: %w", err)
	}
	clients, err := s.store.ListClients(ctx)
	if err != nil {
		return refs, fmt.Errorf("load clients: %w", err)
	}
	agents, err := s.store.ListAgents(ctx)
	if err != nil {
		return refs, fmt.Errorf("load agents: %w", err)
	}

	refs.Sites = sites
	refs.Types = types
	refs.Articles = articles
	refs.Clients = make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		refs.Clients = append(refs.Clients, adapters.MapClientStoreToDomain(c))
	}
	refs.Agents = make([]domain.Agent, 0, len(agents))
	for _, a := range agents {
		refs.Agents = append(refs.Agents, domain.Agent{ID: a.ID, Name: a.Name})
	}
	return refs, nil
}
