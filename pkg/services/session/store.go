// Package session owns the application-root state: the connected user and
// the preloaded reference data. It is built once at startup and handed to
// its consumers explicitly; nothing reads it through package globals.
package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/fournil-tools/fournil/pkg/filteropts"
	"github.com/fournil-tools/fournil/pkg/models/domain"
)

// RefLoader supplies the reference data, typically the catalog service.
type RefLoader interface {
	References(ctx context.Context) (domain.ReferenceData, error)
}

type Store struct {
	mu   sync.RWMutex
	user *domain.User
	refs domain.ReferenceData
}

func NewStore() *Store {
	return &Store{}
}

// Init loads the reference data once. Call it after the database is up and
// before any screen renders a dropdown.
func (s *Store) Init(ctx context.Context, loader RefLoader) error {
	refs, err := loader.References(ctx)
	if err != nil {
		return fmt.Errorf("init session references: %w", err)
	}
	s.mu.Lock()
	s.refs = refs
	s.mu.Unlock()
	return nil
}

func (s *Store) SetUser(u domain.User) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

func (s *Store) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// Clear drops the connected user on logout. Reference data stays; it is not
// user-scoped.
func (s *Store) Clear() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

func (s *Store) References() domain.ReferenceData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refs
}

// SaleOptions shapes the reference data as catalog-sourced filter options
// for screens configured away from result-sourced dropdowns. All three
// dimensions are served, so switching the policy never empties a dropdown
// that result-sourced mode would populate.
func (s *Store) SaleOptions() domain.SaleFilterOptions {
	refs := s.References()

	opts := domain.SaleFilterOptions{
		Types:    make([]filteropts.Option, 0, len(refs.Types)),
		Articles: make([]filteropts.Option, 0, len(refs.Articles)),
		Agents:   make([]filteropts.Option, 0, len(refs.Agents)),
	}
	for _, t := range refs.Types {
		opts.Types = append(opts.Types, filteropts.Option{ID: t, Label: t})
	}
	for _, a := range refs.Articles {
		opts.Articles = append(opts.Articles, filteropts.Option{
			ID:    strconv.FormatInt(a.ID, 10),
			Label: a.Name,
		})
	}
	for _, u := range refs.Agents {
		opts.Agents = append(opts.Agents, filteropts.Option{
			ID:    strconv.FormatInt(u.ID, 10),
			Label: u.Name,
		})
	}
	return opts
}
