// Package production mirrors the sales load cycle for cuisson batches.
package production

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/fournil-tools/fournil/pkg/adapters"
	"github.com/fournil-tools/fournil/pkg/filteropts"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
	"github.com/fournil-tools/fournil/pkg/paging"
)

type Store interface {
	CollectRows(ctx context.Context, f store.ProductionFilter) ([]store.ProductionRow, error)
	CountBatches(ctx context.Context, f store.ProductionFilter) (int, error)
}

type Explorer struct {
	store   Store
	options *filteropts.Extractor
}

func NewExplorer(st Store) *Explorer {
	return &Explorer{
		store:   st,
		options: filteropts.NewFrenchExtractor(),
	}
}

type result struct {
	rows  []store.ProductionRow
	total int
}

func (e *Explorer) collect(ctx context.Context, f domain.ProductionFilter) (*result, error) {
	pf := adapters.MapProductionFilterDomainToStore(f)

	var res result
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := e.store.CollectRows(ctx, pf)
		if err != nil {
			return fmt.Errorf("collect production rows: %w", err)
		}
		res.rows = rows
		return nil
	})
	g.Go(func() error {
		total, err := e.store.CountBatches(ctx, pf)
		if err != nil {
			return fmt.Errorf("count production batches: %w", err)
		}
		res.total = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

type View struct {
	Batches []domain.ProductionBatch
	Options domain.ProductionFilterOptions
	Page    paging.State
}

func (e *Explorer) Explore(ctx context.Context, f domain.ProductionFilter, page, pageSize int) (*View, error) {
	res, err := e.collect(ctx, f)
	if err != nil {
		return nil, err
	}

	grouped := GroupRows(res.rows)
	pager := paging.NewPager(pageSize)
	pager.SetTotalItems(res.total)
	pager.GoToPage(page)

	return &View{
		Batches: paging.Slice(grouped, pager.CurrentPage(), pager.PageSize()),
		Options: e.ExtractOptions(res.rows),
		Page:    pager.State(),
	}, nil
}

// Options runs a rows-only fetch and derives the dropdown choices from it,
// skipping the companion count.
func (e *Explorer) Options(ctx context.Context, f domain.ProductionFilter) (domain.ProductionFilterOptions, error) {
	rows, err := e.store.CollectRows(ctx, adapters.MapProductionFilterDomainToStore(f))
	if err != nil {
		return domain.ProductionFilterOptions{}, fmt.Errorf("collect production rows: %w", err)
	}
	return e.ExtractOptions(rows), nil
}

func (e *Explorer) ExtractOptions(rows []store.ProductionRow) domain.ProductionFilterOptions {
	return domain.ProductionFilterOptions{
		Articles: filteropts.Options(e.options, rows, func(r store.ProductionRow) filteropts.Option {
			return filteropts.Option{ID: strconv.FormatInt(r.ArticleID, 10), Label: r.ArticleName}
		}),
		Agents: filteropts.Options(e.options, rows, func(r store.ProductionRow) filteropts.Option {
			return filteropts.Option{ID: strconv.FormatInt(r.AgentID, 10), Label: r.AgentName}
		}),
	}
}
