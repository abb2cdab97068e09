// Package sales turns the flat sale rows of the query layer into grouped,
// paged view state for the dashboard screens.
package sales

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

// Store is the slice of the query layer this service needs.
type Store interface {
	CollectRows(ctx context.Context, f store.SaleFilter) ([]store.SaleRow, error)
	CountSales(ctx context.Context, f store.SaleFilter) (int, error)
}

// Explorer is the stateless load path: one fetch+count cycle per call.
// Screens that keep state between calls use Browser instead.
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
	rows  []store.SaleRow
	total int
}

// collect fires the flat query and the companion count concurrently and
// joins both before anything is aggregated.
func (e *Explorer) collect(ctx context.Context, f domain.SaleFilter) (*result, error) {
	sf := adapters.MapSaleFilterDomainToStore(f)

	var res result
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := e.store.CollectRows(ctx, sf)
		if err != nil {
			return fmt.Errorf("collect sale rows: %w", err)
		}
		res.rows = rows
		return nil
	})
	g.Go(func() error {
		total, err := e.store.CountSales(ctx, sf)
		if err != nil {
			return fmt.Errorf("count sales: %w", err)
		}
		res.total = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

// View is one page of grouped sales plus its page metadata and the filter
// options derived from the same fetch.
type View struct {
	Sales   []domain.Sale
	Options domain.SaleFilterOptions
	Page    paging.State
}

// Explore runs one full load cycle: fetch + count, group, extract options,
// page the grouped result. The page slices grouped sales, not flat rows.
func (e *Explorer) Explore(ctx context.Context, f domain.SaleFilter, page, pageSize int) (*View, error) {
	res, err := e.collect(ctx, f)
	if err != nil {
		return nil, err
	}

	grouped := GroupRows(res.rows)
	pager := paging.NewPager(pageSize)
	pager.SetTotalItems(res.total)
	pager.GoToPage(page)

	return &View{
		Sales:   paging.Slice(grouped, pager.CurrentPage(), pager.PageSize()),
		Options: e.ExtractOptions(res.rows),
		Page:    pager.State(),
	}, nil
}

// Options runs a rows-only fetch and derives the dropdown choices from it.
// The companion count is skipped; no page metadata is produced here.
func (e *Explorer) Options(ctx context.Context, f domain.SaleFilter) (domain.SaleFilterOptions, error) {
	rows, err := e.store.CollectRows(ctx, adapters.MapSaleFilterDomainToStore(f))
	if err != nil {
		return domain.SaleFilterOptions{}, fmt.Errorf("collect sale rows: %w", err)
	}
	return e.ExtractOptions(rows), nil
}

// ExtractOptions derives dropdown choices from the rows of the current
// fetch. Values excluded by the active filters will not appear; see
// Browser's options policy for the catalog-sourced alternative.
func (e *Explorer) ExtractOptions(rows []store.SaleRow) domain.SaleFilterOptions {
	return domain.SaleFilterOptions{
		Types: filteropts.Options(e.options, rows, func(r store.SaleRow) filteropts.Option {
			return filteropts.Option{ID: r.Type, Label: r.Type}
		}),
		Articles: filteropts.Options(e.options, rows, func(r store.SaleRow) filteropts.Option {
			return filteropts.Option{ID: strconv.FormatInt(r.ArticleID, 10), Label: r.ArticleName}
		}),
		Agents: filteropts.Options(e.options, rows, func(r store.SaleRow) filteropts.Option {
			return filteropts.Option{ID: strconv.FormatInt(r.AgentID, 10), Label: r.AgentName}
		}),
	}
}
