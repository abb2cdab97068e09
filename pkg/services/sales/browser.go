package sales

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/paging"
)

// Browser is the stateful embodiment of a sales screen: it owns the grouped
// result set, the filter options and the pager, and replaces all of them
// atomically on every load.
//
// Every Load is tagged with a generation; a response is applied only if its
// tag is still the latest, so rapid filter changes cannot interleave an old
// response over a newer one.
type Browser struct {
	explorer *Explorer
	policy   domain.OptionsSource
	catalog  func() domain.SaleFilterOptions

	gen atomic.Uint64

	mu      sync.Mutex
	pager   *paging.Pager
	sales   []domain.Sale
	options domain.SaleFilterOptions
	loading bool
	lastErr error
}

// BrowserOption tweaks Browser construction.
type BrowserOption func(*Browser)

// WithCatalogOptions switches the options policy to catalog-sourced:
// dropdown choices come from fn (the preloaded reference data) instead of
// the current result set.
func WithCatalogOptions(fn func() domain.SaleFilterOptions) BrowserOption {
	return func(b *Browser) {
		b.policy = domain.OptionsFromCatalog
		b.catalog = fn
	}
}

func NewBrowser(st Store, pageSize int, opts ...BrowserOption) *Browser {
	b := &Browser{
		explorer: NewExplorer(st),
		policy:   domain.OptionsFromResults,
		pager:    paging.NewPager(pageSize),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load runs one load cycle against the given filter. On success the grouped
// set, options and totals are replaced and the pager returns to page 1. On
// failure the displayed set is cleared together with the totals, never left
// stale, and the error is kept for Snapshot.
func (b *Browser) Load(ctx context.Context, f domain.SaleFilter) error {
	gen := b.gen.Add(1)

	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	res, err := b.explorer.collect(ctx, f)

	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.gen.Load() {
		return domain.ErrStaleLoad
	}
	b.loading = false
	b.pager.Reset()

	if err != nil {
		b.sales = nil
		b.options = domain.SaleFilterOptions{}
		b.pager.SetTotalItems(0)
		b.lastErr = err
		return err
	}

	b.sales = GroupRows(res.rows)
	b.options = b.resolveOptions(res)
	b.pager.SetTotalItems(res.total)
	b.lastErr = nil
	return nil
}

func (b *Browser) resolveOptions(res *result) domain.SaleFilterOptions {
	if b.policy == domain.OptionsFromCatalog && b.catalog != nil {
		return b.catalog()
	}
	return b.explorer.ExtractOptions(res.rows)
}

// Snapshot is the reactive state a screen renders from.
type Snapshot struct {
	Sales     []domain.Sale // current page of the grouped set
	Options   domain.SaleFilterOptions
	Page      paging.State
	Loading   bool
	LastError error
}

func (b *Browser) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		Sales:     paging.Slice(b.sales, b.pager.CurrentPage(), b.pager.PageSize()),
		Options:   b.options,
		Page:      b.pager.State(),
		Loading:   b.loading,
		LastError: b.lastErr,
	}
}

func (b *Browser) GoToFirstPage()    { b.nav((*paging.Pager).GoToFirstPage) }
func (b *Browser) GoToPreviousPage() { b.nav((*paging.Pager).GoToPreviousPage) }
func (b *Browser) GoToNextPage()     { b.nav((*paging.Pager).GoToNextPage) }
func (b *Browser) GoToLastPage()     { b.nav((*paging.Pager).GoToLastPage) }

func (b *Browser) GoToPage(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.GoToPage(n)
}

func (b *Browser) nav(move func(*paging.Pager)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	move(b.pager)
}
