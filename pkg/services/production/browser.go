package production

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/paging"
)

// Browser holds the cuisson screen state the same way the sales Browser
// does. Production options are always result-sourced; the cuisson screen
// never had catalog-backed dropdowns.
type Browser struct {
	explorer *Explorer

	gen atomic.Uint64

	mu      sync.Mutex
	pager   *paging.Pager
	batches []domain.ProductionBatch
	options domain.ProductionFilterOptions
	loading bool
	lastErr error
}

func NewBrowser(st Store, pageSize int) *Browser {
	return &Browser{
		explorer: NewExplorer(st),
		pager:    paging.NewPager(pageSize),
	}
}

func (b *Browser) Load(ctx context.Context, f domain.ProductionFilter) error {
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
		b.batches = nil
		b.options = domain.ProductionFilterOptions{}
		b.pager.SetTotalItems(0)
		b.lastErr = err
		return err
	}

	b.batches = GroupRows(res.rows)
	b.options = b.explorer.ExtractOptions(res.rows)
	b.pager.SetTotalItems(res.total)
	b.lastErr = nil
	return nil
}

type Snapshot struct {
	Batches   []domain.ProductionBatch
	Options   domain.ProductionFilterOptions
	Page      paging.State
	Loading   bool
	LastError error
}

func (b *Browser) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		Batches:   paging.Slice(b.batches, b.pager.CurrentPage(), b.pager.PageSize()),
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
