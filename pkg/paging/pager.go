// Package paging maintains client-side pagination state over grouped record
// sets, independent of how many flat rows the backing query returned.
package paging

const DefaultPageSize = 10

// Pager tracks a 1-based current page over a caller-supplied total item
// count. The count is the number of grouped records, typically obtained from
// a companion COUNT query, not the number of flat rows fetched.
//
// Navigation always clamps into [1, TotalPages]; moving beyond either bound
// is a no-op, never an error. Pager is not safe for concurrent use.
type Pager struct {
	page       int
	pageSize   int
	totalItems int
}

// State is a point-in-time view of the pager, safe to hand to renderers.
type State struct {
	CurrentPage int
	PageSize    int
	TotalItems  int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{page: 1, pageSize: pageSize}
}

func (p *Pager) CurrentPage() int { return p.page }
func (p *Pager) PageSize() int    { return p.pageSize }
func (p *Pager) TotalItems() int  { return p.totalItems }

// TotalPages is always at least 1, even for an empty set.
func (p *Pager) TotalPages() int {
	if p.totalItems <= 0 {
		return 1
	}
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// SetTotalItems replaces the denominator and clamps the current page into
// the new bound. Negative counts are treated as zero.
func (p *Pager) SetTotalItems(n int) {
	if n < 0 {
		n = 0
	}
	p.totalItems = n
	p.clamp()
}

// SetPageSize changes the page size at runtime, recomputing TotalPages and
// clamping the current page.
func (p *Pager) SetPageSize(n int) {
	if n <= 0 {
		n = DefaultPageSize
	}
	p.pageSize = n
	p.clamp()
}

// Reset returns to page 1. Callers must reset on every reload or filter
// change so a retry starts from a consistent state.
func (p *Pager) Reset() { p.page = 1 }

func (p *Pager) GoToPage(n int) {
	p.page = n
	p.clamp()
}

func (p *Pager) GoToFirstPage()    { p.page = 1 }
func (p *Pager) GoToLastPage()     { p.page = p.TotalPages() }
func (p *Pager) GoToNextPage()     { p.GoToPage(p.page + 1) }
func (p *Pager) GoToPreviousPage() { p.GoToPage(p.page - 1) }

func (p *Pager) HasNextPage() bool     { return p.page < p.TotalPages() }
func (p *Pager) HasPreviousPage() bool { return p.page > 1 }

// Offset and Limit support the fetch-one-page-per-request pattern.
func (p *Pager) Offset() int { return (p.page - 1) * p.pageSize }
func (p *Pager) Limit() int  { return p.pageSize }

func (p *Pager) State() State {
	return State{
		CurrentPage: p.page,
		PageSize:    p.pageSize,
		TotalItems:  p.totalItems,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrevious: p.HasPreviousPage(),
	}
}

func (p *Pager) clamp() {
	if tp := p.TotalPages(); p.page > tp {
		p.page = tp
	}
	if p.page < 1 {
		p.page = 1
	}
}

// Slice returns the 1-based page of items for screens that fetch the full
// filtered set and page locally. Out-of-range pages yield an empty slice.
func Slice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
