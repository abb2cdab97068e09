package api

// Pagination is the page metadata attached to every paginated response.
// Totals count grouped records, not flat rows.
type Pagination struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

type FilterOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Error struct {
	Error string `json:"error"`
}
