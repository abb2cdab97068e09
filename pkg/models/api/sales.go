package api

import "time"

type SaleDetail struct {
	ID        int64   `json:"id"`
	ArticleID int64   `json:"article_id"`
	Article   string  `json:"article"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	Collected float64 `json:"collected"`
}

type Sale struct {
	ID             int64        `json:"id"`
	SiteID         int64        `json:"site_id"`
	Site           string       `json:"site"`
	Type           string       `json:"type"`
	AgentID        int64        `json:"agent_id"`
	Agent          string       `json:"agent"`
	Client         string       `json:"client,omitempty"`
	Date           time.Time    `json:"date"`
	Details        []SaleDetail `json:"details"`
	TotalQuantity  float64      `json:"total_quantity"`
	TotalAmount    float64      `json:"total_amount"`
	TotalCollected float64      `json:"total_collected"`
}

type PaginatedSales struct {
	Data       []Sale     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type SaleFilterOptions struct {
	Types    []FilterOption `json:"types"`
	Articles []FilterOption `json:"articles"`
	Agents   []FilterOption `json:"agents"`
}
