package domain

import "time"

// SaleDetail is one line item within a grouped sale.
type SaleDetail struct {
	ID        int64
	ArticleID int64
	Article   string
	Quantity  float64
	UnitPrice float64
	Total     float64
	Collected float64
}

// Sale is one parent record synthesized from all flat rows sharing its id.
// Totals are only ever produced by summation over Details during grouping;
// they are never stored independently of it.
type Sale struct {
	ID      int64
	SiteID  int64
	Site    string
	Type    string
	AgentID int64
	Agent   string
	Client  string
	Date    time.Time

	Details        []SaleDetail
	TotalQuantity  float64
	TotalAmount    float64
	TotalCollected float64
}

// SaleFilter is the structured filter set a caller applies to sales.
// Nil fields are absent criteria.
type SaleFilter struct {
	From      *time.Time
	To        *time.Time
	SiteID    *int64
	Type      *string
	ArticleID *int64
	AgentID   *int64
}
