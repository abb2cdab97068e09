package store

import (
	"database/sql"
	"time"
)

// SaleRow is one denormalized sale line item as returned by the flat sales
// query. Parent-level fields (site, agent, client, date) repeat on every
// line of the same sale; line-level fields differ per row.
type SaleRow struct {
	SaleID      int64
	LineID      int64
	SiteID      int64
	SiteName    string
	Type        string
	AgentID     int64
	AgentName   string
	ClientName  sql.NullString
	ArticleID   int64
	ArticleName string
	Date        time.Time
	Quantity    float64
	UnitPrice   float64
	LineTotal   float64
	Collected   sql.NullFloat64
}

// SaleFilter describes the optional criteria of one flat sales query.
// Nil means "no constraint on this dimension". Date bounds are inclusive
// and independently optional.
type SaleFilter struct {
	From      *time.Time
	To        *time.Time
	SiteID    *int64
	Type      *string
	ArticleID *int64
	AgentID   *int64
}
