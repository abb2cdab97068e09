package store

import (
	"database/sql"
	"time"
)

// ProductionRow is one denormalized production line item: one article baked
// within one cuisson batch.
type ProductionRow struct {
	BatchID     int64
	LineID      int64
	SiteID      int64
	SiteName    string
	AgentID     int64
	AgentName   string
	ArticleID   int64
	ArticleName string
	Date        time.Time
	Produced    float64
	Unsold      sql.NullFloat64
}

// ProductionFilter describes the optional criteria of one flat production query.
type ProductionFilter struct {
	From      *time.Time
	To        *time.Time
	SiteID    *int64
	ArticleID *int64
	AgentID   *int64
}
