package domain

import "time"

// ProductionDetail is one article line within a grouped cuisson batch.
type ProductionDetail struct {
	ID        int64
	ArticleID int64
	Article   string
	Produced  float64
	Unsold    float64
}

// ProductionBatch is one cuisson grouped from its flat line rows.
type ProductionBatch struct {
	ID      int64
	SiteID  int64
	Site    string
	AgentID int64
	Agent   string
	Date    time.Time

	Details       []ProductionDetail
	TotalProduced float64
	TotalUnsold   float64
}

type ProductionFilter struct {
	From      *time.Time
	To        *time.Time
	SiteID    *int64
	ArticleID *int64
	AgentID   *int64
}
