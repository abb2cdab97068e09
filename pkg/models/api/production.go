package api

import "time"

type ProductionDetail struct {
	ID        int64   `json:"id"`
	ArticleID int64   `json:"article_id"`
	Article   string  `json:"article"`
	Produced  float64 `json:"produced"`
	Unsold    float64 `json:"unsold"`
}

type ProductionBatch struct {
	ID            int64              `json:"id"`
	SiteID        int64              `json:"site_id"`
	Site          string             `json:"site"`
	AgentID       int64              `json:"agent_id"`
	Agent         string             `json:"agent"`
	Date          time.Time          `json:"date"`
	Details       []ProductionDetail `json:"details"`
	TotalProduced float64            `json:"total_produced"`
	TotalUnsold   float64            `json:"total_unsold"`
}

type PaginatedProduction struct {
	Data       []ProductionBatch `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type ProductionFilterOptions struct {
	Articles []FilterOption `json:"articles"`
	Agents   []FilterOption `json:"agents"`
}
