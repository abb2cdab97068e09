package production

import (
	"github.com/fournil-tools/fournil/pkg/aggregate"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
)

// GroupRows folds flat cuisson lines into one batch per cuisson id, newest
// batch first per the store's sort contract. NULL unsold counts contribute
// zero to the batch totals.
func GroupRows(rows []store.ProductionRow) []domain.ProductionBatch {
	return aggregate.Group(rows,
		func(r store.ProductionRow) int64 { return r.BatchID },
		func(r store.ProductionRow) *domain.ProductionBatch {
			return &domain.ProductionBatch{
				ID:      r.BatchID,
				SiteID:  r.SiteID,
				Site:    r.SiteName,
				AgentID: r.AgentID,
				Agent:   r.AgentName,
				Date:    r.Date,
			}
		},
		func(b *domain.ProductionBatch, r store.ProductionRow) {
			detail := domain.ProductionDetail{
				ID:        r.LineID,
				ArticleID: r.ArticleID,
				Article:   r.ArticleName,
				Produced:  r.Produced,
			}
			if r.Unsold.Valid {
				detail.Unsold = r.Unsold.Float64
			}
			b.Details = append(b.Details, detail)
			b.TotalProduced += detail.Produced
			b.TotalUnsold += detail.Unsold
		})
}
