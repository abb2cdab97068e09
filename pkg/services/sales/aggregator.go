package sales

import (
	"github.com/fournil-tools/fournil/pkg/aggregate"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
)

// GroupRows folds the ordered flat row list into one Sale per sale id.
// Parent fields come from the first row of each sale; totals are the sums of
// the line fields, with NULL collected amounts contributing zero. Given the
// store's sort contract the output is ordered by sale id descending.
func GroupRows(rows []store.SaleRow) []domain.Sale {
	return aggregate.Group(rows,
		func(r store.SaleRow) int64 { return r.SaleID },
		func(r store.SaleRow) *domain.Sale {
			return &domain.Sale{
				ID:      r.SaleID,
				SiteID:  r.SiteID,
				Site:    r.SiteName,
				Type:    r.Type,
				AgentID: r.AgentID,
				Agent:   r.AgentName,
				Client:  r.ClientName.String,
				Date:    r.Date,
			}
		},
		func(s *domain.Sale, r store.SaleRow) {
			detail := domain.SaleDetail{
				ID:        r.LineID,
				ArticleID: r.ArticleID,
				Article:   r.ArticleName,
				Quantity:  r.Quantity,
				UnitPrice: r.UnitPrice,
				Total:     r.LineTotal,
			}
			if r.Collected.Valid {
				detail.Collected = r.Collected.Float64
			}
			s.Details = append(s.Details, detail)
			s.TotalQuantity += detail.Quantity
			s.TotalAmount += detail.Total
			s.TotalCollected += detail.Collected
		})
}
