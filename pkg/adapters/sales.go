package adapters

import (
	"github.com/fournil-tools/fournil/pkg/models/api"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
	"github.com/fournil-tools/fournil/pkg/paging"
)

func MapSaleFilterDomainToStore(f domain.SaleFilter) store.SaleFilter {
	return store.SaleFilter{
		From:      f.From,
		To:        f.To,
		SiteID:    f.SiteID,
		Type:      f.Type,
		ArticleID: f.ArticleID,
		AgentID:   f.AgentID,
	}
}

func MapSaleDomainToApi(s domain.Sale) api.Sale {
	details := make([]api.SaleDetail, 0, len(s.Details))
	for _, d := range s.Details {
		details = append(details, api.SaleDetail{
			ID:        d.ID,
			ArticleID: d.ArticleID,
			Article:   d.Article,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Total:     d.Total,
			Collected: d.Collected,
		})
	}
	return api.Sale{
		ID:             s.ID,
		SiteID:         s.SiteID,
		Site:           s.Site,
		Type:           s.Type,
		AgentID:        s.AgentID,
		Agent:          s.Agent,
		Client:         s.Client,
		Date:           s.Date,
		Details:        details,
		TotalQuantity:  s.TotalQuantity,
		TotalAmount:    s.TotalAmount,
		TotalCollected: s.TotalCollected,
	}
}

func MapPageStateToApi(s paging.State) api.Pagination {
	return api.Pagination{
		Page:        s.CurrentPage,
		PageSize:    s.PageSize,
		Total:       s.TotalItems,
		TotalPages:  s.TotalPages,
		HasNext:     s.HasNext,
		HasPrevious: s.HasPrevious,
	}
}

func MapSaleOptionsDomainToApi(o domain.SaleFilterOptions) api.SaleFilterOptions {
	return api.SaleFilterOptions{
		Types:    mapOptions(o.Types),
		Articles: mapOptions(o.Articles),
		Agents:   mapOptions(o.Agents),
	}
}
