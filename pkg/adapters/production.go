package adapters

import (
	"github.com/fournil-tools/fournil/pkg/filteropts"
	"github.com/fournil-tools/fournil/pkg/models/api"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
)

func MapProductionFilterDomainToStore(f domain.ProductionFilter) store.ProductionFilter {
	return store.ProductionFilter{
		From:      f.From,
		To:        f.To,
		SiteID:    f.SiteID,
		ArticleID: f.ArticleID,
		AgentID:   f.AgentID,
	}
}

func MapProductionBatchDomainToApi(b domain.ProductionBatch) api.ProductionBatch {
	details := make([]api.ProductionDetail, 0, len(b.Details))
	for _, d := range b.Details {
		details = append(details, api.ProductionDetail{
			ID:        d.ID,
			ArticleID: d.ArticleID,
			Article:   d.Article,
			Produced:  d.Produced,
			Unsold:    d.Unsold,
		})
	}
	return api.ProductionBatch{
		ID:            b.ID,
		SiteID:        b.SiteID,
		Site:          b.Site,
		AgentID:       b.AgentID,
		Agent:         b.Agent,
		Date:          b.Date,
		Details:       details,
		TotalProduced: b.TotalProduced,
		TotalUnsold:   b.TotalUnsold,
	}
}

func MapProductionOptionsDomainToApi(o domain.ProductionFilterOptions) api.ProductionFilterOptions {
	return api.ProductionFilterOptions{
		Articles: mapOptions(o.Articles),
		Agents:   mapOptions(o.Agents),
	}
}

func mapOptions(opts []filteropts.Option) []api.FilterOption {
	out := make([]api.FilterOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, api.FilterOption{ID: o.ID, Label: o.Label})
	}
	return out
}
