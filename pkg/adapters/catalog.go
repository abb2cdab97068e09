package adapters

import (
	"database/sql"

	"github.com/fournil-tools/fournil/pkg/models/api"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
)

func MapArticleStoreToDomain(a store.Article) domain.Article {
	return domain.Article{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		UnitPrice: a.UnitPrice,
		Active:    a.Active,
	}
}

func MapArticleDomainToStore(a domain.Article) store.Article {
	return store.Article{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		UnitPrice: a.UnitPrice,
		Active:    a.Active,
	}
}

func MapArticleDomainToApi(a domain.Article) api.Article {
	return api.Article{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		UnitPrice: a.UnitPrice,
		Active:    a.Active,
	}
}

func MapSiteStoreToDomain(s store.Site) domain.Site {
	return domain.Site{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address.String,
	}
}

func MapSiteDomainToStore(s domain.Site) store.Site {
	addr := sql.NullString{String: s.Address, Valid: s.Address != ""}
	return store.Site{ID: s.ID, Name: s.Name, Address: addr}
}

func MapSiteDomainToApi(s domain.Site) api.Site {
	return api.Site{ID: s.ID, Name: s.Name, Address: s.Address}
}

func MapClientStoreToDomain(c store.Client) domain.Client {
	return domain.Client{ID: c.ID, Name: c.Name}
}

func MapReferenceDataDomainToApi(r domain.ReferenceData) api.ReferenceData {
	out := api.ReferenceData{
		Sites:    make([]api.Site, 0, len(r.Sites)),
		Types:    r.Types,
		Articles: make([]api.Article, 0, len(r.Articles)),
		Clients:  make([]api.Client, 0, len(r.Clients)),
		Agents:   make([]api.Agent, 0, len(r.Agents)),
	}
	for _, s := range r.Sites {
		out.Sites = append(out.Sites, MapSiteDomainToApi(s))
	}
	for _, a := range r.Articles {
		out.Articles = append(out.Articles, MapArticleDomainToApi(a))
	}
	for _, c := range r.Clients {
		out.Clients = append(out.Clients, api.Client{ID: c.ID, Name: c.Name})
	}
	for _, u := range r.Agents {
		out.Agents = append(out.Agents, api.Agent{ID: u.ID, Name: u.Name})
	}
	return out
}

func MapExpenseStoreToDomain(e store.Expense) domain.Expense {
	return domain.Expense{
		ID:     e.ID,
		SiteID: e.SiteID,
		Site:   e.SiteName,
		Label:  e.Label,
		Amount: e.Amount,
		Date:   e.Date,
	}
}

func MapExpenseDomainToApi(e domain.Expense) api.Expense {
	return api.Expense{
		ID:     e.ID,
		SiteID: e.SiteID,
		Site:   e.Site,
		Label:  e.Label,
		Amount: e.Amount,
		Date:   e.Date,
	}
}

func MapExpenseFilterDomainToStore(f domain.ExpenseFilter) store.ExpenseFilter {
	return store.ExpenseFilter{From: f.From, To: f.To, SiteID: f.SiteID}
}

func MapRecipeDomainToApi(r domain.Recipe) api.Recipe {
	lines := make([]api.RecipeLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, api.RecipeLine{
			ID:         l.ID,
			Ingredient: l.Ingredient,
			Quantity:   l.Quantity,
			Unit:       l.Unit,
		})
	}
	return api.Recipe{
		ID:        r.ID,
		Name:      r.Name,
		ArticleID: r.ArticleID,
		Yield:     r.Yield,
		Lines:     lines,
	}
}
