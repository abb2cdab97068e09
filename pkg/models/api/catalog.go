package api

import "time"

type Article struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	UnitPrice float64 `json:"unit_price"`
	Active    bool    `json:"active"`
}

type SaveArticleRequest struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	UnitPrice float64 `json:"unit_price"`
}

type Site struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type SaveSiteRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Client struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Agent struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ReferenceData struct {
	Sites    []Site    `json:"sites"`
	Types    []string  `json:"types"`
	Articles []Article `json:"articles"`
	Clients  []Client  `json:"clients"`
	Agents   []Agent   `json:"agents"`
}

type Expense struct {
	ID     int64     `json:"id"`
	SiteID int64     `json:"site_id"`
	Site   string    `json:"site"`
	Label  string    `json:"label"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

type SaveExpenseRequest struct {
	SiteID int64   `json:"site_id"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

type ExpenseSummary struct {
	SiteID int64   `json:"site_id"`
	Site   string  `json:"site"`
	Total  float64 `json:"total"`
}

type RecipeLine struct {
	ID         int64   `json:"id"`
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

type Recipe struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	ArticleID int64        `json:"article_id"`
	Yield     float64      `json:"yield"`
	Lines     []RecipeLine `json:"lines"`
}

type SaveRecipeLine struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

type SaveRecipeRequest struct {
	Name      string           `json:"name"`
	ArticleID int64            `json:"article_id"`
	Yield     float64          `json:"yield"`
	Lines     []SaveRecipeLine `json:"lines"`
}
