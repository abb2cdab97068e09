package domain

import "time"

type Article struct {
	ID        int64
	Name      string
	Type      string
	UnitPrice float64
	Active    bool
}

type Site struct {
	ID      int64
	Name    string
	Address string
}

type Client struct {
	ID   int64
	Name string
}

// Agent is a selling or producing utilisateur, as exposed to dropdowns.
type Agent struct {
	ID   int64
	Name string
}

type Expense struct {
	ID     int64
	SiteID int64
	Site   string
	Label  string
	Amount float64
	Date   time.Time
}

type ExpenseFilter struct {
	From   *time.Time
	To     *time.Time
	SiteID *int64
}

type ExpenseSummary struct {
	SiteID int64
	Site   string
	Total  float64
}

type RecipeLine struct {
	ID         int64
	Ingredient string
	Quantity   float64
	Unit       string
}

// Recipe describes how one article is produced.
type Recipe struct {
	ID        int64
	Name      string
	ArticleID int64
	Yield     float64
	Lines     []RecipeLine
}
