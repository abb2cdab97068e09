package store

import (
	"database/sql"
	"time"
)

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
	Address sql.NullString
}

type Client struct {
	ID   int64
	Name string
}

// Agent is a utilisateur row reduced to its dropdown identity.
type Agent struct {
	ID   int64
	Name string
}

type Expense struct {
	ID       int64
	SiteID   int64
	SiteName string
	Label    string
	Amount   float64
	Date     time.Time
}

// ExpenseFilter narrows expense listings; all criteria optional.
type ExpenseFilter struct {
	From   *time.Time
	To     *time.Time
	SiteID *int64
}

// ExpenseSummaryRow is one per-site aggregate computed server-side.
type ExpenseSummaryRow struct {
	SiteID   int64
	SiteName string
	Total    float64
}

// RecipeRow is one denormalized recipe ingredient line, grouped client-side
// the same way sale rows are.
type RecipeRow struct {
	RecipeID   int64
	LineID     int64
	RecipeName string
	ArticleID  int64
	Yield      float64
	Ingredient string
	Quantity   float64
	Unit       string
}
