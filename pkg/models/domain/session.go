package domain

// Role is the navigation profile of a connected user.
type Role string

const (
	RoleManager   Role = "manager"
	RoleGerant    Role = "gerant"
	RoleComptable Role = "comptable"
	RoleCaissier  Role = "caissier"
)

// Sections returns the dashboard sections a role may open. Route guarding
// itself is a front-end concern; this is reference data only.
func (r Role) Sections() []string {
	switch r {
	case RoleManager:
		return []string{"sales", "production", "recipes", "expenses", "articles", "sites", "accounts"}
	case RoleGerant:
		return []string{"sales", "production", "recipes", "expenses", "articles"}
	case RoleComptable:
		return []string{"sales", "expenses"}
	case RoleCaissier:
		return []string{"sales"}
	default:
		return nil
	}
}

type User struct {
	ID     int64
	Name   string
	Role   Role
	SiteID int64
}

// ReferenceData is the read-mostly set of dimension values loaded once after
// startup and served to dropdowns that are not result-sourced.
type ReferenceData struct {
	Sites    []Site
	Types    []string
	Articles []Article
	Clients  []Client
	Agents   []Agent
}
