// Package postgres implements the data-access layer over the bakery schema.
// All queries are parameterized; filter values never end up concatenated into
// query text.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/fournil-tools/fournil/pkg/models/domain"
)

var ErrNotFound = domain.ErrNotFound

type Settings struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewDB opens and pings a Postgres connection with sane pool defaults.
func NewDB(ctx context.Context, settings Settings) (*sql.DB, error) {
	if settings.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if settings.MaxOpenConns <= 0 {
		settings.MaxOpenConns = 20
	}
	if settings.MaxIdleConns <= 0 {
		settings.MaxIdleConns = 5
	}
	if settings.ConnMaxLifetime <= 0 {
		settings.ConnMaxLifetime = 30 * time.Minute
	}
	db.SetMaxOpenConns(settings.MaxOpenConns)
	db.SetMaxIdleConns(settings.MaxIdleConns)
	db.SetConnMaxLifetime(settings.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// clauseBuilder accumulates WHERE conditions with positional placeholders.
// Conditions are fmt verbs with a single %d for the argument position.
type clauseBuilder struct {
	conds []string
	args  []any
}

func (b *clauseBuilder) add(cond string, val any) {
	b.args = append(b.args, val)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

func (b *clauseBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}
