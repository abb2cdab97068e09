package commands

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/services/config"
	"github.com/fournil-tools/fournil/pkg/store/postgres"
)

const dateLayout = "2006-01-02"

func openDB(ctx context.Context, profilePath, profile string) (*sql.DB, error) {
	registry, err := config.NewRegistry(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile registry: %w", err)
	}
	dsn, err := registry.GetDSN(ctx, profile)
	if err != nil {
		return nil, err
	}
	return postgres.NewDB(ctx, postgres.Settings{DSN: dsn})
}

// parsePeriod resolves the report date range. Empty bounds default to the
// last defaultDays days ending today, on the operator's local day boundary.
func parsePeriod(from, to string, defaultDays int) (domain.TimePeriod, error) {
	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	start := end.AddDate(0, 0, -defaultDays)

	if from != "" {
		parsed, err := time.Parse(dateLayout, from)
		if err != nil {
			return domain.TimePeriod{}, fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", from)
		}
		start = parsed
	}
	if to != "" {
		parsed, err := time.Parse(dateLayout, to)
		if err != nil {
			return domain.TimePeriod{}, fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", to)
		}
		end = parsed
	}
	if end.Before(start) {
		return domain.TimePeriod{}, fmt.Errorf("--to date is before --from date")
	}

	// Round instead of truncate so DST transitions inside the range do not
	// shave a day off.
	return domain.TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(end.Sub(start).Hours()/24 + 0.5),
	}, nil
}
