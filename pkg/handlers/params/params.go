// Package params parses the query parameters shared by the dashboard
// endpoints and writes the JSON envelopes.
package params

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/fournil-tools/fournil/pkg/models/api"
)

const dateLayout = "2006-01-02"

// Date reads an optional YYYY-MM-DD parameter. Absent means nil, not an
// error; malformed input is rejected before it reaches the query layer.
func Date(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid '%s' date format, expected YYYY-MM-DD", name)
	}
	return &t, nil
}

// ID reads an optional numeric identifier parameter.
func ID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid '%s', expected a positive id", name)
	}
	return &id, nil
}

// Text reads an optional free-text parameter.
func Text(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// PositiveInt reads an optional positive integer parameter, falling back
// to def when absent.
func PositiveInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid '%s', expected a positive integer", name)
	}
	return n, nil
}

// PathID reads a required numeric identifier from the URL path.
func PathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteJSON(w, r, status, api.Error{Error: msg})
}
