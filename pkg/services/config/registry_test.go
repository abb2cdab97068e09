package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfilePath(t *testing.T) {
	// Must resolve even when the current user cannot be determined; the
	// fallback is a relative path, never a panic or an empty string.
	path := DefaultProfilePath()

	assert.NotEmpty(t, path)
	assert.True(t, strings.HasSuffix(path, ".fournilcfg"), "got %q", path)
}

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".fournilcfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry_GetDSN(t *testing.T) {
	path := writeRegistry(t, `
[dev]
dsn = postgres://fournil@localhost:5432/fournil?sslmode=disable

[prod]
dsn = postgres://fournil@db:5432/fournil
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	dsn, err := registry.GetDSN(context.Background(), "prod")
	require.NoError(t, err)
	assert.Equal(t, "postgres://fournil@db:5432/fournil", dsn)
}

func TestRegistry_GetDSN_UnknownProfile(t *testing.T) {
	path := writeRegistry(t, `
[dev]
dsn = postgres://fournil@localhost:5432/fournil
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetDSN(context.Background(), "staging")
	assert.ErrorContains(t, err, "staging")
}

func TestRegistry_GetDSN_MissingDSN(t *testing.T) {
	path := writeRegistry(t, `
[dev]
host = localhost
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetDSN(context.Background(), "dev")
	assert.ErrorContains(t, err, "no dsn")
}

func TestRegistry_GetProfiles(t *testing.T) {
	path := writeRegistry(t, `
[dev]
dsn = postgres://fournil@localhost:5432/fournil

[prod]
dsn = postgres://fournil@db:5432/fournil
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"dev", "prod"}, profiles)
}
