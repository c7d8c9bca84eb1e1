package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_Present(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Contains(t, names, "00001_create_users.sql")
	assert.Contains(t, names, "00002_create_projects.sql")
	assert.Contains(t, names, "00003_create_notes.sql")
}

func TestEmbeddedMigrations_HaveDownSections(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)

	for _, e := range entries {
		body, err := embedMigrations.ReadFile(e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}
