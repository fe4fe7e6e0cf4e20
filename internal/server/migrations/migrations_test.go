package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_users.sql", "00002_subjects_notes.sql"}, files)

	for _, f := range files {
		b, err := fs.ReadFile(Migrations, f)
		require.NoError(t, err)
		assert.Contains(t, string(b), "-- +goose Up", f)
		assert.Contains(t, string(b), "-- +goose Down", f)
	}
}

func TestMigrations_ConstraintNames(t *testing.T) {
	b, err := fs.ReadFile(Migrations, "00001_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(b), "CONSTRAINT users_username_key UNIQUE (username)")
	assert.Contains(t, string(b), "CONSTRAINT users_email_key UNIQUE (email)")

	b, err = fs.ReadFile(Migrations, "00002_subjects_notes.sql")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(b), "ON DELETE CASCADE"))
}
