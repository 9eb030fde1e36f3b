package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable"},
		{"postgresql://localhost/db", "pgx5://localhost/db"},
		{"pgx5://localhost/db", "pgx5://localhost/db"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, migrationURL(test.dsn))
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsDir.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
