package database

import (
	"io/fs"
	"testing"

	"go-clinic-management/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "db",
		Port:     "5432",
		User:     "clinic",
		Name:     "clinic",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	assert.Equal(t, "host=db user=clinic dbname=clinic port=5432 sslmode=disable TimeZone=UTC", DSN(cfg))

	cfg.Password = "secret"
	assert.Contains(t, DSN(cfg), "password=secret")
}

func TestMigrationFilesArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationFiles, "migrations/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
