package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("PROJECT_CREATION_POLICY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.AppURL)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, ProjectCreationAdmin, cfg.ProjectCreationPolicy)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("FRONTEND_ORIGIN", "https://board.example.com")
	t.Setenv("PROJECT_CREATION_POLICY", "any")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, ProjectCreationAny, cfg.ProjectCreationPolicy)
	assert.Equal(t, []string{"https://board.example.com"}, cfg.AllowedOrigins())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "taskboard.db?_foreign_keys=on", sqliteDSN("taskboard.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "file:x?_fk=1", sqliteDSN("file:x?_fk=1"))
}
