// pkg/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, SourceKindXML, cfg.SourceKind)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "A_office_data.xml", cfg.OfficeAFile)
	assert.Equal(t, "B_office_data.xml", cfg.OfficeBFile)
	assert.Equal(t, "hr_data.xml", cfg.HRFile)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.Postgres, "database config not loaded for xml source")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/hr")
	t.Setenv("HR_FILE", "people.xml")
	t.Setenv("FETCH_TIMEOUT_MS", "5000")
	t.Setenv("DOWNLOAD_MISSING", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/srv/hr", cfg.DataDir)
	assert.Equal(t, "people.xml", cfg.HRFile)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.DownloadMissing)
}

func TestLoadConfigPostgresSourceRequiresCredentials(t *testing.T) {
	t.Setenv("SOURCE_KIND", SourceKindPostgres)

	_, err := LoadConfig()
	assert.Error(t, err, "POSTGRES_USER and friends are required")
}

func TestLoadConfigPostgresSource(t *testing.T) {
	t.Setenv("SOURCE_KIND", SourceKindPostgres)
	t.Setenv("POSTGRES_USER", "hr")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "people")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "hr", cfg.Postgres.User)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Contains(t, cfg.Postgres.ConnectionString(), "dbname=people")
}

func TestValidateRejectsUnknownSourceKind(t *testing.T) {
	cfg := &Config{SourceKind: "ftp", FetchTimeout: time.Second}
	assert.Error(t, cfg.Validate())
}
