// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Source kinds supported by the loader factory.
const (
	SourceKindXML       = "xml"
	SourceKindPostgres  = "postgres"
	SourceKindSnowflake = "snowflake"
)

// Config represents the application configuration
type Config struct {
	// Where the three source tables come from
	SourceKind string

	// XML source settings
	DataDir         string
	OfficeAFile     string
	OfficeBFile     string
	HRFile          string
	OfficeAURL      string
	OfficeBURL      string
	HRURL           string
	DownloadMissing bool
	FetchTimeout    time.Duration

	// Database source settings (postgres/snowflake)
	Postgres     *PostgresConfig
	Snowflake    *SnowflakeConfig
	OfficeATable string
	OfficeBTable string
	HRTable      string

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		SourceKind:      getEnv("SOURCE_KIND", SourceKindXML),
		DataDir:         getEnv("DATA_DIR", "./data"),
		OfficeAFile:     getEnv("OFFICE_A_FILE", "A_office_data.xml"),
		OfficeBFile:     getEnv("OFFICE_B_FILE", "B_office_data.xml"),
		HRFile:          getEnv("HR_FILE", "hr_data.xml"),
		OfficeAURL:      getEnv("OFFICE_A_URL", ""),
		OfficeBURL:      getEnv("OFFICE_B_URL", ""),
		HRURL:           getEnv("HR_URL", ""),
		DownloadMissing: getEnvAsBool("DOWNLOAD_MISSING", true),
		FetchTimeout:    time.Duration(getEnvAsInt("FETCH_TIMEOUT_MS", 30000)) * time.Millisecond,
		OfficeATable:    getEnv("OFFICE_A_TABLE", "a_office_data"),
		OfficeBTable:    getEnv("OFFICE_B_TABLE", "b_office_data"),
		HRTable:         getEnv("HR_TABLE", "hr_data"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
	}

	// Database configurations are only required for database sources
	switch cfg.SourceKind {
	case SourceKindPostgres:
		pgConfig, err := LoadPostgresConfig()
		if err != nil {
			return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
		}
		cfg.Postgres = pgConfig
	case SourceKindSnowflake:
		snowConfig, err := LoadSnowflakeConfig()
		if err != nil {
			return nil, errors.New("failed to load Snowflake configuration: " + err.Error())
		}
		cfg.Snowflake = snowConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	switch c.SourceKind {
	case SourceKindXML:
		if c.DataDir == "" {
			return errors.New("data directory is required for the xml source")
		}
		if c.OfficeAFile == "" || c.OfficeBFile == "" || c.HRFile == "" {
			return errors.New("all three source file names are required")
		}
	case SourceKindPostgres:
		if c.Postgres == nil {
			return errors.New("postgreSQL configuration is required")
		}
	case SourceKindSnowflake:
		if c.Snowflake == nil {
			return errors.New("snowflake configuration is required")
		}
	default:
		return fmt.Errorf("unknown source kind: %s", c.SourceKind)
	}

	if c.FetchTimeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
