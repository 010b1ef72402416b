// pkg/source/snowflake.go
package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sf "github.com/snowflakedb/gosnowflake"
	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/config"
	"github.com/peopleops/hr-insights/pkg/model"
)

// SnowflakeLoader reads source tables from a Snowflake warehouse, one
// warehouse table per logical source.
type SnowflakeLoader struct {
	db     *sql.DB
	cfg    *config.SnowflakeConfig
	tables map[string]string
	logger *zap.Logger
}

// NewSnowflakeLoader connects to Snowflake using the DSN builder and
// maps logical source names to the configured table names.
func NewSnowflakeLoader(ctx context.Context, cfg *config.Config) (*SnowflakeLoader, error) {
	logger := zap.L().Named("snowflake-loader")
	sc := cfg.Snowflake

	sfConfig := &sf.Config{
		Account:   sc.Account,
		User:      sc.User,
		Password:  sc.Password,
		Database:  sc.Database,
		Schema:    sc.Schema,
		Warehouse: sc.Warehouse,
		Role:      sc.Role,
	}

	// Log connection attempt (without credentials)
	logger.Info("Connecting to Snowflake",
		zap.String("account", sc.Account),
		zap.String("user", sc.User),
		zap.String("database", sc.Database),
		zap.String("warehouse", sc.Warehouse))

	dsn, err := sf.DSN(sfConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build Snowflake DSN: %w", err)
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Snowflake connection: %w", err)
	}

	db.SetMaxOpenConns(sc.MaxOpenConns)
	db.SetMaxIdleConns(sc.MaxIdleConns)
	db.SetConnMaxLifetime(sc.ConnMaxLifetime)
	db.SetConnMaxIdleTime(sc.ConnMaxIdleTime)

	if sc.QueryTimeout > 0 {
		_, err = db.ExecContext(ctx,
			fmt.Sprintf("ALTER SESSION SET STATEMENT_TIMEOUT_IN_SECONDS = %d",
				int(sc.QueryTimeout.Seconds())))
		if err != nil {
			logger.Warn("Failed to set statement timeout", zap.Error(err))
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to Snowflake: %w", err)
	}

	return &SnowflakeLoader{
		db:  db,
		cfg: sc,
		tables: map[string]string{
			OfficeA: cfg.OfficeATable,
			OfficeB: cfg.OfficeBTable,
			HR:      cfg.HRTable,
		},
		logger: logger,
	}, nil
}

// Load reads the full warehouse table backing a logical source name.
func (l *SnowflakeLoader) Load(ctx context.Context, name string) (*model.Table, error) {
	tableName, ok := l.tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown source name: %s", name)
	}

	rows, err := l.db.QueryContext(ctx, "SELECT * FROM "+tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", tableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", tableName, err)
	}

	table := model.NewTable(name, columns)
	values := make([]interface{}, len(columns))
	scanTargets := make([]interface{}, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", tableName, err)
		}
		row := make(model.Row, len(columns))
		for i, col := range columns {
			row[col] = normalizeDriverValue(values[i])
		}
		table.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows of %s: %w", tableName, err)
	}

	l.logger.Info("Loaded source table",
		zap.String("source", name),
		zap.String("table", tableName),
		zap.Int("rows", table.Len()))

	return table, nil
}

// Close closes the warehouse connection.
func (l *SnowflakeLoader) Close() error {
	l.logger.Info("Closing Snowflake connection")
	return l.db.Close()
}
