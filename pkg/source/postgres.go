// pkg/source/postgres.go
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/config"
	"github.com/peopleops/hr-insights/pkg/model"
)

// PostgresLoader reads source tables from a PostgreSQL database, one
// database table per logical source.
type PostgresLoader struct {
	db     *sqlx.DB
	schema string
	tables map[string]string
	logger *zap.Logger
}

// NewPostgresLoader connects to PostgreSQL and maps logical source
// names to the configured table names.
func NewPostgresLoader(ctx context.Context, cfg *config.Config) (*PostgresLoader, error) {
	logger := zap.L().Named("postgres-loader")
	pg := cfg.Postgres

	logger.Info("Connecting to PostgreSQL",
		zap.String("host", pg.Host),
		zap.Int("port", pg.Port),
		zap.String("database", pg.Database))

	db, err := sqlx.Open("postgres", pg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(pg.MaxOpenConns)
	db.SetMaxIdleConns(pg.MaxIdleConns)
	db.SetConnMaxLifetime(pg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if pg.StatementTimeout > 0 {
		_, err = db.ExecContext(ctx,
			fmt.Sprintf("SET statement_timeout = %d", pg.StatementTimeout.Milliseconds()))
		if err != nil {
			logger.Warn("Failed to set statement timeout", zap.Error(err))
		}
	}

	return &PostgresLoader{
		db:     db,
		schema: pg.Schema,
		tables: map[string]string{
			OfficeA: cfg.OfficeATable,
			OfficeB: cfg.OfficeBTable,
			HR:      cfg.HRTable,
		},
		logger: logger,
	}, nil
}

// Load reads the full database table backing a logical source name,
// preserving database row order.
func (l *PostgresLoader) Load(ctx context.Context, name string) (*model.Table, error) {
	tableName, ok := l.tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown source name: %s", name)
	}

	query := fmt.Sprintf(`SELECT * FROM "%s"."%s"`, l.schema, tableName)
	rows, err := l.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", tableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", tableName, err)
	}

	table := model.NewTable(name, columns)
	for rows.Next() {
		raw := make(map[string]interface{}, len(columns))
		if err := rows.MapScan(raw); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", tableName, err)
		}
		row := make(model.Row, len(raw))
		for col, v := range raw {
			row[col] = normalizeDriverValue(v)
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

// Close closes the database connection.
func (l *PostgresLoader) Close() error {
	l.logger.Info("Closing PostgreSQL connection")
	return l.db.Close()
}

// normalizeDriverValue maps database/sql driver values onto the model's
// scalar set.
func normalizeDriverValue(v interface{}) model.Value {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return inferValue(string(val))
	case int64, float64, bool, string:
		return val
	case int32:
		return int64(val)
	case float32:
		return float64(val)
	default:
		return model.AsString(val)
	}
}
