// Package database opens the PostgreSQL connection pool shared by the SQL
// item stores. The pool is a plain *sql.DB backed by the pgx stdlib driver;
// every store call borrows a connection for one statement and returns it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"

	"github.com/ghuser/itemservice/pkg/logger"
)

const pingTimeout = 5 * time.Second

// Database wraps the *sql.DB pool and a logger.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool parses url, opens a pgx-backed *sql.DB and verifies connectivity.
// When the logger has debug enabled every SQL statement is traced through it.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	connConfig, err := pgx.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	if log.Enabled(ctx, slog.LevelDebug) {
		connConfig.Tracer = &tracelog.TraceLog{
			Logger:   tracelog.LoggerFunc(sqlLogFunc(log)),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	db := stdlib.OpenDB(*connConfig)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{db: db, log: log}, nil
}

// New wraps an already open *sql.DB.
func New(db *sql.DB, log logger.Logger) *Database {
	return &Database{db: db, log: log}
}

// DB returns the underlying pool handed to the SQL item stores.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Ping checks database health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close releases every pooled connection.
func (d *Database) Close() error {
	d.log.Info("closing database connection pool")
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("database close: %w", err)
	}
	return nil
}

// sqlLogFunc bridges pgx tracelog output into logger.Logger.
func sqlLogFunc(log logger.Logger) func(context.Context, tracelog.LogLevel, string, map[string]any) {
	return func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		args := make([]any, 0, len(data)*2+2)
		for k, v := range data {
			args = append(args, k, v)
		}
		args = append(args, "component", "pgx")

		switch {
		case level <= tracelog.LogLevelError:
			log.ErrorContext(ctx, msg, args...)
		case level == tracelog.LogLevelWarn:
			log.WarnContext(ctx, msg, args...)
		case level == tracelog.LogLevelInfo:
			log.InfoContext(ctx, msg, args...)
		default:
			log.DebugContext(ctx, msg, args...)
		}
	}
}
