package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lutefd/currency-widget/internal/model"
	_ "github.com/lib/pq"
)

type PostgresLogRepository struct {
	db *sql.DB
}

// NewPostgresLogRepository opens connURL unless db is given, and checks the
// connection either way.
func NewPostgresLogRepository(connURL string, db *sql.DB) (*PostgresLogRepository, error) {
	if db == nil {
		var err error
		db, err = sql.Open("postgres", connURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresLogRepository{db: db}, nil
}

func (r *PostgresLogRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS widget_logs (
			id UUID PRIMARY KEY,
			level TEXT NOT NULL,
			message TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL,
			source TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create log table: %w", err)
	}
	return nil
}

func (r *PostgresLogRepository) SaveLog(ctx context.Context, log model.Log) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO widget_logs (id, level, message, timestamp, source)
		VALUES ($1, $2, $3, $4, $5)
	`, log.ID, log.Level, log.Message, log.Timestamp, log.Source)
	if err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	return nil
}

func (r *PostgresLogRepository) Close() error {
	return r.db.Close()
}
