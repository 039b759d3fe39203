package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id         SERIAL PRIMARY KEY,
	title      TEXT NOT NULL UNIQUE,
	price      DOUBLE PRECISION NOT NULL,
	image      TEXT NOT NULL DEFAULT '',
	quantity   INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// Connect opens the stock database through the pgx driver and makes sure the schema exists.
func Connect(ctx context.Context, dbUrl string) (*sql.DB, error) {
	if dbUrl == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	db, err := sql.Open("pgx", dbUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(pingCtx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}
