// Package postgres opens the relational directory store and applies its schema.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // register the postgres driver

	"askthem/internal/platform/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS people (
	id              UUID PRIMARY KEY,
	slug            TEXT NOT NULL DEFAULT '',
	full_name       TEXT NOT NULL DEFAULT '',
	first_name      TEXT NOT NULL DEFAULT '',
	last_name       TEXT NOT NULL DEFAULT '',
	jurisdiction_id TEXT NOT NULL DEFAULT '',
	type            TEXT NOT NULL DEFAULT '',
	featured        BOOLEAN NOT NULL DEFAULT FALSE,
	active          BOOLEAN NOT NULL DEFAULT FALSE,
	chamber         TEXT NOT NULL DEFAULT '',
	district        TEXT NOT NULL DEFAULT '',
	document        JSONB NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS people_jurisdiction_idx ON people (jurisdiction_id);
CREATE INDEX IF NOT EXISTS people_type_idx ON people (type);
CREATE INDEX IF NOT EXISTS people_featured_idx ON people (featured) WHERE featured;
CREATE INDEX IF NOT EXISTS people_active_idx ON people (active, chamber, last_name);

CREATE TABLE IF NOT EXISTS person_details (
	person_id           UUID PRIMARY KEY,
	biography           TEXT NOT NULL DEFAULT '',
	links               JSONB NOT NULL DEFAULT '[]',
	signature_threshold INTEGER NOT NULL,
	votesmart_id        TEXT NOT NULL DEFAULT '',
	updated_at          TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS identities (
	id         UUID PRIMARY KEY,
	person_id  UUID NOT NULL,
	user_id    UUID NOT NULL,
	status     TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS identities_person_idx ON identities (person_id, status);
`

// Open connects to PostgreSQL, verifies the connection and applies the schema.
func Open(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(int(cfg.MaxConns))
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies the idempotent schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
