package database

import (
	"context"
	"fmt"
)

// CreateTables creates the website_ideas and sections tables if missing
func (db *DB) CreateTables(ctx context.Context) error {
	ideasTable := `
	CREATE TABLE IF NOT EXISTS website_ideas (
		id BIGSERIAL PRIMARY KEY,
		idea TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`

	sectionsTable := `
	CREATE TABLE IF NOT EXISTS sections (
		id BIGSERIAL PRIMARY KEY,
		website_idea_id BIGINT NOT NULL REFERENCES website_ideas(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		type TEXT NOT NULL,
		description TEXT NOT NULL,
		features TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_sections_website_idea_id ON sections(website_idea_id);
	`

	for _, table := range []string{ideasTable, sectionsTable} {
		if _, err := db.Pool.Exec(ctx, table); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	db.logger.Debug("tables ready")
	return nil
}
