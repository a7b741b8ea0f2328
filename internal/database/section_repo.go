package database

import (
	"context"
	"fmt"

	"github.com/shubh-37/website-section-generator/internal/models"
)

type SectionRepository struct {
	db *DB
}

func NewSectionRepository(db *DB) *SectionRepository {
	return &SectionRepository{db: db}
}

const sectionColumns = `id, website_idea_id, title, type, description, features, created_at`

// Create inserts a new section and fills in the generated ID
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (website_idea_id, title, type, description, features, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		section.WebsiteIdeaID,
		section.Title,
		section.Type,
		section.Description,
		section.Features,
		section.CreatedAt,
	).Scan(&section.ID)

	if err != nil {
		return fmt.Errorf("failed to create section: %w", err)
	}

	return nil
}

// GetByWebsiteIdeaID retrieves the sections generated for one idea
func (r *SectionRepository) GetByWebsiteIdeaID(ctx context.Context, websiteIdeaID int64) ([]*models.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE website_idea_id = $1 ORDER BY id`
	return r.query(ctx, query, websiteIdeaID)
}

// GetAll retrieves every section in creation order
func (r *SectionRepository) GetAll(ctx context.Context) ([]*models.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections ORDER BY id`
	return r.query(ctx, query)
}

func (r *SectionRepository) query(ctx context.Context, query string, args ...any) ([]*models.Section, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	sections := []*models.Section{}
	for rows.Next() {
		section := &models.Section{}
		err := rows.Scan(
			&section.ID,
			&section.WebsiteIdeaID,
			&section.Title,
			&section.Type,
			&section.Description,
			&section.Features,
			&section.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sections: %w", err)
	}

	return sections, nil
}
