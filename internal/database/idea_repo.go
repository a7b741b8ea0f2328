package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shubh-37/website-section-generator/internal/models"
)

type IdeaRepository struct {
	db *DB
}

func NewIdeaRepository(db *DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// Create inserts a new idea and fills in the generated ID
func (r *IdeaRepository) Create(ctx context.Context, idea *models.WebsiteIdea) error {
	query := `
		INSERT INTO website_ideas (idea, created_at)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.db.Pool.QueryRow(ctx, query, idea.Idea, idea.CreatedAt).Scan(&idea.ID); err != nil {
		return fmt.Errorf("failed to create website idea: %w", err)
	}

	return nil
}

// GetByID retrieves an idea by its ID
func (r *IdeaRepository) GetByID(ctx context.Context, id int64) (*models.WebsiteIdea, error) {
	query := `
		SELECT id, idea, created_at
		FROM website_ideas
		WHERE id = $1
	`

	idea := &models.WebsiteIdea{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&idea.ID, &idea.Idea, &idea.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get website idea: %w", err)
	}

	return idea, nil
}

// GetAll retrieves all ideas in creation order
func (r *IdeaRepository) GetAll(ctx context.Context) ([]*models.WebsiteIdea, error) {
	query := `
		SELECT id, idea, created_at
		FROM website_ideas
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query website ideas: %w", err)
	}
	defer rows.Close()

	ideas := []*models.WebsiteIdea{}
	for rows.Next() {
		idea := &models.WebsiteIdea{}
		if err := rows.Scan(&idea.ID, &idea.Idea, &idea.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan website idea: %w", err)
		}
		ideas = append(ideas, idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read website ideas: %w", err)
	}

	return ideas, nil
}
