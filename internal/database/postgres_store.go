package database

import (
	"context"
	"time"

	"github.com/shubh-37/website-section-generator/internal/models"
	"go.uber.org/zap"
)

// PostgresStore is the Store backed by PostgreSQL through pgx
type PostgresStore struct {
	db       *DB
	ideas    *IdeaRepository
	sections *SectionRepository
}

// NewPostgresStore connects, creates the tables and returns the store
func NewPostgresStore(ctx context.Context, databaseURL string, connectTimeout time.Duration, logger *zap.Logger) (*PostgresStore, error) {
	db, err := NewDB(ctx, databaseURL, connectTimeout, logger)
	if err != nil {
		return nil, err
	}

	if err := db.CreateTables(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &PostgresStore{
		db:       db,
		ideas:    NewIdeaRepository(db),
		sections: NewSectionRepository(db),
	}, nil
}

func (s *PostgresStore) Name() string { return "postgres" }

func (s *PostgresStore) Close(ctx context.Context) error {
	s.db.Close()
	return nil
}

func (s *PostgresStore) CreateIdea(ctx context.Context, text string) (*models.WebsiteIdea, error) {
	idea := models.NewWebsiteIdea(text)
	if err := s.ideas.Create(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (s *PostgresStore) GetIdea(ctx context.Context, id int64) (*models.WebsiteIdea, error) {
	return s.ideas.GetByID(ctx, id)
}

func (s *PostgresStore) ListIdeas(ctx context.Context) ([]*models.WebsiteIdea, error) {
	return s.ideas.GetAll(ctx)
}

func (s *PostgresStore) CreateSection(ctx context.Context, websiteIdeaID int64, tpl models.SectionTemplate) (*models.Section, error) {
	section := models.NewSection(websiteIdeaID, tpl)
	if err := s.sections.Create(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *PostgresStore) ListSectionsByIdea(ctx context.Context, websiteIdeaID int64) ([]*models.Section, error) {
	return s.sections.GetByWebsiteIdeaID(ctx, websiteIdeaID)
}

func (s *PostgresStore) ListSections(ctx context.Context) ([]*models.Section, error) {
	return s.sections.GetAll(ctx)
}
