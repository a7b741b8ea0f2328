package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shubh-37/website-section-generator/internal/agents"
	"github.com/shubh-37/website-section-generator/internal/database"
	"github.com/shubh-37/website-section-generator/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidIdea is returned when the idea text is empty
var ErrInvalidIdea = errors.New("idea must not be empty")

// Notifier is told about every idea that was generated successfully
type Notifier interface {
	NotifyGenerated(ctx context.Context, result *models.GenerateResult) error
}

// Recorder receives generation metrics
type Recorder interface {
	RecordGenerated(bucket string)
	RecordNotifyFailure()
}

type GeneratorService struct {
	store     database.Store
	generator *agents.ContentGeneratorAgent
	notifier  Notifier
	recorder  Recorder
	logger    *zap.Logger
}

type Option func(*GeneratorService)

func WithNotifier(n Notifier) Option {
	return func(s *GeneratorService) { s.notifier = n }
}

func WithRecorder(r Recorder) Option {
	return func(s *GeneratorService) { s.recorder = r }
}

func NewGeneratorService(store database.Store, generator *agents.ContentGeneratorAgent, logger *zap.Logger, opts ...Option) *GeneratorService {
	s := &GeneratorService{
		store:     store,
		generator: generator,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate stores the idea, classifies it and stores its three sections in
// order. A failure part way through leaves the records created so far in
// place; the error names the idea so it can be traced.
func (s *GeneratorService) Generate(ctx context.Context, idea string) (*models.GenerateResult, error) {
	if strings.TrimSpace(idea) == "" {
		return nil, ErrInvalidIdea
	}

	websiteIdea, err := s.store.CreateIdea(ctx, idea)
	if err != nil {
		return nil, fmt.Errorf("failed to create website idea: %w", err)
	}

	bucket, templates := s.generator.GenerateSections(idea)

	sections := make([]*models.Section, 0, len(templates))
	for i, tpl := range templates {
		section, err := s.store.CreateSection(ctx, websiteIdea.ID, tpl)
		if err != nil {
			return nil, fmt.Errorf("failed to create section %d of %d for idea %d: %w", i+1, len(templates), websiteIdea.ID, err)
		}
		sections = append(sections, section)
	}

	result := &models.GenerateResult{WebsiteIdea: websiteIdea, Sections: sections}

	s.logger.Info("generated sections",
		zap.Int64("websiteIdeaId", websiteIdea.ID),
		zap.String("bucket", string(bucket)),
		zap.Int("sections", len(sections)),
	)
	if s.recorder != nil {
		s.recorder.RecordGenerated(string(bucket))
	}

	s.notify(ctx, result)

	return result, nil
}

// notify never fails the request; a broken notifier only costs a log line
func (s *GeneratorService) notify(ctx context.Context, result *models.GenerateResult) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyGenerated(ctx, result); err != nil {
		s.logger.Warn("failed to send generation notification",
			zap.Int64("websiteIdeaId", result.WebsiteIdea.ID),
			zap.Error(err),
		)
		if s.recorder != nil {
			s.recorder.RecordNotifyFailure()
		}
	}
}

func (s *GeneratorService) ListSections(ctx context.Context) ([]*models.Section, error) {
	return s.store.ListSections(ctx)
}

func (s *GeneratorService) ListSectionsByIdea(ctx context.Context, websiteIdeaID int64) ([]*models.Section, error) {
	return s.store.ListSectionsByIdea(ctx, websiteIdeaID)
}

func (s *GeneratorService) ListIdeas(ctx context.Context) ([]*models.WebsiteIdea, error) {
	return s.store.ListIdeas(ctx)
}

func (s *GeneratorService) GetIdea(ctx context.Context, id int64) (*models.WebsiteIdea, error) {
	return s.store.GetIdea(ctx, id)
}

// StoreName names the backend in use, for health output
func (s *GeneratorService) StoreName() string {
	return s.store.Name()
}
