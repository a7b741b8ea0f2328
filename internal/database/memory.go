package database

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/shubh-37/website-section-generator/internal/models"
)

// MemoryStore keeps everything in process memory. It backs the service when
// no durable store is reachable and absorbs failed durable calls.
type MemoryStore struct {
	mu            sync.RWMutex
	ideas         map[int64]*models.WebsiteIdea
	sections      map[int64]*models.Section
	nextIdeaID    int64
	nextSectionID int64
	idOffset      int64
}

type MemoryOption func(*MemoryStore)

// WithIDOffset numbers ideas and sections from offset+1, keeping them apart
// from IDs handed out by another store.
func WithIDOffset(offset int64) MemoryOption {
	return func(s *MemoryStore) {
		s.idOffset = offset
		s.nextIdeaID = offset
		s.nextSectionID = offset
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		ideas:    make(map[int64]*models.WebsiteIdea),
		sections: make(map[int64]*models.Section),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// CreateIdea stores a new idea under the next sequential ID
func (s *MemoryStore) CreateIdea(ctx context.Context, text string) (*models.WebsiteIdea, error) {
	idea := models.NewWebsiteIdea(text)

	s.mu.Lock()
	s.nextIdeaID++
	idea.ID = s.nextIdeaID
	s.ideas[idea.ID] = idea
	s.mu.Unlock()

	return copyIdea(idea), nil
}

func (s *MemoryStore) GetIdea(ctx context.Context, id int64) (*models.WebsiteIdea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idea, ok := s.ideas[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyIdea(idea), nil
}

func (s *MemoryStore) ListIdeas(ctx context.Context) ([]*models.WebsiteIdea, error) {
	s.mu.RLock()
	ideas := make([]*models.WebsiteIdea, 0, len(s.ideas))
	for _, idea := range s.ideas {
		ideas = append(ideas, copyIdea(idea))
	}
	s.mu.RUnlock()

	slices.SortFunc(ideas, func(a, b *models.WebsiteIdea) int { return cmp.Compare(a.ID, b.ID) })
	return ideas, nil
}

// CreateSection stores a section for the given idea under the next sequential ID
func (s *MemoryStore) CreateSection(ctx context.Context, websiteIdeaID int64, tpl models.SectionTemplate) (*models.Section, error) {
	section := models.NewSection(websiteIdeaID, tpl)

	s.mu.Lock()
	s.nextSectionID++
	section.ID = s.nextSectionID
	s.sections[section.ID] = section
	s.mu.Unlock()

	return copySection(section), nil
}

func (s *MemoryStore) ListSectionsByIdea(ctx context.Context, websiteIdeaID int64) ([]*models.Section, error) {
	return s.listSections(func(section *models.Section) bool {
		return section.WebsiteIdeaID == websiteIdeaID
	}), nil
}

func (s *MemoryStore) ListSections(ctx context.Context) ([]*models.Section, error) {
	return s.listSections(func(*models.Section) bool { return true }), nil
}

// Empty reports whether nothing has been written to the store yet
func (s *MemoryStore) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ideas) == 0 && len(s.sections) == 0
}

// Owns reports whether id falls in the range this store allocates from
func (s *MemoryStore) Owns(id int64) bool {
	return id > s.idOffset
}

func (s *MemoryStore) listSections(keep func(*models.Section) bool) []*models.Section {
	s.mu.RLock()
	sections := make([]*models.Section, 0, len(s.sections))
	for _, section := range s.sections {
		if keep(section) {
			sections = append(sections, copySection(section))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(sections, func(a, b *models.Section) int { return cmp.Compare(a.ID, b.ID) })
	return sections
}

func copyIdea(idea *models.WebsiteIdea) *models.WebsiteIdea {
	c := *idea
	return &c
}

func copySection(section *models.Section) *models.Section {
	c := *section
	c.Features = slices.Clone(section.Features)
	return &c
}
