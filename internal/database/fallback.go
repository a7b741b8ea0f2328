package database

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shubh-37/website-section-generator/internal/models"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// FallbackIDOffset is where the fallback memory store starts numbering, far
// above anything a durable sequence reaches, so an ID alone tells which store
// holds the record.
const FallbackIDOffset int64 = 1 << 40

// errCallerCanceled marks a durable call abandoned because the caller's own
// context ended. It is not held against the durable store.
var errCallerCanceled = errors.New("caller canceled")

// FallbackStore sends every call to a durable store first. When the durable
// call fails, the same call is made against an in-memory store and its result
// is returned instead; the durable error never reaches the caller and the
// durable path is not retried.
//
// The memory store numbers from FallbackIDOffset. Lookups by an ID in that
// range go straight to memory; list reads merge both stores in ID order so
// writes made during an outage stay readable.
type FallbackStore struct {
	durable    Store
	fallback   *MemoryStore
	breaker    *gobreaker.CircuitBreaker
	timeout    time.Duration
	logger     *zap.Logger
	onFallback func(op string)
}

type FallbackOption func(*FallbackStore)

// WithOperationTimeout bounds each durable call. Zero disables the bound.
func WithOperationTimeout(d time.Duration) FallbackOption {
	return func(s *FallbackStore) { s.timeout = d }
}

// WithFallbackHook registers a callback invoked every time a call is served
// by the memory store.
func WithFallbackHook(fn func(op string)) FallbackOption {
	return func(s *FallbackStore) { s.onFallback = fn }
}

// WithBreakerSettings replaces the default circuit breaker settings
func WithBreakerSettings(settings gobreaker.Settings) FallbackOption {
	return func(s *FallbackStore) { s.breaker = newBreaker(settings, s.logger) }
}

func NewFallbackStore(durable Store, logger *zap.Logger, opts ...FallbackOption) *FallbackStore {
	s := &FallbackStore{
		durable:  durable,
		fallback: NewMemoryStore(WithIDOffset(FallbackIDOffset)),
		logger:   logger,
	}
	s.breaker = newBreaker(DefaultBreakerSettings(durable.Name()), logger)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultBreakerSettings trips after five consecutive durable failures and
// retries the durable store after thirty seconds.
func DefaultBreakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

func newBreaker(settings gobreaker.Settings, logger *zap.Logger) *gobreaker.CircuitBreaker {
	// A miss is an answer, not a backend failure.
	settings.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, errCallerCanceled)
	}
	settings.OnStateChange = func(name string, from, to gobreaker.State) {
		logger.Warn("durable store circuit breaker changed state",
			zap.String("breaker", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	}
	return gobreaker.NewCircuitBreaker(settings)
}

func (s *FallbackStore) Name() string {
	return s.durable.Name() + "+memory-fallback"
}

func (s *FallbackStore) Close(ctx context.Context) error {
	return s.durable.Close(ctx)
}

// attempt runs fn against the durable store through the breaker
func attempt[T any](ctx context.Context, s *FallbackStore, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	result, err := s.breaker.Execute(func() (interface{}, error) {
		callCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		value, err := fn(callCtx)
		if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: %w", errCallerCanceled, err)
		}
		return value, err
	})
	if err != nil {
		return zero, err
	}

	value, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected durable result type %T", result)
	}
	return value, nil
}

// degrade logs a failed durable call and reports whether the memory store
// should serve it. A caller that went away is not served at all.
func (s *FallbackStore) degrade(op string, err error) bool {
	if errors.Is(err, errCallerCanceled) {
		return false
	}
	s.logger.Warn("durable store operation failed, using fallback",
		zap.String("op", op),
		zap.String("store", s.durable.Name()),
		zap.Error(err),
	)
	if s.onFallback != nil {
		s.onFallback(op)
	}
	return true
}

func (s *FallbackStore) CreateIdea(ctx context.Context, text string) (*models.WebsiteIdea, error) {
	idea, err := attempt(ctx, s, func(ctx context.Context) (*models.WebsiteIdea, error) {
		return s.durable.CreateIdea(ctx, text)
	})
	if err == nil {
		return idea, nil
	}

	if !s.degrade("create_idea", err) {
		return nil, ctx.Err()
	}
	return s.fallback.CreateIdea(ctx, text)
}

func (s *FallbackStore) GetIdea(ctx context.Context, id int64) (*models.WebsiteIdea, error) {
	if s.fallback.Owns(id) {
		return s.fallback.GetIdea(ctx, id)
	}

	idea, err := attempt(ctx, s, func(ctx context.Context) (*models.WebsiteIdea, error) {
		return s.durable.GetIdea(ctx, id)
	})
	if err == nil || errors.Is(err, ErrNotFound) {
		return idea, err
	}

	if !s.degrade("get_idea", err) {
		return nil, ctx.Err()
	}
	return s.fallback.GetIdea(ctx, id)
}

func (s *FallbackStore) ListIdeas(ctx context.Context) ([]*models.WebsiteIdea, error) {
	ideas, err := attempt(ctx, s, func(ctx context.Context) ([]*models.WebsiteIdea, error) {
		return s.durable.ListIdeas(ctx)
	})
	if err != nil {
		if !s.degrade("list_ideas", err) {
			return nil, ctx.Err()
		}
		return s.fallback.ListIdeas(ctx)
	}

	if s.fallback.Empty() {
		return ideas, nil
	}
	held, _ := s.fallback.ListIdeas(ctx)
	return mergeByID(ideas, held, func(i *models.WebsiteIdea) int64 { return i.ID }), nil
}

// CreateSection writes sections of an idea held in memory to memory as well;
// the durable store has never seen that idea.
func (s *FallbackStore) CreateSection(ctx context.Context, websiteIdeaID int64, tpl models.SectionTemplate) (*models.Section, error) {
	if s.fallback.Owns(websiteIdeaID) {
		return s.fallback.CreateSection(ctx, websiteIdeaID, tpl)
	}

	section, err := attempt(ctx, s, func(ctx context.Context) (*models.Section, error) {
		return s.durable.CreateSection(ctx, websiteIdeaID, tpl)
	})
	if err == nil {
		return section, nil
	}

	if !s.degrade("create_section", err) {
		return nil, ctx.Err()
	}
	return s.fallback.CreateSection(ctx, websiteIdeaID, tpl)
}

func (s *FallbackStore) ListSectionsByIdea(ctx context.Context, websiteIdeaID int64) ([]*models.Section, error) {
	if s.fallback.Owns(websiteIdeaID) {
		return s.fallback.ListSectionsByIdea(ctx, websiteIdeaID)
	}

	sections, err := attempt(ctx, s, func(ctx context.Context) ([]*models.Section, error) {
		return s.durable.ListSectionsByIdea(ctx, websiteIdeaID)
	})
	if err != nil {
		if !s.degrade("list_sections_by_idea", err) {
			return nil, ctx.Err()
		}
		return s.fallback.ListSectionsByIdea(ctx, websiteIdeaID)
	}

	if s.fallback.Empty() {
		return sections, nil
	}
	held, _ := s.fallback.ListSectionsByIdea(ctx, websiteIdeaID)
	return mergeByID(sections, held, func(sec *models.Section) int64 { return sec.ID }), nil
}

func (s *FallbackStore) ListSections(ctx context.Context) ([]*models.Section, error) {
	sections, err := attempt(ctx, s, func(ctx context.Context) ([]*models.Section, error) {
		return s.durable.ListSections(ctx)
	})
	if err != nil {
		if !s.degrade("list_sections", err) {
			return nil, ctx.Err()
		}
		return s.fallback.ListSections(ctx)
	}

	if s.fallback.Empty() {
		return sections, nil
	}
	held, _ := s.fallback.ListSections(ctx)
	return mergeByID(sections, held, func(sec *models.Section) int64 { return sec.ID }), nil
}

func mergeByID[T any](durable, held []T, id func(T) int64) []T {
	merged := append(durable, held...)
	slices.SortFunc(merged, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return merged
}
