package database

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/shubh-37/website-section-generator/internal/models"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a lookup by ID matches nothing
var ErrNotFound = errors.New("not found")

// Store persists website ideas and their generated sections.
// Implementations assign IDs on insert and list records in ID order.
type Store interface {
	CreateIdea(ctx context.Context, text string) (*models.WebsiteIdea, error)
	GetIdea(ctx context.Context, id int64) (*models.WebsiteIdea, error)
	ListIdeas(ctx context.Context) ([]*models.WebsiteIdea, error)

	CreateSection(ctx context.Context, websiteIdeaID int64, tpl models.SectionTemplate) (*models.Section, error)
	ListSectionsByIdea(ctx context.Context, websiteIdeaID int64) ([]*models.Section, error)
	ListSections(ctx context.Context) ([]*models.Section, error)

	Name() string
	Close(ctx context.Context) error
}

// Options configures how Open connects to the durable backend
type Options struct {
	URL              string
	DatabaseName     string
	OperationTimeout time.Duration
	// ConnectTimeout bounds each startup connection attempt to Postgres
	ConnectTimeout time.Duration
	Mongo          MongoTimeouts
}

// Open picks the storage backend once, at startup. A reachable durable store
// is wrapped in a FallbackStore; anything else (no URL, bad URL, unknown
// scheme, failed connection) yields a plain in-memory store.
func Open(ctx context.Context, opts Options, logger *zap.Logger, fallbackOpts ...FallbackOption) Store {
	if opts.URL == "" {
		logger.Warn("no DATABASE_URL configured, using in-memory storage")
		return NewMemoryStore()
	}

	parsed, err := url.Parse(opts.URL)
	if err != nil {
		logger.Warn("invalid DATABASE_URL, using in-memory storage", zap.Error(err))
		return NewMemoryStore()
	}

	var durable Store
	switch parsed.Scheme {
	case "mongodb", "mongodb+srv":
		durable, err = NewMongoStore(ctx, opts, logger.Named("mongo"))
	case "postgres", "postgresql":
		durable, err = NewPostgresStore(ctx, opts.URL, opts.ConnectTimeout, logger.Named("postgres"))
	default:
		logger.Warn("unsupported DATABASE_URL scheme, using in-memory storage", zap.String("scheme", parsed.Scheme))
		return NewMemoryStore()
	}

	if err != nil {
		logger.Warn("durable store unavailable, falling back to in-memory storage",
			zap.String("scheme", parsed.Scheme),
			zap.Error(err),
		)
		return NewMemoryStore()
	}

	logger.Info("using durable storage", zap.String("store", durable.Name()))
	return NewFallbackStore(durable, logger.Named("fallback"), append([]FallbackOption{
		WithOperationTimeout(opts.OperationTimeout),
	}, fallbackOpts...)...)
}
