package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shubh-37/website-section-generator/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	DefaultDatabaseName = "website_generator"

	ideasCollection    = "website_ideas"
	sectionsCollection = "sections"
	countersCollection = "counters"
)

// MongoTimeouts are the client-level timeouts handed to the Mongo driver
type MongoTimeouts struct {
	ServerSelection time.Duration
	Connect         time.Duration
	Socket          time.Duration
}

// MongoStore is the Store backed by MongoDB. Documents keep the driver's
// ObjectID as _id; the integer ID exposed by the API lives in "seq" and is
// drawn from an atomically incremented counter document.
type MongoStore struct {
	client   *mongo.Client
	ideas    *mongo.Collection
	sections *mongo.Collection
	counters *mongo.Collection
	logger   *zap.Logger
}

type counterDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// NewMongoStore connects, pings the server and prepares indexes
func NewMongoStore(ctx context.Context, opts Options, logger *zap.Logger) (*MongoStore, error) {
	clientOpts := options.Client().ApplyURI(opts.URL)
	if opts.Mongo.ServerSelection > 0 {
		clientOpts.SetServerSelectionTimeout(opts.Mongo.ServerSelection)
	}
	if opts.Mongo.Connect > 0 {
		clientOpts.SetConnectTimeout(opts.Mongo.Connect)
	}
	if opts.Mongo.Socket > 0 {
		clientOpts.SetSocketTimeout(opts.Mongo.Socket)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("unable to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("unable to ping mongo: %w", err)
	}

	name := opts.DatabaseName
	if name == "" {
		name = DefaultDatabaseName
	}
	db := client.Database(name)

	store := &MongoStore{
		client:   client,
		ideas:    db.Collection(ideasCollection),
		sections: db.Collection(sectionsCollection),
		counters: db.Collection(countersCollection),
		logger:   logger,
	}

	if err := store.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("connected to mongo", zap.String("database", name))
	return store, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	if _, err := s.ideas.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "seq", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to index %s: %w", ideasCollection, err)
	}

	if _, err := s.sections.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "seq", Value: 1}}},
		{Keys: bson.D{{Key: "website_idea_id", Value: 1}, {Key: "seq", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to index %s: %w", sectionsCollection, err)
	}

	return nil
}

func (s *MongoStore) Name() string { return "mongodb" }

func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	s.logger.Info("mongo connection closed")
	return nil
}

// nextSeq atomically increments and returns the named counter
func (s *MongoStore) nextSeq(ctx context.Context, name string) (int64, error) {
	var counter counterDocument
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", name, err)
	}
	return counter.Seq, nil
}

func (s *MongoStore) CreateIdea(ctx context.Context, text string) (*models.WebsiteIdea, error) {
	seq, err := s.nextSeq(ctx, ideasCollection)
	if err != nil {
		return nil, err
	}

	idea := models.NewWebsiteIdea(text)
	idea.ID = seq

	if _, err := s.ideas.InsertOne(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to insert website idea: %w", err)
	}

	return idea, nil
}

func (s *MongoStore) GetIdea(ctx context.Context, id int64) (*models.WebsiteIdea, error) {
	idea := &models.WebsiteIdea{}
	err := s.ideas.FindOne(ctx, bson.M{"seq": id}).Decode(idea)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find website idea: %w", err)
	}
	return idea, nil
}

func (s *MongoStore) ListIdeas(ctx context.Context) ([]*models.WebsiteIdea, error) {
	cursor, err := s.ideas.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query website ideas: %w", err)
	}

	ideas := []*models.WebsiteIdea{}
	if err := cursor.All(ctx, &ideas); err != nil {
		return nil, fmt.Errorf("failed to decode website ideas: %w", err)
	}
	return ideas, nil
}

func (s *MongoStore) CreateSection(ctx context.Context, websiteIdeaID int64, tpl models.SectionTemplate) (*models.Section, error) {
	seq, err := s.nextSeq(ctx, sectionsCollection)
	if err != nil {
		return nil, err
	}

	section := models.NewSection(websiteIdeaID, tpl)
	section.ID = seq

	if _, err := s.sections.InsertOne(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to insert section: %w", err)
	}

	return section, nil
}

func (s *MongoStore) ListSectionsByIdea(ctx context.Context, websiteIdeaID int64) ([]*models.Section, error) {
	return s.findSections(ctx, bson.M{"website_idea_id": websiteIdeaID})
}

func (s *MongoStore) ListSections(ctx context.Context) ([]*models.Section, error) {
	return s.findSections(ctx, bson.M{})
}

func (s *MongoStore) findSections(ctx context.Context, filter bson.M) ([]*models.Section, error) {
	cursor, err := s.sections.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}

	sections := []*models.Section{}
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	return sections, nil
}
