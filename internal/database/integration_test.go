package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Run with TEST_MONGODB_URI / TEST_DATABASE_URL pointing at disposable servers.

func TestMongoStore_Integration(t *testing.T) {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := NewMongoStore(ctx, Options{
		URL:          uri,
		DatabaseName: "website_generator_test_" + time.Now().Format("20060102150405"),
	}, zap.NewNop())
	require.NoError(t, err)
	defer func() {
		_ = store.ideas.Database().Drop(ctx)
		_ = store.Close(ctx)
	}()

	exerciseStore(t, ctx, store)
}

func TestPostgresStore_Integration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := NewPostgresStore(ctx, url, 10*time.Second, zap.NewNop())
	require.NoError(t, err)
	defer store.Close(ctx)

	exerciseStore(t, ctx, store)
}

func exerciseStore(t *testing.T, ctx context.Context, store Store) {
	t.Helper()

	idea, err := store.CreateIdea(ctx, "Landing page for bakery")
	require.NoError(t, err)
	assert.NotZero(t, idea.ID)

	for _, tpl := range sampleTemplates() {
		section, err := store.CreateSection(ctx, idea.ID, tpl)
		require.NoError(t, err)
		assert.Equal(t, idea.ID, section.WebsiteIdeaID)
	}

	sections, err := store.ListSectionsByIdea(ctx, idea.ID)
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Equal(t, "Hero Section", sections[0].Title)
	assert.Equal(t, []string{"Contact Form", "Map Integration", "Hours & Info"}, sections[2].Features)

	got, err := store.GetIdea(ctx, idea.ID)
	require.NoError(t, err)
	assert.Equal(t, idea.Idea, got.Idea)

	_, err = store.GetIdea(ctx, idea.ID+1_000_000)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := store.ListSections(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 3)
}
