package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	categorizer := NewCategorizerAgent()

	tests := []struct {
		name string
		idea string
		want Bucket
	}{
		{"bakery", "Landing page for bakery", BucketFood},
		{"food uppercase", "FOOD truck schedule", BucketFood},
		{"restaurant mixed case", "Family Restaurant in Lisbon", BucketFood},
		{"portfolio", "My design portfolio", BucketPortfolio},
		{"photographer", "Wedding Photographer site", BucketPortfolio},
		{"artist", "Tattoo artist showcase", BucketPortfolio},
		{"ecommerce", "Ecommerce for sneakers", BucketCommerce},
		{"shop", "Online shop for candles", BucketCommerce},
		{"store", "Vinyl record STORE", BucketCommerce},
		{"substring match", "bookstore website", BucketCommerce},
		{"no keyword", "Consulting agency homepage", BucketGeneric},
		{"empty", "", BucketGeneric},
		{"food beats portfolio", "bakery portfolio", BucketFood},
		{"portfolio beats commerce", "artist shop", BucketPortfolio},
		{"food beats commerce", "restaurant store", BucketFood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categorizer.Categorize(tt.idea))
		})
	}
}

func TestGenerateSections_BakeryExample(t *testing.T) {
	generator := NewContentGeneratorAgent(NewCategorizerAgent())

	bucket, sections := generator.GenerateSections("Landing page for bakery")

	assert.Equal(t, BucketFood, bucket)
	require.Len(t, sections, 3)

	assert.Equal(t, "Hero Section", sections[0].Title)
	assert.Equal(t, "Menu & Products", sections[1].Title)
	assert.Equal(t, "Contact & Location", sections[2].Title)

	assert.Equal(t, []string{"Hero Image", "CTA Button", "Headline Text"}, sections[0].Features)
	assert.Equal(t, []string{"Product Grid", "Category Filters", "Pricing Display"}, sections[1].Features)
	assert.Equal(t, []string{"Contact Form", "Map Integration", "Hours & Info"}, sections[2].Features)
}

func TestGenerateSections_GenericFallback(t *testing.T) {
	generator := NewContentGeneratorAgent(NewCategorizerAgent())

	bucket, sections := generator.GenerateSections("A blog about mountains")

	assert.Equal(t, BucketGeneric, bucket)
	require.Len(t, sections, 3)
	assert.Equal(t, "Hero Section", sections[0].Title)
	assert.Equal(t, "About Us", sections[1].Title)
	assert.Equal(t, "Contact", sections[2].Title)
	assert.Equal(t, []string{"Hero Image", "Value Proposition", "Call to Action"}, sections[0].Features)
}

func TestTemplates_EveryBucketHasThree(t *testing.T) {
	for _, bucket := range Buckets() {
		sections := Templates(bucket)
		require.Len(t, sections, 3, "bucket %s", bucket)
		for _, s := range sections {
			assert.NotEmpty(t, s.Title)
			assert.NotEmpty(t, s.Type)
			assert.NotEmpty(t, s.Description)
			assert.Len(t, s.Features, 3)
		}
	}
}

func TestTemplates_ReturnsCopies(t *testing.T) {
	first := Templates(BucketCommerce)
	first[0].Title = "changed"
	first[0].Features[0] = "changed"

	second := Templates(BucketCommerce)
	assert.Equal(t, "Hero Banner", second[0].Title)
	assert.Equal(t, "Product Showcase", second[0].Features[0])
}

func TestTemplates_UnknownBucket(t *testing.T) {
	assert.Equal(t, Templates(BucketGeneric), Templates(Bucket("nope")))
}
