package agents

import "strings"

// Bucket is the category an idea falls into. It decides which section
// templates are generated.
type Bucket string

const (
	BucketFood      Bucket = "food"
	BucketPortfolio Bucket = "portfolio"
	BucketCommerce  Bucket = "commerce"
	BucketGeneric   Bucket = "generic"
)

// keywordGroup pairs a bucket with the keywords that select it
type keywordGroup struct {
	bucket   Bucket
	keywords []string
}

// Checked in order; the first group with a matching keyword wins.
var keywordGroups = []keywordGroup{
	{bucket: BucketFood, keywords: []string{"bakery", "food", "restaurant"}},
	{bucket: BucketPortfolio, keywords: []string{"portfolio", "photographer", "artist"}},
	{bucket: BucketCommerce, keywords: []string{"ecommerce", "shop", "store"}},
}

type CategorizerAgent struct {
	groups []keywordGroup
}

func NewCategorizerAgent() *CategorizerAgent {
	return &CategorizerAgent{groups: keywordGroups}
}

// Categorize picks the bucket for an idea by case-insensitive substring
// matching. Ideas matching no keyword land in BucketGeneric.
func (a *CategorizerAgent) Categorize(idea string) Bucket {
	lowerIdea := strings.ToLower(idea)

	for _, group := range a.groups {
		for _, keyword := range group.keywords {
			if strings.Contains(lowerIdea, keyword) {
				return group.bucket
			}
		}
	}

	return BucketGeneric
}

// Buckets lists every bucket in priority order, generic last
func Buckets() []Bucket {
	buckets := make([]Bucket, 0, len(keywordGroups)+1)
	for _, group := range keywordGroups {
		buckets = append(buckets, group.bucket)
	}
	return append(buckets, BucketGeneric)
}
