package models

import "time"

// Section is one generated content block belonging to a website idea
type Section struct {
	ID            int64     `json:"id" bson:"seq"`
	WebsiteIdeaID int64     `json:"websiteIdeaId" bson:"website_idea_id"`
	Title         string    `json:"title" bson:"title"`
	Type          string    `json:"type" bson:"type"`
	Description   string    `json:"description" bson:"description"`
	Features      []string  `json:"features" bson:"features"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
}

// SectionTemplate is a section before it is attached to an idea and stored
type SectionTemplate struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// NewSection creates a section for the given idea from a template
func NewSection(websiteIdeaID int64, tpl SectionTemplate) *Section {
	features := make([]string, len(tpl.Features))
	copy(features, tpl.Features)

	return &Section{
		WebsiteIdeaID: websiteIdeaID,
		Title:         tpl.Title,
		Type:          tpl.Type,
		Description:   tpl.Description,
		Features:      features,
		CreatedAt:     time.Now().UTC(),
	}
}

// GenerateResult is the combined payload returned by the generate flow
type GenerateResult struct {
	WebsiteIdea *WebsiteIdea `json:"websiteIdea"`
	Sections    []*Section   `json:"sections"`
}
