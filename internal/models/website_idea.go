package models

import "time"

// WebsiteIdea represents a submitted website concept
type WebsiteIdea struct {
	ID        int64     `json:"id" bson:"seq"`
	Idea      string    `json:"idea" bson:"idea"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// NewWebsiteIdea creates a new idea stamped with the current time.
// The ID is assigned by the store on insert.
func NewWebsiteIdea(idea string) *WebsiteIdea {
	return &WebsiteIdea{
		Idea:      idea,
		CreatedAt: time.Now().UTC(),
	}
}
