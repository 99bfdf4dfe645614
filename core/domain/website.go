// ABOUTME: Website domain model is the record handed to the persistence collaborator
// ABOUTME: Pairs the original scraped page with its brand and optional rebranded snapshot

package domain

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Visibility controls who may see a stored website
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// RebrandedSnapshot is the stored form of a rebranded page
type RebrandedSnapshot struct {
	HTML   string   `json:"html"`
	CSS    []string `json:"css"`
	Images []string `json:"images"`
}

// Website represents an ingested page together with its brand identity
type Website struct {
	// ID is the unique identifier (UUID) for the website
	ID string `json:"id"`

	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`

	OriginalContent  ScrapedContent     `json:"originalContent"`
	RebrandedContent *RebrandedSnapshot `json:"rebrandedContent,omitempty"`
	BrandElements    BrandElements      `json:"brandElements"`

	// CreatorID is the already-resolved caller identity
	CreatorID       string     `json:"creatorId"`
	Visibility      Visibility `json:"visibility"`
	CollaboratorIDs []string   `json:"collaboratorIds"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewWebsite creates a new Website instance with validation
func NewWebsite(name string, content ScrapedContent, brand BrandElements, creatorID string) (*Website, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name cannot be empty")
	}
	if strings.TrimSpace(creatorID) == "" {
		return nil, errors.New("creator cannot be empty")
	}

	parsedURL, err := url.Parse(content.URL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("content URL must be absolute")
	}

	return &Website{
		ID:              uuid.New().String(),
		Name:            name,
		URL:             content.URL,
		Description:     content.Description,
		OriginalContent: content,
		BrandElements:   brand,
		CreatorID:       creatorID,
		Visibility:      VisibilityPrivate,
		CollaboratorIDs: []string{},
		CreatedAt:       time.Now(),
	}, nil
}

// IsVisibleTo reports whether the given caller may read the website
func (w *Website) IsVisibleTo(callerID string) bool {
	if w.Visibility == VisibilityPublic || w.CreatorID == callerID {
		return true
	}
	for _, id := range w.CollaboratorIDs {
		if id == callerID {
			return true
		}
	}
	return false
}
