// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
)

// WebsiteStorage defines the interface for website persistence
type WebsiteStorage interface {
	// Save persists a website
	Save(ctx context.Context, website *domain.Website) error

	// Get retrieves a website by ID, returning nil when it does not exist
	Get(ctx context.Context, id string) (*domain.Website, error)
}
