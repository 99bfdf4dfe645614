// ABOUTME: Website service builds website records and hands them to the storage collaborator
// ABOUTME: Enforces caller visibility when records are read back

package website

import (
	"context"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/google/uuid"
)

// Service handles website record operations
type Service struct {
	storage interfaces.WebsiteStorage
	logger  interfaces.Logger
}

// NewService creates a new website service instance
func NewService(storage interfaces.WebsiteStorage, logger interfaces.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// CreateWebsite builds a record for the input and saves it
func (s *Service) CreateWebsite(ctx context.Context, input interfaces.WebsiteInput) (*domain.Website, error) {
	site, err := domain.NewWebsite(input.Name, input.Content, input.Brand, input.CreatorID)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "website", Message: err.Error()}
	}

	switch input.Visibility {
	case "":
	case domain.VisibilityPublic, domain.VisibilityPrivate:
		site.Visibility = input.Visibility
	default:
		return nil, &coreerrors.ValidationError{Field: "visibility", Message: "must be 'public' or 'private'"}
	}

	for _, id := range input.CollaboratorIDs {
		if id != "" && id != site.CreatorID {
			site.CollaboratorIDs = append(site.CollaboratorIDs, id)
		}
	}

	if input.Rebranded != nil {
		site.RebrandedContent = input.Rebranded.Snapshot(input.Content.Images)
	}

	if err := s.storage.Save(ctx, site); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save website")
	}

	s.logger.Info("Website created", map[string]interface{}{
		"id":         site.ID,
		"url":        site.URL,
		"creator_id": site.CreatorID,
		"visibility": string(site.Visibility),
		"rebranded":  site.RebrandedContent != nil,
	})

	return site, nil
}

// GetWebsite loads a record the caller is allowed to see
func (s *Service) GetWebsite(ctx context.Context, id, callerID string) (*domain.Website, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "website ID cannot be empty"}
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "invalid website ID format"}
	}

	site, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to load website")
	}

	// Hidden records look the same as missing ones
	if site == nil || !site.IsVisibleTo(callerID) {
		return nil, &coreerrors.NotFoundError{Resource: "website", ID: id}
	}

	return site, nil
}
