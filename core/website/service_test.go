package website

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

// mockWebsiteStorage is a mock implementation of WebsiteStorage
type mockWebsiteStorage struct {
	saveFunc func(ctx context.Context, site *domain.Website) error
	getFunc  func(ctx context.Context, id string) (*domain.Website, error)
}

func (m *mockWebsiteStorage) Save(ctx context.Context, site *domain.Website) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, site)
	}
	return nil
}

func (m *mockWebsiteStorage) Get(ctx context.Context, id string) (*domain.Website, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func validInput() interfaces.WebsiteInput {
	return interfaces.WebsiteInput{
		Name:      "Acme landing",
		CreatorID: "user-1",
		Content: domain.ScrapedContent{
			URL:         "https://example.com",
			Description: "Rockets",
			Images:      []string{"https://example.com/logo.png"},
		},
		Brand: domain.BrandElements{Name: "Acme"},
	}
}

func TestCreateWebsite_SavesRecord(t *testing.T) {
	var saved *domain.Website
	storage := &mockWebsiteStorage{
		saveFunc: func(ctx context.Context, site *domain.Website) error {
			saved = site
			return nil
		},
	}
	service := NewService(storage, &mockLogger{})

	input := validInput()
	input.Visibility = domain.VisibilityPublic
	input.CollaboratorIDs = []string{"user-2", "", "user-1"}
	input.Rebranded = &domain.RebrandedContent{HTML: "<html></html>", CSS: "body{}"}

	before := time.Now()
	site, err := service.CreateWebsite(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateWebsite returned error: %v", err)
	}
	if saved != site {
		t.Error("CreateWebsite saved different website instance")
	}
	if len(site.ID) != 36 {
		t.Errorf("Website ID length = %d, want 36 (UUID)", len(site.ID))
	}
	if site.CreatedAt.Before(before) {
		t.Error("CreateWebsite did not set CreatedAt to current time")
	}
	if site.Visibility != domain.VisibilityPublic {
		t.Errorf("Visibility = %q, want public", site.Visibility)
	}
	if len(site.CollaboratorIDs) != 1 || site.CollaboratorIDs[0] != "user-2" {
		t.Errorf("CollaboratorIDs = %v, want [user-2]", site.CollaboratorIDs)
	}
	if site.RebrandedContent == nil || site.RebrandedContent.CSS[0] != "body{}" {
		t.Fatalf("RebrandedContent = %+v", site.RebrandedContent)
	}
	if len(site.RebrandedContent.Images) != 1 {
		t.Errorf("RebrandedContent.Images = %v", site.RebrandedContent.Images)
	}
}

func TestCreateWebsite_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *interfaces.WebsiteInput)
	}{
		{name: "empty name", mutate: func(in *interfaces.WebsiteInput) { in.Name = "" }},
		{name: "missing creator", mutate: func(in *interfaces.WebsiteInput) { in.CreatorID = "" }},
		{name: "relative url", mutate: func(in *interfaces.WebsiteInput) { in.Content.URL = "/about" }},
		{name: "unknown visibility", mutate: func(in *interfaces.WebsiteInput) { in.Visibility = "friends" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveCalled := false
			storage := &mockWebsiteStorage{
				saveFunc: func(ctx context.Context, site *domain.Website) error {
					saveCalled = true
					return nil
				},
			}
			service := NewService(storage, &mockLogger{})

			input := validInput()
			tt.mutate(&input)
			site, err := service.CreateWebsite(context.Background(), input)
			if !coreerrors.IsValidation(err) {
				t.Errorf("CreateWebsite error = %v, want ValidationError", err)
			}
			if site != nil || saveCalled {
				t.Error("CreateWebsite should not save an invalid website")
			}
		})
	}
}

func TestCreateWebsite_ReturnsStorageError(t *testing.T) {
	storage := &mockWebsiteStorage{
		saveFunc: func(ctx context.Context, site *domain.Website) error {
			return errors.New("storage error")
		},
	}
	service := NewService(storage, &mockLogger{})

	site, err := service.CreateWebsite(context.Background(), validInput())
	if err == nil {
		t.Error("CreateWebsite should return storage error")
	}
	if site != nil {
		t.Error("CreateWebsite should return nil website on storage error")
	}
}

func TestGetWebsite(t *testing.T) {
	const id = "550e8400-e29b-41d4-a716-446655440000"
	stored := &domain.Website{
		ID:              id,
		CreatorID:       "owner",
		Visibility:      domain.VisibilityPrivate,
		CollaboratorIDs: []string{"friend"},
	}
	storage := &mockWebsiteStorage{
		getFunc: func(ctx context.Context, gotID string) (*domain.Website, error) {
			if gotID == id {
				return stored, nil
			}
			return nil, nil
		},
	}
	service := NewService(storage, &mockLogger{})
	ctx := context.Background()

	tests := []struct {
		name         string
		id           string
		caller       string
		wantNotFound bool
		wantInvalid  bool
	}{
		{name: "owner", id: id, caller: "owner"},
		{name: "collaborator", id: id, caller: "friend"},
		{name: "stranger", id: id, caller: "stranger", wantNotFound: true},
		{name: "missing", id: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", caller: "owner", wantNotFound: true},
		{name: "empty id", id: "", caller: "owner", wantInvalid: true},
		{name: "invalid uuid", id: "not-a-uuid", caller: "owner", wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, err := service.GetWebsite(ctx, tt.id, tt.caller)
			switch {
			case tt.wantNotFound:
				if !coreerrors.IsNotFound(err) {
					t.Errorf("GetWebsite error = %v, want NotFoundError", err)
				}
			case tt.wantInvalid:
				if !coreerrors.IsValidation(err) {
					t.Errorf("GetWebsite error = %v, want ValidationError", err)
				}
			default:
				if err != nil {
					t.Fatalf("GetWebsite returned error: %v", err)
				}
				if site != stored {
					t.Error("GetWebsite returned a different website")
				}
			}
		})
	}
}

func TestGetWebsite_ReturnsStorageError(t *testing.T) {
	storage := &mockWebsiteStorage{
		getFunc: func(ctx context.Context, id string) (*domain.Website, error) {
			return nil, errors.New("disk error")
		},
	}
	service := NewService(storage, &mockLogger{})

	_, err := service.GetWebsite(context.Background(), "550e8400-e29b-41d4-a716-446655440000", "owner")
	if err == nil || coreerrors.IsNotFound(err) {
		t.Errorf("GetWebsite error = %v, want wrapped storage error", err)
	}
}
