package domain

import (
	"testing"
)

func TestNewWebsite(t *testing.T) {
	tests := []struct {
		name      string
		siteName  string
		url       string
		creatorID string
		wantErr   bool
	}{
		{
			name:      "valid website",
			siteName:  "Acme landing",
			url:       "https://example.com",
			creatorID: "user-1",
			wantErr:   false,
		},
		{
			name:      "invalid website with empty name",
			siteName:  "  ",
			url:       "https://example.com",
			creatorID: "user-1",
			wantErr:   true,
		},
		{
			name:      "invalid website with relative URL",
			siteName:  "Acme",
			url:       "/about",
			creatorID: "user-1",
			wantErr:   true,
		},
		{
			name:      "invalid website without creator",
			siteName:  "Acme",
			url:       "https://example.com",
			creatorID: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := ScrapedContent{URL: tt.url, Description: "desc"}
			site, err := NewWebsite(tt.siteName, content, BrandElements{Name: "Acme"}, tt.creatorID)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewWebsite() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if site.ID == "" {
				t.Error("NewWebsite() did not generate ID")
			}
			if site.Visibility != VisibilityPrivate {
				t.Errorf("NewWebsite() visibility = %v, want private", site.Visibility)
			}
			if site.Description != "desc" {
				t.Errorf("NewWebsite() description = %q, want desc", site.Description)
			}
		})
	}
}

func TestWebsite_IsVisibleTo(t *testing.T) {
	site := &Website{
		CreatorID:       "owner",
		Visibility:      VisibilityPrivate,
		CollaboratorIDs: []string{"friend"},
	}

	if !site.IsVisibleTo("owner") {
		t.Error("creator should see a private website")
	}
	if !site.IsVisibleTo("friend") {
		t.Error("collaborator should see a private website")
	}
	if site.IsVisibleTo("stranger") {
		t.Error("stranger should not see a private website")
	}

	site.Visibility = VisibilityPublic
	if !site.IsVisibleTo("stranger") {
		t.Error("anyone should see a public website")
	}
}
