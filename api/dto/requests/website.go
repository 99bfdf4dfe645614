// ABOUTME: Request DTOs for website record endpoints
// ABOUTME: Defines the structure for storing an analyzed and optionally rebranded page

package requests

// CreateWebsiteRequest represents a request to store a website record.
// The page is retrieved and its brand extracted; Target adds a rebranded snapshot.
type CreateWebsiteRequest struct {
	Name            string      `json:"name" required:"true" example:"Acme landing page"`
	URL             string      `json:"url" required:"true" example:"https://example.com"`
	Visibility      string      `json:"visibility,omitempty" enum:"public,private" doc:"Defaults to private"`
	CollaboratorIDs []string    `json:"collaboratorIds,omitempty"`
	Target          *BrandInput `json:"target,omitempty" doc:"Rebrand the page before storing it"`
	UseAlternate    bool        `json:"useAlternate,omitempty"`
}
