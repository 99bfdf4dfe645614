// ABOUTME: Website handler stores analyzed pages as website records and reads them back
// ABOUTME: The caller identity from middleware becomes the record's creator

package handlers

import (
	"context"
	"net/http"

	"github.com/DTI-Technologies/shades-webapp/api/dto/mappers"
	"github.com/DTI-Technologies/shades-webapp/api/dto/requests"
	"github.com/DTI-Technologies/shades-webapp/api/middleware"
	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// WebsiteHandler handles website record requests
type WebsiteHandler struct {
	pipeline interfaces.BrandPipeline
	websites interfaces.WebsiteService
}

// NewWebsiteHandler creates a new website handler
func NewWebsiteHandler(pipeline interfaces.BrandPipeline, websites interfaces.WebsiteService) *WebsiteHandler {
	return &WebsiteHandler{
		pipeline: pipeline,
		websites: websites,
	}
}

// RegisterRoutes registers website routes
func (h *WebsiteHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createWebsite",
		Method:        http.MethodPost,
		Path:          "/websites",
		Summary:       "Store a website",
		Description:   "Analyzes a page, optionally rebrands it, and stores the result for the caller",
		Tags:          []string{"Websites"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateWebsite)

	huma.Register(api, huma.Operation{
		OperationID: "getWebsite",
		Method:      http.MethodGet,
		Path:        "/websites/{id}",
		Summary:     "Get a website",
		Description: "Returns a stored website visible to the caller",
		Tags:        []string{"Websites"},
	}, h.GetWebsite)
}

// CreateWebsiteInput defines the input for the CreateWebsite operation
type CreateWebsiteInput struct {
	Body requests.CreateWebsiteRequest
}

// WebsiteOutput defines the output for website operations
type WebsiteOutput struct {
	Body domain.Website
}

// CreateWebsite handles POST /websites
func (h *WebsiteHandler) CreateWebsite(ctx context.Context, input *CreateWebsiteInput) (*WebsiteOutput, error) {
	req := input.Body

	analysis, err := h.pipeline.Analyze(ctx, req.URL, interfaces.AnalyzeOptions{
		PreferAlternatePath: req.UseAlternate,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	var rebranded *domain.RebrandedContent
	if req.Target != nil {
		rebranded, err = h.pipeline.Rebrand(ctx, analysis.Content, analysis.Brand, mappers.ToBrandElements(req.Target), interfaces.RebrandOptions{})
		if err != nil {
			return nil, toHumaError(err)
		}
	}

	site, err := h.websites.CreateWebsite(ctx, interfaces.WebsiteInput{
		Name:            req.Name,
		CreatorID:       middleware.CallerID(ctx),
		Visibility:      domain.Visibility(req.Visibility),
		CollaboratorIDs: req.CollaboratorIDs,
		Content:         analysis.Content,
		Brand:           analysis.Brand,
		Rebranded:       rebranded,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &WebsiteOutput{Body: *site}, nil
}

// GetWebsiteInput defines the input for the GetWebsite operation
type GetWebsiteInput struct {
	ID string `path:"id" doc:"Website ID (UUID)"`
}

// GetWebsite handles GET /websites/{id}
func (h *WebsiteHandler) GetWebsite(ctx context.Context, input *GetWebsiteInput) (*WebsiteOutput, error) {
	site, err := h.websites.GetWebsite(ctx, input.ID, middleware.CallerID(ctx))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &WebsiteOutput{Body: *site}, nil
}
