// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"github.com/DTI-Technologies/shades-webapp/api/dto/requests"
	"github.com/DTI-Technologies/shades-webapp/api/dto/responses"
	"github.com/DTI-Technologies/shades-webapp/core/domain"
	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

// ToBrandElements converts a BrandInput to a domain brand, leaving missing fields empty
func ToBrandElements(in *requests.BrandInput) domain.BrandElements {
	if in == nil {
		return domain.BrandElements{}
	}

	brand := domain.BrandElements{
		Name: in.Name,
		Logo: in.Logo,
	}
	if in.Colors != nil {
		brand.Colors = domain.BrandColors{
			Primary:    in.Colors.Primary,
			Secondary:  in.Colors.Secondary,
			Accent:     in.Colors.Accent,
			Background: in.Colors.Background,
			Text:       in.Colors.Text,
		}
	}
	if in.Typography != nil {
		brand.Typography = domain.Typography{
			Primary:   in.Typography.Primary,
			Secondary: in.Typography.Secondary,
		}
	}
	if in.Style != nil {
		brand.Style = &domain.BrandStyle{
			BorderRadius: in.Style.BorderRadius,
			Spacing:      in.Style.Spacing,
			ButtonStyle:  domain.ButtonStyle(in.Style.ButtonStyle),
		}
	}
	return brand
}

// ToBrandOverrides converts a BrandInput to a typed partial brand
func ToBrandOverrides(in *requests.BrandInput) domain.BrandOverrides {
	brand := ToBrandElements(in)
	return domain.BrandOverrides{
		Name: brand.Name,
		Logo: brand.Logo,
		Colors: domain.ColorOverrides{
			Primary:    brand.Colors.Primary,
			Secondary:  brand.Colors.Secondary,
			Accent:     brand.Colors.Accent,
			Background: brand.Colors.Background,
			Text:       brand.Colors.Text,
		},
		Typography: domain.TypographyOverrides{
			Primary:   brand.Typography.Primary,
			Secondary: brand.Typography.Secondary,
		},
		Style: brand.Style,
	}
}

// ToColorResponse converts a domain color, or returns nil
func ToColorResponse(c *domain.RGBColor) *responses.ColorResponse {
	if c == nil {
		return nil
	}
	return &responses.ColorResponse{R: c.R, G: c.G, B: c.B, Hex: c.Hex()}
}

// ToExtractResponse converts an analysis to its response DTO
func ToExtractResponse(a *interfaces.Analysis) *responses.ExtractResponse {
	if a == nil {
		return nil
	}
	return &responses.ExtractResponse{
		Content:   a.Content,
		Brand:     a.Brand,
		LogoColor: ToColorResponse(a.LogoColor),
	}
}

// ToAnalyzeResponse converts batch results, keeping their order
func ToAnalyzeResponse(results []interfaces.BatchResult) *responses.AnalyzeResponse {
	resp := &responses.AnalyzeResponse{
		Results: make([]responses.AnalyzeItem, 0, len(results)),
	}

	for _, r := range results {
		item := responses.AnalyzeItem{URL: r.URL}
		if r.Err != nil {
			item.Error = r.Err.Error()
			item.Cause = string(coreerrors.RetrievalCauseOf(r.Err))
			resp.Failed++
		} else if r.Analysis != nil {
			brand := r.Analysis.Brand
			item.Brand = &brand
			item.LogoColor = ToColorResponse(r.Analysis.LogoColor)
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, item)
	}

	return resp
}
