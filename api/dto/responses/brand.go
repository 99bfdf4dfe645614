// ABOUTME: Response DTOs for brand extraction and batch analysis
// ABOUTME: Wraps domain models with the optional logo color and per-URL errors

package responses

import "github.com/DTI-Technologies/shades-webapp/core/domain"

// ColorResponse is an RGB color with its hex literal
type ColorResponse struct {
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

// ExtractResponse is the result of analyzing one page
type ExtractResponse struct {
	Content   domain.ScrapedContent `json:"content"`
	Brand     domain.BrandElements  `json:"brand"`
	LogoColor *ColorResponse        `json:"logoColor,omitempty"`
}

// AnalyzeItem is the result for one URL of a batch
type AnalyzeItem struct {
	URL       string                `json:"url"`
	Brand     *domain.BrandElements `json:"brand,omitempty"`
	LogoColor *ColorResponse        `json:"logoColor,omitempty"`
	Error     string                `json:"error,omitempty"`
	Cause     string                `json:"cause,omitempty" doc:"Retrieval failure cause when the page could not be fetched"`
}

// AnalyzeResponse is the result of a batch analysis
type AnalyzeResponse struct {
	Results   []AnalyzeItem `json:"results"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
}
