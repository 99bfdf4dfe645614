// ABOUTME: Request DTOs for scraping, brand extraction, rebranding and batch analysis
// ABOUTME: Brand inputs are all-optional so missing target fields reach the rebrand validation

package requests

// ScrapeRequest represents a request to retrieve and parse a page
type ScrapeRequest struct {
	URL          string `json:"url" required:"true" example:"https://example.com" doc:"Absolute URL of the page"`
	UseAlternate bool   `json:"useAlternate,omitempty" doc:"Skip the direct fetch and use the alternate retrieval paths"`
}

// ExtractRequest represents a request to infer a page's brand
type ExtractRequest struct {
	URL             string `json:"url" required:"true" example:"https://example.com" doc:"Absolute URL of the page"`
	UseAlternate    bool   `json:"useAlternate,omitempty" doc:"Skip the direct fetch and use the alternate retrieval paths"`
	SampleLogoColor bool   `json:"sampleLogoColor,omitempty" doc:"Also report the dominant color of the detected logo"`
}

// AnalyzeRequest represents a batch brand extraction request
type AnalyzeRequest struct {
	URLs         []string `json:"urls" minItems:"1" maxItems:"20" example:"[\"https://example.com\"]" doc:"Pages to analyze"`
	UseAlternate bool     `json:"useAlternate,omitempty" doc:"Skip the direct fetch and use the alternate retrieval paths"`
}

// RebrandRequest represents a request to rewrite a page for another brand.
// The page comes from HTML when given, otherwise it is retrieved from URL.
// The original brand is extracted when omitted. Target wins over Overrides.
type RebrandRequest struct {
	URL          string      `json:"url" required:"true" example:"https://example.com" doc:"Absolute URL of the page"`
	HTML         string      `json:"html,omitempty" doc:"Page markup to rebrand instead of retrieving URL"`
	Original     *BrandInput `json:"original,omitempty" doc:"Brand currently on the page"`
	Target       *BrandInput `json:"target,omitempty" doc:"Complete brand to apply"`
	Overrides    *BrandInput `json:"overrides,omitempty" doc:"Fields to change on the original brand"`
	UseAlternate bool        `json:"useAlternate,omitempty" doc:"Skip the direct fetch and use the alternate retrieval paths"`
	GenerateCSS  bool        `json:"generateCss,omitempty" doc:"Append AI generated CSS when configured"`
}

// BrandInput is a brand identity in which every field is optional
type BrandInput struct {
	Name       string           `json:"name,omitempty" example:"Zenith"`
	Logo       string           `json:"logo,omitempty"`
	Colors     *ColorsInput     `json:"colors,omitempty"`
	Typography *TypographyInput `json:"typography,omitempty"`
	Style      *StyleInput      `json:"style,omitempty"`
}

// ColorsInput holds CSS color literals
type ColorsInput struct {
	Primary    string `json:"primary,omitempty" example:"#ff0000"`
	Secondary  string `json:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
}

// TypographyInput holds CSS font-family values
type TypographyInput struct {
	Primary   string `json:"primary,omitempty" example:"Georgia"`
	Secondary string `json:"secondary,omitempty"`
}

// StyleInput holds surface style hints
type StyleInput struct {
	BorderRadius string `json:"borderRadius,omitempty"`
	Spacing      string `json:"spacing,omitempty"`
	ButtonStyle  string `json:"buttonStyle,omitempty" enum:"rounded,square"`
}
