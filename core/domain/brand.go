// ABOUTME: BrandElements domain model describes a brand's visual identity, inferred or authored
// ABOUTME: Provides the default palette and typography plus validation for rebrand targets

package domain

import (
	"strings"

	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
)

// Default brand values used when a signal cannot be inferred
const (
	DefaultBrandName       = "Untitled Brand"
	DefaultPrimaryColor    = "#3b82f6"
	DefaultSecondaryColor  = "#64748b"
	DefaultBackgroundColor = "#ffffff"
	DefaultTextColor       = "#1f2937"
	DefaultFontStack       = `system-ui, -apple-system, "Segoe UI", Roboto, sans-serif`
)

// ButtonStyle describes the dominant corner treatment of buttons
type ButtonStyle string

const (
	ButtonRounded ButtonStyle = "rounded"
	ButtonSquare  ButtonStyle = "square"
)

// BrandElements represents a brand's name, logo, palette, typography and surface style
type BrandElements struct {
	// Name is the brand name and is never empty after extraction
	Name string `json:"name"`

	// Logo is the logo image URL, empty when none was detected
	Logo string `json:"logo,omitempty"`

	Colors     BrandColors `json:"colors"`
	Typography Typography  `json:"typography"`
	Style      *BrandStyle `json:"style,omitempty"`
}

// BrandColors holds CSS color literals (hex, rgb(a), hsl(a))
type BrandColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Typography holds CSS font-family values
type Typography struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
}

// BrandStyle holds optional surface style hints
type BrandStyle struct {
	BorderRadius string      `json:"borderRadius,omitempty"`
	Spacing      string      `json:"spacing,omitempty"`
	ButtonStyle  ButtonStyle `json:"buttonStyle,omitempty"`
}

// DefaultColors returns the default palette
func DefaultColors() BrandColors {
	return BrandColors{
		Primary:    DefaultPrimaryColor,
		Secondary:  DefaultSecondaryColor,
		Background: DefaultBackgroundColor,
		Text:       DefaultTextColor,
	}
}

// DefaultTypography returns the system-ui font stack
func DefaultTypography() Typography {
	return Typography{Primary: DefaultFontStack}
}

// ValidateTarget checks the fields a rebrand target must carry.
// It returns a *errors.ValidationError naming the first missing field.
func (b BrandElements) ValidateTarget() error {
	if strings.TrimSpace(b.Name) == "" {
		return &coreerrors.ValidationError{Field: "name", Message: "target brand name is required"}
	}
	if strings.TrimSpace(b.Colors.Primary) == "" {
		return &coreerrors.ValidationError{Field: "colors.primary", Message: "target primary color is required"}
	}
	if strings.TrimSpace(b.Typography.Primary) == "" {
		return &coreerrors.ValidationError{Field: "typography.primary", Message: "target primary font is required"}
	}
	return nil
}

// IsDefaultFontStack reports whether a font-family value is the system default stack
func IsDefaultFontStack(family string) bool {
	return strings.TrimSpace(family) == DefaultFontStack
}
