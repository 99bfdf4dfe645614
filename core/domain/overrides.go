// ABOUTME: BrandOverrides is a typed partial brand used to derive a rebrand target
// ABOUTME: Replaces string-keyed property paths like "colors.primary" with explicit fields

package domain

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// BrandOverrides carries the brand fields a caller wants to change.
// Empty fields leave the base brand untouched.
type BrandOverrides struct {
	Name       string              `json:"name,omitempty"`
	Logo       string              `json:"logo,omitempty"`
	Colors     ColorOverrides      `json:"colors,omitempty"`
	Typography TypographyOverrides `json:"typography,omitempty"`
	Style      *BrandStyle         `json:"style,omitempty"`
}

// ColorOverrides carries optional palette changes
type ColorOverrides struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
}

// TypographyOverrides carries optional font changes
type TypographyOverrides struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

// Apply returns a copy of base with every non-empty override applied
func (o BrandOverrides) Apply(base BrandElements) (BrandElements, error) {
	var out BrandElements
	if err := copier.CopyWithOption(&out, &base, copier.Option{DeepCopy: true}); err != nil {
		return BrandElements{}, fmt.Errorf("copy base brand: %w", err)
	}
	if err := copier.CopyWithOption(&out, &o, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return BrandElements{}, fmt.Errorf("apply brand overrides: %w", err)
	}
	return out, nil
}
