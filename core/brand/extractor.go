// ABOUTME: Brand extractor infers BrandElements from scraped content with independent heuristic passes
// ABOUTME: A failing pass is logged and replaced by its default so extraction never fails

package brand

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

// Extractor infers a brand identity from a parsed page
type Extractor struct {
	logger interfaces.Logger
}

// NewExtractor creates a new brand extractor
func NewExtractor(logger interfaces.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract returns a complete BrandElements for content. Every required field is
// populated, falling back to the default palette and typography.
func (e *Extractor) Extract(content domain.ScrapedContent) domain.BrandElements {
	result := domain.BrandElements{
		Name:       domain.DefaultBrandName,
		Colors:     domain.DefaultColors(),
		Typography: domain.DefaultTypography(),
	}

	var doc *goquery.Document
	e.run("document", func() {
		parsed, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
		if err != nil {
			panic(err)
		}
		doc = parsed
	})

	styleText := content.StyleText()

	e.run("name", func() {
		result.Name = extractName(doc, content.Title, content.URL)
	})
	e.run("logo", func() {
		result.Logo = extractLogo(doc)
	})
	e.run("colors", func() {
		result.Colors = extractColors(styleText, themeColorOf(doc))
	})
	e.run("typography", func() {
		result.Typography = extractTypography(styleText)
	})
	e.run("style", func() {
		result.Style = extractStyle(doc, styleText)
	})

	return result
}

// run executes one pass, absorbing any panic so the pass keeps its default
func (e *Extractor) run(pass string, fn func()) {
	defer func() {
		if r := recover(); r != nil && e.logger != nil {
			e.logger.Debug("Brand extraction pass failed", map[string]interface{}{
				"pass":  pass,
				"error": fmt.Sprint(r),
			})
		}
	}()
	fn()
}
