// ABOUTME: Rebrander rewrites a page from one brand identity to another
// ABOUTME: Runs a fixed sequence of literal replacements and records how many substitutions each made

package rebrand

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DTI-Technologies/shades-webapp/core/brand"
	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

const (
	// PlaceholderLogoBase receives the query-escaped target name
	PlaceholderLogoBase = "https://placehold.co/200x60?text="

	// GeneratorName is written to the generator meta tag
	GeneratorName = "Shades Rebrander"

	googleFontsBase = "https://fonts.googleapis.com/css2?family="
)

// Rebrander implements the brand rewrite pipeline
type Rebrander struct {
	logger interfaces.Logger
}

// NewRebrander creates a new rebrander
func NewRebrander(logger interfaces.Logger) *Rebrander {
	return &Rebrander{logger: logger}
}

// Rebrand replaces original's signals in content with target's. The target is
// validated before any work starts. Output is deterministic for identical inputs.
func (r *Rebrander) Rebrand(content domain.ScrapedContent, original, target domain.BrandElements) (*domain.RebrandedContent, error) {
	if err := target.ValidateTarget(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}

	var changes domain.ChangeSummary

	// The logo is located before names change so brand selectors see the original markup
	logo := brand.LogoElement(doc)
	changes.NameReplacements = replaceName(doc, original.Name, target.Name)
	changes.LogoReplaced = replaceLogo(logo, original, target)

	styles := doc.Find("style")
	blocks := make([]string, styles.Length())
	styles.Each(func(i int, s *goquery.Selection) {
		blocks[i] = s.Text()
	})

	colorPairs := [][2]string{
		{original.Colors.Primary, target.Colors.Primary},
		{original.Colors.Secondary, target.Colors.Secondary},
		{original.Colors.Accent, target.Colors.Accent},
	}
	for _, pair := range colorPairs {
		changes.ColorReplacements += replaceLiteral(blocks, pair[0], pair[1])
	}

	fontPairs := [][2]string{
		{original.Typography.Primary, target.Typography.Primary},
		{original.Typography.Secondary, target.Typography.Secondary},
	}
	for _, pair := range fontPairs {
		changes.FontReplacements += replaceLiteral(blocks, pair[0], pair[1])
	}

	styles.Each(func(i int, s *goquery.Selection) {
		setRawText(s.Get(0), blocks[i])
	})

	head := doc.Find("head").First()
	if href := fontStylesheetURL(target.Typography.Primary); href != "" {
		ensureFontLink(head, href)
	}
	ensureGeneratorMeta(head)

	markup, err := doc.Html()
	if err != nil {
		return nil, err
	}

	if r.logger != nil {
		r.logger.Debug("Rebranded page", map[string]interface{}{
			"url":                content.URL,
			"name_replacements":  changes.NameReplacements,
			"color_replacements": changes.ColorReplacements,
			"font_replacements":  changes.FontReplacements,
			"logo_replaced":      changes.LogoReplaced,
		})
	}

	return &domain.RebrandedContent{
		HTML:        markup,
		CSS:         strings.Join(blocks, "\n"),
		OriginalURL: content.URL,
		Changes:     changes,
	}, nil
}

// replaceName substitutes the old name case-insensitively in text nodes outside
// script/style and in attribute values other than class and id. It returns the
// number of sites replaced.
func replaceName(doc *goquery.Document, oldName, newName string) int {
	if strings.TrimSpace(oldName) == "" || oldName == newName {
		return 0
	}
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(oldName))

	count := 0
	replace := func(s string) string {
		n := len(pattern.FindAllStringIndex(s, -1))
		if n == 0 {
			return s
		}
		count += n
		return pattern.ReplaceAllLiteralString(s, newName)
	}

	for _, root := range doc.Nodes {
		walkTextAndAttributes(root, replace)
	}
	return count
}

// replaceLogo points the logo image at the target logo or a placeholder
func replaceLogo(img *goquery.Selection, original, target domain.BrandElements) bool {
	if original.Logo == "" || img == nil {
		return false
	}
	if target.Logo != "" && target.Logo == original.Logo {
		return false
	}

	src := target.Logo
	if src == "" {
		src = PlaceholderLogoBase + url.QueryEscape(target.Name)
	}
	img.SetAttr("src", src)
	img.SetAttr("alt", target.Name)
	return true
}

// replaceLiteral replaces old with new in every block and returns the number of
// occurrences of old found before replacement
func replaceLiteral(blocks []string, oldValue, newValue string) int {
	if oldValue == "" || newValue == "" || oldValue == newValue {
		return 0
	}
	count := 0
	for i, block := range blocks {
		n := strings.Count(block, oldValue)
		if n == 0 {
			continue
		}
		count += n
		blocks[i] = strings.ReplaceAll(block, oldValue, newValue)
	}
	return count
}

// fontStylesheetURL returns a Google Fonts stylesheet for the first named family,
// or "" for the default stack and generic families
func fontStylesheetURL(family string) string {
	if family == "" || domain.IsDefaultFontStack(family) {
		return ""
	}
	first := strings.TrimSpace(strings.Split(family, ",")[0])
	first = strings.Trim(first, `"'`)
	if first == "" || genericFamilies[strings.ToLower(first)] {
		return ""
	}
	return googleFontsBase + strings.ReplaceAll(first, " ", "+") + "&display=swap"
}

var genericFamilies = map[string]bool{
	"serif":         true,
	"sans-serif":    true,
	"monospace":     true,
	"cursive":       true,
	"fantasy":       true,
	"system-ui":     true,
	"-apple-system": true,
	"inherit":       true,
	"initial":       true,
}
