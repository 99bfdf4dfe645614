// ABOUTME: Name and logo passes check brand-mark selectors in priority order
// ABOUTME: Name falls back to the page title, then the host, then the default name

package brand

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
)

// BrandSelectors are tried in order for the brand mark
var BrandSelectors = []string{
	".brand",
	".logo",
	".navbar-brand",
	"#logo",
	"header a",
	`a[href="/"]`,
}

// maxNameLength bounds an acceptable brand name, in characters
const maxNameLength = 30

var titleSeparators = []string{" | ", " - "}

func acceptableName(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n < maxNameLength
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// extractName returns the brand name, never empty
func extractName(doc *goquery.Document, title, pageURL string) string {
	if doc != nil {
		for _, selector := range BrandSelectors {
			el := doc.Find(selector).First()
			if el.Length() == 0 {
				continue
			}
			if text := cleanText(el.Text()); acceptableName(text) {
				return text
			}
			if alt := imageAlt(el); acceptableName(alt) {
				return alt
			}
		}
	}

	if name := nameFromTitle(title); name != "" {
		return name
	}
	if name := nameFromHost(pageURL); name != "" {
		return name
	}
	return domain.DefaultBrandName
}

// imageAlt returns the alt text of el itself or its first image descendant
func imageAlt(el *goquery.Selection) string {
	if alt, ok := el.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
		return cleanText(alt)
	}
	return cleanText(el.Find("img[alt]").First().AttrOr("alt", ""))
}

// nameFromTitle splits the title at the earliest known separator
func nameFromTitle(title string) string {
	title = strings.TrimSpace(title)
	cut := len(title)
	for _, sep := range titleSeparators {
		if i := strings.Index(title, sep); i >= 0 && i < cut {
			cut = i
		}
	}
	return strings.TrimSpace(title[:cut])
}

func nameFromHost(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// LogoElement returns the first logo-like image for the brand selectors
func LogoElement(doc *goquery.Document) *goquery.Selection {
	if doc == nil {
		return nil
	}
	for _, selector := range BrandSelectors {
		el := doc.Find(selector).First()
		if el.Length() == 0 {
			continue
		}
		img := el
		if goquery.NodeName(el) != "img" {
			img = el.Find("img").First()
		}
		if src := strings.TrimSpace(img.AttrOr("src", "")); src != "" {
			return img
		}
	}
	return nil
}

// extractLogo returns the logo image src as written in the markup, or ""
func extractLogo(doc *goquery.Document) string {
	img := LogoElement(doc)
	if img == nil {
		return ""
	}
	return strings.TrimSpace(img.AttrOr("src", ""))
}
