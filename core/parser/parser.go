// ABOUTME: Structural parser turns raw markup into ScrapedContent
// ABOUTME: Collects stylesheets, inline styles, images, title, description and a structural fingerprint

package parser

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
)

// Parse builds ScrapedContent from markup retrieved from baseURL.
// Parsing is permissive: malformed markup yields best-effort results and never an error.
// Relative references resolve against the origin of baseURL; a <base> element is not consulted.
func Parse(markup, baseURL string) domain.ScrapedContent {
	content := domain.ScrapedContent{
		HTML:   markup,
		CSS:    []string{},
		Images: []string{},
		URL:    baseURL,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return content
	}

	origin := originOf(baseURL)

	doc.Find(`link[rel~="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && strings.TrimSpace(href) != "" {
			content.CSS = append(content.CSS, Absolutize(href, origin))
		}
	})

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		content.CSS = append(content.CSS, s.Text())
	})

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		if src := strings.TrimSpace(s.AttrOr("src", "")); src != "" {
			content.Images = append(content.Images, Absolutize(src, origin))
		}
	})

	content.Title = strings.TrimSpace(doc.Find("title").First().Text())
	content.Description = strings.TrimSpace(doc.Find(`meta[name="description"]`).First().AttrOr("content", ""))
	content.Structure = fingerprint(doc)

	return content
}

func fingerprint(doc *goquery.Document) domain.PageStructure {
	return domain.PageStructure{
		Header:     doc.Find(`header, [class*="header"]`).Length() > 0,
		Footer:     doc.Find(`footer, [class*="footer"]`).Length() > 0,
		Navigation: doc.Find("nav").Length() > 0 || hasClassSegment(doc, navSegments),
		Sections:   doc.Find("section").Length() + doc.Find(`[class*="section"]`).Length(),
	}
}

var navSegments = map[string]bool{"nav": true, "navbar": true, "navigation": true, "navmenu": true}

// hasClassSegment reports whether any class token, or a hyphen or underscore
// separated part of one, is in segments. "main-nav" matches, "canvas" does not.
func hasClassSegment(doc *goquery.Document, segments map[string]bool) bool {
	found := false
	doc.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, token := range strings.Fields(s.AttrOr("class", "")) {
			parts := strings.FieldsFunc(strings.ToLower(token), func(r rune) bool { return r == '-' || r == '_' })
			for _, part := range parts {
				if segments[part] {
					found = true
					return false
				}
			}
		}
		return true
	})
	return found
}

// originOf returns scheme://host/ for an absolute URL, or nil
func originOf(rawURL string) *url.URL {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil
	}
	return &url.URL{Scheme: parsed.Scheme, Host: parsed.Host, Path: "/"}
}

// Absolutize resolves ref against origin unless it is already absolute
func Absolutize(ref string, origin *url.URL) string {
	ref = strings.TrimSpace(ref)
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if parsed.IsAbs() || origin == nil {
		return ref
	}
	return origin.ResolveReference(parsed).String()
}

// Resolve absolutizes ref against the origin of pageURL
func Resolve(ref, pageURL string) string {
	return Absolutize(ref, originOf(pageURL))
}
