// ABOUTME: ScrapedContent domain model is the result of retrieving and parsing a source page
// ABOUTME: Carries raw markup, stylesheet references, inline styles, images and a structural fingerprint

package domain

import (
	"net/url"
	"strings"
)

// ScrapedContent represents a retrieved and parsed web page
type ScrapedContent struct {
	// HTML is the raw markup as retrieved
	HTML string `json:"html"`

	// CSS holds absolutized stylesheet URLs followed by inline style blocks in document order
	CSS []string `json:"css"`

	// Images holds absolutized image source URLs
	Images []string `json:"images"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// URL is the absolute source URL
	URL string `json:"url"`

	Structure PageStructure `json:"structure"`
}

// PageStructure is a coarse structural fingerprint of a page
type PageStructure struct {
	Header     bool `json:"header"`
	Footer     bool `json:"footer"`
	Navigation bool `json:"navigation"`
	Sections   int  `json:"sections"`
}

// Stylesheets returns the external stylesheet URLs held in CSS
func (c ScrapedContent) Stylesheets() []string {
	var sheets []string
	for _, entry := range c.CSS {
		if isStylesheetURL(entry) {
			sheets = append(sheets, entry)
		}
	}
	return sheets
}

// InlineStyles returns the inline style blocks held in CSS, in document order
func (c ScrapedContent) InlineStyles() []string {
	var blocks []string
	for _, entry := range c.CSS {
		if !isStylesheetURL(entry) {
			blocks = append(blocks, entry)
		}
	}
	return blocks
}

// StyleText returns all inline style blocks joined by newlines
func (c ScrapedContent) StyleText() string {
	return strings.Join(c.InlineStyles(), "\n")
}

// isStylesheetURL reports whether a CSS entry is an absolute stylesheet URL rather than style text
func isStylesheetURL(entry string) bool {
	if entry == "" || strings.ContainsAny(entry, "{}; \t\n\r") {
		return false
	}
	u, err := url.Parse(entry)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
