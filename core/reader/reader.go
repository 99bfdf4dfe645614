// ABOUTME: Reader view extraction turns page markup into condensed markdown
// ABOUTME: Uses go-readability for the main content and html-to-markdown for conversion

package reader

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

var (
	excessNewlines  = regexp.MustCompile(`\n{3,}`)
	trailingSpaces  = regexp.MustCompile(`[ \t]+\n`)
	leadingSpaces   = regexp.MustCompile(`\n[ \t]+`)
	headerSeparator = regexp.MustCompile(`\n(#{1,6} )`)
)

// View is the readable part of a page
type View struct {
	Title    string
	Byline   string
	SiteName string
	Excerpt  string
	Markdown string
}

// Extract runs readability over markup and converts the article body to markdown
func Extract(markup, pageURL string) (*View, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(markup), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reader view: %w", err)
	}

	view := &View{
		Title:    article.Title,
		Byline:   article.Byline,
		SiteName: article.SiteName,
		Excerpt:  article.Excerpt,
	}

	body := strings.TrimSpace(article.TextContent)
	if article.Content != "" {
		converter := md.NewConverter("", true, nil)
		if converted, err := converter.ConvertString(article.Content); err == nil {
			body = converted
		}
	}
	view.Markdown = buildMarkdown(view.Title, view.Byline, view.SiteName, body)

	return view, nil
}

// Summary returns the view's markdown cut to at most limit bytes on a line boundary
func (v *View) Summary(limit int) string {
	if limit <= 0 || len(v.Markdown) <= limit {
		return v.Markdown
	}
	cut := v.Markdown[:limit]
	if i := strings.LastIndex(cut, "\n"); i > limit/2 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}

// buildMarkdown creates a markdown document with a title and a metadata line
func buildMarkdown(title, byline, siteName, content string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}

	var meta []string
	if byline != "" {
		meta = append(meta, fmt.Sprintf("**Author:** %s", byline))
	}
	if siteName != "" {
		meta = append(meta, fmt.Sprintf("**Source:** %s", siteName))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " | "))
		b.WriteString("\n\n---\n\n")
	}

	b.WriteString(cleanMarkdown(content))
	return b.String()
}

// cleanMarkdown removes excessive newlines and stray indentation
func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	markdown = trailingSpaces.ReplaceAllString(markdown, "\n")
	markdown = leadingSpaces.ReplaceAllString(markdown, "\n")
	markdown = headerSeparator.ReplaceAllString(markdown, "\n\n$1")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
