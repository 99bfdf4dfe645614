package brand

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
)

var (
	borderRadiusPattern = regexp.MustCompile(`border-radius\s*:\s*([^;}]+)`)
	paddingPattern      = regexp.MustCompile(`(?:^|[^-\w])padding\s*:\s*([^;}]+)`)
)

const buttonSelector = "button, .btn, .button"

// extractStyle returns surface style hints, or nil when nothing was found
func extractStyle(doc *goquery.Document, styleText string) *domain.BrandStyle {
	style := &domain.BrandStyle{
		BorderRadius: mostFrequentValue(borderRadiusPattern, styleText),
		Spacing:      mostFrequentValue(paddingPattern, styleText),
	}
	style.ButtonStyle = buttonStyle(doc, style.BorderRadius)

	if style.BorderRadius == "" && style.Spacing == "" && style.ButtonStyle == "" {
		return nil
	}
	return style
}

func mostFrequentValue(pattern *regexp.Regexp, text string) string {
	counts := newTally()
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if value := strings.TrimSpace(m[1]); value != "" {
			counts.add(value)
		}
	}
	return counts.top(nil)
}

// buttonStyle counts rounded and square buttons. A button's radius comes from its
// inline style, falling back to the page's most frequent radius. Buttons with no
// known radius are not counted.
func buttonStyle(doc *goquery.Document, globalRadius string) domain.ButtonStyle {
	if doc == nil {
		return ""
	}

	rounded, square := 0, 0
	doc.Find(buttonSelector).Each(func(_ int, s *goquery.Selection) {
		radius := globalRadius
		if m := borderRadiusPattern.FindStringSubmatch(s.AttrOr("style", "")); m != nil {
			radius = strings.TrimSpace(m[1])
		}
		if radius == "" {
			return
		}
		if isZeroRadius(radius) {
			square++
		} else {
			rounded++
		}
	})

	switch {
	case rounded+square == 0:
		return ""
	case rounded >= square:
		return domain.ButtonRounded
	default:
		return domain.ButtonSquare
	}
}

// isZeroRadius reports whether every component of a radius value is zero
func isZeroRadius(value string) bool {
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == ' ' || r == '/' })
	if len(parts) == 0 {
		return false
	}
	for _, part := range parts {
		number := strings.TrimRight(part, "abcdefghijklmnopqrstuvwxyz%")
		if number == "" {
			return false
		}
		if strings.Trim(number, "0.+-") != "" {
			return false
		}
	}
	return true
}
