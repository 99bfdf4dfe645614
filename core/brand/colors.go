// ABOUTME: Color pass tallies color literals in inline style text to build a palette
// ABOUTME: Includes the perceived-luminance light/dark classification

package brand

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
)

// colorPattern matches hex, rgb(a) and hsl(a) literals. Matches inside comments
// and string literals are counted too.
var colorPattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{3,4})\b|rgba?\([^)]*\)|hsla?\([^)]*\)`)

// lightThreshold splits light from dark on the 0-255 luminance scale
const lightThreshold = 128

// extractColors infers the palette from style text. themeColor is used for the
// primary slot only when the style text offers no candidate.
func extractColors(styleText, themeColor string) domain.BrandColors {
	colors := domain.DefaultColors()

	counts := newTally()
	for _, literal := range colorPattern.FindAllString(styleText, -1) {
		counts.add(literal)
	}

	var pool []string
	for _, literal := range counts.ranked() {
		if !isWhite(literal) && !isTransparent(literal) {
			pool = append(pool, literal)
		}
	}

	switch {
	case len(pool) > 0:
		colors.Primary = pool[0]
	case themeColor != "" && colorPattern.MatchString(themeColor):
		colors.Primary = strings.TrimSpace(themeColor)
	}
	if len(pool) > 1 {
		colors.Secondary = pool[1]
	}
	if len(pool) > 2 {
		colors.Accent = pool[2]
	}

	if bg := counts.top(func(v string) bool {
		return IsLight(v) && !isWhite(v) && !isTransparent(v)
	}); bg != "" {
		colors.Background = bg
	}
	if text := counts.top(func(v string) bool {
		return !IsLight(v) && !isWhite(v) && !isTransparent(v)
	}); text != "" {
		colors.Text = text
	}

	return colors
}

// themeColorOf returns the theme-color meta content, if any
func themeColorOf(doc *goquery.Document) string {
	if doc == nil {
		return ""
	}
	return strings.TrimSpace(doc.Find(`meta[name="theme-color"]`).First().AttrOr("content", ""))
}

// IsLight classifies a color literal by perceived luminance
// (0.299R + 0.587G + 0.114B > 128). Only hex literals are classified; anything else is dark,
// so extractColors also rejects white function literals from the text slot.
func IsLight(literal string) bool {
	r, g, b, _, ok := parseHex(literal)
	if !ok {
		return false
	}
	return Luminance(r, g, b) > lightThreshold
}

// Luminance returns the perceived brightness of an RGB triple on a 0-255 scale
func Luminance(r, g, b uint8) float64 {
	return (299*float64(r) + 587*float64(g) + 114*float64(b)) / 1000
}

// parseHex decodes #rgb, #rgba, #rrggbb and #rrggbbaa. alpha is 255 when absent.
func parseHex(literal string) (r, g, b, a uint8, ok bool) {
	s := strings.TrimSpace(literal)
	if !strings.HasPrefix(s, "#") {
		return 0, 0, 0, 0, false
	}
	hex := s[1:]
	if len(hex) == 3 || len(hex) == 4 {
		var expanded strings.Builder
		for _, c := range hex {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		hex = expanded.String()
	}
	if len(hex) != 6 && len(hex) != 8 {
		return 0, 0, 0, 0, false
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, 0, false
	}
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// functionArgs splits the arguments of rgb()/hsl() style literals
func functionArgs(literal string) (name string, args []string, ok bool) {
	open := strings.Index(literal, "(")
	if open < 0 || !strings.HasSuffix(literal, ")") {
		return "", nil, false
	}
	name = strings.ToLower(strings.TrimSpace(literal[:open]))
	inner := literal[open+1 : len(literal)-1]
	args = strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	return name, args, true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		return v / 100, true
	}
	return v, true
}

// alphaOf returns the alpha channel in [0,1] for any supported literal
func alphaOf(literal string) (float64, bool) {
	if _, _, _, a, ok := parseHex(literal); ok {
		return float64(a) / 255, true
	}
	_, args, ok := functionArgs(literal)
	if !ok || len(args) < 3 {
		return 0, false
	}
	if len(args) < 4 {
		return 1, true
	}
	return parseNumber(args[3])
}

func isTransparent(literal string) bool {
	a, ok := alphaOf(literal)
	return ok && a == 0
}

func isWhite(literal string) bool {
	if r, g, b, _, ok := parseHex(literal); ok {
		return r == 255 && g == 255 && b == 255
	}
	name, args, ok := functionArgs(literal)
	if !ok || len(args) < 3 {
		return false
	}
	switch name {
	case "rgb", "rgba":
		for _, arg := range args[:3] {
			v, ok := parseNumber(arg)
			if !ok {
				return false
			}
			if strings.HasSuffix(strings.TrimSpace(arg), "%") {
				v *= 255
			}
			if v < 255 {
				return false
			}
		}
		return true
	case "hsl", "hsla":
		l, ok := parseNumber(args[2])
		return ok && l >= 1
	}
	return false
}
