package brand

import (
	"regexp"
	"strings"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
)

var fontFamilyPattern = regexp.MustCompile(`font-family\s*:\s*([^;}]+)`)

// extractTypography ranks raw font-family values by frequency
func extractTypography(styleText string) domain.Typography {
	typography := domain.DefaultTypography()

	counts := newTally()
	for _, m := range fontFamilyPattern.FindAllStringSubmatch(styleText, -1) {
		if value := strings.TrimSpace(m[1]); value != "" {
			counts.add(value)
		}
	}

	ranked := counts.ranked()
	if len(ranked) > 0 {
		typography.Primary = ranked[0]
	}
	if len(ranked) > 1 {
		typography.Secondary = ranked[1]
	}
	return typography
}
