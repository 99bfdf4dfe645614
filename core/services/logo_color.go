// ABOUTME: Logo color service samples the most prominent color of a brand's logo image
// ABOUTME: Uses K-means clustering over the decoded image and caches results by image URL

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support
)

const (
	logoColorCacheTTL = 24 * time.Hour
	maxLogoBytes      = 5 * 1024 * 1024
)

// LogoColorService handles color sampling from logo images
type LogoColorService struct {
	deps interfaces.Dependencies
}

// NewLogoColorService creates a new logo color service
func NewLogoColorService(deps interfaces.Dependencies) *LogoColorService {
	return &LogoColorService{deps: deps}
}

// SampleColor returns the most prominent color of the image at imageURL
func (s *LogoColorService) SampleColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("empty image URL")
	}

	cacheKey := interfaces.LogoColorKeyPrefix + imageURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			// Stored as "R,G,B"
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.sample(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to sample logo color", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		return nil, err
	}

	if s.deps.Cache != nil {
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(cacheData), logoColorCacheTTL)
	}

	return color, nil
}

// sample downloads and clusters the image
func (s *LogoColorService) sample(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = nil
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG logos can't be decoded as raster images
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("no HTTP client configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	img, _, err := image.Decode(io.LimitReader(body, maxLogoBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	// Logos are small and often centred, so keep the whole image
	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.DefaultK,
		imgNRGBA,
		prominentcolor.ArgumentNoCropping,
		prominentcolor.DefaultSize,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		s.deps.Logger.Debug("Retrying color extraction without masks", map[string]interface{}{
			"url":   imageURL,
			"error": fmt.Sprintf("%v", err),
		})

		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.DefaultK,
			imgNRGBA,
			prominentcolor.ArgumentNoCropping,
			prominentcolor.DefaultSize,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}
