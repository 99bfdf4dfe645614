// ABOUTME: Functional options for the brand pipeline
// ABOUTME: Enable optional collaborators such as logo color sampling and AI generated CSS

package pipeline

import "github.com/DTI-Technologies/shades-webapp/core/interfaces"

const (
	// MaxBatchSize is the number of URLs accepted by AnalyzeBatch
	MaxBatchSize = 20

	defaultConcurrency = 4
)

// Option is a functional option for configuring the pipeline
type Option func(*Service)

// WithLogoColors enables logo color sampling
func WithLogoColors(svc interfaces.LogoColorService) Option {
	return func(s *Service) {
		s.logoColors = svc
	}
}

// WithStyleGenerator enables the AI CSS supplement
func WithStyleGenerator(gen interfaces.StyleGenerator) Option {
	return func(s *Service) {
		s.styles = gen
	}
}

// WithConcurrency bounds how many URLs a batch analyzes at once
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}
