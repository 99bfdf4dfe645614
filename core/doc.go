// Package core contains the business logic for the Shades API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ScrapedContent, BrandElements, RebrandedContent, Website)
// - retrieval: Fetches page markup through an ordered fallback chain
// - parser: Turns markup into ScrapedContent
// - brand: Infers a brand identity from scraped content
// - rebrand: Rewrites a page from one brand to another
// - reader: Readable markdown view of a page
// - services: Logo color sampling and AI generated CSS
// - pipeline: Orchestrates retrieval, parsing, extraction and rebranding
// - website: Builds and reads stored website records
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/DTI-Technologies/shades-webapp/core/interfaces"
//	    "github.com/DTI-Technologies/shades-webapp/core/pipeline"
//	    "github.com/DTI-Technologies/shades-webapp/core/retrieval"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	retriever := retrieval.NewService(deps, cfg.Retrieval)
//	brands := pipeline.NewService(deps, retriever)
//
//	// Infer a brand
//	analysis, err := brands.Analyze(ctx, "https://example.com", interfaces.AnalyzeOptions{})
package core
