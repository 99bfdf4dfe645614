// Package api provides the HTTP API layer for the Shades application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type AnalyzeRequest struct {
//	    URLs         []string `json:"urls" minItems:"1" maxItems:"20"`
//	    UseAlternate bool     `json:"useAlternate,omitempty"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Caller identity from the X-User-ID header (resolved upstream)
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	brandHandler := handlers.NewBrandHandler(brandPipeline, logger)
//	brandHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 502,
//	    "title": "Bad Gateway",
//	    "detail": "Could not fetch the source page (all-paths-exhausted)"
//	}
//
// Retrieval timeouts map to 504, other retrieval failures to 502, and
// rebrand validation failures to 400.
package api
