// Package headers holds the browser-like request headers shared by every HTTP transport.
package headers

import "net/http"

// UserAgent is a desktop Chrome user agent
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Browser lists the headers sent with every outgoing request
var Browser = map[string]string{
	"User-Agent":      UserAgent,
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Referer":         "https://www.google.com/",
}

// Apply sets the browser headers on h
func Apply(h http.Header) {
	for k, v := range Browser {
		h.Set(k, v)
	}
}
