package brand

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
)

func doc(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return d
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		title  string
		url    string
		want   string
	}{
		{
			name:   "brand class text",
			markup: `<a class="brand">  Acme   Corp </a>`,
			want:   "Acme Corp",
		},
		{
			name:   "selector priority",
			markup: `<div class="logo">Logo Co</div><a class="brand">Brand Co</a>`,
			want:   "Brand Co",
		},
		{
			name:   "long text falls back to image alt",
			markup: `<a class="navbar-brand"><img src="/l.png" alt="Initech">` + strings.Repeat("very long marketing text ", 3) + `</a>`,
			want:   "Initech",
		},
		{
			name:   "empty selector moves to next",
			markup: `<a class="brand"></a><header><a href="/x">Globex</a></header>`,
			want:   "Globex",
		},
		{
			name:  "title pipe",
			title: "Hooli | Home",
			want:  "Hooli",
		},
		{
			name:  "title dash",
			title: "Pied Piper - Compression",
			want:  "Pied Piper",
		},
		{
			name:  "earliest separator wins",
			title: "Vandelay - Imports | Exports",
			want:  "Vandelay",
		},
		{
			name: "host without www",
			url:  "https://www.example.org/about",
			want: "example.org",
		},
		{
			name: "default",
			want: "Untitled Brand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractName(doc(t, tt.markup), tt.title, tt.url)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractLogo(t *testing.T) {
	tests := []struct {
		markup string
		want   string
	}{
		{`<a class="brand"><img src="/brand.svg"></a>`, "/brand.svg"},
		{`<img class="logo" src="https://cdn.test/logo.png">`, "https://cdn.test/logo.png"},
		{`<div id="logo"><img src=""></div><header><a><img src="h.png"></a></header>`, "h.png"},
		{`<img src="/photo.jpg">`, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractLogo(doc(t, tt.markup)), tt.markup)
	}

	assert.Empty(t, extractLogo(nil))
}
