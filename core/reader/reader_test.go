package reader

import (
	"strings"
	"testing"
)

const articlePage = `<html><head><title>Acme Rockets | Acme</title></head><body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>Acme Rockets</h1>
<p>Acme builds reusable rockets for small payloads. Every launch vehicle is assembled in our
factory and tested on our own pad before it ever leaves the ground.</p>
<p>Our customers include research groups, weather services and startups who need reliable
access to orbit without waiting months for a rideshare slot on a larger vehicle.</p>
<p>We publish our launch schedule a quarter in advance and keep a spare vehicle ready so that
a scrubbed mission can be flown again within days instead of weeks.</p>
</article>
<footer>Copyright Acme</footer>
</body></html>`

func TestExtract(t *testing.T) {
	view, err := Extract(articlePage, "https://acme.example.com/rockets")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(view.Markdown, "reusable rockets") {
		t.Errorf("Markdown missing article text: %q", view.Markdown)
	}
	if strings.Contains(view.Markdown, "<p>") {
		t.Errorf("Markdown still contains markup: %q", view.Markdown)
	}
}

func TestExtract_InvalidURL(t *testing.T) {
	if _, err := Extract(articlePage, "://bad"); err == nil {
		t.Error("Extract() expected error for invalid URL")
	}
}

func TestView_Summary(t *testing.T) {
	v := &View{Markdown: "line one\nline two\nline three"}

	if got := v.Summary(0); got != v.Markdown {
		t.Errorf("Summary(0) = %q, want full markdown", got)
	}
	if got := v.Summary(100); got != v.Markdown {
		t.Errorf("Summary(100) = %q, want full markdown", got)
	}
	if got := v.Summary(15); got != "line one" {
		t.Errorf("Summary(15) = %q, want %q", got, "line one")
	}
}

func TestCleanMarkdown(t *testing.T) {
	in := "# Title\r\n\r\n\r\n\r\nBody   \n   indented\n## Next"
	got := cleanMarkdown(in)
	want := "# Title\n\nBody\nindented\n\n## Next"
	if got != want {
		t.Errorf("cleanMarkdown() = %q, want %q", got, want)
	}
}
