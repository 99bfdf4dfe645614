package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

type stubPipeline struct {
	content   domain.ScrapedContent
	brand     domain.BrandElements
	scrapeErr error

	gotAlternate bool
	gotTarget    domain.BrandElements
}

func (s *stubPipeline) Scrape(ctx context.Context, url string, preferAlternatePath bool) (*domain.ScrapedContent, error) {
	s.gotAlternate = preferAlternatePath
	if s.scrapeErr != nil {
		return nil, s.scrapeErr
	}
	c := s.content
	c.URL = url
	return &c, nil
}

func (s *stubPipeline) Extract(content domain.ScrapedContent) domain.BrandElements {
	return s.brand
}

func (s *stubPipeline) Analyze(ctx context.Context, url string, opts interfaces.AnalyzeOptions) (*interfaces.Analysis, error) {
	content, err := s.Scrape(ctx, url, opts.PreferAlternatePath)
	if err != nil {
		return nil, err
	}
	return &interfaces.Analysis{Content: *content, Brand: s.brand}, nil
}

func (s *stubPipeline) AnalyzeBatch(ctx context.Context, urls []string, opts interfaces.AnalyzeOptions) []interfaces.BatchResult {
	return nil
}

func (s *stubPipeline) Rebrand(ctx context.Context, content domain.ScrapedContent, original, target domain.BrandElements, opts interfaces.RebrandOptions) (*domain.RebrandedContent, error) {
	s.gotTarget = target
	return &domain.RebrandedContent{
		HTML:        strings.ReplaceAll(content.HTML, original.Name, target.Name),
		OriginalURL: content.URL,
		Changes:     domain.ChangeSummary{NameReplacements: 1, ColorReplacements: 2},
	}, nil
}

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())
	return cmd, &stdout, &stderr
}

func TestRunExtract(t *testing.T) {
	stub := &stubPipeline{brand: domain.BrandElements{Name: "Acme", Colors: domain.BrandColors{Primary: "#112233"}}}
	cmd, stdout, _ := newTestCmd()

	if err := runExtract(cmd, stub, "https://acme.test", true); err != nil {
		t.Fatalf("runExtract() error = %v", err)
	}

	if !stub.gotAlternate {
		t.Error("alternate flag was not passed to the pipeline")
	}
	if !strings.Contains(stdout.String(), `"name": "Acme"`) {
		t.Errorf("output = %s, want brand JSON", stdout.String())
	}
}

func TestRunExtract_Error(t *testing.T) {
	stub := &stubPipeline{scrapeErr: errors.New("boom")}
	cmd, _, _ := newTestCmd()

	if err := runExtract(cmd, stub, "https://acme.test", false); err == nil {
		t.Error("expected error")
	}
}

func TestRunRebrand_Stdout(t *testing.T) {
	stub := &stubPipeline{
		content: domain.ScrapedContent{HTML: "<h1>Acme</h1>"},
		brand:   domain.BrandElements{Name: "Acme"},
	}
	cmd, stdout, stderr := newTestCmd()

	flags := rebrandFlags{name: "Zenith", primary: "#ff0000", font: "Georgia", accent: "#00ff00"}
	if err := runRebrand(cmd, stub, "https://acme.test", flags); err != nil {
		t.Fatalf("runRebrand() error = %v", err)
	}

	if stdout.String() != "<h1>Zenith</h1>" {
		t.Errorf("stdout = %q, want rebranded markup", stdout.String())
	}
	if !strings.Contains(stderr.String(), "names:  1") || !strings.Contains(stderr.String(), "colors: 2") {
		t.Errorf("report = %q, want change counters", stderr.String())
	}
	if stub.gotTarget.Colors.Accent != "#00ff00" || stub.gotTarget.Typography.Primary != "Georgia" {
		t.Errorf("target = %+v, want flags applied", stub.gotTarget)
	}
}

func TestRunRebrand_File(t *testing.T) {
	stub := &stubPipeline{
		content: domain.ScrapedContent{HTML: "<h1>Acme</h1>"},
		brand:   domain.BrandElements{Name: "Acme"},
	}
	cmd, stdout, _ := newTestCmd()
	out := filepath.Join(t.TempDir(), "page.html")

	flags := rebrandFlags{name: "Zenith", primary: "#ff0000", font: "Georgia", out: out}
	if err := runRebrand(cmd, stub, "https://acme.test", flags); err != nil {
		t.Fatalf("runRebrand() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "<h1>Zenith</h1>" {
		t.Errorf("file = %q, want rebranded markup", data)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty when writing to a file", stdout.String())
	}
}

func TestRebrandCmd_RequiresFlags(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"rebrand", "https://acme.test", "--name", "Zenith"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "required flag") {
		t.Errorf("Execute() error = %v, want missing required flag", err)
	}
}
