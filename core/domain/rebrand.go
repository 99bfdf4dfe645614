// ABOUTME: RebrandedContent domain model is the output of a rebrand transformation
// ABOUTME: Carries the rewritten markup and style text plus an audit of substitutions

package domain

// RebrandedContent represents a transformed document
type RebrandedContent struct {
	HTML        string        `json:"html"`
	CSS         string        `json:"css"`
	OriginalURL string        `json:"originalUrl"`
	Changes     ChangeSummary `json:"changes"`
}

// ChangeSummary counts the substitutions made while rebranding.
// Each counter is the number of original-pattern occurrences found before replacement.
type ChangeSummary struct {
	NameReplacements  int  `json:"nameReplacements"`
	ColorReplacements int  `json:"colorReplacements"`
	FontReplacements  int  `json:"fontReplacements"`
	LogoReplaced      bool `json:"logoReplaced"`
}

// Snapshot converts the result into the shape stored with a website record
func (r RebrandedContent) Snapshot(images []string) *RebrandedSnapshot {
	var css []string
	if r.CSS != "" {
		css = []string{r.CSS}
	}
	return &RebrandedSnapshot{
		HTML:   r.HTML,
		CSS:    css,
		Images: append([]string(nil), images...),
	}
}
