// Package export renders a finished summary as a downloadable report.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

const timestampLayout = "2006-01-02 15:04:05"

// ParseFormat accepts txt, md and json. The empty string means txt.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatMarkdown, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q, supported: txt, md, json", s)
	}
}

// Stats are the figures shown in a report. Nil fields render as N/A.
type Stats struct {
	OriginalLength   *int `json:"original_length,omitempty"`
	SummaryLength    *int `json:"summary_length,omitempty"`
	CompressionRatio *int `json:"compression_ratio,omitempty"`
	ProcessingTimeMs *int `json:"processing_time_ms,omitempty"`
}

type Report struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
	Stats    Stats    `json:"statistics"`
}

type Document struct {
	Content  string `json:"content"`
	MIMEType string `json:"mimetype"`
	Filename string `json:"filename"`
}

type Renderer struct {
	Version string
}

func (r Renderer) Render(format Format, rep Report, now time.Time) (Document, error) {
	var (
		content string
		mime    string
		err     error
	)
	switch format {
	case FormatJSON:
		content, err = r.json(rep, now)
		mime = "application/json"
	case FormatMarkdown:
		content = r.markdown(rep, now)
		mime = "text/markdown"
	case FormatText:
		content = r.text(rep, now)
		mime = "text/plain"
	default:
		return Document{}, fmt.Errorf("invalid format %q, supported: txt, md, json", format)
	}
	if err != nil {
		return Document{}, err
	}
	return Document{
		Content:  content,
		MIMEType: mime,
		Filename: fmt.Sprintf("summary_%d.%s", now.Unix(), format),
	}, nil
}

func (r Renderer) json(rep Report, now time.Time) (string, error) {
	keywords := rep.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	payload := struct {
		Summary    string   `json:"summary"`
		Keywords   []string `json:"keywords"`
		Statistics Stats    `json:"statistics"`
		ExportedAt string   `json:"exported_at"`
		Version    string   `json:"version"`
	}{rep.Summary, keywords, rep.Stats, now.Format(timestampLayout), r.Version}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(b), nil
}

func (r Renderer) markdown(rep Report, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Summary Report\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format(timestampLayout))
	fmt.Fprintf(&b, "## Summary\n%s\n\n", rep.Summary)
	fmt.Fprintf(&b, "## Keywords\n%s\n\n", keywordLine(rep.Keywords))
	b.WriteString("## Statistics\n")
	fmt.Fprintf(&b, "- Original Length: %s words\n", orNA(rep.Stats.OriginalLength))
	fmt.Fprintf(&b, "- Summary Length: %s words\n", orNA(rep.Stats.SummaryLength))
	fmt.Fprintf(&b, "- Compression Ratio: %s%%\n", orNA(rep.Stats.CompressionRatio))
	fmt.Fprintf(&b, "- Processing Time: %sms\n\n", orNA(rep.Stats.ProcessingTimeMs))
	fmt.Fprintf(&b, "---\n*Generated by Summify %s*\n", r.Version)
	return b.String()
}

func (r Renderer) text(rep Report, now time.Time) string {
	var b strings.Builder
	b.WriteString("SUMMARY REPORT\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format(timestampLayout))
	fmt.Fprintf(&b, "SUMMARY:\n%s\n\n", rep.Summary)
	fmt.Fprintf(&b, "KEYWORDS:\n%s\n\n", keywordLine(rep.Keywords))
	b.WriteString("STATISTICS:\n")
	fmt.Fprintf(&b, "Original Length: %s words\n", orNA(rep.Stats.OriginalLength))
	fmt.Fprintf(&b, "Summary Length: %s words\n", orNA(rep.Stats.SummaryLength))
	fmt.Fprintf(&b, "Compression Ratio: %s%%\n", orNA(rep.Stats.CompressionRatio))
	fmt.Fprintf(&b, "Processing Time: %sms\n\n", orNA(rep.Stats.ProcessingTimeMs))
	fmt.Fprintf(&b, "Generated by Summify %s\n", r.Version)
	return b.String()
}

func keywordLine(kw []string) string {
	if len(kw) == 0 {
		return "No keywords extracted"
	}
	return strings.Join(kw, ", ")
}

func orNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return strconv.Itoa(*v)
}
