package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"summify/internal/domain"
	"summify/internal/export"
	"summify/internal/service"
)

func newSummarizeCmd(root *rootOptions) *cobra.Command {
	var (
		mode     string
		count    int
		format   string
		combined bool
	)
	cmd := &cobra.Command{
		Use:   "summarize [file.txt ...]",
		Short: "Summarize .txt files, globs or standard input (-)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := domain.ParseMode(mode)
			if err != nil {
				return err
			}
			var f export.Format
			if format != "" {
				if f, err = export.ParseFormat(format); err != nil {
					return err
				}
			}
			if len(args) == 0 {
				args = []string{service.StdinPath}
			}

			a, err := root.setup(root.cliConsole(cmd))
			if err != nil {
				return err
			}
			defer a.cleanup()

			svc := service.NewSummaryService(a.engine, a.log).WithStdin(cmd.InOrStdin())
			docs, err := svc.LoadDocuments(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := export.Renderer{Version: version}
			if combined {
				res, err := svc.SummarizeCombined(docs, m, count)
				if err != nil {
					return err
				}
				return writeResult(out, renderer, f, res)
			}

			var failed int
			for _, s := range svc.SummarizeEach(docs, m, count) {
				if len(docs) > 1 {
					fmt.Fprintf(out, "== %s (%s) ==\n", s.Document.Path, s.Document.ID)
				}
				if s.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", s.Document.Path, s.Err)
					continue
				}
				if err := writeResult(out, renderer, f, s.Result); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(docs))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "frequency", "Scoring mode: frequency, position or hybrid")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of sentences (0 uses the configured default)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: txt, md or json (default prints the summary only)")
	cmd.Flags().BoolVar(&combined, "combined", false, "Summarize all inputs as one text")
	return cmd
}

func writeResult(w io.Writer, r export.Renderer, f export.Format, res domain.Result) error {
	if f == "" {
		_, err := fmt.Fprintln(w, res.Summary)
		return err
	}
	doc, err := r.Render(f, reportFor(res), time.Now())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strings.TrimRight(doc.Content, "\n")+"\n")
	return err
}

func reportFor(res domain.Result) export.Report {
	keywords := make([]string, len(res.Keywords))
	for i, k := range res.Keywords {
		keywords[i] = k.Term
	}
	original, summary, ratio := res.Stats.InputWords, res.Stats.SummaryWords, res.Stats.WordReductionPct
	elapsed := int(res.Stats.Elapsed.Milliseconds())
	return export.Report{
		Summary:  res.Summary,
		Keywords: keywords,
		Stats: export.Stats{
			OriginalLength:   &original,
			SummaryLength:    &summary,
			CompressionRatio: &ratio,
			ProcessingTimeMs: &elapsed,
		},
	}
}
