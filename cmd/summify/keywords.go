package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"summify/internal/domain"
	"summify/internal/service"
)

func newKeywordsCmd(root *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "keywords [file.txt]",
		Short: "List the heaviest content words of a text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{service.StdinPath}
			}
			a, err := root.setup(root.cliConsole(cmd))
			if err != nil {
				return err
			}
			defer a.cleanup()

			docs, err := service.NewSummaryService(a.engine, a.log).WithStdin(cmd.InOrStdin()).LoadDocuments(args)
			if err != nil {
				return err
			}
			kw, err := a.engine.ExtractKeywords(docs[0].Content, limit)
			if err != nil {
				return err
			}
			return writeKeywords(cmd.OutOrStdout(), kw)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of keywords (0 uses the configured limit)")
	return cmd
}

func writeKeywords(w io.Writer, kw []domain.Keyword) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range kw {
		fmt.Fprintf(tw, "%s\t%.3f\n", k.Term, k.Weight)
	}
	return tw.Flush()
}
