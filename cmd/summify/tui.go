package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"summify/internal/domain"
	"summify/internal/service"
	"summify/internal/tui"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "tui [file.txt]",
		Short: "Interactive terminal front end",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := domain.ParseMode(mode)
			if err != nil {
				return err
			}
			// Logs would corrupt the screen; only the log file, if any, receives them.
			a, err := root.setup(nil)
			if err != nil {
				return err
			}
			defer a.cleanup()

			var text string
			if len(args) == 1 {
				docs, err := service.NewSummaryService(a.engine, a.log).LoadDocuments(args)
				if err != nil {
					return err
				}
				text = docs[0].Content
			}

			model := tui.New(a.engine, text, tui.Options{
				Mode:     m,
				Count:    a.cfg.Engine.DefaultSentences,
				MaxCount: a.cfg.Engine.MaxSentences,
				Backend:  a.tok.Backend().String(),
			})
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "hybrid", "Initial scoring mode")
	return cmd
}
