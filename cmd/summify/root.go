package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"summify/internal/config"
	"summify/internal/logger"
	"summify/internal/stopwords"
	"summify/internal/summarizer"
	"summify/internal/tokenizer"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
	tokenizer  string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "summify",
		Short: "Extractive text summarization and keyword extraction",
		Long: `Summify selects the most important sentences of a text using word
frequency, sentence position or a blend of both, and reports the
document's keywords.

Available commands:
  summarize - summarize .txt files or standard input
  keywords  - list the heaviest content words of a text
  serve     - run the HTTP API
  tui       - interactive terminal front end`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config file (default ./summify.yaml or ~/.config/summify/config.yaml)")
	root.PersistentFlags().StringVar(&opts.tokenizer, "tokenizer", "", "Tokenizer backend: auto, rich or fallback")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level override")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Write logs to stderr")

	root.AddCommand(newSummarizeCmd(opts))
	root.AddCommand(newKeywordsCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// app holds the components every command wires together.
type app struct {
	cfg     *config.AppConfig
	log     *zap.Logger
	tok     *tokenizer.Tokenizer
	stops   *stopwords.Set
	engine  *summarizer.Engine
	cleanup func()
}

// setup loads config, then builds the logger, stop list, tokenizer and engine.
func (o *rootOptions) setup(console io.Writer) (*app, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if o.configPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(o.configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.tokenizer != "" {
		cfg.Tokenizer.Backend = o.tokenizer
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, cleanup, err := logger.New(cfg.Log, console)
	if err != nil {
		return nil, err
	}

	stops := stopwords.Default()
	if cfg.Tokenizer.StopwordsFile != "" {
		stops, err = stopwords.FromFile(cfg.Tokenizer.StopwordsFile)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
	}

	backend, err := tokenizer.ParseBackend(cfg.Tokenizer.Backend)
	if err != nil {
		cleanup()
		return nil, err
	}
	tok := tokenizer.New(backend)
	if err := tok.Unavailable(); err != nil && backend == tokenizer.Rich {
		log.Warn("rich tokenizer unavailable, using fallback", zap.Error(err))
	}

	log.Debug("engine ready",
		zap.String("tokenizer", tok.Backend().String()),
		zap.String("stopwords", stops.Source()),
	)
	return &app{
		cfg:     cfg,
		log:     log,
		tok:     tok,
		stops:   stops,
		engine:  summarizer.NewEngine(cfg.Summarizer(), tok, stops),
		cleanup: cleanup,
	}, nil
}

// cliConsole is where one-shot commands log: stderr when verbose, else nowhere.
func (o *rootOptions) cliConsole(cmd *cobra.Command) io.Writer {
	if o.verbose {
		return cmd.ErrOrStderr()
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "summify %s\n", version)
		},
	}
}
