package summarizer

import (
	"strings"
	"unicode/utf8"

	"summify/internal/domain"
	"summify/internal/frequency"
	"summify/internal/keywords"
	"summify/internal/scoring"
	"summify/internal/selector"
	"summify/internal/stopwords"
)

// Config bounds the input and tunes the pipeline.
type Config struct {
	MinInputLength       int
	MaxInputLength       int
	DefaultSentenceCount int
	MaxSentenceCount     int
	KeywordLimit         int
	Weights              scoring.Weights
}

// DefaultConfig mirrors the limits of the public service.
func DefaultConfig() Config {
	return Config{
		MinInputLength:       10,
		MaxInputLength:       100000,
		DefaultSentenceCount: 3,
		MaxSentenceCount:     10,
		KeywordLimit:         keywords.DefaultLimit,
		Weights:              scoring.DefaultWeights(),
	}
}

// Engine runs the extractive pipeline. It keeps no per-call state and is
// safe for concurrent use.
type Engine struct {
	cfg   Config
	tok   domain.Tokenizer
	stops domain.StopwordSet
	clock Clock
}

// NewEngine creates an engine using the system clock. A nil stop list means
// the builtin one.
func NewEngine(cfg Config, tok domain.Tokenizer, stops domain.StopwordSet) *Engine {
	if stops == nil {
		stops = stopwords.Builtin()
	}
	return &Engine{cfg: cfg, tok: tok, stops: stops, clock: SystemClock{}}
}

// WithClock returns a copy of the engine reading time from c.
func (e *Engine) WithClock(c Clock) *Engine {
	cp := *e
	cp.clock = c
	return &cp
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Summarize selects the count most important sentences of text under mode
// and extracts the document keywords. count <= 0 means the configured
// default; larger counts are clamped rather than rejected.
func (e *Engine) Summarize(text string, mode domain.Mode, count int) (domain.Result, error) {
	trimmed, err := e.validate(text)
	if err != nil {
		return domain.Result{}, err
	}
	strategy, err := scoring.ForMode(mode, e.cfg.Weights)
	if err != nil {
		return domain.Result{}, err
	}
	sentences, err := e.segment(trimmed)
	if err != nil {
		return domain.Result{}, err
	}
	table := frequency.Build(sentences, e.stops)

	start := e.clock.Now()
	scored := scoring.ScoreAll(strategy, sentences, scoring.NewContext(sentences, table, e.stops))
	selected := selector.Select(scored, e.clampCount(count))
	elapsed := e.clock.Now().Sub(start)

	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.Text
	}
	summary := strings.Join(parts, " ")

	stats := domain.Stats{
		OriginalSentenceCount: len(sentences),
		SelectedSentenceCount: len(selected),
		CompressionRatio:      float64(len(selected)) / float64(len(sentences)),
		Elapsed:               elapsed,
		InputChars:            utf8.RuneCountInString(trimmed),
		InputWords:            len(strings.Fields(trimmed)),
		SummaryChars:          utf8.RuneCountInString(summary),
		SummaryWords:          len(strings.Fields(summary)),
	}
	if stats.InputWords > 0 {
		stats.WordReductionPct = int((1 - float64(stats.SummaryWords)/float64(stats.InputWords)) * 100)
	}

	return domain.Result{
		Mode:      mode,
		Sentences: selected,
		Summary:   summary,
		Keywords:  keywords.Extract(table, e.cfg.KeywordLimit),
		Stats:     stats,
	}, nil
}

// ExtractKeywords returns the limit heaviest content terms of text.
// limit <= 0 means the configured keyword limit.
func (e *Engine) ExtractKeywords(text string, limit int) ([]domain.Keyword, error) {
	trimmed, err := e.validate(text)
	if err != nil {
		return nil, err
	}
	sentences, err := e.segment(trimmed)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = e.cfg.KeywordLimit
	}
	return keywords.Extract(frequency.Build(sentences, e.stops), limit), nil
}

func (e *Engine) validate(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	n := utf8.RuneCountInString(trimmed)
	if n < e.cfg.MinInputLength {
		return "", domain.Errorf(domain.KindInputTooShort, "text has %d characters, minimum is %d", n, e.cfg.MinInputLength)
	}
	if e.cfg.MaxInputLength > 0 && n > e.cfg.MaxInputLength {
		return "", domain.Errorf(domain.KindInputTooLong, "text has %d characters, maximum is %d", n, e.cfg.MaxInputLength)
	}
	return trimmed, nil
}

func (e *Engine) segment(text string) ([]domain.Sentence, error) {
	sentences := e.tok.Segment(text)
	if len(sentences) == 0 {
		return nil, domain.Errorf(domain.KindEmptyDocument, "text contains no usable sentences")
	}
	return sentences, nil
}

func (e *Engine) clampCount(count int) int {
	if count <= 0 {
		count = e.cfg.DefaultSentenceCount
	}
	if e.cfg.MaxSentenceCount > 0 && count > e.cfg.MaxSentenceCount {
		count = e.cfg.MaxSentenceCount
	}
	if count < 1 {
		count = 1
	}
	return count
}
