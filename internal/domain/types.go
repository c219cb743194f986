package domain

import (
	"strings"
	"time"
)

// Mode selects the sentence scoring strategy.
type Mode int

const (
	ModeFrequency Mode = iota
	ModePosition
	ModeHybrid
)

var modeNames = [...]string{"frequency", "position", "hybrid"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Modes lists every supported scoring mode.
func Modes() []Mode { return []Mode{ModeFrequency, ModePosition, ModeHybrid} }

// ParseMode maps a mode name to its variant. Matching is case-insensitive.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return 0, Errorf(KindInvalidMode, "unsupported scoring mode %q (want frequency, position or hybrid)", name)
}

// Sentence is one segmented unit of the input document. Index is the
// position in the original document and is never re-compacted.
type Sentence struct {
	Index  int
	Text   string
	Tokens []string
}

// ScoredSentence pairs a sentence with the score of a single strategy run.
type ScoredSentence struct {
	Sentence Sentence
	Score    float64
}

// Keyword is a term of the frequency table with its normalized weight.
type Keyword struct {
	Term   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// Stats describes a summarization run.
type Stats struct {
	OriginalSentenceCount int
	SelectedSentenceCount int
	CompressionRatio      float64
	Elapsed               time.Duration
	InputChars            int
	InputWords            int
	SummaryChars          int
	SummaryWords          int
	WordReductionPct      int
}

// Result is the terminal artifact of a summarization run.
type Result struct {
	Mode      Mode
	Sentences []Sentence
	Summary   string
	Keywords  []Keyword
	Stats     Stats
}

// Tokenizer segments text into sentences and sentences into tokens.
type Tokenizer interface {
	Segment(text string) []Sentence
	Tokenize(text string) []string
}

// StopwordSet reports whether a normalized token carries no content.
type StopwordSet interface {
	Contains(token string) bool
}
