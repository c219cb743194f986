package scoring

import (
	"fmt"
	"math"

	"summify/internal/domain"
	"summify/internal/frequency"
)

// LeadConclusionBonus is added to the position score of the first and last
// sentences. It is large enough that the last sentence always outranks
// every interior sentence.
const LeadConclusionBonus = 0.5

// Weights combines frequency and position scores in hybrid mode.
type Weights struct {
	Frequency float64 `yaml:"frequency"`
	Position  float64 `yaml:"position"`
}

// DefaultWeights favours content over position.
func DefaultWeights() Weights { return Weights{Frequency: 0.7, Position: 0.3} }

// Validate requires non-negative weights summing to 1.
func (w Weights) Validate() error {
	if w.Frequency < 0 || w.Position < 0 {
		return fmt.Errorf("hybrid weights must be non-negative, got %.3f/%.3f", w.Frequency, w.Position)
	}
	if math.Abs(w.Frequency+w.Position-1) > 1e-9 {
		return fmt.Errorf("hybrid weights must sum to 1.0, got %.3f", w.Frequency+w.Position)
	}
	return nil
}

// Context is the document-level information a strategy may read.
type Context struct {
	Table frequency.Table
	Stops domain.StopwordSet
	// Total is the number of usable sentences.
	Total int
	// First and Last are the original indexes of the first and final
	// usable sentences.
	First, Last int
}

// NewContext derives a scoring context from the segmented document.
func NewContext(sentences []domain.Sentence, table frequency.Table, stops domain.StopwordSet) Context {
	c := Context{Table: table, Stops: stops, Total: len(sentences)}
	if len(sentences) > 0 {
		c.First = sentences[0].Index
		c.Last = sentences[len(sentences)-1].Index
	}
	return c
}

// Strategy maps one sentence to an importance score.
type Strategy interface {
	Mode() domain.Mode
	Score(s domain.Sentence, c Context) float64
}

// ForMode returns the strategy for mode.
func ForMode(mode domain.Mode, w Weights) (Strategy, error) {
	switch mode {
	case domain.ModeFrequency:
		return Frequency{}, nil
	case domain.ModePosition:
		return Position{}, nil
	case domain.ModeHybrid:
		if err := w.Validate(); err != nil {
			return nil, err
		}
		return Hybrid{Weights: w}, nil
	default:
		return nil, domain.Errorf(domain.KindInvalidMode, "unsupported scoring mode %d", int(mode))
	}
}

// ScoreAll scores every sentence. Scores are finite and non-negative.
func ScoreAll(st Strategy, sentences []domain.Sentence, c Context) []domain.ScoredSentence {
	out := make([]domain.ScoredSentence, len(sentences))
	for i, s := range sentences {
		out[i] = domain.ScoredSentence{Sentence: s, Score: sanitize(st.Score(s, c))}
	}
	return out
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Frequency scores a sentence by the mean weight of its content tokens.
type Frequency struct{}

func (Frequency) Mode() domain.Mode { return domain.ModeFrequency }

func (Frequency) Score(s domain.Sentence, c Context) float64 {
	if c.Table.Len() == 0 {
		return 0
	}
	sum, n := 0.0, 0
	for _, tok := range s.Tokens {
		if c.Stops != nil && c.Stops.Contains(tok) {
			continue
		}
		sum += c.Table.Weight(tok)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Position favours early sentences and boosts the lead and the conclusion.
type Position struct{}

func (Position) Mode() domain.Mode { return domain.ModePosition }

func (Position) Score(s domain.Sentence, c Context) float64 {
	score := 1 / float64(s.Index+1)
	if s.Index == c.First || s.Index == c.Last {
		score += LeadConclusionBonus
	}
	return math.Min(score, 1)
}

// Hybrid blends the frequency and position scores.
type Hybrid struct {
	Weights Weights
}

func (Hybrid) Mode() domain.Mode { return domain.ModeHybrid }

func (h Hybrid) Score(s domain.Sentence, c Context) float64 {
	return h.Weights.Frequency*Frequency{}.Score(s, c) + h.Weights.Position*Position{}.Score(s, c)
}
