package tokenizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/tokenize"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"

	"summify/internal/domain"
)

// Backend identifies which segmentation facility is in use.
type Backend int

const (
	// Rich uses the Punkt English model and the Treebank word tokenizer.
	Rich Backend = iota
	// Fallback uses punctuation scanning and whitespace splitting.
	Fallback
)

func (b Backend) String() string {
	switch b {
	case Rich:
		return "rich"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// ParseBackend maps a configuration value to a backend. "auto" and ""
// both mean Rich with automatic degradation.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto", "rich":
		return Rich, nil
	case "fallback", "basic":
		return Fallback, nil
	default:
		return 0, fmt.Errorf("unknown tokenizer backend %q", name)
	}
}

// Tokenizer implements domain.Tokenizer. It holds no per-call state and is
// safe for concurrent use.
type Tokenizer struct {
	backend  Backend
	punkt    *sentences.DefaultSentenceTokenizer
	treebank *tokenize.TreebankWordTokenizer
}

var (
	punktOnce  sync.Once
	punktModel *sentences.DefaultSentenceTokenizer
	punktErr   error

	// newPunkt builds the English Punkt model; tests swap it to simulate a
	// missing resource.
	newPunkt = func() (*sentences.DefaultSentenceTokenizer, error) {
		return english.NewSentenceTokenizer(nil)
	}
)

// loadPunkt loads the English Punkt model at most once per process. A
// failure is permanent; later calls see the same error.
func loadPunkt() (*sentences.DefaultSentenceTokenizer, error) {
	punktOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				punktModel, punktErr = nil, fmt.Errorf("punkt model panicked: %v", r)
			}
		}()
		punktModel, punktErr = newPunkt()
	})
	return punktModel, punktErr
}

// Detect returns a tokenizer on the richest backend available.
func Detect() *Tokenizer { return New(Rich) }

// New returns a tokenizer on the requested backend. Rich silently degrades
// to Fallback when the linguistic model cannot be loaded.
func New(backend Backend) *Tokenizer {
	if backend == Rich {
		if model, err := loadPunkt(); err == nil && model != nil {
			return &Tokenizer{
				backend:  Rich,
				punkt:    model,
				treebank: tokenize.NewTreebankWordTokenizer(),
			}
		}
	}
	return &Tokenizer{backend: Fallback}
}

// Backend reports the active backend.
func (t *Tokenizer) Backend() Backend { return t.backend }

// Unavailable describes why Rich was not selected, or nil if it was.
func (t *Tokenizer) Unavailable() error {
	if t.backend == Rich {
		return nil
	}
	_, err := loadPunkt()
	if err == nil {
		return nil
	}
	return domain.Errorf(domain.KindResourceUnavailable, "sentence model: %v", err)
}

// Segment splits text into sentences. Sentences without tokens are dropped
// and the survivors keep their position in the document.
func (t *Tokenizer) Segment(text string) []domain.Sentence {
	var out []domain.Sentence
	idx := 0
	for _, raw := range t.rawSentences(text) {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		tokens := t.Tokenize(s)
		if len(tokens) > 0 {
			out = append(out, domain.Sentence{Index: idx, Text: s, Tokens: tokens})
		}
		idx++
	}
	return out
}

// Tokenize lower-cases text and returns its word tokens in order.
func (t *Tokenizer) Tokenize(text string) []string {
	var pieces []string
	if t.treebank != nil {
		pieces = t.treebank.Tokenize(text)
	} else {
		pieces = strings.Fields(text)
	}
	var out []string
	for _, p := range pieces {
		out = append(out, normalize(p)...)
	}
	return out
}

func (t *Tokenizer) rawSentences(text string) []string {
	if t.punkt == nil {
		return splitSentences(text)
	}
	found := t.punkt.Tokenize(text)
	out := make([]string, 0, len(found))
	for _, s := range found {
		out = append(out, s.Text)
	}
	return out
}
