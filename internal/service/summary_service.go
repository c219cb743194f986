package service

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"summify/internal/domain"
)

// StdinPath is the input name that reads the document from standard input.
const StdinPath = "-"

// Document is one input text with a stable short ID.
type Document struct {
	ID      string
	Path    string
	Content string
}

// DocumentSummary pairs a document with its summary or the reason it has none.
type DocumentSummary struct {
	Document Document
	Result   domain.Result
	Err      error
}

// Summarizer is the part of the engine the service needs.
type Summarizer interface {
	Summarize(text string, mode domain.Mode, count int) (domain.Result, error)
}

type SummaryService struct {
	engine Summarizer
	log    *zap.Logger
	stdin  io.Reader
}

func NewSummaryService(engine Summarizer, log *zap.Logger) *SummaryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SummaryService{engine: engine, log: log, stdin: os.Stdin}
}

// WithStdin replaces the reader used for the "-" input.
func (s *SummaryService) WithStdin(r io.Reader) *SummaryService {
	cp := *s
	cp.stdin = r
	return &cp
}

// LoadDocuments expands globs and reads every matching .txt file. "-" reads
// standard input once.
func (s *SummaryService) LoadDocuments(paths []string) ([]Document, error) {
	var documents []Document
	seen := make(map[string]bool)
	for _, p := range paths {
		if p == StdinPath {
			if seen[p] {
				continue
			}
			seen[p] = true
			data, err := io.ReadAll(s.stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			documents = append(documents, Document{ID: hashString(string(data)), Path: "<stdin>", Content: string(data)})
			continue
		}
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				s.log.Debug("skipping non-text input", zap.String("path", m))
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			documents = append(documents, Document{ID: hashString(m), Path: m, Content: string(data)})
		}
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no .txt documents found")
	}
	return documents, nil
}

// SummarizeEach summarizes every document on its own. A failing document
// records its error and does not stop the rest.
func (s *SummaryService) SummarizeEach(docs []Document, mode domain.Mode, count int) []DocumentSummary {
	out := make([]DocumentSummary, len(docs))
	for i, d := range docs {
		res, err := s.engine.Summarize(d.Content, mode, count)
		if err != nil {
			s.log.Warn("document not summarized", zap.String("id", d.ID), zap.String("path", d.Path), zap.Error(err))
		} else {
			s.log.Info("document summarized",
				zap.String("id", d.ID),
				zap.String("path", d.Path),
				zap.Int("sentences", res.Stats.SelectedSentenceCount),
				zap.Duration("elapsed", res.Stats.Elapsed),
			)
		}
		out[i] = DocumentSummary{Document: d, Result: res, Err: err}
	}
	return out
}

// SummarizeCombined treats all documents as one text.
func (s *SummaryService) SummarizeCombined(docs []Document, mode domain.Mode, count int) (domain.Result, error) {
	var all strings.Builder
	for i, d := range docs {
		if i > 0 {
			all.WriteString("\n")
		}
		all.WriteString(d.Content)
	}
	res, err := s.engine.Summarize(all.String(), mode, count)
	if err != nil {
		return domain.Result{}, fmt.Errorf("summarize %d documents: %w", len(docs), err)
	}
	return res, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
