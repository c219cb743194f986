package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"summify/internal/domain"
	"summify/internal/export"
	"summify/internal/summarizer"
)

// SummaryController serves the summarize, keywords and export routes.
type SummaryController struct {
	engine   *summarizer.Engine
	renderer export.Renderer
	log      *zap.Logger
	clock    summarizer.Clock
}

type summarizeRequest struct {
	Text         string `json:"text" form:"text"`
	Algorithm    string `json:"algorithm" form:"algorithm"`
	MaxSentences int    `json:"max_sentences" form:"max_sentences"`
}

type sentenceView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type statsView struct {
	OriginalSentences int     `json:"original_sentences"`
	SelectedSentences int     `json:"selected_sentences"`
	SentenceRatio     float64 `json:"sentence_ratio"`
	OriginalLength    int     `json:"original_length"`
	SummaryLength     int     `json:"summary_length"`
	OriginalChars     int     `json:"original_chars"`
	SummaryChars      int     `json:"summary_chars"`
	CompressionRatio  int     `json:"compression_ratio"`
	ScoringTimeMs     int64   `json:"scoring_time_ms"`
	ProcessingTimeMs  int64   `json:"processing_time_ms"`
}

type summarizeResponse struct {
	Summary          string           `json:"summary"`
	Sentences        []sentenceView   `json:"sentences"`
	Keywords         []domain.Keyword `json:"keywords"`
	Stats            statsView        `json:"stats"`
	AlgorithmUsed    string           `json:"algorithm_used"`
	ProcessingTimeMs int64            `json:"processing_time_ms"`
	RequestID        string           `json:"request_id"`
}

// Summarize accepts a JSON or form body.
func (s *SummaryController) Summarize(c *gin.Context) {
	start := s.clock.Now()

	var req summarizeRequest
	if err := c.ShouldBind(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	mode := domain.ModeFrequency
	if strings.TrimSpace(req.Algorithm) != "" {
		m, err := domain.ParseMode(req.Algorithm)
		if err != nil {
			s.fail(c, err)
			return
		}
		mode = m
	}

	res, err := s.engine.Summarize(req.Text, mode, req.MaxSentences)
	if err != nil {
		s.fail(c, err)
		return
	}

	views := make([]sentenceView, len(res.Sentences))
	for i, sent := range res.Sentences {
		views[i] = sentenceView{Index: sent.Index, Text: sent.Text}
	}
	keywords := res.Keywords
	if keywords == nil {
		keywords = []domain.Keyword{}
	}
	st := res.Stats
	elapsedMs := s.clock.Now().Sub(start).Milliseconds()
	resp := summarizeResponse{
		Summary:   res.Summary,
		Sentences: views,
		Keywords:  keywords,
		Stats: statsView{
			OriginalSentences: st.OriginalSentenceCount,
			SelectedSentences: st.SelectedSentenceCount,
			SentenceRatio:     st.CompressionRatio,
			OriginalLength:    st.InputWords,
			SummaryLength:     st.SummaryWords,
			OriginalChars:     st.InputChars,
			SummaryChars:      st.SummaryChars,
			CompressionRatio:  st.WordReductionPct,
			ScoringTimeMs:     st.Elapsed.Milliseconds(),
			ProcessingTimeMs:  elapsedMs,
		},
		AlgorithmUsed:    res.Mode.String(),
		ProcessingTimeMs: elapsedMs,
		RequestID:        requestIDFrom(c),
	}

	s.log.Info("text summarized",
		zap.String("request_id", resp.RequestID),
		zap.String("algorithm", resp.AlgorithmUsed),
		zap.Int("input_chars", st.InputChars),
		zap.Int("sentences", st.SelectedSentenceCount),
	)
	c.JSON(http.StatusOK, resp)
}

type keywordsRequest struct {
	Text  string `json:"text" form:"text"`
	Limit int    `json:"limit" form:"limit"`
}

// Keywords returns the heaviest content terms of the posted text.
func (s *SummaryController) Keywords(c *gin.Context) {
	var req keywordsRequest
	if err := c.ShouldBind(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	kw, err := s.engine.ExtractKeywords(req.Text, req.Limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"keywords":   kw,
		"count":      len(kw),
		"request_id": requestIDFrom(c),
	})
}

type exportRequest struct {
	Summary          string       `json:"summary"`
	Keywords         keywordList  `json:"keywords"`
	Stats            export.Stats `json:"stats"`
	ProcessingTimeMs *int         `json:"processing_time_ms"`
	Format           string       `json:"format"`
}

// keywordList accepts plain terms or the {word, weight} objects returned
// by the summarize route.
type keywordList []string

func (k *keywordList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*k = nil
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	out := make(keywordList, 0, len(items))
	for _, item := range items {
		var term string
		if err := json.Unmarshal(item, &term); err == nil {
			out = append(out, term)
			continue
		}
		var kw domain.Keyword
		if err := json.Unmarshal(item, &kw); err != nil {
			return errors.New("keywords must be strings or {word, weight} objects")
		}
		out = append(out, kw.Term)
	}
	*k = out
	return nil
}

// Export renders a summary report as txt, md or json.
func (s *SummaryController) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	stats := req.Stats
	if stats.ProcessingTimeMs == nil {
		stats.ProcessingTimeMs = req.ProcessingTimeMs
	}
	doc, err := s.renderer.Render(format, export.Report{
		Summary:  req.Summary,
		Keywords: req.Keywords,
		Stats:    stats,
	}, s.clock.Now())
	if err != nil {
		s.log.Error("export failed", zap.Error(err), zap.String("request_id", requestIDFrom(c)))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "internal_error",
			"message":    "Export failed: " + err.Error(),
			"request_id": requestIDFrom(c),
		})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *SummaryController) badRequest(c *gin.Context, err error) {
	s.log.Warn("invalid payload", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusBadRequest, gin.H{
		"error":      "bad_request",
		"message":    err.Error(),
		"request_id": requestIDFrom(c),
	})
}

// fail maps engine errors to HTTP responses.
func (s *SummaryController) fail(c *gin.Context, err error) {
	status := statusFor(err)
	code := "internal_error"
	message := err.Error()
	var de *domain.Error
	if errors.As(err, &de) {
		code = string(de.Kind)
		message = de.Reason
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("summarization failed", zap.Error(err), zap.String("request_id", requestIDFrom(c)))
	}
	c.JSON(status, gin.H{
		"error":      code,
		"message":    message,
		"request_id": requestIDFrom(c),
	})
}

func statusFor(err error) int {
	kind, ok := domain.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case domain.KindInputTooShort, domain.KindInputTooLong, domain.KindInvalidMode, domain.KindInvalidSentenceCount:
		return http.StatusBadRequest
	case domain.KindEmptyDocument:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
