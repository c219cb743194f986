package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summify/internal/domain"
	"summify/internal/export"
	"summify/internal/samples"
)

// SystemController serves health, status and sample routes.
type SystemController struct {
	deps Deps
}

// Health reports that the process is up.
func (s *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": s.deps.Clock.Now().UTC(),
	})
}

// Status describes the engine backends, algorithms and input limits.
func (s *SystemController) Status(c *gin.Context) {
	modes := make([]string, 0, len(domain.Modes()))
	for _, m := range domain.Modes() {
		modes = append(modes, m.String())
	}
	cfg := s.deps.Engine.Config()
	c.JSON(http.StatusOK, gin.H{
		"status":     "running",
		"version":    s.deps.Version,
		"tokenizer":  s.deps.Backend,
		"stopwords":  s.deps.Stopwords,
		"algorithms": modes,
		"formats":    []export.Format{export.FormatText, export.FormatMarkdown, export.FormatJSON},
		"limits": gin.H{
			"min_input_length": cfg.MinInputLength,
			"max_input_length": cfg.MaxInputLength,
			"max_sentences":    cfg.MaxSentenceCount,
		},
		"timestamp": s.deps.Clock.Now().UTC(),
	})
}

// Sample returns one of the demonstration texts, rotating by second.
func (s *SystemController) Sample(c *gin.Context) {
	c.JSON(http.StatusOK, samples.Pick(s.deps.Clock.Now()))
}
