// Package api exposes the summarization engine over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"summify/internal/export"
	"summify/internal/summarizer"
)

// Deps carries everything the HTTP layer needs.
type Deps struct {
	Engine         *summarizer.Engine
	Backend        string
	Stopwords      string
	Version        string
	AllowedOrigins []string
	Logger         *zap.Logger
	Clock          summarizer.Clock
}

// NewRouter configures all application routes.
func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = summarizer.SystemClock{}
	}

	router := gin.New()
	router.Use(RequestID())
	router.Use(AccessLog(d.Logger))
	router.Use(Recovery(d.Logger))
	router.Use(CORS(d.AllowedOrigins))

	sys := &SystemController{deps: d}
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/health", sys.Health)

	sum := &SummaryController{
		engine:   d.Engine,
		renderer: export.Renderer{Version: d.Version},
		log:      d.Logger,
		clock:    d.Clock,
	}
	api := router.Group("/api")
	{
		api.GET("/status", sys.Status)
		api.GET("/sample", sys.Sample)
		api.POST("/summarize", sum.Summarize)
		api.POST("/keywords", sum.Keywords)
		api.POST("/export", sum.Export)
	}

	setup404Handler(router)
	return router
}

func setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Not Found",
			"message":    "The requested resource was not found",
			"path":       c.Request.URL.Path,
			"request_id": requestIDFrom(c),
		})
	})
}
