package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summify/internal/scoring"
	"summify/internal/summarizer"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, summarizer.DefaultConfig(), cfg.Summarizer())
	assert.False(t, cfg.Production())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summify.yaml")
	data := "engine:\n  max_sentences: 5\n  hybrid_weights:\n    frequency: 0.5\n    position: 0.5\nserver:\n  environment: production\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Engine.MaxSentences)
	assert.Equal(t, 3, cfg.Engine.DefaultSentences)
	assert.Equal(t, 10, cfg.Engine.MinInputLength)
	assert.Equal(t, scoring.Weights{Frequency: 0.5, Position: 0.5}, cfg.Engine.Weights)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.True(t, cfg.Production())
	assert.NoError(t, cfg.Validate())
}

func TestLoadKeepsExplicitZeroMinLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  min_input_length: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Engine.MinInputLength)
	assert.Equal(t, 0, cfg.Summarizer().MinInputLength)
	assert.Equal(t, Default().Engine.MaxInputLength, cfg.Engine.MaxInputLength)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: [1, 2"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SUMMIFY_ADDR", ":9999")
	t.Setenv("SUMMIFY_LOG_LEVEL", "debug")
	t.Setenv("SUMMIFY_LOG_FILE", "/tmp/summify.log")
	t.Setenv("SUMMIFY_ENVIRONMENT", "production")
	t.Setenv("SUMMIFY_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("SUMMIFY_TOKENIZER", "fallback")
	t.Setenv("SUMMIFY_STOPWORDS_FILE", "/tmp/stop.txt")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/summify.log", cfg.Log.File)
	assert.True(t, cfg.Production())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "fallback", cfg.Tokenizer.Backend)
	assert.Equal(t, "/tmp/stop.txt", cfg.Tokenizer.StopwordsFile)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Engine.KeywordLimit = 7
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Engine.KeywordLimit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{name: "min above max", mutate: func(c *AppConfig) { c.Engine.MinInputLength = 200000 }},
		{name: "negative min", mutate: func(c *AppConfig) { c.Engine.MinInputLength = -1 }},
		{name: "zero max", mutate: func(c *AppConfig) { c.Engine.MaxInputLength = 0 }},
		{name: "default above max", mutate: func(c *AppConfig) { c.Engine.DefaultSentences = 11 }},
		{name: "zero keywords", mutate: func(c *AppConfig) { c.Engine.KeywordLimit = 0 }},
		{name: "weights off", mutate: func(c *AppConfig) { c.Engine.Weights = scoring.Weights{Frequency: 0.6, Position: 0.6} }},
		{name: "no addr", mutate: func(c *AppConfig) { c.Server.Addr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
