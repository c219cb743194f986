package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"summify/internal/scoring"
	"summify/internal/summarizer"
)

// EngineConfig bounds the input and tunes the summarization pipeline.
type EngineConfig struct {
	MinInputLength   int             `yaml:"min_input_length"`
	MaxInputLength   int             `yaml:"max_input_length"`
	DefaultSentences int             `yaml:"default_sentences"`
	MaxSentences     int             `yaml:"max_sentences"`
	KeywordLimit     int             `yaml:"keyword_limit"`
	Weights          scoring.Weights `yaml:"hybrid_weights"`
}

// TokenizerConfig selects the segmentation backend and stopword source.
type TokenizerConfig struct {
	Backend       string `yaml:"backend"`
	StopwordsFile string `yaml:"stopwords_file,omitempty"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr             string   `yaml:"addr"`
	Environment      string   `yaml:"environment"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
	ReadTimeoutSecs  int      `yaml:"read_timeout_secs"`
	WriteTimeoutSecs int      `yaml:"write_timeout_secs"`
}

// LogConfig configures the structured logger and its rotating file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Engine    EngineConfig    `yaml:"engine"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

// LoadDefault tries ./summify.yaml first, then ~/.config/summify/config.yaml.
// If neither exists, it writes defaults to ~/.config/summify/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "summify.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects limits the engine cannot honour.
func (c *AppConfig) Validate() error {
	e := c.Engine
	switch {
	case e.MinInputLength < 0:
		return fmt.Errorf("engine.min_input_length must not be negative")
	case e.MaxInputLength <= 0:
		return fmt.Errorf("engine.max_input_length must be positive")
	case e.MinInputLength > e.MaxInputLength:
		return fmt.Errorf("engine.min_input_length %d exceeds max_input_length %d", e.MinInputLength, e.MaxInputLength)
	case e.DefaultSentences <= 0 || e.MaxSentences <= 0:
		return fmt.Errorf("engine sentence counts must be positive")
	case e.DefaultSentences > e.MaxSentences:
		return fmt.Errorf("engine.default_sentences %d exceeds max_sentences %d", e.DefaultSentences, e.MaxSentences)
	case e.KeywordLimit <= 0:
		return fmt.Errorf("engine.keyword_limit must be positive")
	}
	if err := e.Weights.Validate(); err != nil {
		return fmt.Errorf("engine.hybrid_weights: %w", err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Summarizer converts the engine section into the engine's own config.
func (c *AppConfig) Summarizer() summarizer.Config {
	return summarizer.Config{
		MinInputLength:       c.Engine.MinInputLength,
		MaxInputLength:       c.Engine.MaxInputLength,
		DefaultSentenceCount: c.Engine.DefaultSentences,
		MaxSentenceCount:     c.Engine.MaxSentences,
		KeywordLimit:         c.Engine.KeywordLimit,
		Weights:              c.Engine.Weights,
	}
}

// Production reports whether the server runs in production mode.
func (c *AppConfig) Production() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "summify", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	sc := summarizer.DefaultConfig()
	return &AppConfig{
		Engine: EngineConfig{
			MinInputLength:   sc.MinInputLength,
			MaxInputLength:   sc.MaxInputLength,
			DefaultSentences: sc.DefaultSentenceCount,
			MaxSentences:     sc.MaxSentenceCount,
			KeywordLimit:     sc.KeywordLimit,
			Weights:          sc.Weights,
		},
		Tokenizer: TokenizerConfig{Backend: "auto"},
		Server: ServerConfig{
			Addr:             ":5000",
			Environment:      "development",
			AllowedOrigins:   []string{"*"},
			ReadTimeoutSecs:  15,
			WriteTimeoutSecs: 15,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  15,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Engine.MaxInputLength == 0 {
		cfg.Engine.MaxInputLength = def.Engine.MaxInputLength
	}
	if cfg.Engine.DefaultSentences == 0 {
		cfg.Engine.DefaultSentences = def.Engine.DefaultSentences
	}
	if cfg.Engine.MaxSentences == 0 {
		cfg.Engine.MaxSentences = def.Engine.MaxSentences
	}
	if cfg.Engine.KeywordLimit == 0 {
		cfg.Engine.KeywordLimit = def.Engine.KeywordLimit
	}
	if cfg.Engine.Weights == (scoring.Weights{}) {
		cfg.Engine.Weights = def.Engine.Weights
	}
	if cfg.Tokenizer.Backend == "" {
		cfg.Tokenizer.Backend = def.Tokenizer.Backend
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Server.Environment == "" {
		cfg.Server.Environment = def.Server.Environment
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = def.Server.AllowedOrigins
	}
	if cfg.Server.ReadTimeoutSecs == 0 {
		cfg.Server.ReadTimeoutSecs = def.Server.ReadTimeoutSecs
	}
	if cfg.Server.WriteTimeoutSecs == 0 {
		cfg.Server.WriteTimeoutSecs = def.Server.WriteTimeoutSecs
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = def.Log.MaxBackups
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = def.Log.MaxAgeDays
	}
}

// applyEnv lets SUMMIFY_* variables override file values.
func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("SUMMIFY_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SUMMIFY_ENVIRONMENT"); v != "" {
		cfg.Server.Environment = v
	}
	if v := os.Getenv("SUMMIFY_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.Server.AllowedOrigins = origins
		}
	}
	if v := os.Getenv("SUMMIFY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SUMMIFY_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("SUMMIFY_TOKENIZER"); v != "" {
		cfg.Tokenizer.Backend = v
	}
	if v := os.Getenv("SUMMIFY_STOPWORDS_FILE"); v != "" {
		cfg.Tokenizer.StopwordsFile = v
	}
}
