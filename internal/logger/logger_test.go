package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"summify/internal/config"
)

type record struct {
	Level     string `json:"level"`
	Msg       string `json:"msg"`
	Timestamp string `json:"timestamp"`
	Caller    string `json:"caller"`
	Mode      string `json:"mode"`
}

func lastRecord(t *testing.T, data []byte) record {
	t.Helper()
	var last string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		last = sc.Text()
	}
	var rec record
	require.NoError(t, json.Unmarshal([]byte(last), &rec), last)
	return rec
}

func TestConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	log, cleanup, err := New(config.LogConfig{Level: "info"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("summarized", zap.String("mode", "hybrid"))
	cleanup()

	rec := lastRecord(t, buf.Bytes())
	assert.Equal(t, "INFO", rec.Level)
	assert.Equal(t, "summarized", rec.Msg)
	assert.Equal(t, "hybrid", rec.Mode)
	assert.NotEmpty(t, rec.Timestamp)
	assert.NotEmpty(t, rec.Caller)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "summify.log")
	log, cleanup, err := New(config.LogConfig{Level: "debug", File: path, MaxSizeMB: 1}, nil)
	require.NoError(t, err)

	log.Debug("written to file")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rec := lastRecord(t, data)
	assert.Equal(t, "DEBUG", rec.Level)
	assert.Equal(t, "written to file", rec.Msg)
}

func TestBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
