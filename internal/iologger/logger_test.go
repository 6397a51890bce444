package iologger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/pkg/config"
	"github.com/gnames/webnlg/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(&buf, config.LogConfig{Format: "json", Level: "warn"})
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))

	slog.New(h).Warn("Dataset loaded", "entries", 3)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "Dataset loaded", rec["msg"])
	assert.Equal(t, float64(3), rec["entries"])

	buf.Reset()
	h = newHandler(&buf, config.LogConfig{Format: "text", Level: "debug"})
	slog.New(h).Debug("Corpus file loaded", "path", "a.xml")
	assert.Contains(t, buf.String(), "msg=\"Corpus file loaded\"")
	assert.Contains(t, buf.String(), "path=a.xml")
}

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	logDir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	logPath := filepath.Join(logDir, LogFile)

	require.NoError(t, Init(logDir, cfg, false))
	slog.Info("first")
	require.NoError(t, Init(logDir, cfg, true))
	slog.Info("second")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")

	// fresh file without append
	require.NoError(t, Init(logDir, cfg, false))
	data, err = os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestInitFileError(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	logDir := filepath.Join(t.TempDir(), "no", "such", "dir")

	tests := []struct {
		name   string
		append bool
		code   gn.ErrorCode
		msg    string
	}{
		{"fresh file", false, errcode.CreateLogFileError, "Cannot create"},
		{"append", true, errcode.OpenLogFileError, "Cannot append"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(logDir, cfg, tt.append)
			require.Error(t, err)

			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, tt.msg)
			assert.Equal(t, []any{filepath.Join(logDir, LogFile)}, gnErr.Vars)
		})
	}
}
