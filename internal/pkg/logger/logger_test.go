package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"catalog/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithWriter_JSON(t *testing.T) {
	// Given
	var buf bytes.Buffer
	log, err := logger.NewWithWriter("info", logger.FormatJSON, &buf)
	require.NoError(t, err)

	// When
	log.Debug("hidden")
	log.Info("category created", zap.String("category_id", "9366b7dc-2d71-4799-b91c-c64adb205104"))

	// Then
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "category created", entry["msg"])
	assert.Equal(t, "9366b7dc-2d71-4799-b91c-c64adb205104", entry["category_id"])
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter("debug", logger.FormatConsole, &buf)
	require.NoError(t, err)

	log.Debug("visible")

	assert.Contains(t, buf.String(), "visible")
}

func TestNewWithWriter_Invalid(t *testing.T) {
	_, err := logger.NewWithWriter("verbose", logger.FormatJSON, &bytes.Buffer{})
	require.Error(t, err)

	_, err = logger.NewWithWriter("info", "xml", &bytes.Buffer{})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSync_Nil(t *testing.T) {
	assert.NoError(t, logger.Sync(nil))
}
