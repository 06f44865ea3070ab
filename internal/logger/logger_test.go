//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		pretty   bool
		expected zerolog.Level
	}{
		{name: "debug level", level: "debug", expected: zerolog.DebugLevel},
		{name: "info level", level: "info", expected: zerolog.InfoLevel},
		{name: "warn level", level: "warn", expected: zerolog.WarnLevel},
		{name: "error level", level: "error", expected: zerolog.ErrorLevel},
		{name: "empty level defaults to info", level: "", expected: zerolog.InfoLevel},
		{name: "invalid level defaults to info", level: "verbose", expected: zerolog.InfoLevel},
		{name: "pretty output", level: "info", pretty: true, expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func captureJSON(t *testing.T, write func()) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	InitWithWriter("debug", false, &buf)
	defer Init("info", false)

	write()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithContext(t *testing.T) {
	entry := captureJSON(t, func() {
		l := WithContext(map[string]interface{}{"container": "40HC", "items": 12})
		l.Info().Msg("hello")
	})

	assert.Equal(t, "40HC", entry["container"])
	assert.Equal(t, float64(12), entry["items"])
	assert.Equal(t, "cargo-pack-service", entry["service"])
	assert.Equal(t, "hello", entry["message"])
}

func TestForRun(t *testing.T) {
	t.Run("with request id", func(t *testing.T) {
		entry := captureJSON(t, func() {
			l := ForRun("req-1", "genetic")
			l.Info().Msg("done")
		})

		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "genetic", entry["algorithm"])
	})

	t.Run("without request id", func(t *testing.T) {
		entry := captureJSON(t, func() {
			l := ForRun("", "ffd")
			l.Info().Msg("done")
		})

		assert.NotContains(t, entry, "request_id")
		assert.Equal(t, "ffd", entry["algorithm"])
	})
}
