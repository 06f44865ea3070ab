//go:build !integration

package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-pack-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   zerolog.Level
	}{
		{name: "2xx returns info", statusCode: 200, expected: zerolog.InfoLevel},
		{name: "3xx returns info", statusCode: 301, expected: zerolog.InfoLevel},
		{name: "4xx returns warn", statusCode: 400, expected: zerolog.WarnLevel},
		{name: "404 returns warn", statusCode: 404, expected: zerolog.WarnLevel},
		{name: "5xx returns error", statusCode: 500, expected: zerolog.ErrorLevel},
		{name: "503 returns error", statusCode: 503, expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.statusCode))
		})
	}
}

// captureRequestLogs serves one request and returns the "HTTP request" entries.
func captureRequestLogs(t *testing.T, path string, status int) []map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	logger.InitWithWriter("debug", false, &buf)
	defer logger.Init("info", false)

	router := gin.New()
	router.Use(RequestID(), RequestLogger("/healthz"))
	router.GET(path, func(c *gin.Context) {
		c.Status(status)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(RequestIDHeader, "req-log")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, status, w.Code)

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		if entry["message"] == "HTTP request" {
			entries = append(entries, entry)
		}
	}
	return entries
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		path          string
		statusCode    int
		expectedLevel string
	}{
		{name: "successful request logs info", path: "/optimize", statusCode: 200, expectedLevel: "info"},
		{name: "client error logs warn", path: "/optimize", statusCode: 400, expectedLevel: "warn"},
		{name: "server error logs error", path: "/optimize", statusCode: 500, expectedLevel: "error"},
		{name: "quiet path logs debug", path: "/healthz", statusCode: 200, expectedLevel: "debug"},
		{name: "failing quiet path keeps level", path: "/healthz", statusCode: 503, expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := captureRequestLogs(t, tt.path, tt.statusCode)
			require.Len(t, entries, 1)

			entry := entries[0]
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "req-log", entry["request_id"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, float64(tt.statusCode), entry["status_code"])
			assert.Contains(t, entry, "duration_ms")
		})
	}
}
