package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerBackends(t *testing.T) {
	for _, backend := range []string{"zap", "zerolog"} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(&LoggerConfig{
				AppName:  "sovereign-test",
				Encoding: "json",
				Level:    "info",
				Logger:   backend,
				Output:   &buf,
			})
			require.NoError(t, err)

			logger.Debug(General, Startup, "hidden", nil)
			logger.Info(Sqlite, Insert, "row appended", map[ExtraKey]any{Intent: "learn about volcanoes"})
			require.NoError(t, logger.Sync())

			entries := decodeLines(t, &buf)
			require.Len(t, entries, 1)
			assert.Equal(t, "sovereign-test", entries[0][string(AppName)])
			assert.Equal(t, "Sqlite", entries[0]["Category"])
			assert.Equal(t, "Insert", entries[0]["SubCategory"])
			assert.Equal(t, "learn about volcanoes", entries[0][string(Intent)])
		})
	}
}

func TestNewLoggerRejectsUnknownBackend(t *testing.T) {
	_, err := NewLogger(&LoggerConfig{Logger: "logrus"})
	assert.Error(t, err)
}
