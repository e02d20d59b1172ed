// internal/logging/logger_test.go
package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerConfig_Validate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		config := &LoggerConfig{
			Level:  LevelInfo,
			Format: FormatJSON,
		}
		err := config.Validate()
		assert.NoError(t, err)
	})

	t.Run("rejects invalid level", func(t *testing.T) {
		config := &LoggerConfig{Level: "invalid"}
		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "level")
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		config := &LoggerConfig{Format: "logfmt"}
		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "format")
	})

	t.Run("applies defaults", func(t *testing.T) {
		config := &LoggerConfig{}
		config.ApplyDefaults()
		assert.Equal(t, LevelInfo, config.Level)
		assert.Equal(t, FormatJSON, config.Format)
		assert.NotNil(t, config.Output)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("creates logger", func(t *testing.T) {
		logger, err := NewLogger(nil)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("rejects bad config", func(t *testing.T) {
		_, err := NewLogger(&LoggerConfig{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("writes json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf})
		require.NoError(t, err)

		logger.Debug("storage grown")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "debug", entry["level"])
		assert.Equal(t, "storage grown", entry["msg"])
	})

	t.Run("filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&LoggerConfig{Level: LevelWarn, Output: &buf})
		require.NoError(t, err)

		logger.Info("quiet")

		assert.Empty(t, buf.String())
	})

	t.Run("writes console", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&LoggerConfig{Format: FormatConsole, Output: &buf})
		require.NoError(t, err)

		logger.Info("hello")

		assert.Contains(t, buf.String(), "INFO")
		assert.Contains(t, buf.String(), "hello")
	})
}
