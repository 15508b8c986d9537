package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "PORT", "WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE", "WORD_LENGTH", "MAX_ATTEMPTS", "DAILY_SALT", "COLOR"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, 6, cfg.MaxAttempts)
	assert.Equal(t, "auto", cfg.Color)
	assert.Empty(t, cfg.AnswersFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("MAX_ATTEMPTS", "8")
	t.Setenv("WORDS_ALLOWED_FILE", "/tmp/words.txt")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.WordLength)
	assert.Equal(t, 8, cfg.MaxAttempts)
	assert.Equal(t, "/tmp/words.txt", cfg.AllowedFile)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non-numeric length", "WORD_LENGTH", "five"},
		{"zero length", "WORD_LENGTH", "0"},
		{"negative attempts", "MAX_ATTEMPTS", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
