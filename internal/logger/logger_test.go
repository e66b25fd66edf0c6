package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(Config{Level: tt.level, Output: &bytes.Buffer{}})
			assert.Equal(t, tt.expected, log.GetLevel())
		})
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Output: &buf})

	log.Info().Str("stage", "allocation").Msg("allocated")
	log.Debug().Msg("suppressed")

	out := buf.String()
	assert.Contains(t, out, `"stage":"allocation"`)
	assert.Contains(t, out, `"message":"allocated"`)
	assert.NotContains(t, out, "suppressed")
}
