package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter_Level(t *testing.T) {
	tests := []struct {
		level      string
		debugShown bool
	}{
		{"debug", true},
		{"info", false},
		{"", false},
		{"not-a-level", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithWriter(&buf, tt.level)

			l.Debug().Msg("debug-line")
			l.Info().Msg("info-line")

			if got := strings.Contains(buf.String(), "debug-line"); got != tt.debugShown {
				t.Errorf("debug shown = %v, want %v", got, tt.debugShown)
			}
			if !strings.Contains(buf.String(), "info-line") {
				t.Error("Expected info line to be written")
			}
		})
	}
}
