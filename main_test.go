package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bombfork/open-secret-santa/cliparse"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		terminal bool
		wantJSON bool
	}{
		{"auto on terminal", cliparse.LogFormatAuto, true, false},
		{"auto when piped", cliparse.LogFormatAuto, false, true},
		{"forced text when piped", cliparse.LogFormatText, false, false},
		{"forced json on terminal", cliparse.LogFormatJSON, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newLogger(&buf, tt.format, tt.terminal).Info("santa created", "participants", 4)

			out := buf.String()
			isJSON := strings.HasPrefix(out, "{")
			if isJSON != tt.wantJSON {
				t.Errorf("Expected JSON=%v, got output %q", tt.wantJSON, out)
			}
			if !strings.Contains(out, "participants") {
				t.Errorf("Expected attribute in output, got %q", out)
			}
		})
	}
}
