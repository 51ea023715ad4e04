package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerDebugf(t *testing.T) {
	t.Run("enabled logger writes the line", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &Logger{Enabled: true, W: &buf}

		logger.Debugf("parsed %d files", 3)

		if !strings.Contains(buf.String(), "parsed 3 files") {
			t.Errorf("output = %q, expected the formatted line", buf.String())
		}
	})

	t.Run("disabled logger is silent", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &Logger{Enabled: false, W: &buf}

		logger.Debugf("parsed %d files", 3)

		if buf.Len() != 0 {
			t.Errorf("output = %q, expected nothing", buf.String())
		}
	})

	t.Run("nil logger is safe", func(t *testing.T) {
		var logger *Logger
		logger.Debugf("parsed %d files", 3)
	})
}
