package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := With(New(&buf, log.WarnLevel), "store")
	l.Info("hidden")
	l.Warn("shown", "tab", "p1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "tab=p1")
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, closeFn, err := Open(path, "debug")
	require.NoError(t, err)
	l.Debug("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "hello"))
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	l, closeFn, err := Open("", "")
	require.NoError(t, err)
	l.Info("nowhere")
	assert.NoError(t, closeFn())
}

func TestOpen_BadLevel(t *testing.T) {
	_, _, err := Open("", "chatty")
	assert.Error(t, err)
}
