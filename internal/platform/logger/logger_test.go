package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" INFO ":  Info,
		"warning": Warn,
		"warn":    Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestText_LevelFilterAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatText, App: "perros-api", Output: &buf})

	log.Info("ignored", map[string]any{"a": 1})
	log.Warn("careful", map[string]any{"b": 2, "": "dropped"})

	out := buf.String()
	assert.NotContains(t, out, "ignored")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=careful")
	assert.Contains(t, out, "app=perros-api")
	assert.Contains(t, out, "b=2")
	assert.NotContains(t, out, "dropped")
}

func TestJSON_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})

	child := log.With(map[string]any{"request_id": "abc"})
	child.Debug("hola", map[string]any{"k": "v"})

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))

	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "hola", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "v", entry["k"])
}

func TestWith_EmptyReturnsSame(t *testing.T) {
	log := Discard()
	assert.Same(t, log, log.With(nil))
}
