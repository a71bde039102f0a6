package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicser16/rtvsm/internal/organize"
)

func TestConflictFuncFixedModes(t *testing.T) {
	tests := []struct {
		mode string
		want organize.Decision
	}{
		{"skip", organize.Skip},
		{"skip-all", organize.SkipAll},
		{"overwrite", organize.Overwrite},
		{"overwrite-all", organize.OverwriteAll},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			fn, err := conflictFunc(tt.mode, strings.NewReader(""), io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fn("/a", "/b"))
		})
	}
}

func TestConflictFuncUnknownMode(t *testing.T) {
	_, err := conflictFunc("explode", strings.NewReader(""), io.Discard)
	assert.Error(t, err)
}

func TestConflictFuncAsk(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  organize.Decision
	}{
		{"overwrite", "o\n", organize.Overwrite},
		{"skip", "s\n", organize.Skip},
		{"overwrite all", "a\n", organize.OverwriteAll},
		{"skip all", "k\n", organize.SkipAll},
		{"anything else skips", "what\n", organize.Skip},
		{"closed input skips", "", organize.Skip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := conflictFunc("ask", strings.NewReader(tt.input), io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fn("/dl/a.mkv", "/lib/a.mkv"))
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "YES\n", true},
		{"no", "n\n", false},
		{"default declines", "\n", false},
		{"closed input declines", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := confirm(strings.NewReader(tt.input), io.Discard, "Proceed?")
			assert.Equal(t, tt.want, got)
		})
	}
}
