package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "giftcsv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Input.Encoding)
	assert.False(t, cfg.Convert.ExtendedLetters)
	assert.Empty(t, cfg.Output.Format)
	assert.False(t, cfg.Output.Header)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Equal(t, "quiz_questions", cfg.Postgres.Table)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input:
  encoding: windows-1252
convert:
  extended_letters: true
output:
  format: tsv
  header: true
log:
  level: debug
  format: json
postgres:
  dsn: postgres://localhost/quiz
  table: quiz.questions
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "windows-1252", cfg.Input.Encoding)
	assert.True(t, cfg.Convert.ExtendedLetters)
	assert.Equal(t, "tsv", cfg.Output.Format)
	assert.True(t, cfg.Output.Header)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "postgres://localhost/quiz", cfg.Postgres.DSN)
	assert.Equal(t, "quiz.questions", cfg.Postgres.Table)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("GIFTCSV_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GIFTCSV_OUTPUT_FORMAT", "jsonl")
	t.Setenv("GIFTCSV_EXTENDED_LETTERS", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "jsonl", cfg.Output.Format)
	assert.True(t, cfg.Convert.ExtendedLetters)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown encoding", "input:\n  encoding: klingon-8\n"},
		{"unknown output format", "output:\n  format: xlsx\n"},
		{"gift output", "output:\n  format: gift\n"},
		{"long delimiter", "output:\n  delimiter: ';;'\n"},
		{"quote delimiter", "output:\n  delimiter: '\"'\n"},
		{"unknown log level", "log:\n  level: loud\n"},
		{"unknown log format", "log:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestOutputConfig_DelimiterRune(t *testing.T) {
	tests := []struct {
		delimiter string
		want      rune
	}{
		{"", 0},
		{";", ';'},
		{"tab", '\t'},
		{`\t`, '\t'},
		{"|", '|'},
	}

	for _, tt := range tests {
		got, err := OutputConfig{Delimiter: tt.delimiter}.DelimiterRune()
		require.NoError(t, err, tt.delimiter)
		assert.Equal(t, tt.want, got, tt.delimiter)
	}
}
