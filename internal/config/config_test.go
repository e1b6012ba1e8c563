package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"input": "dump.jsonl",
		"output": "corpus.jsonl",
		"min_length": 500,
		"workers": 4,
		"english_only": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dump.jsonl", cfg.Input)
	assert.Equal(t, "corpus.jsonl", cfg.Output)
	assert.Equal(t, 500, cfg.MinLength)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.EnglishOnly)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{not json`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "dump.jsonl")
	require.NoError(t, os.WriteFile(input, []byte("{}\n"), 0o644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"existing paths", Config{Input: input, TemplateDir: dir}, false},
		{"negative min_length", Config{MinLength: -1}, true},
		{"negative workers", Config{Workers: -1}, true},
		{"missing input", Config{Input: filepath.Join(dir, "nope.jsonl")}, true},
		{"missing template dir", Config{TemplateDir: filepath.Join(dir, "nope")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Input: "mine.jsonl", Workers: 8}
	defaults := Config{
		Input:       "default.jsonl",
		Output:      "out.jsonl",
		MinLength:   1000,
		Workers:     2,
		EnglishOnly: true,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "mine.jsonl", merged.Input, "set values win over defaults")
	assert.Equal(t, "out.jsonl", merged.Output)
	assert.Equal(t, 1000, merged.MinLength)
	assert.Equal(t, 8, merged.Workers)
	assert.True(t, merged.EnglishOnly)
}
