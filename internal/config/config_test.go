package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"model": "rank_model.json",
		"applicants": "cohort.jsonl",
		"output": "ranked.jsonl",
		"concurrency": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "rank_model.json", cfg.Model)
	assert.Equal(t, "cohort.jsonl", cfg.Applicants)
	assert.Equal(t, "ranked.jsonl", cfg.Output)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Applicant:  "applicant.json",
		Applicants: "cohort.jsonl",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeConcurrency(t *testing.T) {
	cfg := &Config{
		Concurrency: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{
		Port: 70000,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingModelFile(t *testing.T) {
	cfg := &Config{
		Model: filepath.Join(t.TempDir(), "missing_model.json"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "model file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	model := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(model, []byte(`{"weights": [1]}`), 0644))

	cfg := &Config{
		Model:       model,
		Concurrency: 4,
		Port:        8080,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Model:       "default_model.json",
		Pool:        "default_pool.jsonl",
		Output:      "default_out.jsonl",
		Concurrency: 8,
		Port:        9090,
	}

	partial := Config{
		Model:  "custom_model.json",
		Output: "custom_out.jsonl",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom_model.json", merged.Model)
	assert.Equal(t, "custom_out.jsonl", merged.Output)

	// Default values should fill in empty fields
	assert.Equal(t, "default_pool.jsonl", merged.Pool)
	assert.Equal(t, 8, merged.Concurrency)
	assert.Equal(t, 9090, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Model: "model.json",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "model.json", merged.Model)
	assert.Equal(t, 4, merged.Concurrency, "concurrency falls back to the built-in default")
}
