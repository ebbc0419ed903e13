package main

import (
	"bufio"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honorsoc/applicant-ranker/internal/roster"
)

func TestExtractCommand_MissingOutputFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	inputFile := filepath.Join("..", "..", "testdata", "valid", "applicant.json")

	cmd := exec.Command(binaryPath, "extract", "--applicant", inputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestExtractCommand_NoInputProvided(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "features.jsonl")

	cmd := exec.Command(binaryPath, "extract", "--out", outputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --applicant or --in")
}

func TestExtractCommand_MutuallyExclusiveInputs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "features.jsonl")
	applicantFile := filepath.Join("..", "..", "testdata", "valid", "applicant.json")
	batchFile := filepath.Join("..", "..", "testdata", "applicants.jsonl")

	cmd := exec.Command(binaryPath, "extract", "--applicant", applicantFile, "--in", batchFile, "--out", outputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestExtractCommand_InvalidInputFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "features.jsonl")

	cmd := exec.Command(binaryPath, "extract", "--applicant", "/nonexistent/file.json", "--out", outputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load")
}

func TestExtractCommand_SingleApplicant(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "features.jsonl")
	applicantFile := filepath.Join("..", "..", "testdata", "valid", "applicant.json")

	cmd := exec.Command(binaryPath, "extract", "--applicant", applicantFile, "--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	assert.Contains(t, string(output), "Extracted features for 1 applicant(s)")

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var export roster.FeatureExport
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, "app-0001", export.ID)
	assert.Equal(t, 2, export.FeatureVersion)
	assert.Len(t, export.Features, 21)
	for i, v := range export.Features {
		assert.GreaterOrEqual(t, v, 0.0, "feature %d", i)
		assert.LessOrEqual(t, v, 10.0, "feature %d", i)
	}
}

func TestExtractCommand_Batch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "features.jsonl")
	batchFile := filepath.Join("..", "..", "testdata", "applicants.jsonl")

	cmd := exec.Command(binaryPath, "extract", "--in", batchFile, "--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	assert.Contains(t, string(output), "Extracted features for 3 applicant(s)")

	f, err := os.Open(outputFile)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var export roster.FeatureExport
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &export))
		assert.Len(t, export.Features, 21)
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 3, lines)
}
