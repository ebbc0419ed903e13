package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honorsoc/applicant-ranker/internal/types"
)

func TestLoadRecord_ValidFile(t *testing.T) {
	rec, err := LoadRecord(filepath.Join("..", "..", "testdata", "valid", "applicant.json"))
	require.NoError(t, err)

	assert.Equal(t, "app-0001", rec.ID)
	require.NotNil(t, rec.Applicant.GPA)
	assert.InDelta(t, 3.92, *rec.Applicant.GPA, 1e-9)
	assert.Equal(t, "yes", rec.Applicant.CalcVal)
	assert.Len(t, rec.Applicant.Courses, 2)
	assert.Equal(t, "2026-spring", rec.Meta["cohort"])
}

func TestLoadRecord_MissingRequiredField(t *testing.T) {
	_, err := LoadRecord(filepath.Join("..", "..", "testdata", "invalid", "missing_field.json"))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "invalid applicant record")
}

func TestLoadRecord_WrongFieldType(t *testing.T) {
	_, err := LoadRecord(filepath.Join("..", "..", "testdata", "invalid", "wrong_type.json"))
	require.Error(t, err)

	_, ok := err.(*LoadError)
	assert.True(t, ok, "error should be LoadError type")
}

func TestLoadRecord_NonExistentFile(t *testing.T) {
	_, err := LoadRecord("testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadRecords_BatchFile(t *testing.T) {
	records, err := LoadRecords(filepath.Join("..", "..", "testdata", "applicants.jsonl"))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "app-0001", records[0].ID)
	assert.Empty(t, records[1].ID, "second record carries no ID")
	assert.Equal(t, "Ben R.", records[1].Meta["name"])
	assert.Equal(t, "no", records[2].Applicant.CalcVal)
}

func TestLoadRecords_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.jsonl")
	content := `{"applicant": {"gpa": 3.5, "calcVal": "yes"}}

{"applicant": {"gpa": 3.0, "calcVal": "no"}}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	records, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadRecords_InvalidLineNamesLineNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.jsonl")
	content := `{"applicant": {"gpa": 3.5, "calcVal": "yes"}}
{"applicant": {"calcVal": "yes"}}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadRecords(path)
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "line 2")
}

func TestLoadRecords_MalformedJSONLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{ not json }\n"), 0644))

	_, err := LoadRecords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoadRecords_NonExistentFile(t *testing.T) {
	_, err := LoadRecords("testdata/nonexistent.jsonl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestWriteRanked_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranked.jsonl")
	ranked := []types.RankedApplicant{
		{ID: "a", Rank: 1, RawScore: 12.5, Score: 10.0, Meta: map[string]string{"name": "Ada"}},
		{ID: "b", Rank: 2, RawScore: 7.25, Score: 5.0},
		{ID: "c", Rank: 3, RawScore: -0.5, Score: 0.0},
	}

	require.NoError(t, WriteRanked(path, ranked))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"id":"a"`)
	assert.Contains(t, lines[0], `"rank":1`)

	pool, err := LoadPool(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5, 7.25, -0.5}, pool)
}

func TestLoadPool_RejectsFilesWithoutRawScores(t *testing.T) {
	// A raw applicants file is not a pool; loading it as one must fail
	// instead of yielding a pool of zeros.
	_, err := LoadPool(filepath.Join("..", "..", "testdata", "applicants.jsonl"))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "raw_score")
}

func TestLoadPool_NonExistentFile(t *testing.T) {
	_, err := LoadPool("testdata/nonexistent.jsonl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestWriteFeatureExports_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.jsonl")
	exports := []FeatureExport{
		{
			ID:             "app-0001",
			FeatureVersion: 2,
			Features:       []float64{10, 10, 7.606911},
			Meta:           map[string]string{"name": "Ada"},
		},
		{
			ID:             "app-0002",
			FeatureVersion: 2,
			Features:       []float64{0, 0, 0},
		},
	}

	require.NoError(t, WriteFeatureExports(path, exports))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"feature_version":2`)
	assert.Contains(t, lines[0], `"features":[10,10,7.606911]`)
	assert.Contains(t, lines[1], `"id":"app-0002"`)
}
