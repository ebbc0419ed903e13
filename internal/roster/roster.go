// Package roster provides functionality to read and write applicant record files.
//
// Batch files are JSONL: one applicant record per line. Every record is
// validated against the embedded applicant schema before it is decoded, so a
// malformed line fails loudly with its line number instead of surfacing later
// as a half-empty feature vector.
package roster

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/honorsoc/applicant-ranker/internal/schemas"
	"github.com/honorsoc/applicant-ranker/internal/types"
	schemadocs "github.com/honorsoc/applicant-ranker/schemas"
)

// maxLineBytes bounds a single JSONL line. Essay fields make records long;
// 1 MiB is far above anything a real submission produces.
const maxLineBytes = 1 << 20

// LoadRecord reads a single applicant record from a JSON file.
func LoadRecord(path string) (*types.ApplicantRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{
				Message: fmt.Sprintf("applicant file not found: %s", path),
				Cause:   err,
			}
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read applicant file %s", path),
			Cause:   err,
		}
	}

	rec, err := decodeRecord(schemadocs.Applicant(), bytes.TrimSpace(content))
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("invalid applicant record in %s", path),
			Cause:   err,
		}
	}

	return rec, nil
}

// LoadRecords reads a batch of applicant records from a JSONL file. Blank
// lines are skipped; any invalid line aborts the load naming its line number.
func LoadRecords(path string) ([]types.ApplicantRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{
				Message: fmt.Sprintf("applicants file not found: %s", path),
				Cause:   err,
			}
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to open applicants file %s", path),
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	schema := schemadocs.Applicant()
	records := make([]types.ApplicantRecord, 0)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, err := decodeRecord(schema, line)
		if err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("invalid record on line %d of %s", lineNo, path),
				Cause:   err,
			}
		}
		records = append(records, *rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read applicants file %s", path),
			Cause:   err,
		}
	}

	return records, nil
}

// decodeRecord validates one JSON document against the applicant schema and
// decodes it into a typed record.
func decodeRecord(schema []byte, data []byte) (*types.ApplicantRecord, error) {
	if err := schemas.ValidateJSONBytes(schema, data); err != nil {
		return nil, err
	}

	var rec types.ApplicantRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("record failed validation: %w", err)
	}

	return &rec, nil
}

// LoadPool reads the raw scores out of a ranked JSONL file (the output of a
// previous batch ranking) for use as a percentile pool.
func LoadPool(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{
				Message: fmt.Sprintf("pool file not found: %s", path),
				Cause:   err,
			}
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to open pool file %s", path),
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	pool := make([]float64, 0)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		// raw_score must be present: a pool built from the wrong file kind
		// (raw applicant records, say) would otherwise collapse to zeros.
		var entry struct {
			RawScore *float64 `json:"raw_score"`
		}
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("invalid pool entry on line %d of %s", lineNo, path),
				Cause:   err,
			}
		}
		if entry.RawScore == nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("pool entry on line %d of %s has no raw_score", lineNo, path),
			}
		}
		pool = append(pool, *entry.RawScore)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read pool file %s", path),
			Cause:   err,
		}
	}

	return pool, nil
}

// WriteRanked writes ranked applicants to a JSONL file, one per line in rank
// order.
func WriteRanked(path string, ranked []types.RankedApplicant) error {
	var buf bytes.Buffer
	for _, r := range ranked {
		line, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal ranked applicant %s: %w", r.ID, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write ranked file %s: %w", path, err)
	}
	return nil
}

// FeatureExport is one extracted feature vector in the shape the offline
// trainer consumes: the vector inline next to its ID and carried metadata.
type FeatureExport struct {
	ID             string            `json:"id"`
	FeatureVersion int               `json:"feature_version"`
	Features       []float64         `json:"features"`
	Meta           map[string]string `json:"meta,omitempty"`
}

// WriteFeatureExports writes feature exports to a JSONL file, one per line.
func WriteFeatureExports(path string, exports []FeatureExport) error {
	var buf bytes.Buffer
	for _, e := range exports {
		line, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal feature export %s: %w", e.ID, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write features file %s: %w", path, err)
	}
	return nil
}
