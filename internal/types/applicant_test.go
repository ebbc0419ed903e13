package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestApplicantInput_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   ApplicantInput
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid full input",
			input: ApplicantInput{
				GPA:               floatPtr(3.8),
				CalcVal:           "yes",
				Courses:           []string{"MATH UN3007", "STAT GU4001"},
				ResumeText:        "Tutored students in algebra.",
				PersonalEssayText: "An essay.",
				PlanEssayText:     "A plan.",
			},
			wantErr: false,
		},
		{
			name: "valid minimal input",
			input: ApplicantInput{
				GPA:     floatPtr(3.1),
				CalcVal: "no",
			},
			wantErr: false,
		},
		{
			name: "missing gpa",
			input: ApplicantInput{
				CalcVal: "yes",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "zero gpa is present, not missing",
			input: ApplicantInput{
				GPA:     floatPtr(0),
				CalcVal: "no",
			},
			wantErr: false,
		},
		{
			name: "missing calc answer",
			input: ApplicantInput{
				GPA: floatPtr(3.5),
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "too many courses",
			input: ApplicantInput{
				GPA:     floatPtr(3.5),
				CalcVal: "yes",
				Courses: []string{"a", "b", "c", "d", "e", "f", "g"},
			},
			wantErr: true,
			errMsg:  "max",
		},
		{
			name: "empty course code",
			input: ApplicantInput{
				GPA:     floatPtr(3.5),
				CalcVal: "yes",
				Courses: []string{"MATH UN1101", ""},
			},
			wantErr: true,
			errMsg:  "min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestApplicantRecord_Validate(t *testing.T) {
	record := ApplicantRecord{
		ID: "app_001",
		Applicant: ApplicantInput{
			GPA:     floatPtr(3.9),
			CalcVal: "yes",
		},
		Meta: map[string]string{"fullName": "Jordan Lee"},
	}
	require.NoError(t, record.Validate())

	record.Applicant.GPA = nil
	require.Error(t, record.Validate())
}

func TestApplicantRecord_Serialization(t *testing.T) {
	record := ApplicantRecord{
		ID: "app_002",
		Applicant: ApplicantInput{
			GPA:     floatPtr(4.0),
			CalcVal: "yes",
			Courses: []string{"MATH UN3007"},
		},
		Meta: map[string]string{"uni": "jl1234"},
	}

	jsonBytes, err := json.Marshal(record)
	require.NoError(t, err)
	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, `"calcVal":"yes"`)
	assert.Contains(t, jsonStr, `"gpa":4`)
	assert.Contains(t, jsonStr, `"uni":"jl1234"`)

	var decoded ApplicantRecord
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, record.ID, decoded.ID)
	require.NotNil(t, decoded.Applicant.GPA)
	assert.Equal(t, 4.0, *decoded.Applicant.GPA)
}

func TestRankedApplicant_Serialization(t *testing.T) {
	ranked := RankedApplicant{
		ID:       "app_003",
		Rank:     1,
		RawScore: 12.345,
		Score:    9.8,
	}

	jsonBytes, err := json.Marshal(ranked)
	require.NoError(t, err)
	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, `"raw_score":12.345`)
	assert.Contains(t, jsonStr, `"score_0_10":9.8`)
	assert.Contains(t, jsonStr, `"rank":1`)
}
