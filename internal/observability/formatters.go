// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/honorsoc/applicant-ranker/internal/model"
	"github.com/honorsoc/applicant-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFeatureVector outputs every named feature next to its value.
func (p *Printer) PrintFeatureVector(names []string, values []float64) {
	if len(values) == 0 {
		return
	}

	var sb strings.Builder
	for i, v := range values {
		name := fmt.Sprintf("feature_%d", i)
		if i < len(names) {
			name = names[i]
		}
		sb.WriteString(fmt.Sprintf("%-32s %10.6f", name, v))
		if i < len(values)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FEATURE VECTOR", sb.String())
}

// PrintScoreResult outputs a scoring outcome and the pool it was ranked against.
func (p *Printer) PrintScoreResult(result types.ScoreResult, poolSize int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Raw score:  %.6f\n", result.RawScore))
	sb.WriteString(fmt.Sprintf("Score 0-10: %.1f\n", result.Score))
	if poolSize > 0 {
		sb.WriteString(fmt.Sprintf("Ranked against a pool of %d", poolSize))
	} else {
		sb.WriteString("No pool supplied; percentile defaults apply")
	}

	p.printBox("SCORE", sb.String())
}

// PrintRankedApplicants outputs the top of a ranked batch.
func (p *Printer) PrintRankedApplicants(ranked []types.RankedApplicant) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total applicants ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranked[i]
		label := r.ID
		if name := r.Meta["name"]; name != "" {
			label = fmt.Sprintf("%s (%s)", name, r.ID)
		}
		if len(label) > 40 {
			label = label[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", r.Rank, label))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  Raw: %.4f\n", r.Score, r.RawScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more applicants", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED APPLICANTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintModelSummary outputs the shape of a loaded ranking model.
func (p *Printer) PrintModelSummary(m *model.RankingModel) {
	if m == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Weights:  %d\n", m.Dim()))
	sb.WriteString(fmt.Sprintf("Bias:     %.6f\n", m.Bias()))
	if version, ok := m.FeatureVersion(); ok {
		sb.WriteString(fmt.Sprintf("Features: v%d", version))
	} else {
		sb.WriteString("Features: (no version declared)")
	}

	p.printBox("RANKING MODEL", sb.String())
}
