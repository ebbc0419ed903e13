// Package lexicon provides text normalization and keyword matching against
// the fixed phrase lists used by the feature scorers.
// Lexicons are stored as a JSON file and embedded at compile time.
package lexicon

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed lexicons.json
var lexiconFiles embed.FS

// Survey category names in feature order. Each becomes one kw_* feature and
// contributes to category breadth.
const (
	MathCore            = "math_core"
	ReasoningMarkers    = "reasoning_markers"
	LeadershipService   = "leadership_service"
	AwardsHonors        = "awards_honors"
	ResearchInquiry     = "research_inquiry"
	CommunityEngagement = "community_engagement"
	ArcContext          = "arc_context"
	ArcAction           = "arc_action"
	ArcReflection       = "arc_reflection"
	PlanGeneric         = "plan_generic"
	PlanSpecific        = "plan_specific"
)

// Lexicon is a named, immutable set of lowercase phrases. Instances are
// shared process-wide after the embedded file is parsed, so nothing may
// mutate them; accessors hand out copies.
type Lexicon struct {
	name    string
	phrases []string
}

var (
	loadOnce sync.Once
	loaded   map[string]*Lexicon
	loadErr  error
)

// load parses the embedded lexicon file exactly once.
func load() (map[string]*Lexicon, error) {
	loadOnce.Do(func() {
		data, err := lexiconFiles.ReadFile("lexicons.json")
		if err != nil {
			loadErr = fmt.Errorf("failed to read embedded lexicon file: %w", err)
			return
		}

		var raw map[string][]string
		if err := json.Unmarshal(data, &raw); err != nil {
			loadErr = fmt.Errorf("failed to parse lexicon file: %w", err)
			return
		}

		loaded = make(map[string]*Lexicon, len(raw))
		for name, phrases := range raw {
			cleaned := make([]string, 0, len(phrases))
			seen := make(map[string]bool, len(phrases))
			for _, p := range phrases {
				p = strings.ToLower(strings.TrimSpace(p))
				if p == "" || seen[p] {
					continue
				}
				seen[p] = true
				cleaned = append(cleaned, p)
			}
			loaded[name] = &Lexicon{name: name, phrases: cleaned}
		}
	})
	return loaded, loadErr
}

// Get retrieves a lexicon by category name.
func Get(name string) (*Lexicon, error) {
	lexicons, err := load()
	if err != nil {
		return nil, err
	}
	lex, exists := lexicons[name]
	if !exists {
		return nil, fmt.Errorf("lexicon category %q not found", name)
	}
	return lex, nil
}

// MustGet retrieves a lexicon by category name, panicking if not found.
// The embedded file is part of the build, so a failure here is a defect.
func MustGet(name string) *Lexicon {
	lex, err := Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load lexicon: %v", err))
	}
	return lex
}

// Names returns all category names in sorted order.
func Names() ([]string, error) {
	lexicons, err := load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(lexicons))
	for name := range lexicons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SurveyCategories returns the five resume/essay survey categories in the
// fixed order their kw_* features appear in the vector.
func SurveyCategories() []string {
	return []string{MathCore, LeadershipService, AwardsHonors, ResearchInquiry, CommunityEngagement}
}

// Name returns the category name.
func (l *Lexicon) Name() string {
	return l.name
}

// Phrases returns a copy of the phrase list.
func (l *Lexicon) Phrases() []string {
	out := make([]string, len(l.phrases))
	copy(out, l.phrases)
	return out
}

// Size returns the number of phrases in the lexicon.
func (l *Lexicon) Size() int {
	return len(l.phrases)
}

// UniqueHits counts the distinct phrases present in the normalized text at
// least once, via substring containment. Repeating one phrase many times
// yields no extra credit.
func (l *Lexicon) UniqueHits(normalized string) int {
	hits := 0
	for _, phrase := range l.phrases {
		if strings.Contains(normalized, phrase) {
			hits++
		}
	}
	return hits
}

// Normalize lowercases text, collapses whitespace runs to single spaces,
// and trims. All matching and length accounting runs over this form.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// TotalUniqueHits sums unique hits across every lexicon category. This is
// the hit count the density penalty measures.
func TotalUniqueHits(normalized string) (int, error) {
	lexicons, err := load()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, lex := range lexicons {
		total += lex.UniqueHits(normalized)
	}
	return total, nil
}

// MustTotalUniqueHits is TotalUniqueHits, panicking if the embedded lexicon
// file fails to parse.
func MustTotalUniqueHits(normalized string) int {
	total, err := TotalUniqueHits(normalized)
	if err != nil {
		panic(fmt.Sprintf("failed to load lexicons: %v", err))
	}
	return total
}
