// Package scoring provides functionality to score feature vectors against a trained ranking model.
package scoring

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/honorsoc/applicant-ranker/internal/feature"
	"github.com/honorsoc/applicant-ranker/internal/model"
	"github.com/honorsoc/applicant-ranker/internal/types"
)

// Ranker binds a feature extractor to a loaded ranking model so callers hold
// one explicit scoring unit instead of passing both around. Both halves are
// immutable after construction, so a Ranker is safe to share across
// goroutines.
type Ranker struct {
	extractor *feature.Extractor
	model     *model.RankingModel
}

// NewRanker creates a Ranker from an extractor and a loaded model.
func NewRanker(extractor *feature.Extractor, m *model.RankingModel) *Ranker {
	return &Ranker{
		extractor: extractor,
		model:     m,
	}
}

// Extractor returns the feature extractor.
func (r *Ranker) Extractor() *feature.Extractor {
	return r.extractor
}

// Model returns the loaded ranking model.
func (r *Ranker) Model() *model.RankingModel {
	return r.model
}

// Score extracts features for one applicant and scores them against the pool.
func (r *Ranker) Score(input *types.ApplicantInput, pool []float64) (*feature.Vector, types.ScoreResult, error) {
	fv, err := r.extractor.BuildFeatures(input)
	if err != nil {
		return nil, types.ScoreResult{}, err
	}

	result, err := ScoreWithPool(r.model, fv.Values(), pool)
	if err != nil {
		return nil, types.ScoreResult{}, err
	}

	return fv, result, nil
}

// RankPool scores a batch of applicant records and ranks them against each
// other: features are extracted concurrently (bounded by concurrency when
// positive), each raw score is percentile-normalized against the batch itself,
// and the result is sorted by raw score descending with ID as the tie break.
// Records without an ID are assigned one. The input slice is not modified.
func RankPool(ctx context.Context, extractor *feature.Extractor, m *model.RankingModel, records []types.ApplicantRecord, concurrency int) ([]types.RankedApplicant, error) {
	recs := make([]types.ApplicantRecord, len(records))
	copy(recs, records)
	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = uuid.New().String()
		}
	}

	raws := make([]float64, len(recs))
	g, gCtx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i := range recs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			fv, err := extractor.BuildFeatures(&recs[i].Applicant)
			if err != nil {
				return fmt.Errorf("extracting features for applicant %s: %w", recs[i].ID, err)
			}
			raw, err := ScoreRaw(m, fv.Values())
			if err != nil {
				return fmt.Errorf("scoring applicant %s: %w", recs[i].ID, err)
			}
			raws[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pool := make([]float64, len(raws))
	copy(pool, raws)
	sort.Float64s(pool)

	ranked := make([]types.RankedApplicant, len(recs))
	for i := range recs {
		ranked[i] = types.RankedApplicant{
			ID:       recs[i].ID,
			RawScore: raws[i],
			Score:    percentileOf(raws[i], pool),
			Meta:     recs[i].Meta,
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].RawScore != ranked[j].RawScore {
			return ranked[i].RawScore > ranked[j].RawScore
		}
		return ranked[i].ID < ranked[j].ID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked, nil
}
