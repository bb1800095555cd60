package mask

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrNoCandidates is returned when selecting from an empty candidate list.
var ErrNoCandidates = errors.New("mask: no candidates")

// Select scores the candidates in order and returns the index and score of
// the lowest. On exact ties the earliest candidate wins.
func Select(candidates []Matrix) (int, float64, error) {
	if len(candidates) == 0 {
		return -1, 0, ErrNoCandidates
	}
	scores := make([]float64, len(candidates))
	for i, m := range candidates {
		scores[i] = Evaluate(m)
	}
	best, score := Best(scores)
	return best, score, nil
}

// Best returns the index and value of the first minimum in scores, or -1 for
// an empty slice.
func Best(scores []float64) (int, float64) {
	best := -1
	var low float64
	for i, s := range scores {
		if best < 0 || s < low {
			best, low = i, s
		}
	}
	return best, low
}

// EvaluateAll scores the candidates concurrently using at most workers
// goroutines (no limit when workers <= 0). Scores are returned in candidate
// order, so Best over them picks the same candidate as Select. Candidates must
// not share mutable state with each other.
func EvaluateAll(ctx context.Context, candidates []Matrix, workers int) ([]float64, error) {
	scores := make([]float64, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, m := range candidates {
		i, m := i, m
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			scores[i] = Evaluate(m)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
