package kernel

import (
	"fmt"

	"oja/internal/pkg/errs"
)

const (
	// ScoreMin is the lowest star rating a reviewer can give.
	ScoreMin = 1
	// ScoreMax is the highest star rating a reviewer can give.
	ScoreMax = 5
)

// Rating is the running average of review scores for a store, an item or a courier.
// The zero value is a valid "no reviews yet" rating.
type Rating struct {
	average float64
	count   int
}

// RestoreRating rebuilds a rating from persisted values.
func RestoreRating(average float64, count int) (Rating, error) {
	if count < 0 {
		return Rating{}, errs.NewValueIsInvalidErrorWithCause("review count", fmt.Errorf("%d is negative", count))
	}
	if count == 0 {
		return Rating{}, nil
	}
	if average < ScoreMin || average > ScoreMax {
		return Rating{}, errs.NewValueIsOutOfRangeError("average rating", average, ScoreMin, ScoreMax)
	}
	return Rating{average: average, count: count}, nil
}

// ValidateScore checks that a single review score is between ScoreMin and ScoreMax.
func ValidateScore(score int) error {
	if score < ScoreMin || score > ScoreMax {
		return errs.NewValueIsOutOfRangeError("rating", score, ScoreMin, ScoreMax)
	}
	return nil
}

// Add folds one more score into the average.
func (r Rating) Add(score int) (Rating, error) {
	if err := ValidateScore(score); err != nil {
		return r, err
	}
	total := r.average*float64(r.count) + float64(score)
	count := r.count + 1
	return Rating{average: total / float64(count), count: count}, nil
}

// Average returns the mean score, 0 when nobody has reviewed yet.
func (r Rating) Average() float64 {
	return r.average
}

// Count returns the number of reviews folded into the average.
func (r Rating) Count() int {
	return r.count
}
