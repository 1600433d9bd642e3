package domain

import "fmt"

// RatingBounds of the allowed score range, inclusive.
const (
	MinRatingScore = 0
	MaxRatingScore = 5
)

// Rating is a value object owned by a movie: it has no identity of its own
// and can only be built through NewRating, which rejects out-of-range scores
// instead of clamping them.
type Rating struct {
	score int
}

// NewRating validates the score at construction time.
func NewRating(score int) (Rating, error) {
	if score < MinRatingScore || score > MaxRatingScore {
		return Rating{}, fmt.Errorf("rating score %d is outside [%d, %d]", score, MinRatingScore, MaxRatingScore)
	}
	return Rating{score: score}, nil
}

// Score returns the rating value.
func (r Rating) Score() int {
	return r.score
}
