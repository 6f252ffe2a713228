package labeler

import "math"

// ScoreFunc converts a 0-based result rank into a score contribution.
// Implementations must be positive and non-increasing in rank.
type ScoreFunc func(rank int) float64

// ExponentialDecay scores rank i as 2^-i: the top result of a query
// contributes 1.0, the second 0.5, the third 0.25, and so on. The actual
// upstream ranking score is unknown, so confidence halves per position.
func ExponentialDecay(rank int) float64 {
	return math.Pow(2, -float64(rank))
}
