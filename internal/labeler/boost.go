package labeler

import "strings"

const (
	// boostMinScore is the aggregate score below which a label does not
	// contribute to category boosting. Filters out one-off low-rank hits
	// and keeps the number of category lookups down.
	boostMinScore = 0.1

	// categoryBoostFactor scales the accumulated category bonus before it
	// is added back onto a label's score.
	categoryBoostFactor = 2.0
)

// boostWithCategories re-weights scores using category overlap: when a
// category of label L is itself (case-insensitively) another candidate
// label M, L's score is accumulated into M's bonus pool. All bonuses are
// computed against the pre-boost scores and applied at the end, and fold
// collisions resolve to a fixed label, so the result does not depend on
// map iteration order. Mutates scores in place.
func boostWithCategories(scores map[string]float64, categories map[string][]string) {
	// When labels collide under case folding, the lexicographically
	// smallest one receives the bonus.
	byFold := make(map[string]string, len(scores))
	for label := range scores {
		fold := strings.ToLower(label)
		if existing, ok := byFold[fold]; ok && existing < label {
			continue
		}
		byFold[fold] = label
	}

	bonus := make(map[string]float64)
	for label, score := range scores {
		if score < boostMinScore {
			continue
		}
		for _, cat := range categories[label] {
			match, ok := byFold[strings.ToLower(cat)]
			if !ok || match == label {
				continue
			}
			bonus[match] += score
		}
	}

	for label, b := range bonus {
		scores[label] += categoryBoostFactor * b
	}
}
