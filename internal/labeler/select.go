package labeler

import (
	"sort"

	"wikilabels/internal/models"
)

// selectTop orders labels by descending score and returns the first topn.
// Ties break by ascending title so the output is deterministic regardless
// of map iteration or query completion order. topn == 0 returns every
// label; a topn beyond the number of labels returns all of them.
func selectTop(scores map[string]float64, topn int) []models.Suggestion {
	out := make([]models.Suggestion, 0, len(scores))
	for label, score := range scores {
		out = append(out, models.Suggestion{Label: label, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Label < out[j].Label
	})
	if topn > 0 && topn < len(out) {
		out = out[:topn]
	}
	return out
}
