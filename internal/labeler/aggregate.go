package labeler

// Aggregator reduces per-query ranked result lists into a single
// label-to-score mapping.
type Aggregator struct {
	Score ScoreFunc
}

func NewAggregator(score ScoreFunc) *Aggregator {
	if score == nil {
		score = ExponentialDecay
	}
	return &Aggregator{Score: score}
}

// Aggregate sums rank contributions over every ranked list. A label that
// surfaces across many combinations accumulates additively; that is the
// bootstrapping effect that separates central labels from spurious
// one-off hits. Labels never observed get no entry. Pure: no state is
// kept between calls and the input is not modified.
func (a *Aggregator) Aggregate(ranked map[string][]string) map[string]float64 {
	scores := make(map[string]float64)
	for _, titles := range ranked {
		for i, title := range titles {
			scores[title] += a.Score(i)
		}
	}
	return scores
}
