package labeler

import (
	"fmt"
	"strings"

	"wikilabels/internal/models"
)

// Combinations builds the bootstrap query set for a topic: every distinct
// subset of bootstrapSize terms, in original input order, with all anchors
// appended to each. Anchors never count toward the subset size and are
// never dropped. When the topic has bootstrapSize terms or fewer, the
// single combination is the topic itself.
func Combinations(terms, anchors []string, bootstrapSize int) ([]string, error) {
	if bootstrapSize <= 0 {
		return nil, fmt.Errorf("%w: bootstrap size must be positive, got %d", models.ErrConfiguration, bootstrapSize)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: topic has no terms", models.ErrInvalidInput)
	}

	k := bootstrapSize
	if k > len(terms) {
		k = len(terms)
	}

	queries := make([]string, 0, len(terms))
	seen := make(map[string]struct{})
	for _, subset := range chooseK(terms, k) {
		parts := make([]string, 0, len(subset)+len(anchors))
		parts = append(parts, subset...)
		parts = append(parts, anchors...)
		query := strings.Join(parts, " ")
		if _, ok := seen[query]; ok {
			continue
		}
		seen[query] = struct{}{}
		queries = append(queries, query)
	}
	return queries, nil
}

// chooseK enumerates all k-element subsets of terms, preserving input
// order within each subset. Standard odometer-style index walk.
func chooseK(terms []string, k int) [][]string {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var subsets [][]string
	for {
		subset := make([]string, k)
		for i, j := range idx {
			subset[i] = terms[j]
		}
		subsets = append(subsets, subset)

		i := k - 1
		for i >= 0 && idx[i] == len(terms)-k+i {
			i--
		}
		if i < 0 {
			return subsets
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
