package labeler

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"wikilabels/internal/models"
)

// SearchClient is the external ranker: a query string in, page titles in
// relevance order out. An empty list is a valid response.
type SearchClient interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// CategoryClient resolves a page title to its category names. A title
// with no page behind it yields an empty set, not an error.
type CategoryClient interface {
	Categories(ctx context.Context, title string) ([]string, error)
}

// SuggestParams carries the tuning knobs for one suggestion run.
type SuggestParams struct {
	Terms   []string
	Anchors []string
	// TopN == 0 returns every label; negative is rejected.
	TopN          int
	BootstrapSize int
	// BoostWithCategories enables the category re-scoring pass. Slow: it
	// costs one category lookup per candidate label above the cutoff.
	BoostWithCategories bool
}

// Service runs the bootstrapped labelling pipeline against injected
// collaborators. All state is call-scoped; a Service is safe for
// concurrent use.
type Service struct {
	search         SearchClient
	categories     CategoryClient
	aggregator     *Aggregator
	maxConcurrency int
}

func NewService(search SearchClient, categories CategoryClient, aggregator *Aggregator, maxConcurrency int) *Service {
	if aggregator == nil {
		aggregator = NewAggregator(nil)
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &Service{
		search:         search,
		categories:     categories,
		aggregator:     aggregator,
		maxConcurrency: maxConcurrency,
	}
}

// Suggest produces candidate labels for a topic, best first. Empty search
// results contribute nothing; if every combination comes back empty the
// result is an empty slice and a nil error. Any collaborator failure
// aborts the whole run: no partial label list is ever returned.
func (s *Service) Suggest(ctx context.Context, params SuggestParams) ([]models.Suggestion, error) {
	if s.search == nil {
		return nil, fmt.Errorf("search client is not initialized")
	}
	if params.TopN < 0 {
		return nil, fmt.Errorf("%w: topn must not be negative, got %d", models.ErrConfiguration, params.TopN)
	}

	queries, err := Combinations(params.Terms, params.Anchors, params.BootstrapSize)
	if err != nil {
		return nil, err
	}
	log.Debugf("Suggest: %d terms, %d anchors -> %d combinations", len(params.Terms), len(params.Anchors), len(queries))

	ranked, err := s.searchAll(ctx, queries)
	if err != nil {
		return nil, err
	}

	scores := s.aggregator.Aggregate(ranked)

	if params.BoostWithCategories {
		if s.categories == nil {
			return nil, fmt.Errorf("category client is not initialized")
		}
		categories, err := s.fetchCategories(ctx, scores)
		if err != nil {
			return nil, err
		}
		boostWithCategories(scores, categories)
	}

	return selectTop(scores, params.TopN), nil
}

// SuggestLabels is Suggest stripped down to bare titles.
func (s *Service) SuggestLabels(ctx context.Context, params SuggestParams) ([]string, error) {
	suggestions, err := s.Suggest(ctx, params)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(suggestions))
	for i, sg := range suggestions {
		labels[i] = sg.Label
	}
	return labels, nil
}

// searchAll fans the queries out over the search client. Each goroutine
// owns one slot of the results slice, and the reduction into scores
// happens sequentially afterwards, so no score update can be lost. The
// first error cancels the remaining queries.
func (s *Service) searchAll(ctx context.Context, queries []string) (map[string][]string, error) {
	titles := make([][]string, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			result, err := s.search.Search(gctx, query)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			titles[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make(map[string][]string, len(queries))
	for i, query := range queries {
		ranked[query] = titles[i]
	}
	return ranked, nil
}

// fetchCategories looks up categories for every label that can contribute
// to boosting. Labels under the cutoff are skipped; they would be ignored
// by the booster anyway and each lookup is a network round trip.
func (s *Service) fetchCategories(ctx context.Context, scores map[string]float64) (map[string][]string, error) {
	var mu sync.Mutex
	categories := make(map[string][]string, len(scores))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for label, score := range scores {
		if score < boostMinScore {
			continue
		}
		label := label
		g.Go(func() error {
			cats, err := s.categories.Categories(gctx, label)
			if err != nil {
				return fmt.Errorf("categories %q: %w", label, err)
			}
			mu.Lock()
			categories[label] = cats
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return categories, nil
}
