package labeler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikilabels/internal/models"
)

// stubSearchClient returns canned ranked titles per query string.
type stubSearchClient struct {
	mu      sync.Mutex
	results map[string][]string
	err     error
	calls   []string
}

func (s *stubSearchClient) Search(ctx context.Context, query string) ([]string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, query)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.results[query], nil
}

type stubCategoryClient struct {
	categories map[string][]string
	err        error
}

func (s *stubCategoryClient) Categories(ctx context.Context, title string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.categories[title], nil
}

func TestSuggest_BeetleFixture(t *testing.T) {
	// topics=[beetle live yellow strong], bootstrap_size=3, no anchors:
	// 4 combinations, scores hand-computed from 2^-i contributions.
	search := &stubSearchClient{results: map[string][]string{
		"beetle live yellow":   {"Beetle", "Hercules beetle"},
		"beetle live strong":   {"Hercules beetle", "Livestrong Foundation"},
		"beetle yellow strong": {"Hercules beetle", "Beetle"},
		"live yellow strong":   {"Livestrong Foundation"},
	}}
	svc := NewService(search, nil, nil, 4)

	got, err := svc.Suggest(context.Background(), SuggestParams{
		Terms:         []string{"beetle", "live", "yellow", "strong"},
		TopN:          3,
		BootstrapSize: 3,
	})
	require.NoError(t, err)

	// Hercules beetle: 0.5+1.0+1.0 = 2.5
	// Beetle:          1.0+0.5     = 1.5
	// Livestrong:      0.5+1.0     = 1.5 (tie broken lexicographically)
	assert.Equal(t, []models.Suggestion{
		{Label: "Hercules beetle", Score: 2.5},
		{Label: "Beetle", Score: 1.5},
		{Label: "Livestrong Foundation", Score: 1.5},
	}, got)

	assert.Len(t, search.calls, 4, "one search per combination")
}

func TestSuggestLabels_ReturnsTitlesOnly(t *testing.T) {
	search := &stubSearchClient{results: map[string][]string{
		"beetle": {"Beetle", "Hercules beetle"},
	}}
	svc := NewService(search, nil, nil, 1)

	labels, err := svc.SuggestLabels(context.Background(), SuggestParams{
		Terms:         []string{"beetle"},
		TopN:          2,
		BootstrapSize: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Beetle", "Hercules beetle"}, labels)
}

func TestSuggest_AllCombinationsEmpty(t *testing.T) {
	search := &stubSearchClient{results: map[string][]string{}}
	svc := NewService(search, nil, nil, 2)

	got, err := svc.Suggest(context.Background(), SuggestParams{
		Terms:         []string{"beetle", "live", "yellow", "strong"},
		TopN:          3,
		BootstrapSize: 3,
	})
	require.NoError(t, err, "no results is a valid outcome, not an error")
	assert.Empty(t, got)
}

func TestSuggest_EmptyTerms(t *testing.T) {
	svc := NewService(&stubSearchClient{}, nil, nil, 1)

	_, err := svc.Suggest(context.Background(), SuggestParams{
		Terms:         nil,
		BootstrapSize: 3,
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSuggest_InvalidBootstrapSize(t *testing.T) {
	svc := NewService(&stubSearchClient{}, nil, nil, 1)

	_, err := svc.Suggest(context.Background(), SuggestParams{
		Terms:         []string{"beetle"},
		BootstrapSize: 0,
	})
	assert.ErrorIs(t, err, models.ErrConfiguration)
}

func TestSuggest_NegativeTopN(t *testing.T) {
	search := &stubSearchClient{}
	svc := NewService(search, nil, nil, 1)

	_, err := svc.Suggest(context.Background(), SuggestParams{
		Terms:         []string{"beetle"},
		TopN:          -1,
		BootstrapSize: 3,
	})
	assert.ErrorIs(t, err, models.ErrConfiguration)
	assert.Empty(t, search.calls, "no collaborator calls for invalid params")
}

func TestSuggest_SearchFailureIsFailFast(t *testing.T) {
	wrapped := errors.New("search failure")
	search := &stubSearchClient{err: wrapped}
	svc := NewService(search, nil, nil, 2)

	got, err := svc.Suggest(context.Background(), SuggestParams{
		Terms:         []string{"beetle", "live", "yellow", "strong"},
		TopN:          3,
		BootstrapSize: 3,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, wrapped)
	assert.Nil(t, got, "no partial result on collaborator failure")
}

func TestSuggest_WithCategoryBoost(t *testing.T) {
	search := &stubSearchClient{results: map[string][]string{
		"beetle car": {"Volkswagen Beetle", "Beetle"},
	}}
	cats := &stubCategoryClient{categories: map[string][]string{
		"Volkswagen Beetle": {"Beetle", "Cars introduced in 1938"},
	}}
	svc := NewService(search, cats, nil, 2)

	params := SuggestParams{
		Terms:         []string{"beetle"},
		Anchors:       []string{"car"},
		TopN:          0,
		BootstrapSize: 3,
	}

	plain, err := svc.Suggest(context.Background(), params)
	require.NoError(t, err)

	params.BoostWithCategories = true
	boosted, err := svc.Suggest(context.Background(), params)
	require.NoError(t, err)

	plainScore := scoreOf(t, plain, "Beetle")
	boostedScore := scoreOf(t, boosted, "Beetle")
	assert.Greater(t, boostedScore, plainScore, "boost must strictly increase Beetle's score")

	// Boost flips the order: Beetle 0.5 + 2x1.0 = 2.5 beats VW's 1.0.
	assert.Equal(t, "Beetle", boosted[0].Label)
	assert.Equal(t, "Volkswagen Beetle", plain[0].Label)
}

func TestSuggest_CategoryFailureIsFailFast(t *testing.T) {
	search := &stubSearchClient{results: map[string][]string{
		"beetle": {"Beetle"},
	}}
	cats := &stubCategoryClient{err: errors.New("category failure")}
	svc := NewService(search, cats, nil, 1)

	got, err := svc.Suggest(context.Background(), SuggestParams{
		Terms:               []string{"beetle"},
		BootstrapSize:       3,
		BoostWithCategories: true,
	})
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestSuggest_BoostWithoutCategoryClient(t *testing.T) {
	search := &stubSearchClient{results: map[string][]string{
		"beetle": {"Beetle"},
	}}
	svc := NewService(search, nil, nil, 1)

	_, err := svc.Suggest(context.Background(), SuggestParams{
		Terms:               []string{"beetle"},
		BootstrapSize:       3,
		BoostWithCategories: true,
	})
	assert.Error(t, err)
}

func scoreOf(t *testing.T, suggestions []models.Suggestion, label string) float64 {
	t.Helper()
	for _, s := range suggestions {
		if s.Label == label {
			return s.Score
		}
	}
	t.Fatalf("label %q not found in suggestions", label)
	return 0
}
