package models

// Suggestion is a single candidate label for a topic, with the aggregate
// score it accumulated across bootstrap queries. Higher is better.
type Suggestion struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
