package response_models

type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// ReviewSummary condenses the backend topics feed for the insights
// dashboard: volume, sentiment distribution and the most frequent terms.
type ReviewSummary struct {
	TotalReviews int            `json:"total_reviews"`
	Sentiments   map[string]int `json:"sentiments"`
	TopTerms     []TermCount    `json:"top_terms"`
	FetchedAtUTC string         `json:"fetched_at_utc"`
}

type ReviewListResponse struct {
	Total   int                      `json:"total"`
	Reviews []map[string]interface{} `json:"reviews"`
}
