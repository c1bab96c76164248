package types

// SearchData represents the structured payload of a successful search
type SearchData struct {
	Query       string          `json:"query"`
	Content     string          `json:"content"` // First choice's message text
	Citations   []string        `json:"citations"`
	Images      []string        `json:"images,omitempty"`
	SourcesUsed int             `json:"sources_used"`
	Took        int64           `json:"took"` // milliseconds
	Params      EffectiveParams `json:"params"`
}

// EffectiveParams echoes the search parameters that were actually applied,
// after defaults and date resolution.
type EffectiveParams struct {
	SearchType     SearchType `json:"search_type"`
	MaxResults     int        `json:"max_results"`
	TimeRange      TimeRange  `json:"time_range"`
	Language       string     `json:"language"`
	FromDate       string     `json:"from_date,omitempty"`
	ToDate         string     `json:"to_date,omitempty"`
	RecencyWeight  *float64   `json:"recency_weight,omitempty"`
	IncludeDomains []string   `json:"include_domains,omitempty"`
	ExcludeDomains []string   `json:"exclude_domains,omitempty"`
}

// Outcome is the uniform result shape handed back to the host. Failures are
// reported here, never raised past the tool boundary.
type Outcome struct {
	Success bool        `json:"success"`
	Text    string      `json:"text,omitempty"` // Formatted Markdown report
	Data    *SearchData `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
