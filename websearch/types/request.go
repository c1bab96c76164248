package types

// SearchType selects which source class the remote service searches.
type SearchType string

const (
	SearchTypeWeb     SearchType = "web"
	SearchTypeTwitter SearchType = "twitter"
	SearchTypeAll     SearchType = "all"
)

// TimeRange is a symbolic recency window resolved to calendar dates when the
// outbound request is built.
type TimeRange string

const (
	TimeRangeHour  TimeRange = "hour"
	TimeRangeDay   TimeRange = "day"
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
	TimeRangeAll   TimeRange = "all"
)

// Documented defaults applied when the host omits an argument.
const (
	DefaultSearchType    = SearchTypeWeb
	DefaultMaxResults    = 10
	DefaultTimeRange     = TimeRangeAll
	DefaultLanguage      = "en"
	DefaultRecencyWeight = 0.5
)

// SearchRequest represents a search request after argument coercion.
// Pointer fields distinguish "not supplied" from a zero value; fields left
// unset never reach the outbound payload. Range constraints are enforced by
// the host's schema validation, not here.
type SearchRequest struct {
	Query           string     `json:"query" validate:"required,min=1,max=1000"`
	SearchType      SearchType `json:"search_type,omitempty"`
	MaxResults      int        `json:"max_results,omitempty" validate:"omitempty,min=1,max=50"`
	TimeRange       TimeRange  `json:"time_range,omitempty"`
	Language        string     `json:"language,omitempty"` // ISO 639-1
	ReturnCitations *bool      `json:"return_citations,omitempty"`
	ReturnImages    *bool      `json:"return_images,omitempty"`
	IncludeDomains  []string   `json:"include_domains,omitempty"`
	ExcludeDomains  []string   `json:"exclude_domains,omitempty"`
	SearchMode      *string    `json:"search_mode,omitempty"` // "auto", "on" or "off"
	RecencyWeight   *float64   `json:"recency_weight,omitempty" validate:"omitempty,min=0,max=1"`
	DateFrom        string     `json:"custom_date_from,omitempty"` // YYYY-MM-DD, wins over TimeRange
	DateTo          string     `json:"custom_date_to,omitempty"`   // YYYY-MM-DD, wins over TimeRange
}

// ApplyDefaults fills unset fields with their documented defaults.
func (r *SearchRequest) ApplyDefaults() {
	if r.SearchType == "" {
		r.SearchType = DefaultSearchType
	}
	if r.MaxResults == 0 {
		r.MaxResults = DefaultMaxResults
	}
	if r.TimeRange == "" {
		r.TimeRange = DefaultTimeRange
	}
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
}

// WantsImages reports whether the caller asked for related images.
func (r *SearchRequest) WantsImages() bool {
	return r.ReturnImages != nil && *r.ReturnImages
}
