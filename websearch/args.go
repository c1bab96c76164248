package websearch

import (
	"strings"

	"github.com/lk2023060901/websearch-tool/websearch/types"
	"github.com/spf13/cast"
)

// parseArgs coerces the host-validated argument map into a SearchRequest.
// Hosts deliver arguments as loosely-typed JSON maps, so every field is
// type-coerced here; range checks belong to the host's schema validation.
func parseArgs(args map[string]any) (*types.SearchRequest, error) {
	query := strings.TrimSpace(cast.ToString(args["query"]))
	if query == "" {
		return nil, types.ErrEmptyQuery
	}

	req := &types.SearchRequest{
		Query:      query,
		SearchType: types.SearchType(cast.ToString(args["search_type"])),
		MaxResults: cast.ToInt(args["max_results"]),
		TimeRange:  types.TimeRange(cast.ToString(args["time_range"])),
		Language:   cast.ToString(args["language"]),
		DateFrom:   strings.TrimSpace(cast.ToString(args["custom_date_from"])),
		DateTo:     strings.TrimSpace(cast.ToString(args["custom_date_to"])),
	}

	// Pointer fields keep "not supplied" distinct from a zero value.
	if v, ok := args["return_citations"]; ok && v != nil {
		b := cast.ToBool(v)
		req.ReturnCitations = &b
	}
	if v, ok := args["return_images"]; ok && v != nil {
		b := cast.ToBool(v)
		req.ReturnImages = &b
	}
	if v, ok := args["search_mode"]; ok && v != nil {
		if s := strings.TrimSpace(cast.ToString(v)); s != "" {
			req.SearchMode = &s
		}
	}
	if v, ok := args["recency_weight"]; ok && v != nil {
		f := cast.ToFloat64(v)
		req.RecencyWeight = &f
	}

	req.IncludeDomains = parseDomainList(args["include_domains"])
	req.ExcludeDomains = parseDomainList(args["exclude_domains"])

	req.ApplyDefaults()
	return req, nil
}

// parseDomainList accepts either a comma-separated string or a list of
// strings. Entries are trimmed and empties dropped; an empty result means
// the filter was not specified and the field is omitted from the outbound
// request entirely.
func parseDomainList(v any) []string {
	if v == nil {
		return nil
	}

	var raw []string
	switch s := v.(type) {
	case string:
		raw = strings.Split(s, ",")
	default:
		raw = cast.ToStringSlice(v)
	}

	var domains []string
	for _, d := range raw {
		d = strings.TrimSpace(d)
		if d != "" {
			domains = append(domains, d)
		}
	}
	return domains
}
