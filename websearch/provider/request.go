package provider

import (
	"fmt"

	"github.com/lk2023060901/websearch-tool/websearch/types"
)

// chatRequest represents the outbound payload for the chat endpoint
type chatRequest struct {
	Model            string            `json:"model"`
	Messages         []chatMessage     `json:"messages"`
	SearchParameters *searchParameters `json:"search_parameters,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// searchParameters mirrors the endpoint's search-configuration block.
// Optional fields left unset are omitted entirely so the service keeps its
// own defaults; the contract is omission, never null.
type searchParameters struct {
	Mode             string   `json:"mode,omitempty"`
	MaxSearchResults int      `json:"max_search_results,omitempty"`
	FromDate         string   `json:"from_date,omitempty"`
	ToDate           string   `json:"to_date,omitempty"`
	ReturnCitations  *bool    `json:"return_citations,omitempty"`
	ReturnImages     *bool    `json:"return_images,omitempty"`
	IncludedWebsites []string `json:"included_websites,omitempty"`
	ExcludedWebsites []string `json:"excluded_websites,omitempty"`
	RecencyWeight    *float64 `json:"recency_weight,omitempty"`
}

// System instruction variants selected by search type.
const (
	systemPromptWeb     = "You are a web search assistant. Use live web search to answer the user's query with current, factual information. Summarize the findings clearly and cite the sources you used."
	systemPromptTwitter = "You are a social media search assistant. Use live X (Twitter) post search to answer the user's query with current posts and discussions. Summarize the findings clearly and cite the sources you used."
	systemPromptAll     = "You are a search assistant. Use live web search and X (Twitter) post search together to answer the user's query with current, factual information. Summarize the findings clearly and cite the sources you used."
)

// systemPrompt picks the instruction variant for the search type and appends
// a language directive when the caller asked for a non-default language.
func systemPrompt(st types.SearchType, language string) string {
	var prompt string
	switch st {
	case types.SearchTypeTwitter:
		prompt = systemPromptTwitter
	case types.SearchTypeAll:
		prompt = systemPromptAll
	default:
		prompt = systemPromptWeb
	}

	if language != "" && language != types.DefaultLanguage {
		prompt += fmt.Sprintf(" Respond in the language identified by ISO 639-1 code %q.", language)
	}
	return prompt
}

// buildBody maps a coerced search request onto the wire payload. The domain
// lists arrive already parsed and trimmed; empty lists and unset optionals
// never reach the wire, and a recency weight equal to the documented default
// (0.5) is deliberately not sent.
func (c *Client) buildBody(req *types.SearchRequest, from, to string) *chatRequest {
	params := &searchParameters{
		MaxSearchResults: req.MaxResults,
		FromDate:         from,
		ToDate:           to,
		ReturnCitations:  req.ReturnCitations,
		ReturnImages:     req.ReturnImages,
		IncludedWebsites: req.IncludeDomains,
		ExcludedWebsites: req.ExcludeDomains,
	}
	if req.SearchMode != nil {
		params.Mode = *req.SearchMode
	}
	if req.RecencyWeight != nil && *req.RecencyWeight != types.DefaultRecencyWeight {
		params.RecencyWeight = req.RecencyWeight
	}

	return &chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(req.SearchType, req.Language)},
			{Role: "user", Content: req.Query},
		},
		SearchParameters: params,
	}
}

// effectiveParams echoes what the request actually asked the service for.
func effectiveParams(req *types.SearchRequest, from, to string) types.EffectiveParams {
	params := types.EffectiveParams{
		SearchType:     req.SearchType,
		MaxResults:     req.MaxResults,
		TimeRange:      req.TimeRange,
		Language:       req.Language,
		FromDate:       from,
		ToDate:         to,
		IncludeDomains: req.IncludeDomains,
		ExcludeDomains: req.ExcludeDomains,
	}
	if req.RecencyWeight != nil && *req.RecencyWeight != types.DefaultRecencyWeight {
		params.RecencyWeight = req.RecencyWeight
	}
	return params
}
