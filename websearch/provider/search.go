package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lk2023060901/websearch-tool/websearch/types"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Search executes one synchronous call against the search service and
// translates the reply. The credential authorizes this request only; it is
// not retained, and no retry is attempted on any failure.
func (c *Client) Search(ctx context.Context, req *types.SearchRequest, apiKey string) (*types.SearchData, error) {
	startTime := time.Now()

	from, to := dateWindow(req, startTime)
	body := c.buildBody(req, from, to)

	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/chat/completions", strings.TrimSuffix(c.config.BaseURL, "/"))
	httpReq, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range c.buildDefaultHeaders() {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))

	c.logger.Debug("sending search request",
		zap.String("url", apiURL),
		zap.String("model", body.Model),
		zap.String("search_type", string(req.SearchType)),
		zap.String("from_date", from),
		zap.String("to_date", to),
		zap.Int("max_results", req.MaxResults),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, types.ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, types.ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &types.RemoteError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	data, err := translate(req, respBody, effectiveParams(req, from, to))
	if err != nil {
		return nil, err
	}
	data.Took = time.Since(startTime).Milliseconds()

	c.logger.Debug("search request completed",
		zap.Int("citations", len(data.Citations)),
		zap.Int("sources_used", data.SourcesUsed),
		zap.Int64("took_ms", data.Took),
	)
	return data, nil
}

// translate extracts the answer payload from a successful reply. Citations
// and the sources-used count are optional in the reply and default to empty;
// images are kept only when the caller asked for them. A choices field that
// is missing, empty or not an array means the service returned nothing.
func translate(req *types.SearchRequest, respBody []byte, params types.EffectiveParams) (*types.SearchData, error) {
	if !gjson.ValidBytes(respBody) {
		return nil, fmt.Errorf("failed to decode response: %w", types.ErrInvalidResponse)
	}

	root := gjson.ParseBytes(respBody)
	// Array() wraps a scalar or object into a one-element slice, so the
	// shape check must come first.
	choicesField := root.Get("choices")
	if !choicesField.IsArray() {
		return nil, types.ErrEmptyResponse
	}
	choices := choicesField.Array()
	if len(choices) == 0 {
		return nil, types.ErrEmptyResponse
	}

	content := choices[0].Get("message.content").String()

	citations := make([]string, 0)
	for _, item := range root.Get("citations").Array() {
		citations = append(citations, item.String())
	}

	var images []string
	if req.WantsImages() {
		for _, item := range root.Get("images").Array() {
			images = append(images, item.String())
		}
	}

	return &types.SearchData{
		Query:       req.Query,
		Content:     content,
		Citations:   citations,
		Images:      images,
		SourcesUsed: int(root.Get("usage.num_sources_used").Int()),
		Params:      params,
	}, nil
}
