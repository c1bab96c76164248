package websearch

import (
	"fmt"
	"strings"

	"github.com/lk2023060901/websearch-tool/websearch/types"
	"github.com/russross/blackfriday/v2"
)

// formatReport renders the Markdown report handed back to the host: a
// heading with the query, the answer body, enumerated sources, related
// images when they were requested, and a trailing metadata line.
func formatReport(data *types.SearchData, wantImages bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Search Results: %s\n\n", data.Query))
	sb.WriteString(data.Content)
	sb.WriteString("\n")

	if len(data.Citations) > 0 {
		sb.WriteString("\n**Sources:**\n")
		for i, citation := range data.Citations {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, citation))
		}
	}

	if wantImages && len(data.Images) > 0 {
		sb.WriteString("\n**Related Images:**\n")
		for i, img := range data.Images {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, img))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(metadataLine(data))
	sb.WriteString("\n")
	return sb.String()
}

// metadataLine summarizes what the search actually applied: source count,
// date window, recency weighting and domain filters.
func metadataLine(data *types.SearchData) string {
	parts := []string{fmt.Sprintf("%d sources used", data.SourcesUsed)}

	p := data.Params
	switch {
	case p.FromDate != "" && p.ToDate != "":
		parts = append(parts, fmt.Sprintf("window %s to %s", p.FromDate, p.ToDate))
	case p.FromDate != "":
		parts = append(parts, fmt.Sprintf("window from %s", p.FromDate))
	case p.ToDate != "":
		parts = append(parts, fmt.Sprintf("window until %s", p.ToDate))
	}
	if p.RecencyWeight != nil {
		parts = append(parts, fmt.Sprintf("recency weight %.2f", *p.RecencyWeight))
	}
	if len(p.IncludeDomains) > 0 {
		parts = append(parts, fmt.Sprintf("limited to %s", strings.Join(p.IncludeDomains, ", ")))
	}
	if len(p.ExcludeDomains) > 0 {
		parts = append(parts, fmt.Sprintf("excluding %s", strings.Join(p.ExcludeDomains, ", ")))
	}

	return fmt.Sprintf("*Search metadata: %s.*", strings.Join(parts, "; "))
}

// RenderHTML converts a successful outcome's Markdown report to HTML for
// hosts that present rich output. Failed or empty outcomes render to "".
func RenderHTML(outcome *types.Outcome) string {
	if outcome == nil || !outcome.Success || outcome.Text == "" {
		return ""
	}
	return string(blackfriday.Run([]byte(outcome.Text)))
}
