package websearch

import "encoding/json"

// ToolName is the identifier hosts register this tool under.
const ToolName = "web_search"

// ToolDescription is shown to the agent when the host lists its tools.
const ToolDescription = "Search the web and X (Twitter) posts for current information. " +
	"Returns a summarized answer with numbered source citations and optional related images."

// inputSchema describes the tool's arguments. The host runtime validates
// incoming arguments against it before Execute is called, including the
// range constraints on max_results and recency_weight.
const inputSchema = `{
  "type": "object",
  "properties": {
    "query": {
      "type": "string",
      "description": "The search query."
    },
    "search_type": {
      "type": "string",
      "enum": ["web", "twitter", "all"],
      "default": "web",
      "description": "Which sources to search: the web, X (Twitter) posts, or both."
    },
    "max_results": {
      "type": "integer",
      "minimum": 1,
      "maximum": 50,
      "default": 10,
      "description": "Maximum number of sources to consult."
    },
    "time_range": {
      "type": "string",
      "enum": ["hour", "day", "week", "month", "year", "all"],
      "default": "all",
      "description": "Restrict results to a recency window."
    },
    "language": {
      "type": "string",
      "default": "en",
      "description": "ISO 639-1 code of the preferred response language."
    },
    "return_citations": {
      "type": "boolean",
      "default": true,
      "description": "Include source citations in the result."
    },
    "return_images": {
      "type": "boolean",
      "default": false,
      "description": "Include related images in the result."
    },
    "include_domains": {
      "type": "string",
      "description": "Comma-separated list of sites to restrict the search to."
    },
    "exclude_domains": {
      "type": "string",
      "description": "Comma-separated list of sites to exclude from the search."
    },
    "search_mode": {
      "type": "string",
      "enum": ["auto", "on", "off"],
      "description": "Force live search on or off; auto lets the service decide."
    },
    "recency_weight": {
      "type": "number",
      "minimum": 0,
      "maximum": 1,
      "default": 0.5,
      "description": "How strongly to prefer recent results."
    },
    "custom_date_from": {
      "type": "string",
      "description": "Custom start date (YYYY-MM-DD); overrides time_range."
    },
    "custom_date_to": {
      "type": "string",
      "description": "Custom end date (YYYY-MM-DD); overrides time_range."
    }
  },
  "required": ["query"]
}`

// InputSchema returns the JSON Schema advertised to the host.
func (t *Tool) InputSchema() json.RawMessage {
	return json.RawMessage(inputSchema)
}
