package provider

import (
	"time"

	"github.com/lk2023060901/websearch-tool/websearch/types"
)

const dateLayout = "2006-01-02"

// fromDate converts the symbolic time range to the inclusive start date of
// the search window: a fixed calendar offset back from now, truncated to
// the calendar date. "all" and unrecognized values leave the start open.
func fromDate(tr types.TimeRange, now time.Time) string {
	var start time.Time
	switch tr {
	case types.TimeRangeHour:
		start = now.Add(-time.Hour)
	case types.TimeRangeDay:
		start = now.AddDate(0, 0, -1)
	case types.TimeRangeWeek:
		start = now.AddDate(0, 0, -7)
	case types.TimeRangeMonth:
		start = now.AddDate(0, -1, 0)
	case types.TimeRangeYear:
		start = now.AddDate(-1, 0, 0)
	default:
		return ""
	}
	return start.Format(dateLayout)
}

// dateWindow resolves the request's recency filter to concrete calendar
// dates. A custom date always wins over a derived one, per field; when the
// range derives no start date, no end date is asserted either.
func dateWindow(req *types.SearchRequest, now time.Time) (from, to string) {
	derived := fromDate(req.TimeRange, now)

	from = req.DateFrom
	if from == "" {
		from = derived
	}

	to = req.DateTo
	if to == "" && derived != "" {
		to = now.Format(dateLayout)
	}
	return from, to
}
