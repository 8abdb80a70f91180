package domain

import "sort"

// AggregateResult maps a normalized category to the summed value of one
// harm field. Iteration order is insignificant; ordering is the ranker's
// job.
type AggregateResult map[string]float64

// Aggregate groups records by event type and sums the selected field per
// group. Categories with no contributing records never appear. Callers
// are expected to pass normalized records; Aggregate itself does not
// case-fold.
func Aggregate(records []StormRecord, field HarmField) AggregateResult {
	result := make(AggregateResult)
	for _, r := range records {
		result[r.EventType] += field.Select(r)
	}
	return result
}

// RankedEntry is one (category, value) pair of a top-N report.
type RankedEntry struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// TopNReport is an ordered sequence of ranked entries, largest value
// first, at most N long.
type TopNReport []RankedEntry

// Categories returns the report's labels in rank order.
func (r TopNReport) Categories() []string {
	out := make([]string, len(r))
	for i, e := range r {
		out[i] = e.Category
	}
	return out
}

// TopN ranks an aggregate result descending by value and truncates to the
// first n entries. Ties are broken lexicographically ascending by
// category so output is deterministic regardless of input order. Fewer
// than n categories returns all of them; n <= 0 returns an empty report.
func TopN(result AggregateResult, n int) TopNReport {
	if n <= 0 {
		return TopNReport{}
	}

	entries := make(TopNReport, 0, len(result))
	for category, value := range result {
		entries = append(entries, RankedEntry{Category: category, Value: value})
	}

	// Full sort: the dataset has well under 1000 categories, so a bounded
	// selection structure buys nothing here.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Category < entries[j].Category
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
