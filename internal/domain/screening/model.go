// Package screening derives cancer-screening recommendations from a
// completed (or partially completed) intake record. Everything here is a pure
// function of the record: no state, no I/O, deterministic output.
package screening

import "sort"

// Priority orders recommendations in the final report.
type Priority string

const (
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityStandard Priority = "standard"
)

var priorityRank = map[Priority]int{
	PriorityHigh:     0,
	PriorityMedium:   1,
	PriorityStandard: 2,
}

// RiskCategory buckets the numeric risk score.
type RiskCategory string

const (
	RiskLow      RiskCategory = "Low"
	RiskModerate RiskCategory = "Moderate"
	RiskHigh     RiskCategory = "High"
	RiskVeryHigh RiskCategory = "Very High"
)

// TestRecommendation is one recommended screening test.
type TestRecommendation struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Priority  Priority `json:"priority"`
	Reason    string   `json:"reason"`
	Frequency string   `json:"frequency"`
	Urgency   string   `json:"urgency,omitempty"`
}

// Report is the full recommendation output for one record.
type Report struct {
	RiskScore    int                  `json:"risk_score"`
	RiskCategory RiskCategory         `json:"risk_category"`
	Tests        []TestRecommendation `json:"tests"`
}

// SortByPriority orders tests high before medium before standard, keeping
// the existing order within each band.
func SortByPriority(tests []TestRecommendation) {
	sort.SliceStable(tests, func(i, j int) bool {
		return priorityRank[tests[i].Priority] < priorityRank[tests[j].Priority]
	})
}
