package screening

import "github.com/intake/intake/internal/domain/intake"

// Recommend evaluates the full rule catalogue over the record and returns the
// risk score, its category, and the priority-sorted test list. The record is
// never mutated, so calling twice yields identical output.
func Recommend(r *intake.ResponseRecord) Report {
	if r == nil {
		r = &intake.ResponseRecord{}
	}

	var tests []TestRecommendation
	for _, rule := range ruleCatalogue {
		tests = append(tests, rule(r)...)
	}
	SortByPriority(tests)
	if tests == nil {
		tests = []TestRecommendation{}
	}

	score := riskScore(r)
	return Report{
		RiskScore:    score,
		RiskCategory: categorize(score),
		Tests:        tests,
	}
}
