// Package reporting assembles the deliverable recommendation report for a
// session. The report layer also owns the upper-GI endoscopy rule, which is
// computed at report time on top of the screening engine's output.
package reporting

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/intake/intake/internal/domain/catalog"
	"github.com/intake/intake/internal/domain/intake"
	"github.com/intake/intake/internal/domain/screening"
)

// Report is the serializable value handed to the document/delivery
// collaborator. Deterministic for a given session state.
type Report struct {
	SessionID    uuid.UUID                       `json:"session_id"`
	GeneratedAt  time.Time                       `json:"generated_at"`
	Completed    bool                            `json:"completed"`
	Demographics intake.Demographics             `json:"demographics"`
	RiskScore    int                             `json:"risk_score"`
	RiskCategory screening.RiskCategory          `json:"risk_category"`
	Tests        []screening.TestRecommendation  `json:"tests"`
}

// Build produces the report for a session, evaluating the screening engine
// and appending the report-layer upper-GI rule.
func Build(sess *intake.Session) Report {
	rec := screening.Recommend(sess.Record)
	tests := appendUpperGI(sess.Record, rec.Tests)
	return Report{
		SessionID:    sess.ID,
		GeneratedAt:  time.Now().UTC(),
		Completed:    sess.Completed(),
		Demographics: sess.Record.Demographics,
		RiskScore:    rec.RiskScore,
		RiskCategory: rec.RiskCategory,
		Tests:        tests,
	}
}

// appendUpperGI adds an upper-GI endoscopy recommendation for patients over
// 40 with gastric risk markers, unless an endoscopy is already recommended.
// The reason names only the markers that actually matched.
func appendUpperGI(r *intake.ResponseRecord, tests []screening.TestRecommendation) []screening.TestRecommendation {
	if r == nil || r.Demographics.Age == nil || *r.Demographics.Age <= 40 {
		return tests
	}

	var matched []string
	if eth := r.Demographics.Ethnicity; eth != nil && catalog.GastricHighRiskEthnicity(*eth) {
		matched = append(matched, "ethnicity with elevated gastric cancer incidence")
	}
	if familyGastric(r) {
		matched = append(matched, "family history of gastric cancer")
	}
	if r.Lifestyle.HPylori != nil && *r.Lifestyle.HPylori == intake.Yes {
		matched = append(matched, "H. pylori infection")
	}
	if len(matched) == 0 {
		return tests
	}

	for _, t := range tests {
		if strings.Contains(strings.ToLower(t.Name), "endoscopy") {
			return tests
		}
	}

	tests = append(tests, screening.TestRecommendation{
		Name:      "Upper GI Endoscopy",
		Type:      "gastric",
		Priority:  screening.PriorityHigh,
		Reason:    "Gastric cancer risk: " + strings.Join(matched, ", "),
		Frequency: "As advised by physician",
	})

	// A high-priority append lands at the tail; restore the global ordering
	// guarantee.
	sorted := make([]screening.TestRecommendation, len(tests))
	copy(sorted, tests)
	screening.SortByPriority(sorted)
	return sorted
}

func familyGastric(r *intake.ResponseRecord) bool {
	fc := r.MedicalHistory.FamilyCancer
	if fc == nil || !fc.Diagnosed || fc.Type == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*fc.Type), "gastric")
}
