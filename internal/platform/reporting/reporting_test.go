package reporting

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/intake/intake/internal/domain/intake"
	"github.com/intake/intake/internal/domain/screening"
)

func iptr(v int) *int       { return &v }
func sptr(v string) *string { return &v }

func yesPtr() *intake.YesNo {
	y := intake.Yes
	return &y
}

func recordAged(age int) *intake.ResponseRecord {
	return &intake.ResponseRecord{
		Demographics: intake.Demographics{Age: iptr(age)},
	}
}

func upperGI(tests []screening.TestRecommendation) *screening.TestRecommendation {
	for i := range tests {
		if tests[i].Name == "Upper GI Endoscopy" {
			return &tests[i]
		}
	}
	return nil
}

func TestUpperGIRequiresAgeOver40(t *testing.T) {
	r := recordAged(40) // boundary: strictly over 40
	r.Lifestyle.HPylori = yesPtr()
	if got := appendUpperGI(r, nil); upperGI(got) != nil {
		t.Error("endoscopy recommended at exactly 40")
	}

	r.Demographics.Age = iptr(41)
	if got := appendUpperGI(r, nil); upperGI(got) == nil {
		t.Error("endoscopy missing for 41-year-old with H. pylori")
	}
}

func TestUpperGIRequiresAMarker(t *testing.T) {
	if got := appendUpperGI(recordAged(55), nil); len(got) != 0 {
		t.Errorf("marker-free record got %d tests", len(got))
	}
}

func TestUpperGIReasonListsOnlyMatchedMarkers(t *testing.T) {
	r := recordAged(55)
	r.Demographics.Ethnicity = sptr("East Asian")
	r.Lifestyle.HPylori = yesPtr()

	got := appendUpperGI(r, nil)
	gi := upperGI(got)
	if gi == nil {
		t.Fatal("endoscopy not recommended")
	}
	if !strings.Contains(gi.Reason, "elevated gastric cancer incidence") ||
		!strings.Contains(gi.Reason, "H. pylori infection") {
		t.Errorf("reason = %q, want both matched markers", gi.Reason)
	}
	if strings.Contains(gi.Reason, "family history") {
		t.Errorf("reason lists unmatched marker: %q", gi.Reason)
	}
}

func TestUpperGISkippedWhenEndoscopyAlreadyPresent(t *testing.T) {
	r := recordAged(55)
	r.Lifestyle.HPylori = yesPtr()

	existing := []screening.TestRecommendation{
		{Name: "Upper Endoscopy", Type: "gastric", Priority: screening.PriorityMedium},
	}
	got := appendUpperGI(r, existing)
	if len(got) != 1 {
		t.Errorf("got %d tests, want the existing endoscopy only", len(got))
	}
}

func TestUpperGIAppendKeepsPriorityOrder(t *testing.T) {
	r := recordAged(55)
	r.MedicalHistory.FamilyCancer = &intake.FamilyCancer{
		Diagnosed: true, Type: sptr("Gastric"),
	}

	existing := []screening.TestRecommendation{
		{Name: "Colonoscopy", Priority: screening.PriorityStandard},
	}
	got := appendUpperGI(r, existing)
	if len(got) != 2 {
		t.Fatalf("got %d tests, want 2", len(got))
	}
	if got[0].Name != "Upper GI Endoscopy" {
		t.Errorf("high-priority endoscopy not sorted ahead: %v", got[0].Name)
	}
}

func TestBuildReportReflectsSessionState(t *testing.T) {
	r := recordAged(55)
	r.Lifestyle.HPylori = yesPtr()
	sess := &intake.Session{
		ID:            uuid.New(),
		CurrentNodeID: intake.NodeEnd,
		Record:        r,
	}

	report := Build(sess)
	if report.SessionID != sess.ID {
		t.Error("report carries wrong session id")
	}
	if !report.Completed {
		t.Error("finished session not marked completed")
	}
	if report.Demographics.Age == nil || *report.Demographics.Age != 55 {
		t.Error("demographics not copied into report")
	}
	if upperGI(report.Tests) == nil {
		t.Error("report missing the report-layer endoscopy recommendation")
	}
	if report.RiskCategory == "" {
		t.Error("report missing risk category")
	}
}

func TestBuildReportEmptyRecord(t *testing.T) {
	sess := &intake.Session{
		ID:            uuid.New(),
		CurrentNodeID: intake.NodeStart,
		Record:        &intake.ResponseRecord{},
	}
	report := Build(sess)
	if report.Completed {
		t.Error("fresh session marked completed")
	}
	if report.Tests == nil {
		t.Error("tests should be an empty slice, not nil")
	}
	if report.RiskScore != 0 || report.RiskCategory != screening.RiskLow {
		t.Errorf("empty record scored %d/%s", report.RiskScore, report.RiskCategory)
	}
}
