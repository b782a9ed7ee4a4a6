package intake

import "testing"

func TestApplyPartialGastrectomy(t *testing.T) {
	r := &ResponseRecord{}
	applyAnswer(r, "partialGastrectomy", answerValue{Text: "Yes"})
	if r.Surgery.PartialGastrectomy == nil || !*r.Surgery.PartialGastrectomy {
		t.Error("Yes answer not stored as true")
	}

	applyAnswer(r, "partialGastrectomy", answerValue{Text: "No"})
	if r.Surgery.PartialGastrectomy == nil || *r.Surgery.PartialGastrectomy {
		t.Error("No answer not stored as false")
	}
}

func TestApplyAllergyNoWritesNone(t *testing.T) {
	r := &ResponseRecord{}
	applyAnswer(r, "allergyStatus", answerValue{Text: "No"})
	if r.Allergies == nil || *r.Allergies != "None" {
		t.Errorf("allergies = %v, want None", r.Allergies)
	}
}
