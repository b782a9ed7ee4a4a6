package screening

import (
	"fmt"
	"strings"

	"github.com/intake/intake/internal/domain/intake"
)

// The rule catalogue. Rules run in a fixed order and each appends zero or
// more tests; the final list is then sorted globally by priority. Every rule
// must tolerate a partially filled record: a missing answer reads as
// "condition false", never as a crash.

type rule func(r *intake.ResponseRecord) []TestRecommendation

var ruleCatalogue = []rule{
	cervicalRule,
	breastRule,
	ovarianRule,
	colorectalRule,
	prostateRule,
	lungRule,
	skinRule,
	oralRule,
	renalRule,
	liverRule,
}

func cervicalRule(r *intake.ResponseRecord) []TestRecommendation {
	age, ok := recordAge(r)
	if !ok || !r.IsFemale() {
		return nil
	}

	priority := PriorityStandard
	reason := "Routine cervical cancer screening for your age group"
	if r.Vaccinations.HPV != nil && !*r.Vaccinations.HPV {
		priority = PriorityMedium
		reason = "Cervical cancer screening; no HPV vaccination on record"
	}

	switch {
	case age >= 21 && age <= 29:
		return []TestRecommendation{{
			Name:      "Pap Smear",
			Type:      "cervical",
			Priority:  priority,
			Reason:    reason,
			Frequency: "Every 3 years",
		}}
	case age >= 30 && age <= 65:
		return []TestRecommendation{{
			Name:      "HPV DNA Test",
			Type:      "cervical",
			Priority:  priority,
			Reason:    reason,
			Frequency: "Every 5 years",
		}}
	}
	return nil
}

func breastRule(r *intake.ResponseRecord) []TestRecommendation {
	age, ok := recordAge(r)
	if !ok || !r.IsFemale() || age < 40 {
		return nil
	}
	return []TestRecommendation{{
		Name:      "Mammogram",
		Type:      "breast",
		Priority:  PriorityStandard,
		Reason:    "Routine breast cancer screening from age 40",
		Frequency: "Every 1-2 years",
	}}
}

// ovarianRule fires on any positive Goff-criteria symptom flag.
func ovarianRule(r *intake.ResponseRecord) []TestRecommendation {
	g := r.Symptoms.GoffSymptomIndex
	if g == nil {
		return nil
	}
	if !anyTrue(g.Bloating, g.Pain, g.Fullness, g.Urinary, g.AbdomenSize) {
		return nil
	}
	reason := "Symptoms matching the Goff ovarian cancer symptom index"
	return []TestRecommendation{
		{
			Name:      "Transvaginal Ultrasound",
			Type:      "ovarian",
			Priority:  PriorityHigh,
			Reason:    reason,
			Frequency: "Once, then as advised",
			Urgency:   "as soon as possible",
		},
		{
			Name:      "CA-125 Blood Test",
			Type:      "ovarian",
			Priority:  PriorityHigh,
			Reason:    reason,
			Frequency: "Once, then as advised",
			Urgency:   "as soon as possible",
		},
	}
}

func colorectalRule(r *intake.ResponseRecord) []TestRecommendation {
	age, ok := recordAge(r)
	if !ok || age < 45 {
		return nil
	}
	reason := "Routine colorectal cancer screening from age 45"
	return []TestRecommendation{
		{
			Name:      "Colonoscopy",
			Type:      "colorectal",
			Priority:  PriorityStandard,
			Reason:    reason,
			Frequency: "Every 10 years",
		},
		{
			Name:      "FIT Test",
			Type:      "colorectal",
			Priority:  PriorityStandard,
			Reason:    reason,
			Frequency: "Annual",
		},
	}
}

// prostateRule counts risk factors to pick both the age threshold (45 with
// any factor, 50 without) and the priority escalation.
func prostateRule(r *intake.ResponseRecord) []TestRecommendation {
	if !r.IsMale() {
		return nil
	}
	age, ok := recordAge(r)
	if !ok {
		return nil
	}

	var factors []string
	if familyTypeContains(r, "prostate") {
		factors = append(factors, "family history of prostate cancer")
	}
	if eth := r.Demographics.Ethnicity; eth != nil && strings.Contains(*eth, "Black or African American") {
		factors = append(factors, "ethnicity with elevated prostate cancer incidence")
	}
	m := r.SexSpecificInfo.Male
	if m != nil && m.UrinarySymptoms != nil && *m.UrinarySymptoms {
		factors = append(factors, "urinary symptoms")
	}
	if hasHighRiskMutation(r) {
		factors = append(factors, "high-risk genetic mutation")
	}
	if m != nil && m.ProstateTest != nil && m.ProstateTest.AbnormalResult != nil && *m.ProstateTest.AbnormalResult {
		factors = append(factors, "prior abnormal prostate test")
	}
	if chemicalExposure(r) {
		factors = append(factors, "chemical exposure history")
	}
	if r.Lifestyle.BMI != nil && *r.Lifestyle.BMI >= 30 {
		factors = append(factors, "BMI of 30 or above")
	}

	threshold := 50
	if len(factors) >= 1 {
		threshold = 45
	}
	if age < threshold {
		return nil
	}

	priority := PriorityStandard
	switch {
	case len(factors) >= 3:
		priority = PriorityHigh
	case len(factors) >= 1:
		priority = PriorityMedium
	}

	reason := "Routine prostate cancer screening"
	if len(factors) > 0 {
		reason = "Prostate cancer screening; risk factors: " + strings.Join(factors, ", ")
	}
	return []TestRecommendation{
		{
			Name:      "PSA Blood Test",
			Type:      "prostate",
			Priority:  priority,
			Reason:    reason,
			Frequency: "Every 1-2 years",
		},
		{
			Name:      "Digital Rectal Exam",
			Type:      "prostate",
			Priority:  priority,
			Reason:    reason,
			Frequency: "Every 1-2 years",
		},
	}
}

func lungRule(r *intake.ResponseRecord) []TestRecommendation {
	age, ok := recordAge(r)
	if !ok || age < 50 {
		return nil
	}
	s := r.Lifestyle.Smoking
	if s == nil || s.PackYears == nil || *s.PackYears < 20 {
		return nil
	}
	return []TestRecommendation{{
		Name:      "Low-Dose CT Scan",
		Type:      "lung",
		Priority:  PriorityHigh,
		Reason:    fmt.Sprintf("Age %d with %.1f pack-years of smoking history", age, *s.PackYears),
		Frequency: "Annual",
	}}
}

// skinRule counts checklist factors; sun exposure is not collected by the
// questionnaire so that factor reads false, per the missing-answer contract.
func skinRule(r *intake.ResponseRecord) []TestRecommendation {
	factors := 0
	if familyTypeContains(r, "skin") || familyTypeContains(r, "melanoma") {
		factors++
	}
	if personalTypeContains(r, "skin") || personalTypeContains(r, "melanoma") {
		factors++
	}
	if eth := r.Demographics.Ethnicity; eth != nil && strings.Contains(*eth, "White or Caucasian") {
		factors++
	}
	if immunosuppressed(r) {
		factors++
	}
	if factors == 0 {
		return nil
	}

	priority := PriorityMedium
	examFrequency := "Annual"
	if factors >= 3 {
		priority = PriorityHigh
		examFrequency = "Every 6 months"
	}

	reason := fmt.Sprintf("Skin cancer screening; %d risk factor(s) identified", factors)
	return []TestRecommendation{
		{
			Name:      "Clinical Skin Exam",
			Type:      "skin",
			Priority:  priority,
			Reason:    reason,
			Frequency: examFrequency,
		},
		{
			Name:      "Skin Self-Exam",
			Type:      "skin",
			Priority:  priority,
			Reason:    reason,
			Frequency: "Monthly",
		},
	}
}

// oralRule gates eligibility on broad factors, then re-checks each candidate
// against the record so the reason only lists what literally holds for this
// patient (e.g. smoking history makes the rule eligible, but "tobacco use" is
// only listed for current smokers).
func oralRule(r *intake.ResponseRecord) []TestRecommendation {
	age, ok := recordAge(r)
	if !ok || age < 30 || age > 65 {
		return nil
	}

	factors := 0
	if r.Vaccinations.HPV != nil && !*r.Vaccinations.HPV {
		factors++
	}
	if sh := r.Lifestyle.SexualHealth; sh != nil && sh.UnprotectedSexOrHPVHIV != nil && *sh.UnprotectedSexOrHPVHIV {
		factors++
	}
	if anySmokingHistory(r) {
		factors++
	}
	if drinksPerWeek(r) > 7 {
		factors++
	}
	if familyTypeContains(r, "oral") {
		factors++
	}
	if immunosuppressed(r) {
		factors++
	}
	if factors == 0 {
		return nil
	}

	priority := PriorityMedium
	if factors >= 3 {
		priority = PriorityHigh
	}

	var applicable []string
	if r.Vaccinations.HPV != nil && !*r.Vaccinations.HPV {
		applicable = append(applicable, "no HPV vaccination")
	}
	if sh := r.Lifestyle.SexualHealth; sh != nil && sh.UnprotectedSexOrHPVHIV != nil && *sh.UnprotectedSexOrHPVHIV {
		applicable = append(applicable, "HPV/HIV exposure risk")
	}
	if s := r.Lifestyle.Smoking; s != nil && s.Current {
		applicable = append(applicable, "tobacco use")
	}
	if drinksPerWeek(r) > 7 {
		applicable = append(applicable, "alcohol above 7 drinks/week")
	}
	if familyTypeContains(r, "oral") {
		applicable = append(applicable, "family history of oral cancer")
	}
	if immunosuppressed(r) {
		applicable = append(applicable, "immunosuppression")
	}

	reason := "Oral/throat cancer screening"
	if len(applicable) > 0 {
		reason = "Oral/throat cancer screening; risk factors: " + strings.Join(applicable, ", ")
	}
	return []TestRecommendation{{
		Name:      "Comprehensive Oral Exam with Cytology",
		Type:      "oral",
		Priority:  priority,
		Reason:    reason,
		Frequency: "Annual",
	}}
}

// VHLSuspicion derives the Von Hippel-Lindau heuristic: Yes iff a kidney
// issue or a brain/spinal/eye tumor was reported, independent of anything
// else in the record.
func VHLSuspicion(r *intake.ResponseRecord) intake.YesNo {
	if boolTrue(r.MedicalHistory.KidneyIssue) || boolTrue(r.MedicalHistory.BrainSpinalEyeTumor) {
		return intake.Yes
	}
	return intake.No
}

func renalRule(r *intake.ResponseRecord) []TestRecommendation {
	age, ok := recordAge(r)
	if !ok || age < 40 {
		return nil
	}
	familyRenal := familyTypeContains(r, "renal")
	hypertensive := boolTrue(r.MedicalHistory.Hypertension)
	vhl := VHLSuspicion(r) == intake.Yes
	if !familyRenal && !hypertensive && !vhl {
		return nil
	}

	var reasons []string
	if familyRenal {
		reasons = append(reasons, "family history of renal cancer")
	}
	if hypertensive {
		reasons = append(reasons, "hypertension")
	}
	if vhl {
		reasons = append(reasons, "possible VHL syndrome indicators")
	}
	reason := "Renal screening; " + strings.Join(reasons, ", ")

	return []TestRecommendation{
		{
			Name:      "Renal Ultrasound",
			Type:      "renal",
			Priority:  PriorityHigh,
			Reason:    reason,
			Frequency: "Annual",
		},
		{
			Name:      "Urinalysis",
			Type:      "renal",
			Priority:  PriorityHigh,
			Reason:    reason,
			Frequency: "Annual",
		},
	}
}

func liverRule(r *intake.ResponseRecord) []TestRecommendation {
	age, ok := recordAge(r)
	if !ok || age < 40 {
		return nil
	}
	hepatic := hasCondition(r, "Hepatitis B") || hasCondition(r, "Hepatitis C") ||
		hasCondition(r, "Cirrhosis")
	transplant := boolTrue(r.Lifestyle.Transplant)
	if !hepatic && !transplant {
		return nil
	}

	reason := "Liver cancer surveillance for chronic liver disease risk"
	tests := []TestRecommendation{{
		Name:      "Liver Ultrasound",
		Type:      "liver",
		Priority:  PriorityHigh,
		Reason:    reason,
		Frequency: "Every 6 months",
	}}

	// AFP is withheld during pregnancy; elevated levels are expected and
	// uninterpretable.
	if !currentlyPregnant(r) {
		tests = append(tests, TestRecommendation{
			Name:      "AFP Blood Test",
			Type:      "liver",
			Priority:  PriorityHigh,
			Reason:    reason,
			Frequency: "Every 6 months",
		})
	}
	return tests
}

// -- shared predicates, all nil-safe --

func boolTrue(b *bool) bool {
	return b != nil && *b
}

func anyTrue(flags ...*bool) bool {
	for _, f := range flags {
		if boolTrue(f) {
			return true
		}
	}
	return false
}

func familyTypeContains(r *intake.ResponseRecord, sub string) bool {
	fc := r.MedicalHistory.FamilyCancer
	if fc == nil || !fc.Diagnosed || fc.Type == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*fc.Type), strings.ToLower(sub))
}

func personalTypeContains(r *intake.ResponseRecord, sub string) bool {
	pc := r.MedicalHistory.PersonalCancer
	if pc == nil || !pc.Diagnosed || pc.Type == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*pc.Type), strings.ToLower(sub))
}

func hasCondition(r *intake.ResponseRecord, name string) bool {
	for _, c := range r.MedicalHistory.ChronicConditions {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

func hasHighRiskMutation(r *intake.ResponseRecord) bool {
	if r.MedicalHistory.BRCAMutationStatus != nil && *r.MedicalHistory.BRCAMutationStatus == intake.Yes {
		return true
	}
	for _, m := range r.MedicalHistory.GeneticMutations {
		lower := strings.ToLower(m)
		if strings.Contains(lower, "brca1") || strings.Contains(lower, "brca2") ||
			strings.Contains(lower, "lynch") {
			return true
		}
	}
	return false
}

func chemicalExposure(r *intake.ResponseRecord) bool {
	ce := r.Lifestyle.ChemicalExposure
	if ce == nil {
		return false
	}
	return boolTrue(ce.AgentOrange) || boolTrue(ce.Pesticides)
}

func immunosuppressed(r *intake.ResponseRecord) bool {
	if hasCondition(r, "HIV") || boolTrue(r.Lifestyle.Transplant) {
		return true
	}
	for _, m := range r.Medications {
		if strings.EqualFold(m, "Steroids") {
			return true
		}
	}
	return false
}

func anySmokingHistory(r *intake.ResponseRecord) bool {
	s := r.Lifestyle.Smoking
	if s == nil {
		return false
	}
	if s.Current {
		return true
	}
	if s.Years != nil && *s.Years > 0 {
		return true
	}
	return s.PackYears != nil && *s.PackYears > 0
}

func drinksPerWeek(r *intake.ResponseRecord) int {
	a := r.Lifestyle.Alcohol
	if a == nil || a.DrinksPerWeek == nil {
		return 0
	}
	return *a.DrinksPerWeek
}

func currentlyPregnant(r *intake.ResponseRecord) bool {
	f := r.SexSpecificInfo.Female
	return r.IsFemale() && f != nil && boolTrue(f.CurrentPregnancy)
}
