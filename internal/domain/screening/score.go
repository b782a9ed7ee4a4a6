package screening

import (
	"strings"

	"github.com/intake/intake/internal/domain/intake"
)

// psaPenaltyAge is the age past which a male with no prostate test accrues
// risk points. Deliberately independent from the transition engine's
// under-30 question skip.
const psaPenaltyAge = 50

// riskScore accumulates risk points across the record. Monotonic, no
// normalization; every contribution treats a missing answer as zero.
func riskScore(r *intake.ResponseRecord) int {
	score := 0

	if age, ok := recordAge(r); ok {
		switch {
		case age > 60:
			score += 3
		case age > 40:
			score += 2
		case age > 30:
			score += 1
		}
	}

	if pc := r.MedicalHistory.PersonalCancer; pc != nil && pc.Diagnosed {
		score += 4
	}
	if fc := r.MedicalHistory.FamilyCancer; fc != nil && fc.Diagnosed {
		score += 3
	}

	conditions := activeConditionCount(r)
	if conditions > 3 {
		conditions = 3
	}
	score += conditions

	if s := r.Lifestyle.Smoking; s != nil {
		if s.Current {
			score += 3
		}
		if s.PackYears != nil {
			switch {
			case *s.PackYears >= 30:
				score += 3
			case *s.PackYears >= 20:
				score += 2
			case *s.PackYears >= 10:
				score += 1
			}
		}
	}

	if a := r.Lifestyle.Alcohol; a != nil && a.DrinksPerWeek != nil && *a.DrinksPerWeek > 5 {
		score += (*a.DrinksPerWeek - 5) / 3
	}

	if sh := r.Lifestyle.SexualHealth; sh != nil && sh.UnprotectedSexOrHPVHIV != nil && *sh.UnprotectedSexOrHPVHIV {
		score += 2
	}
	if r.Lifestyle.Transplant != nil && *r.Lifestyle.Transplant {
		score += 2
	}

	if m := r.SexSpecificInfo.Male; m != nil {
		if m.UrinarySymptoms != nil && *m.UrinarySymptoms {
			score += 1
		}
		if m.TesticularIssues != nil && *m.TesticularIssues {
			score += 1
		}
		if age, ok := recordAge(r); ok && age > psaPenaltyAge {
			if m.ProstateTest != nil && !m.ProstateTest.Had {
				score += 2
			}
		}
	}

	if f := r.SexSpecificInfo.Female; f != nil {
		if f.PillYears != nil && *f.PillYears != "Never" {
			score += 1
		}
		if f.HormoneReplacementTherapy != nil && *f.HormoneReplacementTherapy {
			score += 1
		}
	}

	if age, ok := recordAge(r); ok {
		if age < 45 && r.Vaccinations.HPV != nil && !*r.Vaccinations.HPV {
			score += 1
		}
		if age > 40 && r.CancerScreening.HadScreening != nil && !*r.CancerScreening.HadScreening {
			score += 2
		}
	}
	if r.Vaccinations.HepB != nil && !*r.Vaccinations.HepB {
		score += 1
	}

	return score
}

// categorize maps a score to its bucket; boundary values fall into the lower
// category.
func categorize(score int) RiskCategory {
	switch {
	case score <= 3:
		return RiskLow
	case score <= 7:
		return RiskModerate
	case score <= 12:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

func recordAge(r *intake.ResponseRecord) (int, bool) {
	if r.Demographics.Age == nil {
		return 0, false
	}
	return *r.Demographics.Age, true
}

// activeConditionCount counts chronic-condition selections other than "None".
// "None" alongside real selections is permitted by the data layer; it just
// never scores.
func activeConditionCount(r *intake.ResponseRecord) int {
	count := 0
	for _, c := range r.MedicalHistory.ChronicConditions {
		if !strings.EqualFold(c, "None") {
			count++
		}
	}
	return count
}
