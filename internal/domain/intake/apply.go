package intake

import "strconv"

// applyAnswer writes a validated answer into the record. It is only called
// after validateAnswer succeeds, so every write here is total: a node either
// commits all of its fields or (on validation failure upstream) none.
func applyAnswer(r *ResponseRecord, nodeID string, v answerValue) {
	switch nodeID {
	case NodeStart, NodeSummary, NodeEnd:
		// Navigation-only nodes record nothing.

	case nodeAge:
		r.Demographics.Age = intPtr(v)
	case "sex":
		sex := Sex(v.Text)
		r.Demographics.Sex = &sex
	case "ethnicity":
		r.Demographics.Ethnicity = strPtr(v)
	case "country":
		r.Demographics.Country = strPtr(v)

	case "personalCancer":
		r.MedicalHistory.PersonalCancer = &PersonalCancer{Diagnosed: v.Text == "Yes"}
	case "personalCancerType":
		if r.MedicalHistory.PersonalCancer == nil {
			r.MedicalHistory.PersonalCancer = &PersonalCancer{Diagnosed: true}
		}
		r.MedicalHistory.PersonalCancer.Type = strPtr(v)
	case "personalCancerAge":
		if r.MedicalHistory.PersonalCancer == nil {
			r.MedicalHistory.PersonalCancer = &PersonalCancer{Diagnosed: true}
		}
		r.MedicalHistory.PersonalCancer.AgeAtDiagnosis = intPtr(v)

	case "familyCancer":
		r.MedicalHistory.FamilyCancer = &FamilyCancer{Diagnosed: v.Text == "Yes"}
	case "familyCancerRelation":
		rel := FamilyRelation(v.Text)
		familyCancer(r).Relation = &rel
	case "familyCancerType":
		familyCancer(r).Type = strPtr(v)
	case "familyCancerAge":
		familyCancer(r).AgeAtDiagnosis = intPtr(v)

	case "chronicConditions":
		r.MedicalHistory.ChronicConditions = append([]string(nil), v.List...)
	case "hypertension":
		r.MedicalHistory.Hypertension = boolPtr(v)
	case "brcaMutation":
		r.MedicalHistory.BRCAMutationStatus = yesNoPtr(v)
	case "geneticMutations":
		r.MedicalHistory.GeneticMutations = append([]string(nil), v.List...)
	case "perniciousAnemia":
		r.MedicalHistory.PerniciousAnemia = yesNoPtr(v)
	case "gastricGeneMutation":
		r.MedicalHistory.GastricGeneMutation = yesNoPtr(v)
	case "kidneyIssue":
		r.MedicalHistory.KidneyIssue = boolPtr(v)
	case "brainSpinalEyeTumor":
		r.MedicalHistory.BrainSpinalEyeTumor = boolPtr(v)

	case "smokingStatus":
		r.Lifestyle.Smoking = &Smoking{Current: v.Text == "Yes"}
	case "packsPerDay":
		s := r.smoking()
		packs := v.Number
		s.PacksPerDay = &packs
		recomputePackYears(s)
	case "smokingYears":
		s := r.smoking()
		years := int(v.Number)
		s.Years = &years
		recomputePackYears(s)

	case "alcoholStatus":
		r.Lifestyle.Alcohol = &Alcohol{Consumes: v.Text == "Yes"}
	case "drinksPerWeek":
		if r.Lifestyle.Alcohol == nil {
			r.Lifestyle.Alcohol = &Alcohol{Consumes: true}
		}
		drinks := int(v.Number)
		r.Lifestyle.Alcohol.DrinksPerWeek = &drinks

	case "saltySmokedFoods":
		r.Lifestyle.SaltySmokedFoods = strPtr(v)
	case "fruitVegServings":
		r.Lifestyle.FruitVegServings = strPtr(v)
	case "sexualHealth":
		r.Lifestyle.SexualHealth = &SexualHealth{UnprotectedSexOrHPVHIV: boolPtr(v)}
	case "transplant":
		r.Lifestyle.Transplant = boolPtr(v)
	case "hPylori":
		r.Lifestyle.HPylori = yesNoPtr(v)
	case "hPyloriEradication":
		r.Lifestyle.HPyloriEradication = yesNoPtr(v)
	case "gastritisUlcer":
		r.Lifestyle.GastritisUlcer = yesNoPtr(v)
	case "partialGastrectomy":
		r.Surgery.PartialGastrectomy = boolPtr(v)
	case "agentOrange":
		chemical(r).AgentOrange = boolPtr(v)
	case "pesticides":
		chemical(r).Pesticides = boolPtr(v)
	case "bmi":
		bmi := v.Number
		r.Lifestyle.BMI = &bmi

	case "swallowingDifficulty":
		r.Symptoms.SwallowingDifficulty = boolPtr(v)
	case "blackStool":
		r.Symptoms.BlackStool = boolPtr(v)
	case "weightLoss":
		r.Symptoms.WeightLoss = boolPtr(v)
	case "vomiting":
		r.Symptoms.Vomiting = boolPtr(v)
	case "epigastricPain":
		r.Symptoms.EpigastricPain = boolPtr(v)
	case "painWakesAtNight":
		r.Symptoms.PainWakesAtNight = boolPtr(v)
	case "indigestion":
		r.Symptoms.Indigestion = strPtr(v)

	case "urinarySymptoms":
		r.male().UrinarySymptoms = boolPtr(v)
	case nodeProstate:
		r.male().ProstateTest = &ProstateTest{Had: v.Text == "Yes"}
	case "prostateTestAge":
		// Stored as text so it shares a field with the auto-filled "N/A".
		age := strconv.Itoa(int(v.Number))
		prostateTest(r).AgeAtLast = &age
	case "prostateTestResult":
		abnormal := v.Text == "Abnormal"
		prostateTest(r).AbnormalResult = &abnormal
	case nodeTesticular:
		r.male().TesticularIssues = boolPtr(v)

	case "hpvVaccine":
		r.Vaccinations.HPV = boolPtr(v)
		// The female record carries its own copy of the HPV answer; keep the
		// two paths consistent.
		if r.IsFemale() {
			r.female().HPVVaccine = boolPtr(v)
		}
	case "hepBVaccine":
		r.Vaccinations.HepB = boolPtr(v)

	case "cancerScreening":
		r.CancerScreening.HadScreening = boolPtr(v)
	case "screeningDetails":
		r.CancerScreening.Details = strPtr(v)

	case "medications":
		r.Medications = append([]string(nil), v.List...)
	case "allergyStatus":
		if v.Text == "No" {
			none := "None"
			r.Allergies = &none
		}
	case "allergyDetails":
		r.Allergies = strPtr(v)

	case "menarcheAge":
		r.female().MenarcheAge = intPtr(v)
	case "menstruationStatus":
		status := MenstruationStatus(v.Text)
		r.female().MenstruationStatus = &status
	case "menopauseAge":
		r.female().MenopauseAge = intPtr(v)
	case "currentPregnancy":
		r.female().CurrentPregnancy = boolPtr(v)
	case "pregnancyHistory":
		r.female().Pregnancy = &Pregnancy{HadPregnancy: v.Text == "Yes"}
	case "ageAtFirstPregnancy":
		f := r.female()
		if f.Pregnancy == nil {
			f.Pregnancy = &Pregnancy{HadPregnancy: true}
		}
		f.Pregnancy.AgeAtFirst = intPtr(v)
	case "numberOfBirths":
		r.female().NumberOfBirths = strPtr(v)
	case "pillYears":
		r.female().PillYears = strPtr(v)
	case "hormoneReplacement":
		r.female().HormoneReplacementTherapy = boolPtr(v)
	case "tubalLigation":
		r.female().TubalLigation = boolPtr(v)
	case "ovaryRemoved":
		removal := OvaryRemoval(v.Text)
		r.female().OvaryRemoved = &removal
	case "ivfHistory":
		r.female().IVFHistory = boolPtr(v)
	case "endometriosis":
		r.MedicalHistory.Endometriosis = boolPtr(v)

	case "goffBloating":
		r.goff().Bloating = boolPtr(v)
	case "goffPain":
		r.goff().Pain = boolPtr(v)
	case "goffFullness":
		r.goff().Fullness = boolPtr(v)
	case "goffUrinary":
		r.goff().Urinary = boolPtr(v)
	case "goffAbdomenSize":
		r.goff().AbdomenSize = boolPtr(v)
	}
}

// recomputePackYears derives pack-years whenever both inputs are known.
// Pack-years is never entered directly.
func recomputePackYears(s *Smoking) {
	if s.PacksPerDay == nil || s.Years == nil {
		return
	}
	py := round1(*s.PacksPerDay * float64(*s.Years))
	s.PackYears = &py
}

func familyCancer(r *ResponseRecord) *FamilyCancer {
	if r.MedicalHistory.FamilyCancer == nil {
		r.MedicalHistory.FamilyCancer = &FamilyCancer{Diagnosed: true}
	}
	return r.MedicalHistory.FamilyCancer
}

func chemical(r *ResponseRecord) *ChemicalExposure {
	if r.Lifestyle.ChemicalExposure == nil {
		r.Lifestyle.ChemicalExposure = &ChemicalExposure{}
	}
	return r.Lifestyle.ChemicalExposure
}

func prostateTest(r *ResponseRecord) *ProstateTest {
	m := r.male()
	if m.ProstateTest == nil {
		m.ProstateTest = &ProstateTest{Had: true}
	}
	return m.ProstateTest
}

func strPtr(v answerValue) *string {
	s := v.Text
	return &s
}

func intPtr(v answerValue) *int {
	n := int(v.Number)
	return &n
}

func boolPtr(v answerValue) *bool {
	b := v.Text == "Yes"
	return &b
}

func yesNoPtr(v answerValue) *YesNo {
	yn := YesNo(v.Text)
	return &yn
}
