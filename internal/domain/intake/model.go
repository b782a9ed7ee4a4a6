package intake

import (
	"time"

	"github.com/google/uuid"
)

// Sex is the biological-sex answer driving the male/female question branches.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// YesNo is the tri-state answer for yes/no questions: nil means not yet asked.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// FamilyRelation identifies the first-degree relative in a family cancer
// history answer.
type FamilyRelation string

const (
	RelationParent  FamilyRelation = "Parent"
	RelationSibling FamilyRelation = "Sibling"
	RelationChild   FamilyRelation = "Child"
)

// MenstruationStatus is the menopausal-state answer.
type MenstruationStatus string

const (
	Premenopausal  MenstruationStatus = "Premenopausal"
	Postmenopausal MenstruationStatus = "Postmenopausal"
)

// OvaryRemoval records oophorectomy history.
type OvaryRemoval string

const (
	OvaryLeft  OvaryRemoval = "Left"
	OvaryRight OvaryRemoval = "Right"
	OvaryBoth  OvaryRemoval = "Both"
	OvaryNone  OvaryRemoval = "None"
)

// Demographics holds the opening demographic answers.
type Demographics struct {
	Age       *int    `json:"age,omitempty"`
	Sex       *Sex    `json:"sex,omitempty"`
	Ethnicity *string `json:"ethnicity,omitempty"`
	Country   *string `json:"country,omitempty"`
}

// PersonalCancer is the personal cancer-history answer group.
type PersonalCancer struct {
	Diagnosed      bool    `json:"diagnosed"`
	Type           *string `json:"type,omitempty"`
	AgeAtDiagnosis *int    `json:"age_at_diagnosis,omitempty"`
}

// FamilyCancer is the first-degree family cancer-history answer group.
type FamilyCancer struct {
	Diagnosed      bool            `json:"diagnosed"`
	Relation       *FamilyRelation `json:"relation,omitempty"`
	Type           *string         `json:"type,omitempty"`
	AgeAtDiagnosis *int            `json:"age_at_diagnosis,omitempty"`
}

// MedicalHistory aggregates the medical-history answers.
//
// ChronicConditions and GeneticMutations are raw selections: "None" is not
// forced to be exclusive with other members, matching the permissive data
// layer of the original questionnaire.
type MedicalHistory struct {
	PersonalCancer      *PersonalCancer `json:"personal_cancer,omitempty"`
	FamilyCancer        *FamilyCancer   `json:"family_cancer,omitempty"`
	ChronicConditions   []string        `json:"chronic_conditions,omitempty"`
	BRCAMutationStatus  *YesNo          `json:"brca_mutation_status,omitempty"`
	GeneticMutations    []string        `json:"genetic_mutations,omitempty"`
	PerniciousAnemia    *YesNo          `json:"pernicious_anemia,omitempty"`
	GastricGeneMutation *YesNo          `json:"gastric_gene_mutation,omitempty"`
	KidneyIssue         *bool           `json:"kidney_issue,omitempty"`
	BrainSpinalEyeTumor *bool           `json:"brain_spinal_eye_tumor,omitempty"`
	Endometriosis       *bool           `json:"endometriosis,omitempty"`
	Hypertension        *bool           `json:"hypertension,omitempty"`
}

// Smoking is the tobacco-use answer group. PackYears is always derived from
// PacksPerDay and Years, never entered directly.
type Smoking struct {
	Current     bool     `json:"current"`
	PacksPerDay *float64 `json:"packs_per_day,omitempty"`
	Years       *int     `json:"years,omitempty"`
	PackYears   *float64 `json:"pack_years,omitempty"`
}

// Alcohol is the alcohol-use answer group.
type Alcohol struct {
	Consumes      bool `json:"consumes"`
	DrinksPerWeek *int `json:"drinks_per_week,omitempty"`
}

// SexualHealth carries the combined unprotected-sex / HPV / HIV exposure flag.
type SexualHealth struct {
	UnprotectedSexOrHPVHIV *bool `json:"unprotected_sex_or_hpv_hiv,omitempty"`
}

// ChemicalExposure carries occupational/environmental exposure flags.
type ChemicalExposure struct {
	AgentOrange *bool `json:"agent_orange,omitempty"`
	Pesticides  *bool `json:"pesticides,omitempty"`
}

// Lifestyle aggregates the lifestyle answers.
type Lifestyle struct {
	Smoking             *Smoking          `json:"smoking,omitempty"`
	Alcohol             *Alcohol          `json:"alcohol,omitempty"`
	SaltySmokedFoods    *string           `json:"salty_smoked_foods,omitempty"`
	FruitVegServings    *string           `json:"fruit_veg_servings,omitempty"`
	SexualHealth        *SexualHealth     `json:"sexual_health,omitempty"`
	Transplant          *bool             `json:"transplant,omitempty"`
	HPylori             *YesNo            `json:"h_pylori,omitempty"`
	HPyloriEradication  *YesNo            `json:"h_pylori_eradication,omitempty"`
	GastritisUlcer      *YesNo            `json:"gastritis_ulcer,omitempty"`
	ChemicalExposure    *ChemicalExposure `json:"chemical_exposure,omitempty"`
	BMI                 *float64          `json:"bmi,omitempty"`
}

// ProstateTest is the PSA-screening history answer group. AgeAtLast is a
// string so the auto-filled "N/A" for skipped under-30 males round-trips.
type ProstateTest struct {
	Had            bool    `json:"had"`
	AgeAtLast      *string `json:"age_at_last,omitempty"`
	AbnormalResult *bool   `json:"abnormal_result,omitempty"`
}

// MaleInfo holds answers only collected when sex is Male.
type MaleInfo struct {
	UrinarySymptoms  *bool         `json:"urinary_symptoms,omitempty"`
	TesticularIssues *bool         `json:"testicular_issues,omitempty"`
	ProstateTest     *ProstateTest `json:"prostate_test,omitempty"`
}

// Pregnancy is the pregnancy-history answer group.
type Pregnancy struct {
	HadPregnancy bool `json:"had_pregnancy"`
	AgeAtFirst   *int `json:"age_at_first,omitempty"`
}

// FemaleInfo holds answers only collected when sex is Female.
type FemaleInfo struct {
	MenarcheAge               *int                `json:"menarche_age,omitempty"`
	MenstruationStatus        *MenstruationStatus `json:"menstruation_status,omitempty"`
	MenopauseAge              *int                `json:"menopause_age,omitempty"`
	CurrentPregnancy          *bool               `json:"current_pregnancy,omitempty"`
	Pregnancy                 *Pregnancy          `json:"pregnancy,omitempty"`
	NumberOfBirths            *string             `json:"number_of_births,omitempty"`
	PillYears                 *string             `json:"pill_years,omitempty"`
	HormoneReplacementTherapy *bool               `json:"hormone_replacement_therapy,omitempty"`
	TubalLigation             *bool               `json:"tubal_ligation,omitempty"`
	OvaryRemoved              *OvaryRemoval       `json:"ovary_removed,omitempty"`
	IVFHistory                *bool               `json:"ivf_history,omitempty"`
	HPVVaccine                *bool               `json:"hpv_vaccine,omitempty"`
}

// SexSpecificInfo holds the mutually exclusive male/female branches. The
// transition engine only ever populates the branch matching demographics.sex.
type SexSpecificInfo struct {
	Male   *MaleInfo   `json:"male,omitempty"`
	Female *FemaleInfo `json:"female,omitempty"`
}

// GoffIndex is the five-flag ovarian symptom screen, collected female-only.
type GoffIndex struct {
	Bloating    *bool `json:"bloating,omitempty"`
	Pain        *bool `json:"pain,omitempty"`
	Fullness    *bool `json:"fullness,omitempty"`
	Urinary     *bool `json:"urinary,omitempty"`
	AbdomenSize *bool `json:"abdomen_size,omitempty"`
}

// Symptoms aggregates the symptom answers.
type Symptoms struct {
	SwallowingDifficulty *bool      `json:"swallowing_difficulty,omitempty"`
	BlackStool           *bool      `json:"black_stool,omitempty"`
	WeightLoss           *bool      `json:"weight_loss,omitempty"`
	Vomiting             *bool      `json:"vomiting,omitempty"`
	EpigastricPain       *bool      `json:"epigastric_pain,omitempty"`
	PainWakesAtNight     *bool      `json:"pain_wakes_at_night,omitempty"`
	Indigestion          *string    `json:"indigestion,omitempty"`
	GoffSymptomIndex     *GoffIndex `json:"goff_symptom_index,omitempty"`
}

// Vaccinations aggregates the vaccination answers.
type Vaccinations struct {
	HPV  *bool `json:"hpv,omitempty"`
	HepB *bool `json:"hep_b,omitempty"`
}

// CancerScreening is the prior-screening history answer group.
type CancerScreening struct {
	HadScreening *bool   `json:"had_screening,omitempty"`
	Details      *string `json:"details,omitempty"`
}

// Surgery aggregates surgical-history answers.
type Surgery struct {
	PartialGastrectomy *bool `json:"partial_gastrectomy,omitempty"`
}

// ResponseRecord is the session-scoped aggregate of every patient answer. It
// starts empty, fills field-by-field as the transition engine accepts answers,
// and is read (never written) by the screening engine. Optional fields are nil
// until the corresponding question is answered, and every downstream consumer
// must treat nil as "not collected".
type ResponseRecord struct {
	Demographics    Demographics     `json:"demographics"`
	MedicalHistory  MedicalHistory   `json:"medical_history"`
	Lifestyle       Lifestyle        `json:"lifestyle"`
	SexSpecificInfo SexSpecificInfo  `json:"sex_specific_info"`
	Symptoms        Symptoms         `json:"symptoms"`
	Vaccinations    Vaccinations     `json:"vaccinations"`
	CancerScreening CancerScreening  `json:"cancer_screening"`
	Medications     []string         `json:"medications,omitempty"`
	Allergies       *string          `json:"allergies,omitempty"`
	Surgery         Surgery          `json:"surgery"`
}

// IsMale reports whether the recorded sex is Male.
func (r *ResponseRecord) IsMale() bool {
	return r.Demographics.Sex != nil && *r.Demographics.Sex == SexMale
}

// IsFemale reports whether the recorded sex is Female.
func (r *ResponseRecord) IsFemale() bool {
	return r.Demographics.Sex != nil && *r.Demographics.Sex == SexFemale
}

// male returns the male branch, allocating it on first use.
func (r *ResponseRecord) male() *MaleInfo {
	if r.SexSpecificInfo.Male == nil {
		r.SexSpecificInfo.Male = &MaleInfo{}
	}
	return r.SexSpecificInfo.Male
}

// female returns the female branch, allocating it on first use.
func (r *ResponseRecord) female() *FemaleInfo {
	if r.SexSpecificInfo.Female == nil {
		r.SexSpecificInfo.Female = &FemaleInfo{}
	}
	return r.SexSpecificInfo.Female
}

func (r *ResponseRecord) smoking() *Smoking {
	if r.Lifestyle.Smoking == nil {
		r.Lifestyle.Smoking = &Smoking{}
	}
	return r.Lifestyle.Smoking
}

func (r *ResponseRecord) goff() *GoffIndex {
	if r.Symptoms.GoffSymptomIndex == nil {
		r.Symptoms.GoffSymptomIndex = &GoffIndex{}
	}
	return r.Symptoms.GoffSymptomIndex
}

// Session is one running questionnaire: the graph pointer plus the record.
type Session struct {
	ID            uuid.UUID       `json:"id"`
	CurrentNodeID string          `json:"current_node_id"`
	Record        *ResponseRecord `json:"record"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Completed reports whether the session reached the terminal node.
func (s *Session) Completed() bool {
	return s.CurrentNodeID == NodeEnd
}
