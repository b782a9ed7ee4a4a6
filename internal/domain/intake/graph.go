package intake

// The conversation graph is a static table of question nodes. Most edges are
// fixed; the handful of conditional hops (sex fork, prostate-test age skip,
// smoking/alcohol/H. pylori/pregnancy sub-flows) are named routing functions
// so the branching logic stays in one place instead of being scattered
// through handlers.

import "github.com/intake/intake/internal/domain/catalog"

// InputKind declares the shape of answer a node expects.
type InputKind string

const (
	InputChoice  InputKind = "choice"  // single selection from Options
	InputMulti   InputKind = "multi"   // one or more selections from Options
	InputInteger InputKind = "integer" // whole number within Bounds
	InputDecimal InputKind = "decimal" // number within Bounds
	InputText    InputKind = "text"    // non-empty free text
	InputNone    InputKind = "none"    // terminal node, nothing to answer
)

// Bounds is the inclusive numeric range for integer/decimal inputs.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RouteFunc resolves the next node for a computed edge. It may write
// auto-filled answers into the record (the prostate age-skip does).
type RouteFunc func(r *ResponseRecord, v answerValue) string

// Edge is the next-node resolution rule: a computed route, a per-option
// static map, or a single static target, checked in that order.
type Edge struct {
	Route    RouteFunc
	ByOption map[string]string
	To       string
}

// Node is one immutable question in the conversation graph.
type Node struct {
	ID      string    `json:"id"`
	Prompt  string    `json:"prompt"`
	Input   InputKind `json:"input"`
	Options []string  `json:"options,omitempty"`
	Bounds  *Bounds   `json:"bounds,omitempty"`
	Next    Edge      `json:"-"`
}

// Node ids referenced from code. The rest of the graph is only ever named in
// the table below.
const (
	NodeStart      = "start"
	NodeSummary    = "summary"
	NodeEnd        = "end"
	nodeAge        = "age"
	nodeProstate   = "prostateTest"
	nodeTesticular = "testicularIssues"
)

// prostateSkipAge: males younger than this never see the prostate-test
// question. Independent from the screening engine's no-PSA score threshold;
// the two are separate constants on purpose.
const prostateSkipAge = 30

var yesNo = []string{"Yes", "No"}

// routeSexFork is the single re-entry point merging the branches: after
// allergies, females continue into the female-only questions and males go
// straight to the summary.
func routeSexFork(r *ResponseRecord, _ answerValue) string {
	if r.IsFemale() {
		return "menarcheAge"
	}
	return NodeSummary
}

// routeAfterSymptoms sends males into the male-only questions; everyone else
// continues with vaccinations.
func routeAfterSymptoms(r *ResponseRecord, _ answerValue) string {
	if r.IsMale() {
		return "urinarySymptoms"
	}
	return "hpvVaccine"
}

// routeProstateEntry skips the prostate-test question for males under 30,
// auto-filling the answer the question would have produced.
func routeProstateEntry(r *ResponseRecord, _ answerValue) string {
	if r.Demographics.Age != nil && *r.Demographics.Age < prostateSkipAge {
		na := "N/A"
		r.male().ProstateTest = &ProstateTest{Had: false, AgeAtLast: &na}
		return nodeTesticular
	}
	return nodeProstate
}

// routeSummary handles the restart/finish choice. Restart resets the record;
// the service clears it when it sees the pointer move back to start.
func routeSummary(_ *ResponseRecord, v answerValue) string {
	if v.Text == "Restart" {
		return NodeStart
	}
	return NodeEnd
}

// nodes is the full conversation graph in ask order.
var nodes = []*Node{
	{
		ID:      NodeStart,
		Prompt:  "Hello! I'll ask you a series of questions to build your cancer screening recommendations. Ready to begin?",
		Input:   InputChoice,
		Options: []string{"Begin"},
		Next:    Edge{To: nodeAge},
	},
	{
		ID:     nodeAge,
		Prompt: "How old are you?",
		Input:  InputInteger,
		Bounds: &Bounds{Min: 0, Max: 120},
		Next:   Edge{To: "sex"},
	},
	{
		ID:      "sex",
		Prompt:  "What is your biological sex?",
		Input:   InputChoice,
		Options: []string{"Male", "Female"},
		Next:    Edge{To: "ethnicity"},
	},
	{
		ID:      "ethnicity",
		Prompt:  "Which ethnicity do you identify with?",
		Input:   InputChoice,
		Options: catalog.Ethnicities,
		Next:    Edge{To: "country"},
	},
	{
		ID:      "country",
		Prompt:  "Which country do you live in?",
		Input:   InputChoice,
		Options: catalog.Countries,
		Next:    Edge{To: "personalCancer"},
	},
	{
		ID:      "personalCancer",
		Prompt:  "Have you ever been diagnosed with cancer?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{ByOption: map[string]string{"Yes": "personalCancerType", "No": "familyCancer"}},
	},
	{
		ID:      "personalCancerType",
		Prompt:  "What type of cancer were you diagnosed with?",
		Input:   InputChoice,
		Options: catalog.CancerTypes,
		Next:    Edge{To: "personalCancerAge"},
	},
	{
		ID:     "personalCancerAge",
		Prompt: "At what age were you diagnosed?",
		Input:  InputInteger,
		Bounds: &Bounds{Min: 0, Max: 120},
		Next:   Edge{To: "familyCancer"},
	},
	{
		ID:      "familyCancer",
		Prompt:  "Has a parent, sibling, or child ever been diagnosed with cancer?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{ByOption: map[string]string{"Yes": "familyCancerRelation", "No": "chronicConditions"}},
	},
	{
		ID:      "familyCancerRelation",
		Prompt:  "Which relative was diagnosed?",
		Input:   InputChoice,
		Options: []string{"Parent", "Sibling", "Child"},
		Next:    Edge{To: "familyCancerType"},
	},
	{
		ID:      "familyCancerType",
		Prompt:  "What type of cancer did they have?",
		Input:   InputChoice,
		Options: catalog.CancerTypes,
		Next:    Edge{To: "familyCancerAge"},
	},
	{
		ID:     "familyCancerAge",
		Prompt: "Roughly how old were they at diagnosis?",
		Input:  InputInteger,
		Bounds: &Bounds{Min: 0, Max: 120},
		Next:   Edge{To: "chronicConditions"},
	},
	{
		ID:      "chronicConditions",
		Prompt:  "Do you have any of these chronic conditions? Select all that apply.",
		Input:   InputMulti,
		Options: catalog.ChronicConditions,
		Next:    Edge{To: "hypertension"},
	},
	{
		ID:      "hypertension",
		Prompt:  "Have you been diagnosed with high blood pressure (hypertension)?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "brcaMutation"},
	},
	{
		ID:      "brcaMutation",
		Prompt:  "Have you tested positive for a BRCA gene mutation?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "geneticMutations"},
	},
	{
		ID:      "geneticMutations",
		Prompt:  "Have you been diagnosed with any of these genetic mutations? Select all that apply.",
		Input:   InputMulti,
		Options: catalog.GeneticMutations,
		Next:    Edge{To: "perniciousAnemia"},
	},
	{
		ID:      "perniciousAnemia",
		Prompt:  "Have you been diagnosed with pernicious anemia?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "gastricGeneMutation"},
	},
	{
		ID:      "gastricGeneMutation",
		Prompt:  "Has a doctor told you that you carry a gene change linked to stomach cancer (such as CDH1)?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "kidneyIssue"},
	},
	{
		ID:      "kidneyIssue",
		Prompt:  "Have you ever had a kidney cyst, kidney tumor, or other kidney issue?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "brainSpinalEyeTumor"},
	},
	{
		ID:      "brainSpinalEyeTumor",
		Prompt:  "Have you ever had a tumor of the brain, spine, or eye?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "smokingStatus"},
	},
	{
		ID:      "smokingStatus",
		Prompt:  "Do you currently smoke tobacco?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{ByOption: map[string]string{"Yes": "packsPerDay", "No": "alcoholStatus"}},
	},
	{
		ID:     "packsPerDay",
		Prompt: "On average, how many packs do you smoke per day?",
		Input:  InputDecimal,
		Bounds: &Bounds{Min: 0, Max: 10},
		Next:   Edge{To: "smokingYears"},
	},
	{
		ID:     "smokingYears",
		Prompt: "For how many years have you smoked?",
		Input:  InputInteger,
		Bounds: &Bounds{Min: 0, Max: 100},
		Next:   Edge{To: "alcoholStatus"},
	},
	{
		ID:      "alcoholStatus",
		Prompt:  "Do you drink alcohol?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{ByOption: map[string]string{"Yes": "drinksPerWeek", "No": "saltySmokedFoods"}},
	},
	{
		ID:     "drinksPerWeek",
		Prompt: "How many drinks do you have in a typical week?",
		Input:  InputInteger,
		Bounds: &Bounds{Min: 0, Max: 100},
		Next:   Edge{To: "saltySmokedFoods"},
	},
	{
		ID:      "saltySmokedFoods",
		Prompt:  "How often do you eat salty or smoked foods?",
		Input:   InputChoice,
		Options: catalog.Frequencies,
		Next:    Edge{To: "fruitVegServings"},
	},
	{
		ID:      "fruitVegServings",
		Prompt:  "How many servings of fruits and vegetables do you eat per day?",
		Input:   InputChoice,
		Options: catalog.FruitVegOptions,
		Next:    Edge{To: "sexualHealth"},
	},
	{
		ID:      "sexualHealth",
		Prompt:  "Have you had unprotected sex with multiple partners, or been diagnosed with HPV or HIV?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "transplant"},
	},
	{
		ID:      "transplant",
		Prompt:  "Have you ever received an organ transplant?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "hPylori"},
	},
	{
		ID:      "hPylori",
		Prompt:  "Have you ever tested positive for H. pylori infection?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{ByOption: map[string]string{"Yes": "hPyloriEradication", "No": "gastritisUlcer"}},
	},
	{
		ID:      "hPyloriEradication",
		Prompt:  "Did you complete treatment to eradicate the H. pylori infection?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "gastritisUlcer"},
	},
	{
		ID:      "gastritisUlcer",
		Prompt:  "Have you been diagnosed with chronic gastritis or a stomach ulcer?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "partialGastrectomy"},
	},
	{
		ID:      "partialGastrectomy",
		Prompt:  "Have you ever had part of your stomach surgically removed (partial gastrectomy)?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "agentOrange"},
	},
	{
		ID:      "agentOrange",
		Prompt:  "Have you been exposed to Agent Orange?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "pesticides"},
	},
	{
		ID:      "pesticides",
		Prompt:  "Have you had prolonged occupational exposure to pesticides or other industrial chemicals?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "bmi"},
	},
	{
		ID:     "bmi",
		Prompt: "What is your BMI? (If unsure, an estimate is fine.)",
		Input:  InputDecimal,
		Bounds: &Bounds{Min: 10, Max: 80},
		Next:   Edge{To: "swallowingDifficulty"},
	},
	{
		ID:      "swallowingDifficulty",
		Prompt:  "Now a few questions about symptoms. Do you have difficulty swallowing?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "blackStool"},
	},
	{
		ID:      "blackStool",
		Prompt:  "Have you noticed black or tarry stools?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "weightLoss"},
	},
	{
		ID:      "weightLoss",
		Prompt:  "Have you lost weight recently without trying?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "vomiting"},
	},
	{
		ID:      "vomiting",
		Prompt:  "Have you been experiencing persistent vomiting?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "epigastricPain"},
	},
	{
		ID:      "epigastricPain",
		Prompt:  "Do you have pain in the upper middle part of your abdomen?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "painWakesAtNight"},
	},
	{
		ID:      "painWakesAtNight",
		Prompt:  "Does the pain ever wake you up at night?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "indigestion"},
	},
	{
		ID:      "indigestion",
		Prompt:  "How often do you experience indigestion or heartburn?",
		Input:   InputChoice,
		Options: catalog.Frequencies,
		Next:    Edge{Route: routeAfterSymptoms},
	},
	{
		ID:      "urinarySymptoms",
		Prompt:  "Do you have urinary symptoms such as a weak stream, frequent urination, or difficulty starting?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{Route: routeProstateEntry},
	},
	{
		ID:      nodeProstate,
		Prompt:  "Have you ever had a prostate screening test (PSA)?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{ByOption: map[string]string{"Yes": "prostateTestAge", "No": nodeTesticular}},
	},
	{
		ID:     "prostateTestAge",
		Prompt: "At what age was your most recent prostate test?",
		Input:  InputInteger,
		Bounds: &Bounds{Min: 30, Max: 120},
		Next:   Edge{To: "prostateTestResult"},
	},
	{
		ID:      "prostateTestResult",
		Prompt:  "Was the result normal or abnormal?",
		Input:   InputChoice,
		Options: []string{"Normal", "Abnormal"},
		Next:    Edge{To: nodeTesticular},
	},
	{
		ID:      nodeTesticular,
		Prompt:  "Have you noticed any lumps, swelling, or pain in your testicles?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "hpvVaccine"},
	},
	{
		ID:      "hpvVaccine",
		Prompt:  "Have you received the HPV vaccine?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "hepBVaccine"},
	},
	{
		ID:      "hepBVaccine",
		Prompt:  "Have you been vaccinated against Hepatitis B?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "cancerScreening"},
	},
	{
		ID:      "cancerScreening",
		Prompt:  "Have you had any cancer screening tests before?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{ByOption: map[string]string{"Yes": "screeningDetails", "No": "medications"}},
	},
	{
		ID:     "screeningDetails",
		Prompt: "Which screening tests have you had, and roughly when?",
		Input:  InputText,
		Next:   Edge{To: "medications"},
	},
	{
		ID:      "medications",
		Prompt:  "Are you currently taking any of these medications? Select all that apply.",
		Input:   InputMulti,
		Options: catalog.Medications,
		Next:    Edge{To: "allergyStatus"},
	},
	{
		ID:      "allergyStatus",
		Prompt:  "Do you have any allergies?",
		Input:   InputChoice,
		Options: yesNo,
		Next: Edge{Route: func(r *ResponseRecord, v answerValue) string {
			if v.Text == "Yes" {
				return "allergyDetails"
			}
			return routeSexFork(r, v)
		}},
	},
	{
		ID:     "allergyDetails",
		Prompt: "Please list your allergies.",
		Input:  InputText,
		Next:   Edge{Route: routeSexFork},
	},
	{
		ID:     "menarcheAge",
		Prompt: "A few more questions. At what age did you have your first period?",
		Input:  InputInteger,
		Bounds: &Bounds{Min: 8, Max: 18},
		Next:   Edge{To: "menstruationStatus"},
	},
	{
		ID:      "menstruationStatus",
		Prompt:  "Are you premenopausal or postmenopausal?",
		Input:   InputChoice,
		Options: []string{"Premenopausal", "Postmenopausal"},
		Next:    Edge{ByOption: map[string]string{"Postmenopausal": "menopauseAge", "Premenopausal": "currentPregnancy"}},
	},
	{
		ID:     "menopauseAge",
		Prompt: "At what age did menopause begin?",
		Input:  InputInteger,
		Bounds: &Bounds{Min: 30, Max: 60},
		Next:   Edge{To: "currentPregnancy"},
	},
	{
		ID:      "currentPregnancy",
		Prompt:  "Are you currently pregnant?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "pregnancyHistory"},
	},
	{
		ID:      "pregnancyHistory",
		Prompt:  "Have you ever been pregnant?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{ByOption: map[string]string{"Yes": "ageAtFirstPregnancy", "No": "pillYears"}},
	},
	{
		ID:     "ageAtFirstPregnancy",
		Prompt: "At what age was your first pregnancy?",
		Input:  InputInteger,
		Bounds: &Bounds{Min: 14, Max: 50},
		Next:   Edge{To: "numberOfBirths"},
	},
	{
		ID:      "numberOfBirths",
		Prompt:  "How many children have you given birth to?",
		Input:   InputChoice,
		Options: catalog.BirthCountOptions,
		Next:    Edge{To: "pillYears"},
	},
	{
		ID:      "pillYears",
		Prompt:  "For how long have you used birth control pills?",
		Input:   InputChoice,
		Options: catalog.PillYearOptions,
		Next:    Edge{To: "hormoneReplacement"},
	},
	{
		ID:      "hormoneReplacement",
		Prompt:  "Have you used hormone replacement therapy?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "tubalLigation"},
	},
	{
		ID:      "tubalLigation",
		Prompt:  "Have you had a tubal ligation (tubes tied)?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "ovaryRemoved"},
	},
	{
		ID:      "ovaryRemoved",
		Prompt:  "Have you had an ovary removed?",
		Input:   InputChoice,
		Options: []string{"Left", "Right", "Both", "None"},
		Next:    Edge{To: "ivfHistory"},
	},
	{
		ID:      "ivfHistory",
		Prompt:  "Have you undergone IVF treatment?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "endometriosis"},
	},
	{
		ID:      "endometriosis",
		Prompt:  "Have you been diagnosed with endometriosis?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "goffBloating"},
	},
	{
		ID:      "goffBloating",
		Prompt:  "In the past month, have you had persistent bloating?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "goffPain"},
	},
	{
		ID:      "goffPain",
		Prompt:  "Have you had ongoing pelvic or abdominal pain?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "goffFullness"},
	},
	{
		ID:      "goffFullness",
		Prompt:  "Do you feel full quickly or have difficulty eating?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "goffUrinary"},
	},
	{
		ID:      "goffUrinary",
		Prompt:  "Have you had urgent or frequent urination?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: "goffAbdomenSize"},
	},
	{
		ID:      "goffAbdomenSize",
		Prompt:  "Has your abdomen increased in size?",
		Input:   InputChoice,
		Options: yesNo,
		Next:    Edge{To: NodeSummary},
	},
	{
		ID:      NodeSummary,
		Prompt:  "That's everything! You can view your screening report now, restart the questionnaire, or finish.",
		Input:   InputChoice,
		Options: []string{"Restart", "Finish"},
		Next:    Edge{Route: routeSummary},
	},
	{
		ID:     NodeEnd,
		Prompt: "Thank you for completing the questionnaire. Stay healthy!",
		Input:  InputNone,
	},
}

var nodeIndex = buildIndex()

func buildIndex() map[string]*Node {
	idx := make(map[string]*Node, len(nodes))
	for _, n := range nodes {
		idx[n.ID] = n
	}
	return idx
}

// LookupNode returns the node for id, or nil if the graph has no such node.
func LookupNode(id string) *Node {
	return nodeIndex[id]
}

// Nodes returns the graph in ask order. The slice is shared; callers must not
// modify it.
func Nodes() []*Node {
	return nodes
}
