// Package catalog holds the static reference enumerations consumed by the
// intake validation step: countries, ethnicities and cancer types, plus the
// smaller option sets (chronic conditions, medications, frequencies). All of
// it is read-only configuration compiled into the binary.
package catalog

// Countries is the country pick list offered on the demographics step.
var Countries = []string{
	"United States",
	"Canada",
	"Mexico",
	"United Kingdom",
	"Ireland",
	"France",
	"Germany",
	"Spain",
	"Italy",
	"Netherlands",
	"Sweden",
	"Norway",
	"Poland",
	"Russia",
	"Turkey",
	"Egypt",
	"Nigeria",
	"Kenya",
	"South Africa",
	"India",
	"Pakistan",
	"Bangladesh",
	"China",
	"Japan",
	"South Korea",
	"Vietnam",
	"Thailand",
	"Philippines",
	"Indonesia",
	"Australia",
	"New Zealand",
	"Brazil",
	"Argentina",
	"Chile",
	"Colombia",
	"Peru",
	"Other",
}

// Ethnicities is the ethnicity pick list.
var Ethnicities = []string{
	"White or Caucasian",
	"Black or African American",
	"Hispanic or Latino",
	"East Asian",
	"South Asian",
	"Southeast Asian",
	"Middle Eastern or North African",
	"Native American or Alaska Native",
	"Native Hawaiian or Pacific Islander",
	"Mixed or Multiple",
	"Other",
}

// gastricHighRisk marks ethnicities with elevated gastric-cancer incidence,
// used by the upper-GI endoscopy rule.
var gastricHighRisk = map[string]bool{
	"East Asian":                          true,
	"Southeast Asian":                     true,
	"Hispanic or Latino":                  true,
	"Native Hawaiian or Pacific Islander": true,
}

// CancerTypes is the cancer-type pick list used for personal and family
// history questions.
var CancerTypes = []string{
	"Breast",
	"Cervical",
	"Ovarian",
	"Uterine",
	"Prostate",
	"Testicular",
	"Lung",
	"Colorectal",
	"Gastric",
	"Esophageal",
	"Liver",
	"Pancreatic",
	"Renal (Kidney)",
	"Bladder",
	"Skin (Melanoma)",
	"Skin (Non-melanoma)",
	"Oral or Throat",
	"Thyroid",
	"Brain",
	"Leukemia",
	"Lymphoma",
	"Other",
}

// ChronicConditions is the multi-select option set for the chronic-condition
// question. "None" may legally co-exist with other selections; the data layer
// accepts any combination (the original only de-selected visually).
var ChronicConditions = []string{
	"Diabetes",
	"HIV",
	"IBD",
	"Hepatitis B",
	"Hepatitis C",
	"None",
}

// Medications is the multi-select option set for current medications.
var Medications = []string{
	"Anticoagulants",
	"Statins",
	"Antihypertensives",
	"Antidepressants",
	"Opioids",
	"Steroids",
	"Antibiotics",
	"None",
}

// GeneticMutations is the multi-select option set for known mutations.
var GeneticMutations = []string{
	"BRCA1",
	"BRCA2",
	"Lynch Syndrome",
	"None",
}

// Frequencies is the shared frequency scale for diet and symptom questions.
var Frequencies = []string{
	"Never",
	"Rarely",
	"Sometimes",
	"Often",
	"Daily",
}

// PillYearOptions is the oral-contraceptive duration scale.
var PillYearOptions = []string{
	"Never",
	"Less than 5 years",
	"5-10 years",
	"More than 10 years",
}

// BirthCountOptions is the number-of-births pick list.
var BirthCountOptions = []string{"1", "2", "3", "4 or more"}

// FruitVegOptions is the daily fruit/vegetable servings pick list.
var FruitVegOptions = []string{"0-1", "2-3", "4-5", "More than 5"}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func ValidCountry(v string) bool    { return contains(Countries, v) }
func ValidEthnicity(v string) bool  { return contains(Ethnicities, v) }
func ValidCancerType(v string) bool { return contains(CancerTypes, v) }

// GastricHighRiskEthnicity reports whether the ethnicity belongs to the
// elevated gastric-cancer incidence group.
func GastricHighRiskEthnicity(v string) bool { return gastricHighRisk[v] }
