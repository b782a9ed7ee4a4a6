package catalog

import "testing"

func TestGastricHighRiskSubsetOfEthnicities(t *testing.T) {
	for eth := range gastricHighRisk {
		if !ValidEthnicity(eth) {
			t.Errorf("high-risk ethnicity %q missing from the pick list", eth)
		}
	}
	if GastricHighRiskEthnicity("White or Caucasian") {
		t.Error("White or Caucasian flagged as gastric high risk")
	}
	if !GastricHighRiskEthnicity("East Asian") {
		t.Error("East Asian not flagged as gastric high risk")
	}
}

func TestValidators(t *testing.T) {
	if !ValidCountry("Japan") || ValidCountry("Atlantis") {
		t.Error("country validation broken")
	}
	if !ValidEthnicity("South Asian") || ValidEthnicity("Martian") {
		t.Error("ethnicity validation broken")
	}
	if !ValidCancerType("Gastric") || ValidCancerType("Unknown") {
		t.Error("cancer-type validation broken")
	}
}

func TestMultiSelectSetsOfferNone(t *testing.T) {
	for name, set := range map[string][]string{
		"chronic conditions": ChronicConditions,
		"medications":        Medications,
		"genetic mutations":  GeneticMutations,
	} {
		found := false
		for _, v := range set {
			if v == "None" {
				found = true
			}
		}
		if !found {
			t.Errorf("%s set has no None option", name)
		}
	}
}
