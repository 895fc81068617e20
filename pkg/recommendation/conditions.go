package recommendation

import (
	"sort"
	"strings"

	"healthy-eats-backend/domain"
)

const (
	ConditionHypertension  = "hypertension"
	ConditionDiabetes      = "diabetes"
	ConditionHeartDisease  = "heart disease"
	ConditionKidneyDisease = "kidney disease"
	ConditionAnemia        = "anemia"
	ConditionOsteoporosis  = "osteoporosis"
	ConditionGout          = "gout"
	ConditionHypotension   = "hypotension"
	ConditionHypoglycemia  = "hypoglycemia"

	HypertensiveSystolic  = 140
	HypertensiveDiastolic = 90
)

var conditionAliases = []struct {
	canonical string
	aliases   []string
}{
	{ConditionHypotension, []string{"hypotension", "low blood pressure"}},
	{ConditionHypoglycemia, []string{"hypoglycemia", "low blood sugar"}},
	{ConditionHypertension, []string{"hypertension", "high blood pressure", "blood pressure", "htn"}},
	{ConditionDiabetes, []string{"diabetes", "diabetic", "prediabetes", "blood sugar", "insulin resistance"}},
	{ConditionHeartDisease, []string{"heart", "cardiac", "cardiovascular", "cholesterol", "coronary"}},
	{ConditionKidneyDisease, []string{"kidney", "renal", "ckd"}},
	{ConditionAnemia, []string{"anemia", "anaemia", "iron deficiency"}},
	{ConditionOsteoporosis, []string{"osteoporosis", "osteopenia", "bone"}},
	{ConditionGout, []string{"gout", "uric acid"}},
}

// Conditions is the effective, canonical condition set of a profile.
type Conditions []string

func (c Conditions) Has(condition string) bool {
	for _, x := range c {
		if x == condition {
			return true
		}
	}
	return false
}

// CanonicalCondition maps free text onto a known condition, or returns the
// normalized text itself when nothing matches.
func CanonicalCondition(raw string) string {
	term := domain.NormalizeTerm(raw)
	for _, c := range conditionAliases {
		for _, alias := range c.aliases {
			if strings.Contains(term, alias) {
				return c.canonical
			}
		}
	}
	return term
}

// EffectiveConditions canonicalizes the stated conditions and adds
// hypertension when the blood pressure reading is in the hypertensive range.
func EffectiveConditions(profile domain.HealthProfile) Conditions {
	seen := map[string]struct{}{}
	var out Conditions
	add := func(c string) {
		if c == "" {
			return
		}
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	for _, raw := range profile.HealthConditions {
		add(CanonicalCondition(raw))
	}
	if profile.SystolicBP >= HypertensiveSystolic || profile.DiastolicBP >= HypertensiveDiastolic {
		add(ConditionHypertension)
	}
	sort.Strings(out)
	return out
}

// suitabilityTags derives the conditions a dish is declared or measured to suit.
func suitabilityTags(d domain.Dish) map[string]struct{} {
	tags := map[string]struct{}{}
	explanation := domain.NormalizeTerm(d.HealthExplanation)
	for _, c := range conditionAliases {
		for _, alias := range c.aliases {
			if strings.Contains(explanation, alias) {
				tags[c.canonical] = struct{}{}
				break
			}
		}
	}

	n := d.NutritionSummary
	if n.Sodium <= lowSodiumPerMeal {
		tags[ConditionHypertension] = struct{}{}
	}
	if n.Carbohydrates <= lowCarbPerMeal {
		tags[ConditionDiabetes] = struct{}{}
	}
	for _, ing := range d.Ingredients {
		term := domain.NormalizeTerm(ing)
		for condition, foods := range nutrientRichFoods {
			for _, f := range foods {
				if containsPhrase(term, f) {
					tags[condition] = struct{}{}
				}
			}
		}
	}
	return tags
}

const (
	lowSodiumPerMeal = 400
	lowCarbPerMeal   = 30
)

var nutrientRichFoods = map[string][]string{
	ConditionAnemia:       {"lentil", "spinach", "lean beef", "black bean", "kidney bean", "tofu", "sardine"},
	ConditionOsteoporosis: {"yogurt", "sardine", "kale", "broccoli", "tofu", "skim milk"},
	ConditionHeartDisease: {"salmon", "sardine", "oat", "walnut", "avocado", "olive oil", "chia seed"},
}

// tagMatches counts the conditions a dish is tagged for, including unknown
// conditions mentioned verbatim in its explanation.
func tagMatches(d domain.Dish, tags map[string]struct{}, conditions Conditions) int {
	explanation := domain.NormalizeTerm(d.HealthExplanation)
	n := 0
	for _, c := range conditions {
		if _, ok := tags[c]; ok {
			n++
			continue
		}
		if strings.Contains(explanation, c) {
			n++
		}
	}
	return n
}
