package recommendation

import (
	"sort"

	"healthy-eats-backend/domain"
)

// GreyZoneEntry marks an ingredient as risky for some conditions. An
// ingredient carrying one of the Exempt qualifiers is not flagged.
type GreyZoneEntry struct {
	Ingredient string
	Conditions []string
	Exempt     []string
}

type GreyZone struct {
	entries []GreyZoneEntry
}

var defaultGreyZone = []GreyZoneEntry{
	{Ingredient: "salt", Conditions: []string{ConditionHypertension, ConditionHeartDisease, ConditionKidneyDisease}},
	{Ingredient: "soy sauce", Conditions: []string{ConditionHypertension, ConditionKidneyDisease},
		Exempt: []string{"low-sodium", "reduced-sodium"}},
	{Ingredient: "cheese", Conditions: []string{ConditionHypertension, ConditionHeartDisease},
		Exempt: []string{"low-sodium", "reduced-fat", "part-skim"}},
	{Ingredient: "bacon", Conditions: []string{ConditionHypertension, ConditionHeartDisease}},
	{Ingredient: "sausage", Conditions: []string{ConditionHypertension, ConditionHeartDisease}},
	{Ingredient: "pepperoni", Conditions: []string{ConditionHypertension, ConditionHeartDisease}},
	{Ingredient: "broth", Conditions: []string{ConditionHypertension, ConditionKidneyDisease},
		Exempt: []string{"low-sodium", "no-salt", "unsalted"}},
	{Ingredient: "grapefruit", Conditions: []string{ConditionHypertension}},
	{Ingredient: "sugar", Conditions: []string{ConditionDiabetes}, Exempt: []string{"sugar-free", "no-sugar"}},
	{Ingredient: "honey", Conditions: []string{ConditionDiabetes}},
	{Ingredient: "syrup", Conditions: []string{ConditionDiabetes}, Exempt: []string{"sugar-free"}},
	{Ingredient: "white rice", Conditions: []string{ConditionDiabetes}},
	{Ingredient: "white bread", Conditions: []string{ConditionDiabetes}},
	{Ingredient: "bun", Conditions: []string{ConditionDiabetes}, Exempt: []string{"whole-wheat", "whole-grain"}},
	{Ingredient: "pizza dough", Conditions: []string{ConditionDiabetes}, Exempt: []string{"whole-wheat", "whole-grain"}},
	{Ingredient: "pasta", Conditions: []string{ConditionDiabetes}, Exempt: []string{"whole-wheat", "chickpea", "lentil"}},
	{Ingredient: "flour tortilla", Conditions: []string{ConditionDiabetes}, Exempt: []string{"whole-wheat"}},
	{Ingredient: "potato", Conditions: []string{ConditionDiabetes, ConditionKidneyDisease}, Exempt: []string{"sweet"}},
	{Ingredient: "soda", Conditions: []string{ConditionDiabetes, ConditionOsteoporosis}, Exempt: []string{"diet"}},
	{Ingredient: "butter", Conditions: []string{ConditionHeartDisease}, Exempt: []string{"peanut", "almond"}},
	{Ingredient: "heavy cream", Conditions: []string{ConditionHeartDisease}},
	{Ingredient: "beef", Conditions: []string{ConditionHeartDisease, ConditionGout}, Exempt: []string{"lean", "broth"}},
	{Ingredient: "fried", Conditions: []string{ConditionHeartDisease, ConditionHypertension}},
	{Ingredient: "organ meat", Conditions: []string{ConditionGout}},
	{Ingredient: "shrimp", Conditions: []string{ConditionGout}},
	{Ingredient: "anchovy", Conditions: []string{ConditionGout, ConditionHypertension}},
	{Ingredient: "spinach", Conditions: []string{ConditionKidneyDisease}},
	{Ingredient: "banana", Conditions: []string{ConditionKidneyDisease}},
	{Ingredient: "tea", Conditions: []string{ConditionAnemia}, Exempt: []string{"herbal"}},
	{Ingredient: "coffee", Conditions: []string{ConditionAnemia, ConditionOsteoporosis}},
	{Ingredient: "alcohol", Conditions: []string{ConditionHypertension, ConditionDiabetes, ConditionGout}},
	{Ingredient: "wine", Conditions: []string{ConditionHypertension, ConditionDiabetes, ConditionGout}},
	{Ingredient: "beer", Conditions: []string{ConditionHypertension, ConditionDiabetes, ConditionGout}},
}

// DefaultGreyZone returns the built-in table the engine filters with.
func DefaultGreyZone() GreyZone {
	return NewGreyZone(defaultGreyZone)
}

func NewGreyZone(entries []GreyZoneEntry) GreyZone {
	out := make([]GreyZoneEntry, len(entries))
	for i, e := range entries {
		out[i] = GreyZoneEntry{
			Ingredient: domain.NormalizeTerm(e.Ingredient),
			Conditions: append([]string(nil), e.Conditions...),
			Exempt:     append([]string(nil), e.Exempt...),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ingredient < out[j].Ingredient })
	return GreyZone{entries: out}
}

func (g GreyZone) Entries() []GreyZoneEntry {
	out := make([]GreyZoneEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

func (g GreyZone) Ingredients() []string {
	out := make([]string, 0, len(g.entries))
	for _, e := range g.entries {
		out = append(out, e.Ingredient)
	}
	return out
}

// Conflicts returns the conditions for which ingredient is grey-zone,
// limited to the given condition set.
func (g GreyZone) Conflicts(ingredient string, conditions Conditions) []string {
	term := domain.NormalizeTerm(ingredient)
	var hits []string
	for _, e := range g.entries {
		if !containsPhrase(term, e.Ingredient) || exempt(term, e.Exempt) {
			continue
		}
		for _, c := range e.Conditions {
			if conditions.Has(c) && !contains(hits, c) {
				hits = append(hits, c)
			}
		}
	}
	sort.Strings(hits)
	return hits
}

// DishConflicts counts grey-zone ingredients in d for the condition set.
func (g GreyZone) DishConflicts(d domain.Dish, conditions Conditions) int {
	if len(conditions) == 0 {
		return 0
	}
	n := 0
	for _, ing := range d.Ingredients {
		if len(g.Conflicts(ing, conditions)) > 0 {
			n++
		}
	}
	return n
}

func exempt(term string, qualifiers []string) bool {
	for _, q := range qualifiers {
		if containsPhrase(term, q) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
