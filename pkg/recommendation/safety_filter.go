package recommendation

import (
	"fmt"
	"slices"
	"strings"

	"healthy-eats-backend/domain"
)

// allergenFamilies expands a category allergy into the ingredient terms it covers.
var allergenFamilies = map[string][]string{
	"dairy": {"milk", "cheese", "butter", "cream", "yogurt", "whey", "casein", "ghee",
		"mozzarella", "parmesan", "ricotta", "feta", "cheddar"},
	"lactose": {"milk", "cheese", "butter", "cream", "yogurt", "whey", "mozzarella", "ricotta", "feta"},
	"gluten": {"wheat", "flour", "bread", "pasta", "spaghetti", "barley", "rye", "couscous", "seitan",
		"pizza dough", "tortilla", "noodle", "breadcrumb", "soy sauce", "bun", "crouton"},
	"nut": {"almond", "walnut", "cashew", "pecan", "pistachio", "hazelnut", "macadamia", "peanut", "pine nut"},
	"tree nut": {"almond", "walnut", "cashew", "pecan", "pistachio", "hazelnut", "macadamia", "pine nut"},
	"shellfish": {"shrimp", "prawn", "crab", "lobster", "scallop", "clam", "mussel", "oyster"},
	"seafood": {"shrimp", "prawn", "crab", "lobster", "scallop", "clam", "mussel", "oyster",
		"fish", "salmon", "tuna", "cod", "sardine", "anchov"},
	"fish": {"salmon", "tuna", "cod", "sardine", "anchov", "tilapia", "halibut", "mackerel", "fish sauce"},
	"egg":  {"mayonnaise", "meringue", "aioli"},
	"soy":  {"tofu", "edamame", "soy sauce", "tempeh", "miso", "soybean"},
}

// SafetyResult tells whether a dish is safe for an allergy set and, if not, why.
type SafetyResult struct {
	Safe   bool
	Reason string
}

// Allergies is a prepared allergy set: normalized terms with their family expansions.
type Allergies struct {
	terms []allergyTerm
}

type allergyTerm struct {
	source string
	match  string
}

func NewAllergies(raw []string) Allergies {
	var a Allergies
	for _, term := range domain.NormalizeTerms(raw) {
		a.terms = append(a.terms, allergyTerm{source: term, match: term})
		for _, v := range variants(term) {
			for _, member := range allergenFamilies[v] {
				a.terms = append(a.terms, allergyTerm{source: term, match: member})
			}
		}
	}
	return a
}

func (a Allergies) Empty() bool {
	return len(a.terms) == 0
}

// Match returns the allergy an ingredient conflicts with. The match is a
// case-insensitive substring test in both directions, on both the written
// and the singular forms.
func (a Allergies) Match(ingredient string) (string, bool) {
	ing := domain.NormalizeTerm(ingredient)
	for _, t := range a.terms {
		if t.matches(ing) {
			return t.source, true
		}
	}
	return "", false
}

// Sources lists every allergy an ingredient conflicts with, sorted.
func (a Allergies) Sources(ingredient string) []string {
	ing := domain.NormalizeTerm(ingredient)
	var out []string
	for _, t := range a.terms {
		if !slices.Contains(out, t.source) && t.matches(ing) {
			out = append(out, t.source)
		}
	}
	return out
}

func (t allergyTerm) matches(ing string) bool {
	if ing == "" {
		return false
	}
	for _, iv := range variants(ing) {
		for _, av := range variants(t.match) {
			if strings.Contains(iv, av) || strings.Contains(av, iv) {
				return true
			}
		}
	}
	return false
}

// CheckDish reports whether any ingredient of d conflicts with the allergies.
func (a Allergies) CheckDish(d domain.Dish) SafetyResult {
	for _, ing := range d.Ingredients {
		if allergy, ok := a.Match(ing); ok {
			return SafetyResult{
				Safe:   false,
				Reason: fmt.Sprintf("ingredient %q conflicts with allergy %q", ing, allergy),
			}
		}
	}
	return SafetyResult{Safe: true}
}

// FilterSafe keeps the dishes that pass CheckDish, preserving order.
func FilterSafe(dishes []domain.Dish, allergies Allergies) (safe []domain.Dish, excluded int) {
	safe = make([]domain.Dish, 0, len(dishes))
	for _, d := range dishes {
		if allergies.CheckDish(d).Safe {
			safe = append(safe, d)
			continue
		}
		excluded++
	}
	return safe, excluded
}
