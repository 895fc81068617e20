package recommendation

import (
	"fmt"
	"slices"
	"strings"

	"healthy-eats-backend/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const StarMealPrefix = "Star Meal: "

// StarMealSynthesizer builds a healthier variant of a favorite food from a
// fixed template and substitution table. The same profile always yields the
// same dish.
type StarMealSynthesizer struct {
	greyZone GreyZone
}

func NewStarMealSynthesizer(greyZone GreyZone) *StarMealSynthesizer {
	return &StarMealSynthesizer{greyZone: greyZone}
}

// Synthesize returns false when the profile asks for no star meal or when no
// variant can be made safe for its allergies.
func (s *StarMealSynthesizer) Synthesize(profile domain.HealthProfile) (domain.Dish, bool) {
	favorite := strings.Join(strings.Fields(profile.FavoriteFood), " ")
	if favorite == "" {
		return domain.Dish{}, false
	}
	key := domain.NormalizeTerm(favorite)

	allergies := NewAllergies(profile.Allergies)
	tpl, matched := templateFor(key)
	for _, allergy := range allergies.Sources(key) {
		if !matched || !tpl.replaces(allergies, allergy) {
			return domain.Dish{}, false
		}
	}
	conditions := EffectiveConditions(profile)

	parts := tpl.components
	if !matched {
		parts = append([]component{req(key, favoriteNutrition)}, tpl.components...)
	}

	b := &mealBuilder{
		allergies:  allergies,
		conditions: conditions,
		greyZone:   s.greyZone,
	}
	for _, c := range parts {
		if !b.add(c) {
			return domain.Dish{}, false
		}
	}
	if len(b.chosen) == 0 {
		return domain.Dish{}, false
	}

	dish := domain.Dish{
		Name:              StarMealPrefix + cases.Title(language.English).String(favorite),
		Instructions:      append([]string(nil), tpl.instructions...),
		NutritionSummary:  b.nutrition(),
		PhotoReference:    tpl.photo,
		HealthExplanation: b.explanation(favorite, tpl.rationale),
		Ingredients:       b.ingredientNames(),
	}
	if !allergies.CheckDish(dish).Safe {
		return domain.Dish{}, false
	}
	return dish, true
}

func templateFor(favorite string) (mealTemplate, bool) {
	for _, tpl := range mealTemplates {
		for _, kw := range tpl.keywords {
			if containsPhrase(favorite, kw) {
				return tpl, true
			}
		}
	}
	return genericTemplate, false
}

// replaces reports whether one of the template's own ingredients carries
// the allergy, so swapping that ingredient removes it from the favorite.
func (t mealTemplate) replaces(allergies Allergies, allergy string) bool {
	for _, c := range t.components {
		if slices.Contains(allergies.Sources(c.name), allergy) {
			return true
		}
	}
	return false
}

type mealBuilder struct {
	allergies  Allergies
	conditions Conditions
	greyZone   GreyZone

	chosen []component
	notes  []string
}

// add places c, or a replacement for it, into the meal. It reports false
// when a required ingredient conflicts with an allergy and nothing can
// replace it.
func (b *mealBuilder) add(c component) bool {
	if allergy, hit := b.allergies.Match(c.name); hit {
		alt, ok := b.pick(c, true)
		if !ok {
			alt, ok = b.pick(c, false)
		}
		switch {
		case ok:
			b.chosen = append(b.chosen, alt)
			b.notes = append(b.notes, fmt.Sprintf("Uses %s instead of %s because of the %s allergy.", alt.name, c.name, allergy))
		case c.optional:
			b.notes = append(b.notes, fmt.Sprintf("Leaves out %s because of the %s allergy.", c.name, allergy))
		default:
			return false
		}
		return true
	}

	conflicts := b.greyZone.Conflicts(c.name, b.conditions)
	if len(conflicts) == 0 {
		if !b.has(c.name) {
			b.chosen = append(b.chosen, c)
		}
		return true
	}

	reason := strings.Join(conflicts, " and ")
	if alt, ok := b.pick(c, true); ok {
		b.chosen = append(b.chosen, alt)
		b.notes = append(b.notes, fmt.Sprintf("Swaps %s for %s to suit %s.", c.name, alt.name, reason))
		return true
	}
	if c.optional {
		b.notes = append(b.notes, fmt.Sprintf("Leaves out %s to suit %s.", c.name, reason))
		return true
	}
	b.chosen = append(b.chosen, c)
	b.notes = append(b.notes, fmt.Sprintf("Keep %s to a small portion because of %s.", c.name, reason))
	return true
}

func (b *mealBuilder) pick(c component, greyFree bool) (component, bool) {
	for _, alt := range alternativesFor(c.name) {
		if _, hit := b.allergies.Match(alt.name); hit {
			continue
		}
		if greyFree && len(b.greyZone.Conflicts(alt.name, b.conditions)) > 0 {
			continue
		}
		if b.has(alt.name) {
			continue
		}
		return alt, true
	}
	return component{}, false
}

func (b *mealBuilder) has(name string) bool {
	for _, c := range b.chosen {
		if c.name == name {
			return true
		}
	}
	return false
}

func (b *mealBuilder) ingredientNames() []string {
	names := make([]string, len(b.chosen))
	for i, c := range b.chosen {
		names[i] = c.name
	}
	return names
}

func (b *mealBuilder) nutrition() domain.NutritionSummary {
	var n domain.NutritionSummary
	for _, c := range b.chosen {
		n.Calories += c.nutrition.Calories
		n.Protein += c.nutrition.Protein
		n.Carbohydrates += c.nutrition.Carbohydrates
		n.Fats += c.nutrition.Fats
		n.Sodium += c.nutrition.Sodium
	}
	return n
}

func (b *mealBuilder) explanation(favorite, rationale string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "A healthier take on %s with %s.", favorite, rationale)
	for _, note := range b.notes {
		sb.WriteString(" ")
		sb.WriteString(note)
	}
	if len(b.conditions) > 0 {
		fmt.Fprintf(&sb, " Tailored for %s.", strings.Join(b.conditions, ", "))
	}
	return sb.String()
}
