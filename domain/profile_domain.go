package domain

import (
	"sort"
	"strings"
)

const (
	FieldAge          = "age"
	FieldWeight       = "weight"
	FieldSystolicBP   = "systolicBP"
	FieldDiastolicBP  = "diastolicBP"
	FieldFavoriteFood = "favoriteFood"
)

var (
	MessageSuccessGetRecommendations = "success get food recommendations"
	MessageFailedGetRecommendations  = "failed to get food recommendations"
	MessageNoRecommendations         = "No recommendations found. Try adjusting your health profile or allergies."
)

// Bound is the inclusive valid range of a numeric profile field.
type Bound struct {
	Min  int
	Max  int
	Unit string
}

var ProfileBounds = map[string]Bound{
	FieldAge:         {Min: 1, Max: 120, Unit: "years"},
	FieldWeight:      {Min: 1, Max: 500, Unit: "kg"},
	FieldSystolicBP:  {Min: 60, Max: 250, Unit: "mmHg"},
	FieldDiastolicBP: {Min: 40, Max: 150, Unit: "mmHg"},
}

type (
	GetFoodRecommendationsRequest struct {
		Age              int      `json:"age" validate:"min=1,max=120"`
		Weight           int      `json:"weight" validate:"min=1,max=500"`
		HealthConditions []string `json:"healthConditions" validate:"max=32,dive,max=100"`
		SystolicBP       int      `json:"systolicBP" validate:"min=60,max=250,gtfield=DiastolicBP"`
		DiastolicBP      int      `json:"diastolicBP" validate:"min=40,max=150"`
		Allergies        []string `json:"allergies" validate:"max=32,dive,max=100"`
		FavoriteFood     string   `json:"favoriteFood,omitempty" validate:"max=100"`
	}

	GetFoodRecommendationsResponse struct {
		Dishes  []Dish `json:"dishes"`
		Total   int    `json:"total"`
		Message string `json:"message,omitempty"`
	}

	// HealthProfile lives for a single recommendation call.
	HealthProfile struct {
		Age              int
		Weight           int
		HealthConditions []string
		SystolicBP       int
		DiastolicBP      int
		Allergies        []string
		FavoriteFood     string
	}
)

func (r GetFoodRecommendationsRequest) ToProfile() HealthProfile {
	return HealthProfile{
		Age:              r.Age,
		Weight:           r.Weight,
		HealthConditions: r.HealthConditions,
		SystolicBP:       r.SystolicBP,
		DiastolicBP:      r.DiastolicBP,
		Allergies:        r.Allergies,
		FavoriteFood:     r.FavoriteFood,
	}
}

// Validate re-checks the numeric invariants of the profile.
func (p HealthProfile) Validate() error {
	checks := []struct {
		field string
		value int
	}{
		{FieldAge, p.Age},
		{FieldWeight, p.Weight},
		{FieldSystolicBP, p.SystolicBP},
		{FieldDiastolicBP, p.DiastolicBP},
	}
	for _, c := range checks {
		b := ProfileBounds[c.field]
		if c.value < b.Min || c.value > b.Max {
			return &InvalidProfileError{
				Field:  c.field,
				Reason: (&InputValidationError{Field: c.field, Min: b.Min, Max: b.Max, Unit: b.Unit}).Error(),
			}
		}
	}
	if p.SystolicBP <= p.DiastolicBP {
		return &InvalidProfileError{
			Field:  FieldSystolicBP,
			Reason: "systolic blood pressure must be higher than diastolic blood pressure",
		}
	}
	return nil
}

// Normalized returns a copy with condition and allergy sets normalized,
// deduplicated and sorted, and the favorite food trimmed.
func (p HealthProfile) Normalized() HealthProfile {
	p.HealthConditions = NormalizeTerms(p.HealthConditions)
	p.Allergies = NormalizeTerms(p.Allergies)
	p.FavoriteFood = strings.Join(strings.Fields(p.FavoriteFood), " ")
	return p
}

// NormalizeTerm lowercases, trims and collapses inner whitespace.
func NormalizeTerm(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func NormalizeTerms(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		t := NormalizeTerm(raw)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
