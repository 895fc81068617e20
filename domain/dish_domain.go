package domain

import (
	"fmt"
	"mime/multipart"
	"slices"
	"strings"
)

var (
	MessageSuccessGetDishes        = "success get dishes"
	MessageSuccessAddRecipe        = "recipe added successfully"
	MessageSuccessGetGreyZone      = "success get grey zone ingredients"
	MessageFailedGetDishes         = "failed to get dishes"
	MessageFailedAddRecipe         = "failed to add recipe"
	MessageFailedDuplicateRecipe   = "a recipe with this name already exists"
	MessageFailedGetGreyZone       = "failed to get grey zone ingredients"
	MessageFailedUploadRecipePhoto = "failed to upload recipe photo"
)

type (
	NutritionSummary struct {
		Calories      int `json:"calories" validate:"min=0"`
		Protein       int `json:"protein" validate:"min=0"`
		Carbohydrates int `json:"carbohydrates" validate:"min=0"`
		Fats          int `json:"fats" validate:"min=0"`
		Sodium        int `json:"sodium" validate:"min=0"`
	}

	Dish struct {
		Name              string           `json:"name"`
		Instructions      []string         `json:"instructions"`
		NutritionSummary  NutritionSummary `json:"nutritionSummary"`
		PhotoReference    string           `json:"photoReference"`
		HealthExplanation string           `json:"healthExplanation"`
		Ingredients       []string         `json:"ingredients"`
	}

	AddRecipeRequest struct {
		Name              string                `json:"name" form:"name" validate:"required,max=200"`
		PhotoReference    string                `json:"photoReference" form:"photoReference" validate:"max=500"`
		HealthExplanation string                `json:"healthExplanation" form:"healthExplanation" validate:"max=2000"`
		Ingredients       []string              `json:"ingredients" form:"ingredients" validate:"max=100,dive,max=200"`
		Instructions      []string              `json:"instructions" form:"instructions" validate:"max=100,dive,max=1000"`
		NutritionSummary  NutritionSummary      `json:"nutritionSummary" form:"-"`
		Photo             *multipart.FileHeader `json:"-" form:"-"`
	}

	GreyZoneIngredientsResponse struct {
		Ingredients []string `json:"ingredients"`
	}
)

func (r AddRecipeRequest) ToDish() Dish {
	return Dish{
		Name:              strings.TrimSpace(r.Name),
		Instructions:      cleanLines(r.Instructions),
		NutritionSummary:  r.NutritionSummary,
		PhotoReference:    strings.TrimSpace(r.PhotoReference),
		HealthExplanation: strings.TrimSpace(r.HealthExplanation),
		Ingredients:       cleanLines(r.Ingredients),
	}
}

// Validate rejects dishes that would corrupt the catalog.
func (d Dish) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidDish)
	}
	n := d.NutritionSummary
	checks := []struct {
		field string
		value int
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbohydrates", n.Carbohydrates},
		{"fats", n.Fats},
		{"sodium", n.Sodium},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidDish, c.field)
		}
	}
	return nil
}

func (d Dish) Clone() Dish {
	d.Instructions = slices.Clone(d.Instructions)
	d.Ingredients = slices.Clone(d.Ingredients)
	return d
}

func CloneDishes(in []Dish) []Dish {
	out := make([]Dish, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}

func cleanLines(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
