package recommendation

import (
	"fmt"
	"slices"
	"testing"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalProfile() domain.HealthProfile {
	return domain.HealthProfile{Age: 30, Weight: 70, SystolicBP: 118, DiastolicBP: 76}
}

func dishNames(dishes []domain.Dish) []string {
	names := make([]string, len(dishes))
	for i, d := range dishes {
		names[i] = d.Name
	}
	return names
}

func TestNewConditionScorer_Limit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{1, MinLimit},
		{4, 4},
		{10, MaxLimit},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit %d", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, NewConditionScorer(tt.in, DefaultGreyZone()).Limit())
		})
	}
}

func TestConditionScorer_Rank(t *testing.T) {
	scorer := NewConditionScorer(DefaultLimit, DefaultGreyZone())

	t.Run("lower sodium ranks first for hypertension", func(t *testing.T) {
		// Arrange
		salty := domain.Dish{
			Name:             "Alpha Plate",
			Ingredients:      []string{"chicken breast", "green beans"},
			NutritionSummary: domain.NutritionSummary{Calories: 450, Protein: 35, Carbohydrates: 40, Fats: 15, Sodium: 900},
		}
		lighter := salty.Clone()
		lighter.Name = "Beta Plate"
		lighter.NutritionSummary.Sodium = 600
		profile := normalProfile()
		profile.HealthConditions = []string{"hypertension"}

		// Act
		got := scorer.Rank([]domain.Dish{salty, lighter}, profile)

		// Assert
		assert.Equal(t, []string{"Beta Plate", "Alpha Plate"}, dishNames(got))
	})

	t.Run("lower carbohydrates ranks first for diabetes", func(t *testing.T) {
		heavy := domain.Dish{
			Name:             "Alpha Bowl",
			Ingredients:      []string{"brown rice", "tofu"},
			NutritionSummary: domain.NutritionSummary{Calories: 450, Protein: 20, Carbohydrates: 60, Fats: 12, Sodium: 500},
		}
		light := heavy.Clone()
		light.Name = "Beta Bowl"
		light.NutritionSummary.Carbohydrates = 45
		profile := normalProfile()
		profile.HealthConditions = []string{"Type 2 Diabetes"}

		got := scorer.Rank([]domain.Dish{heavy, light}, profile)

		assert.Equal(t, []string{"Beta Bowl", "Alpha Bowl"}, dishNames(got))
	})

	t.Run("declared suitability beats nutrition", func(t *testing.T) {
		tagged := domain.Dish{
			Name:              "Tagged",
			HealthExplanation: "Great for high blood pressure.",
			Ingredients:       []string{"quinoa"},
			NutritionSummary:  domain.NutritionSummary{Calories: 400, Sodium: 500},
		}
		plain := domain.Dish{
			Name:             "Plain",
			Ingredients:      []string{"quinoa"},
			NutritionSummary: domain.NutritionSummary{Calories: 400, Sodium: 450},
		}
		profile := normalProfile()
		profile.HealthConditions = []string{"hypertension"}

		got := scorer.Rank([]domain.Dish{plain, tagged}, profile)

		assert.Equal(t, []string{"Tagged", "Plain"}, dishNames(got))
	})

	t.Run("grey-zone dishes are dropped when compliant ones exist", func(t *testing.T) {
		grey := domain.Dish{Name: "Salted", Ingredients: []string{"salt", "rice"}}
		clean := domain.Dish{Name: "Clean", Ingredients: []string{"oats"}}
		profile := normalProfile()
		profile.SystolicBP, profile.DiastolicBP = 150, 95

		got := scorer.Rank([]domain.Dish{grey, clean}, profile)

		assert.Equal(t, []string{"Clean"}, dishNames(got))
	})

	t.Run("falls back to grey-zone dishes ordered by conflicts", func(t *testing.T) {
		worse := domain.Dish{Name: "Worse", Ingredients: []string{"salt", "bacon"}}
		better := domain.Dish{Name: "Better", Ingredients: []string{"salt", "oats"}}
		profile := normalProfile()
		profile.HealthConditions = []string{"high blood pressure"}

		got := scorer.Rank([]domain.Dish{worse, better}, profile)

		assert.Equal(t, []string{"Better", "Worse"}, dishNames(got))
	})

	t.Run("neutral profile prefers the balanced dish", func(t *testing.T) {
		greasy := domain.Dish{
			Name:             "Apple Greasy",
			NutritionSummary: domain.NutritionSummary{Calories: 700, Protein: 10, Carbohydrates: 20, Fats: 50, Sodium: 300},
		}
		balanced := domain.Dish{
			Name:             "Balanced",
			NutritionSummary: domain.NutritionSummary{Calories: 700, Protein: 25, Carbohydrates: 50, Fats: 11, Sodium: 300},
		}

		got := scorer.Rank([]domain.Dish{greasy, balanced}, normalProfile())

		assert.Equal(t, []string{"Balanced", "Apple Greasy"}, dishNames(got))
	})

	t.Run("ties break on name", func(t *testing.T) {
		n := domain.NutritionSummary{Calories: 500, Protein: 30, Carbohydrates: 50, Fats: 15, Sodium: 400}
		got := scorer.Rank([]domain.Dish{
			{Name: "beta", NutritionSummary: n},
			{Name: "Alpha", NutritionSummary: n},
		}, normalProfile())

		assert.Equal(t, []string{"Alpha", "beta"}, dishNames(got))
	})

	t.Run("caps the result", func(t *testing.T) {
		dishes := make([]domain.Dish, 10)
		for i := range dishes {
			dishes[i] = domain.Dish{Name: fmt.Sprintf("Dish %02d", i), Ingredients: []string{"rice"}}
		}

		assert.Len(t, scorer.Rank(dishes, normalProfile()), DefaultLimit)
		assert.Len(t, NewConditionScorer(MaxLimit, DefaultGreyZone()).Rank(dishes, normalProfile()), MaxLimit)
	})

	t.Run("empty input", func(t *testing.T) {
		got := scorer.Rank(nil, normalProfile())

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		dishes := catalog.DefaultDishes()
		reversed := slices.Clone(dishes)
		slices.Reverse(reversed)
		profile := normalProfile()
		profile.HealthConditions = []string{"diabetes", "hypertension"}

		first := scorer.Rank(dishes, profile)
		second := scorer.Rank(reversed, profile)

		require.NotEmpty(t, first)
		assert.Equal(t, first, second)
	})
}

func TestSodiumLimitByAge(t *testing.T) {
	assert.Equal(t, 1200, SodiumLimitByAge(2))
	assert.Equal(t, 1500, SodiumLimitByAge(8))
	assert.Equal(t, 1800, SodiumLimitByAge(12))
	assert.Equal(t, 2300, SodiumLimitByAge(40))
}

func TestMealCalorieTarget(t *testing.T) {
	assert.Equal(t, 700, MealCalorieTarget(30, 70))
	assert.Equal(t, 630, MealCalorieTarget(60, 70))
	assert.Equal(t, 400, MealCalorieTarget(30, 20))
	assert.Equal(t, 1066, MealCalorieTarget(30, 200))
}
