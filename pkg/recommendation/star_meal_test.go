package recommendation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarMealSynthesizer_Synthesize(t *testing.T) {
	synth := NewStarMealSynthesizer(DefaultGreyZone())

	t.Run("pizza without restrictions", func(t *testing.T) {
		// Arrange
		profile := normalProfile()
		profile.FavoriteFood = "  pizza "

		// Act
		dish, ok := synth.Synthesize(profile)

		// Assert
		require.True(t, ok)
		assert.Equal(t, "Star Meal: Pizza", dish.Name)
		assert.Equal(t, []string{
			"whole-wheat pizza dough", "tomato sauce", "mozzarella cheese", "bell peppers",
			"mushrooms", "spinach", "olive oil", "fresh basil",
		}, dish.Ingredients)
		assert.NotEmpty(t, dish.Instructions)
		assert.NotEmpty(t, dish.PhotoReference)
		assert.Contains(t, dish.HealthExplanation, "A healthier take on pizza")
		assert.Greater(t, dish.NutritionSummary.Calories, 0)
	})

	t.Run("dairy allergy replaces the cheese", func(t *testing.T) {
		profile := normalProfile()
		profile.FavoriteFood = "Pizza"
		profile.Allergies = []string{"dairy"}

		dish, ok := synth.Synthesize(profile)

		require.True(t, ok)
		dairy := NewAllergies(profile.Allergies)
		for _, ing := range dish.Ingredients {
			_, hit := dairy.Match(ing)
			assert.False(t, hit, ing)
		}
		assert.Contains(t, dish.Ingredients, "nutritional yeast")
		assert.Contains(t, dish.HealthExplanation, "Uses nutritional yeast instead of mozzarella cheese because of the dairy allergy.")
	})

	t.Run("gluten allergy swaps the crust", func(t *testing.T) {
		profile := normalProfile()
		profile.FavoriteFood = "pizza"
		profile.Allergies = []string{"Gluten"}

		dish, ok := synth.Synthesize(profile)

		require.True(t, ok)
		assert.Equal(t, "cauliflower crust", dish.Ingredients[0])
	})

	t.Run("gluten allergy swaps the wheat base", func(t *testing.T) {
		tests := []struct {
			favorite string
			name     string
			base     string
		}{
			{"pasta", "Star Meal: Pasta", "spiralized zucchini"},
			{"Spaghetti", "Star Meal: Spaghetti", "spiralized zucchini"},
			{"ramen noodles", "Star Meal: Ramen Noodles", "spiralized zucchini"},
		}
		for _, tt := range tests {
			profile := normalProfile()
			profile.FavoriteFood = tt.favorite
			profile.Allergies = []string{"gluten"}

			dish, ok := synth.Synthesize(profile)

			require.True(t, ok, tt.favorite)
			assert.Equal(t, tt.name, dish.Name)
			assert.Equal(t, tt.base, dish.Ingredients[0])
			assert.True(t, NewAllergies(profile.Allergies).CheckDish(dish).Safe, tt.favorite)
		}
	})

	t.Run("hypertension swaps to low-sodium cheese", func(t *testing.T) {
		profile := normalProfile()
		profile.FavoriteFood = "pizza"
		profile.SystolicBP, profile.DiastolicBP = 150, 95

		dish, ok := synth.Synthesize(profile)

		require.True(t, ok)
		assert.Contains(t, dish.Ingredients, "low-sodium part-skim cheese")
		assert.NotContains(t, dish.Ingredients, "mozzarella cheese")
		assert.Contains(t, dish.HealthExplanation, "Swaps mozzarella cheese for low-sodium part-skim cheese to suit hypertension.")
		assert.Contains(t, dish.HealthExplanation, "Tailored for hypertension.")
	})

	t.Run("unknown favorite uses the generic plate", func(t *testing.T) {
		profile := normalProfile()
		profile.FavoriteFood = "Moussaka"

		dish, ok := synth.Synthesize(profile)

		require.True(t, ok)
		assert.Equal(t, "Star Meal: Moussaka", dish.Name)
		assert.Equal(t, []string{"moussaka", "steamed mixed vegetables", "leafy green salad", "olive oil"}, dish.Ingredients)
	})

	t.Run("favorite itself is an allergen", func(t *testing.T) {
		profile := normalProfile()
		profile.FavoriteFood = "Peanut Butter Sandwich"
		profile.Allergies = []string{"peanuts"}

		_, ok := synth.Synthesize(profile)

		assert.False(t, ok)
	})

	t.Run("allergy the template cannot swap out", func(t *testing.T) {
		profile := normalProfile()
		profile.FavoriteFood = "Shrimp Pasta"
		profile.Allergies = []string{"gluten", "shellfish"}

		_, ok := synth.Synthesize(profile)

		assert.False(t, ok)
	})

	t.Run("required ingredient without a safe replacement", func(t *testing.T) {
		profile := normalProfile()
		profile.FavoriteFood = "sushi"
		profile.Allergies = []string{"rice"}

		_, ok := synth.Synthesize(profile)

		assert.False(t, ok)
	})

	t.Run("no favorite food", func(t *testing.T) {
		for _, favorite := range []string{"", "   "} {
			profile := normalProfile()
			profile.FavoriteFood = favorite

			_, ok := synth.Synthesize(profile)

			assert.False(t, ok)
		}
	})

	t.Run("same profile gives the same dish", func(t *testing.T) {
		profile := normalProfile()
		profile.FavoriteFood = "Chicken Curry"
		profile.HealthConditions = []string{"diabetes", "kidney disease"}
		profile.Allergies = []string{"dairy"}

		first, ok1 := synth.Synthesize(profile)
		second, ok2 := synth.Synthesize(profile)

		require.True(t, ok1)
		require.True(t, ok2)
		assert.Equal(t, first, second)
		assert.True(t, strings.HasPrefix(first.Name, StarMealPrefix))
	})
}

func TestAlternativesFor(t *testing.T) {
	alts := alternativesFor("Mozzarella Cheese")
	require.NotEmpty(t, alts)
	assert.Equal(t, "low-sodium part-skim cheese", alts[0].name)

	assert.Empty(t, alternativesFor("quinoa"))

	for _, alt := range alternativesFor("whole-wheat pizza dough") {
		assert.NotEqual(t, "whole-wheat pizza dough", alt.name)
	}
}
