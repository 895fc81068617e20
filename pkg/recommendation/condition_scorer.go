package recommendation

import (
	"sort"

	"healthy-eats-backend/domain"
)

const (
	DefaultLimit = 5
	MinLimit     = 3
	MaxLimit     = 6
)

// ConditionScorer ranks safe dishes for a profile and keeps the best few.
type ConditionScorer struct {
	limit    int
	greyZone GreyZone
}

// NewConditionScorer clamps limit into [MinLimit, MaxLimit]; zero means DefaultLimit.
func NewConditionScorer(limit int, greyZone GreyZone) *ConditionScorer {
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < MinLimit:
		limit = MinLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return &ConditionScorer{limit: limit, greyZone: greyZone}
}

func (s *ConditionScorer) Limit() int {
	return s.limit
}

type scoredDish struct {
	dish      domain.Dish
	key       string
	conflicts int
	tags      int
	penalty   int
}

// Rank orders dishes for the profile. Dishes with grey-zone ingredients for
// the effective conditions are used only when no compliant dish exists.
func (s *ConditionScorer) Rank(dishes []domain.Dish, profile domain.HealthProfile) []domain.Dish {
	if len(dishes) == 0 {
		return []domain.Dish{}
	}

	conditions := EffectiveConditions(profile)
	hypertension := conditions.Has(ConditionHypertension)
	diabetes := conditions.Has(ConditionDiabetes)

	all := make([]scoredDish, 0, len(dishes))
	compliant := make([]scoredDish, 0, len(dishes))
	for _, d := range dishes {
		sd := scoredDish{
			dish:      d,
			key:       domain.NormalizeTerm(d.Name),
			conflicts: s.greyZone.DishConflicts(d, conditions),
			tags:      tagMatches(d, suitabilityTags(d), conditions),
			penalty:   healthinessPenalty(d.NutritionSummary, profile.Age, profile.Weight),
		}
		all = append(all, sd)
		if sd.conflicts == 0 {
			compliant = append(compliant, sd)
		}
	}
	pool := compliant
	if len(pool) == 0 {
		pool = all
	}

	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if a.conflicts != b.conflicts {
			return a.conflicts < b.conflicts
		}
		if a.tags != b.tags {
			return a.tags > b.tags
		}
		an, bn := a.dish.NutritionSummary, b.dish.NutritionSummary
		if hypertension && an.Sodium != bn.Sodium {
			return an.Sodium < bn.Sodium
		}
		if diabetes && an.Carbohydrates != bn.Carbohydrates {
			return an.Carbohydrates < bn.Carbohydrates
		}
		if (hypertension || diabetes) && an.Calories != bn.Calories {
			return an.Calories < bn.Calories
		}
		if a.penalty != b.penalty {
			return a.penalty < b.penalty
		}
		if a.key != b.key {
			return a.key < b.key
		}
		return a.dish.Name < b.dish.Name
	})

	n := min(len(pool), s.limit)
	out := make([]domain.Dish, n)
	for i := 0; i < n; i++ {
		out[i] = pool[i].dish
	}
	return out
}

// healthinessPenalty is the neutral score used when no condition decides:
// distance from a 25/50/25 protein/carb/fat energy split, plus sodium over
// the per-meal budget for the age and calories away from the per-meal target.
func healthinessPenalty(n domain.NutritionSummary, age, weight int) int {
	penalty := 200
	if kcal := 4*n.Protein + 4*n.Carbohydrates + 9*n.Fats; kcal > 0 {
		pp := 400 * n.Protein / kcal
		cp := 400 * n.Carbohydrates / kcal
		fp := 900 * n.Fats / kcal
		penalty = abs(pp-25) + abs(cp-50) + abs(fp-25)
	}
	if over := n.Sodium - SodiumLimitByAge(age)/3; over > 0 {
		penalty += over / 20
	}
	penalty += abs(n.Calories-MealCalorieTarget(age, weight)) / 20
	return penalty
}

// SodiumLimitByAge is the daily sodium ceiling in mg.
func SodiumLimitByAge(age int) int {
	switch {
	case age <= 3:
		return 1200
	case age <= 8:
		return 1500
	case age <= 13:
		return 1800
	default:
		return 2300
	}
}

// MealCalorieTarget estimates one of three daily meals from body weight.
func MealCalorieTarget(age, weight int) int {
	daily := min(max(weight*30, 1200), 3200)
	if age > 50 {
		daily = daily * 9 / 10
	}
	return daily / 3
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
