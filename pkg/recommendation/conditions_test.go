package recommendation

import (
	"testing"

	"healthy-eats-backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCondition(t *testing.T) {
	tests := map[string]string{
		"Hypertension":        ConditionHypertension,
		"high blood pressure": ConditionHypertension,
		"Low Blood Pressure":  ConditionHypotension,
		"Type 2 Diabetes":     ConditionDiabetes,
		"low blood sugar":     ConditionHypoglycemia,
		"chronic kidney":      ConditionKidneyDisease,
		"High cholesterol":    ConditionHeartDisease,
		"iron deficiency":     ConditionAnemia,
		"  Migraine ":         "migraine",
	}
	for raw, want := range tests {
		assert.Equal(t, want, CanonicalCondition(raw), raw)
	}
}

func TestEffectiveConditions(t *testing.T) {
	t.Run("hypertensive reading adds hypertension", func(t *testing.T) {
		got := EffectiveConditions(domain.HealthProfile{SystolicBP: 150, DiastolicBP: 85})
		assert.Equal(t, Conditions{ConditionHypertension}, got)
	})

	t.Run("diastolic alone is enough", func(t *testing.T) {
		got := EffectiveConditions(domain.HealthProfile{SystolicBP: 130, DiastolicBP: 90})
		assert.True(t, got.Has(ConditionHypertension))
	})

	t.Run("stated conditions are canonical, unique and sorted", func(t *testing.T) {
		got := EffectiveConditions(domain.HealthProfile{
			HealthConditions: []string{"Diabetic", "hypertension", "high blood pressure"},
			SystolicBP:       120,
			DiastolicBP:      80,
		})
		assert.Equal(t, Conditions{ConditionDiabetes, ConditionHypertension}, got)
	})

	t.Run("normal reading and no conditions", func(t *testing.T) {
		got := EffectiveConditions(domain.HealthProfile{SystolicBP: 118, DiastolicBP: 76})
		assert.Empty(t, got)
	})
}
