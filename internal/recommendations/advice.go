package recommendations

import "github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"

// buildAdvice assembles general guidance, extending the base lists with
// condition-specific tips for the prioritized conditions.
func buildAdvice(priority []skin.DetectedCondition) Advice {
	lifestyle := []string{
		"Stay hydrated by drinking plenty of water",
		"Get adequate sleep for skin repair and renewal",
		"Manage stress through relaxation techniques",
		"Avoid touching your face frequently",
	}
	dietary := []string{
		"Include antioxidant-rich foods in your diet",
		"Consider reducing dairy if you have acne-prone skin",
		"Limit high-glycemic foods that may trigger breakouts",
	}
	avoid := []string{
		"Don't over-wash your face",
		"Avoid picking at blemishes",
		"Don't skip sunscreen, even on cloudy days",
	}

	if hasCondition(priority, skin.ConditionAcne) {
		avoid = append(avoid, "Avoid heavy, pore-clogging products")
		dietary = append(dietary, "Consider probiotics for gut health")
	}
	if hasCondition(priority, skin.ConditionWrinkles) {
		lifestyle = append(lifestyle, "Use a silk pillowcase to reduce friction")
		avoid = append(avoid, "Don't sleep on your stomach")
	}
	if hasCondition(priority, skin.ConditionDryness) {
		lifestyle = append(lifestyle, "Use a humidifier in dry environments")
		avoid = append(avoid, "Avoid hot showers that strip natural oils")
	}

	return Advice{
		LifestyleTips:          lifestyle,
		DietarySuggestions:     dietary,
		HabitsToAvoid:          avoid,
		WhenToSeeDermatologist: "If conditions worsen or don't improve after 8-12 weeks",
	}
}
