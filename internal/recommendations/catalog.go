package recommendations

import "github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"

// defaultCatalog returns the built-in product catalog keyed by category.
func defaultCatalog() map[ProductCategory][]Product {
	return map[ProductCategory][]Product{
		CategoryCleanser: {
			{
				ProductID:                "cleanser_001",
				Name:                     "Gentle Foaming Cleanser",
				Category:                 CategoryCleanser,
				Brand:                    "SkinCare Pro",
				KeyIngredients:           []Ingredient{IngredientGlycerin},
				UsageFrequency:           "twice daily",
				TimeOfDay:                Both,
				ApplicationOrder:         1,
				TargetConditions:         []skin.ConditionType{skin.ConditionOiliness, skin.ConditionAcne},
				Benefits:                 []string{"Removes excess oil", "Gentle on skin", "Maintains skin barrier"},
				PriceRange:               "$8-15",
				RecommendationConfidence: 0.9,
				PersonalizationScore:     0.7,
			},
			{
				ProductID:                "cleanser_002",
				Name:                     "Hydrating Cream Cleanser",
				Category:                 CategoryCleanser,
				Brand:                    "Gentle Care",
				KeyIngredients:           []Ingredient{IngredientCeramides, IngredientHyaluronicAcid},
				UsageFrequency:           "twice daily",
				TimeOfDay:                Both,
				ApplicationOrder:         1,
				TargetConditions:         []skin.ConditionType{skin.ConditionDryness},
				Benefits:                 []string{"Hydrates while cleansing", "Strengthens skin barrier", "Non-stripping"},
				PriceRange:               "$12-20",
				RecommendationConfidence: 0.85,
				PersonalizationScore:     0.8,
			},
		},
		CategorySerum: {
			{
				ProductID:                "serum_001",
				Name:                     "Niacinamide 10% Serum",
				Category:                 CategorySerum,
				Brand:                    "Active Solutions",
				KeyIngredients:           []Ingredient{IngredientNiacinamide},
				UsageFrequency:           "once daily",
				TimeOfDay:                Both,
				ApplicationOrder:         3,
				TargetConditions:         []skin.ConditionType{skin.ConditionAcne, skin.ConditionOiliness, skin.ConditionPores},
				Benefits:                 []string{"Controls oil production", "Minimizes pores", "Reduces inflammation"},
				PriceRange:               "$6-12",
				RecommendationConfidence: 0.95,
				PersonalizationScore:     0.9,
			},
			{
				ProductID:                "serum_002",
				Name:                     "Vitamin C 20% Serum",
				Category:                 CategorySerum,
				Brand:                    "Bright Skin",
				KeyIngredients:           []Ingredient{IngredientVitaminC},
				UsageFrequency:           "once daily",
				TimeOfDay:                Morning,
				ApplicationOrder:         3,
				TargetConditions:         []skin.ConditionType{skin.ConditionDarkSpots, skin.ConditionPigmentation},
				Benefits:                 []string{"Brightens skin", "Fades dark spots", "Antioxidant protection"},
				PriceRange:               "$15-25",
				RecommendationConfidence: 0.88,
				PersonalizationScore:     0.85,
			},
			{
				ProductID:                "serum_003",
				Name:                     "Hyaluronic Acid Serum",
				Category:                 CategorySerum,
				Brand:                    "Hydro Plus",
				KeyIngredients:           []Ingredient{IngredientHyaluronicAcid},
				UsageFrequency:           "twice daily",
				TimeOfDay:                Both,
				ApplicationOrder:         3,
				TargetConditions:         []skin.ConditionType{skin.ConditionDryness},
				Benefits:                 []string{"Intense hydration", "Plumps skin", "Suitable for all skin types"},
				PriceRange:               "$10-18",
				RecommendationConfidence: 0.92,
				PersonalizationScore:     0.88,
			},
		},
		CategoryTreatment: {
			{
				ProductID:                "treatment_001",
				Name:                     "Retinol 0.5% Treatment",
				Category:                 CategoryTreatment,
				Brand:                    "Anti-Age Pro",
				KeyIngredients:           []Ingredient{IngredientRetinol},
				UsageFrequency:           "3 times per week",
				TimeOfDay:                Evening,
				ApplicationOrder:         4,
				TargetConditions:         []skin.ConditionType{skin.ConditionWrinkles, skin.ConditionAcne},
				Benefits:                 []string{"Reduces fine lines", "Improves texture", "Boosts collagen"},
				PriceRange:               "$20-35",
				RecommendationConfidence: 0.9,
				PersonalizationScore:     0.85,
			},
			{
				ProductID:                "treatment_002",
				Name:                     "Salicylic Acid 2% Treatment",
				Category:                 CategoryTreatment,
				Brand:                    "Clear Skin",
				KeyIngredients:           []Ingredient{IngredientSalicylicAcid},
				UsageFrequency:           "every other day",
				TimeOfDay:                Evening,
				ApplicationOrder:         4,
				TargetConditions:         []skin.ConditionType{skin.ConditionAcne, skin.ConditionPores},
				Benefits:                 []string{"Unclogs pores", "Reduces breakouts", "Gentle exfoliation"},
				PriceRange:               "$12-22",
				RecommendationConfidence: 0.87,
				PersonalizationScore:     0.82,
			},
		},
		CategoryMoisturizer: {
			{
				ProductID:                "moisturizer_001",
				Name:                     "Lightweight Gel Moisturizer",
				Category:                 CategoryMoisturizer,
				Brand:                    "Fresh Face",
				KeyIngredients:           []Ingredient{IngredientHyaluronicAcid, IngredientNiacinamide},
				UsageFrequency:           "twice daily",
				TimeOfDay:                Both,
				ApplicationOrder:         5,
				TargetConditions:         []skin.ConditionType{skin.ConditionOiliness},
				Benefits:                 []string{"Non-greasy hydration", "Controls oil", "Won't clog pores"},
				PriceRange:               "$14-24",
				RecommendationConfidence: 0.88,
				PersonalizationScore:     0.8,
			},
			{
				ProductID:                "moisturizer_002",
				Name:                     "Rich Repair Cream",
				Category:                 CategoryMoisturizer,
				Brand:                    "Nourish Plus",
				KeyIngredients:           []Ingredient{IngredientCeramides, IngredientPeptides},
				UsageFrequency:           "twice daily",
				TimeOfDay:                Both,
				ApplicationOrder:         5,
				TargetConditions:         []skin.ConditionType{skin.ConditionDryness, skin.ConditionWrinkles},
				Benefits:                 []string{"Deep hydration", "Strengthens barrier", "Anti-aging benefits"},
				PriceRange:               "$18-30",
				RecommendationConfidence: 0.9,
				PersonalizationScore:     0.85,
			},
		},
		CategorySunscreen: {
			{
				ProductID:                "sunscreen_001",
				Name:                     "Broad Spectrum SPF 30",
				Category:                 CategorySunscreen,
				Brand:                    "Sun Shield",
				KeyIngredients:           []Ingredient{},
				UsageFrequency:           "daily",
				TimeOfDay:                Morning,
				ApplicationOrder:         6,
				// Preventive, applies regardless of detected conditions.
				TargetConditions:         []skin.ConditionType{},
				Benefits:                 []string{"UV protection", "Prevents premature aging", "Non-comedogenic"},
				PriceRange:               "$10-18",
				RecommendationConfidence: 1.0,
				PersonalizationScore:     0.9,
			},
		},
	}
}
