package recommendations

import "github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"

// defaultRules returns the treatment rule for every supported condition.
// NewEngine rejects a rule table that does not cover all conditions.
func defaultRules() map[skin.ConditionType]Rule {
	return map[skin.ConditionType]Rule{
		skin.ConditionAcne: {
			PrimaryIngredients:   []Ingredient{IngredientSalicylicAcid, IngredientNiacinamide},
			SecondaryIngredients: []Ingredient{IngredientBenzoylPeroxide},
			AvoidIngredients:     []Ingredient{},
			ProductCategories:    []ProductCategory{CategoryCleanser, CategorySerum, CategoryTreatment},
			SeverityModifiers: map[skin.Severity]float64{
				skin.SeverityMild:     0.8,
				skin.SeverityModerate: 1.0,
				skin.SeveritySevere:   1.2,
			},
		},
		skin.ConditionWrinkles: {
			PrimaryIngredients:   []Ingredient{IngredientRetinol, IngredientVitaminC},
			SecondaryIngredients: []Ingredient{IngredientPeptides},
			AvoidIngredients:     []Ingredient{},
			ProductCategories:    []ProductCategory{CategorySerum, CategoryTreatment, CategoryMoisturizer},
			SeverityModifiers: map[skin.Severity]float64{
				skin.SeverityMild:     0.8,
				skin.SeverityModerate: 1.0,
				skin.SeveritySevere:   1.3,
			},
		},
		skin.ConditionDarkSpots: {
			PrimaryIngredients:   []Ingredient{IngredientVitaminC, IngredientAlphaArbutin},
			SecondaryIngredients: []Ingredient{IngredientNiacinamide, IngredientAzelaicAcid},
			AvoidIngredients:     []Ingredient{},
			ProductCategories:    []ProductCategory{CategorySerum, CategoryTreatment},
			SeverityModifiers: map[skin.Severity]float64{
				skin.SeverityMild:     0.9,
				skin.SeverityModerate: 1.0,
				skin.SeveritySevere:   1.2,
			},
		},
		skin.ConditionOiliness: {
			PrimaryIngredients:   []Ingredient{IngredientNiacinamide, IngredientSalicylicAcid},
			SecondaryIngredients: []Ingredient{IngredientAHA},
			AvoidIngredients:     []Ingredient{},
			ProductCategories:    []ProductCategory{CategoryCleanser, CategorySerum, CategoryMoisturizer},
			SeverityModifiers: map[skin.Severity]float64{
				skin.SeverityMild:     0.8,
				skin.SeverityModerate: 1.0,
				skin.SeveritySevere:   1.1,
			},
		},
		skin.ConditionDryness: {
			PrimaryIngredients:   []Ingredient{IngredientHyaluronicAcid, IngredientCeramides},
			SecondaryIngredients: []Ingredient{IngredientGlycerin},
			AvoidIngredients:     []Ingredient{IngredientSalicylicAcid, IngredientAHA},
			ProductCategories:    []ProductCategory{CategoryCleanser, CategorySerum, CategoryMoisturizer},
			SeverityModifiers: map[skin.Severity]float64{
				skin.SeverityMild:     1.0,
				skin.SeverityModerate: 1.2,
				skin.SeveritySevere:   1.4,
			},
		},
		skin.ConditionPores: {
			PrimaryIngredients:   []Ingredient{IngredientNiacinamide, IngredientBHA},
			SecondaryIngredients: []Ingredient{IngredientSalicylicAcid},
			AvoidIngredients:     []Ingredient{},
			ProductCategories:    []ProductCategory{CategoryCleanser, CategorySerum, CategoryTreatment},
			SeverityModifiers: map[skin.Severity]float64{
				skin.SeverityMild:     0.8,
				skin.SeverityModerate: 1.0,
				skin.SeveritySevere:   1.1,
			},
		},
		skin.ConditionPigmentation: {
			PrimaryIngredients:   []Ingredient{IngredientAlphaArbutin, IngredientKojicAcid},
			SecondaryIngredients: []Ingredient{IngredientVitaminC, IngredientAzelaicAcid},
			AvoidIngredients:     []Ingredient{},
			ProductCategories:    []ProductCategory{CategorySerum, CategoryTreatment},
			SeverityModifiers: map[skin.Severity]float64{
				skin.SeverityMild:     0.9,
				skin.SeverityModerate: 1.0,
				skin.SeveritySevere:   1.2,
			},
		},
	}
}

// defaultTemplates returns the routine template for each complexity level.
func defaultTemplates() map[string]Template {
	return map[string]Template{
		"beginner": {
			MaxProducts:        4,
			MaxActives:         1,
			RequiredCategories: []ProductCategory{CategoryCleanser, CategoryMoisturizer, CategorySunscreen},
		},
		"intermediate": {
			MaxProducts:        6,
			MaxActives:         2,
			RequiredCategories: []ProductCategory{CategoryCleanser, CategorySerum, CategoryMoisturizer, CategorySunscreen},
		},
		"advanced": {
			MaxProducts:        8,
			MaxActives:         3,
			RequiredCategories: []ProductCategory{CategoryCleanser, CategorySerum, CategoryTreatment, CategoryMoisturizer, CategorySunscreen},
		},
	}
}
