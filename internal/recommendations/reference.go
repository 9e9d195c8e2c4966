package recommendations

// IngredientInfo describes an active ingredient for the reference API.
type IngredientInfo struct {
	Name        string   `json:"name"`
	Benefits    []string `json:"benefits"`
	BestFor     []string `json:"best_for"`
	Usage       string   `json:"usage"`
	Precautions []string `json:"precautions"`
}

func ingredientReference() map[Ingredient]IngredientInfo {
	return map[Ingredient]IngredientInfo{
		IngredientRetinol: {
			Name:        "Retinol",
			Benefits:    []string{"Reduces fine lines", "Improves skin texture", "Boosts collagen production"},
			BestFor:     []string{"wrinkles", "uneven texture"},
			Usage:       "evening only",
			Precautions: []string{"Start slowly", "Use sunscreen", "May cause initial irritation"},
		},
		IngredientVitaminC: {
			Name:        "Vitamin C",
			Benefits:    []string{"Brightens skin", "Antioxidant protection", "Boosts collagen"},
			BestFor:     []string{"dark spots", "dull skin", "prevention"},
			Usage:       "morning preferred",
			Precautions: []string{"Use sunscreen", "Store properly"},
		},
		IngredientSalicylicAcid: {
			Name:        "Salicylic Acid (BHA)",
			Benefits:    []string{"Unclogs pores", "Reduces inflammation", "Exfoliates"},
			BestFor:     []string{"acne", "blackheads", "oily skin"},
			Usage:       "evening",
			Precautions: []string{"Start slowly", "May cause dryness"},
		},
		IngredientNiacinamide: {
			Name:        "Niacinamide",
			Benefits:    []string{"Controls oil", "Minimizes pores", "Reduces redness"},
			BestFor:     []string{"oily skin", "large pores", "acne"},
			Usage:       "morning and evening",
			Precautions: []string{"Generally well-tolerated"},
		},
		IngredientHyaluronicAcid: {
			Name:        "Hyaluronic Acid",
			Benefits:    []string{"Intense hydration", "Plumps skin", "Suitable for all skin types"},
			BestFor:     []string{"dry skin", "dehydration", "all skin types"},
			Usage:       "morning and evening",
			Precautions: []string{"Apply to damp skin"},
		},
	}
}

// SkinTypeTemplate is a named routine outline for a common skin type.
type SkinTypeTemplate struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Morning     []string `json:"morning"`
	Evening     []string `json:"evening"`
	Weekly      []string `json:"weekly"`
}

func skinTypeTemplates() map[string]SkinTypeTemplate {
	return map[string]SkinTypeTemplate{
		"oily_acne_prone": {
			Name:        "Oily & Acne-Prone Skin",
			Description: "For those with oily skin and frequent breakouts",
			Morning:     []string{"gentle_cleanser", "niacinamide_serum", "light_moisturizer", "spf"},
			Evening:     []string{"gentle_cleanser", "salicylic_acid", "moisturizer"},
			Weekly:      []string{"clay_mask"},
		},
		"dry_sensitive": {
			Name:        "Dry & Sensitive Skin",
			Description: "For those with dry, easily irritated skin",
			Morning:     []string{"gentle_cleanser", "hyaluronic_acid", "rich_moisturizer", "spf"},
			Evening:     []string{"gentle_cleanser", "ceramide_serum", "night_moisturizer"},
			Weekly:      []string{"hydrating_mask"},
		},
		"aging_concerns": {
			Name:        "Anti-Aging Focus",
			Description: "For those concerned with fine lines and skin firmness",
			Morning:     []string{"gentle_cleanser", "vitamin_c_serum", "moisturizer", "spf"},
			Evening:     []string{"gentle_cleanser", "retinol", "rich_moisturizer"},
			Weekly:      []string{"exfoliating_treatment"},
		},
		"combination_skin": {
			Name:        "Combination Skin",
			Description: "For those with oily T-zone and normal/dry cheeks",
			Morning:     []string{"gentle_cleanser", "lightweight_serum", "gel_moisturizer", "spf"},
			Evening:     []string{"gentle_cleanser", "targeted_treatments", "moisturizer"},
			Weekly:      []string{"multi_masking"},
		},
	}
}

func generalAdvice() map[string][]string {
	return map[string][]string{
		"lifestyle_tips": {
			"Stay hydrated - drink at least 8 glasses of water daily",
			"Get adequate sleep (7-9 hours) for skin repair",
			"Manage stress through meditation or exercise",
			"Avoid touching your face frequently",
			"Change pillowcases regularly",
			"Exercise regularly to improve circulation",
		},
		"dietary_suggestions": {
			"Eat foods rich in antioxidants (berries, leafy greens)",
			"Include omega-3 fatty acids (fish, nuts, seeds)",
			"Limit dairy if you have acne-prone skin",
			"Reduce sugar and processed foods",
			"Add probiotics for gut health",
			"Include vitamin C rich foods",
		},
		"habits_to_avoid": {
			"Over-washing your face (more than twice daily)",
			"Using harsh scrubs or aggressive exfoliation",
			"Picking at blemishes or blackheads",
			"Sleeping with makeup on",
			"Using expired skincare products",
			"Skipping sunscreen, even on cloudy days",
		},
		"when_to_see_dermatologist": {
			"Severe acne that doesn't respond to over-the-counter treatments",
			"Sudden changes in moles or new growths",
			"Persistent redness or irritation",
			"Signs of skin infection",
			"Severe allergic reactions to products",
			"Professional treatments needed (prescription retinoids, etc.)",
		},
	}
}
