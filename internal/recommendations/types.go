package recommendations

import (
	"time"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

// ProductCategory classifies skincare products.
type ProductCategory string

const (
	CategoryCleanser    ProductCategory = "cleanser"
	CategoryToner       ProductCategory = "toner"
	CategorySerum       ProductCategory = "serum"
	CategoryMoisturizer ProductCategory = "moisturizer"
	CategorySunscreen   ProductCategory = "sunscreen"
	CategoryTreatment   ProductCategory = "treatment"
	CategoryExfoliant   ProductCategory = "exfoliant"
	CategoryMask        ProductCategory = "mask"
	CategoryEyeCream    ProductCategory = "eye_cream"
)

// AllCategories lists every product category.
func AllCategories() []ProductCategory {
	return []ProductCategory{
		CategoryCleanser,
		CategoryToner,
		CategorySerum,
		CategoryMoisturizer,
		CategorySunscreen,
		CategoryTreatment,
		CategoryExfoliant,
		CategoryMask,
		CategoryEyeCream,
	}
}

// Ingredient identifies an active ingredient.
type Ingredient string

const (
	IngredientRetinol         Ingredient = "retinol"
	IngredientVitaminC        Ingredient = "vitamin_c"
	IngredientPeptides        Ingredient = "peptides"
	IngredientSalicylicAcid   Ingredient = "salicylic_acid"
	IngredientBenzoylPeroxide Ingredient = "benzoyl_peroxide"
	IngredientNiacinamide     Ingredient = "niacinamide"
	IngredientHyaluronicAcid  Ingredient = "hyaluronic_acid"
	IngredientGlycerin        Ingredient = "glycerin"
	IngredientCeramides       Ingredient = "ceramides"
	IngredientAlphaArbutin    Ingredient = "alpha_arbutin"
	IngredientKojicAcid       Ingredient = "kojic_acid"
	IngredientAzelaicAcid     Ingredient = "azelaic_acid"
	IngredientAHA             Ingredient = "aha"
	IngredientBHA             Ingredient = "bha"
	IngredientLacticAcid      Ingredient = "lactic_acid"
)

// TimeOfDay says when a product is applied.
type TimeOfDay string

const (
	Morning TimeOfDay = "morning"
	Evening TimeOfDay = "evening"
	Both    TimeOfDay = "both"
)

// Product is a catalog entry recommended to users.
type Product struct {
	ProductID        string               `json:"product_id"`
	Name             string               `json:"name"`
	Category         ProductCategory      `json:"category"`
	Brand            string               `json:"brand,omitempty"`
	KeyIngredients   []Ingredient         `json:"key_ingredients"`
	UsageFrequency   string               `json:"usage_frequency"`
	TimeOfDay        TimeOfDay            `json:"time_of_day"`
	ApplicationOrder int                  `json:"application_order"`
	TargetConditions []skin.ConditionType `json:"target_conditions"`
	Benefits         []string             `json:"benefits"`
	PriceRange       string               `json:"price_range,omitempty"`

	RecommendationConfidence float64 `json:"recommendation_confidence"`
	PersonalizationScore     float64 `json:"personalization_score"`
}

// Rule is the treatment rule for one skin condition.
type Rule struct {
	PrimaryIngredients   []Ingredient
	SecondaryIngredients []Ingredient
	AvoidIngredients     []Ingredient
	ProductCategories    []ProductCategory
	// SeverityModifiers maps severity to a usage frequency multiplier.
	SeverityModifiers map[skin.Severity]float64
}

// Template bounds a generated routine for one complexity level.
type Template struct {
	MaxProducts        int
	MaxActives         int
	RequiredCategories []ProductCategory
}

// Routine is an assembled skincare routine.
type Routine struct {
	RoutineID        string    `json:"routine_id"`
	MorningRoutine   []Product `json:"morning_routine"`
	EveningRoutine   []Product `json:"evening_routine"`
	WeeklyTreatments []Product `json:"weekly_treatments"`
	DifficultyLevel  string    `json:"difficulty_level"`
	EstimatedCost    string    `json:"estimated_cost,omitempty"`
	TimeCommitment   string    `json:"time_commitment"`
}

// Advice is general skincare guidance attached to a recommendation.
type Advice struct {
	LifestyleTips          []string `json:"lifestyle_tips"`
	DietarySuggestions     []string `json:"dietary_suggestions"`
	HabitsToAvoid          []string `json:"habits_to_avoid"`
	WhenToSeeDermatologist string   `json:"when_to_see_dermatologist,omitempty"`
}

// PriorityCondition is a condition selected for targeted treatment.
type PriorityCondition struct {
	Condition         skin.ConditionType `json:"condition"`
	Severity          skin.Severity      `json:"severity"`
	Confidence        float64            `json:"confidence"`
	TreatmentPriority string             `json:"treatment_priority"`
}

// Response is the complete recommendation payload.
type Response struct {
	RecommendationID            string              `json:"recommendation_id"`
	Timestamp                   time.Time           `json:"timestamp"`
	AnalysisID                  string              `json:"analysis_id"`
	SkincareRoutine             Routine             `json:"skincare_routine"`
	GeneralAdvice               Advice              `json:"general_advice"`
	PriorityConditions          []PriorityCondition `json:"priority_conditions"`
	ExpectedImprovementTimeline string              `json:"expected_improvement_timeline,omitempty"`
	FollowUpRecommended         string              `json:"follow_up_recommended,omitempty"`
	Personalized                bool                `json:"personalized"`
	ConfidenceScore             float64             `json:"confidence_score"`
}

// Request carries the parameters of a recommendation request.
type Request struct {
	AnalysisID        string
	UserProfile       map[string]any
	BudgetPreference  string
	RoutineComplexity string
	FocusAreas        []skin.ConditionType
}
