package recommendations

import (
	"testing"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(true)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestRulesCoverEveryCondition(t *testing.T) {
	rules := defaultRules()
	for _, cond := range skin.AllConditions() {
		rule, ok := rules[cond]
		if !ok {
			t.Fatalf("no rule for condition %q", cond)
		}
		if len(rule.PrimaryIngredients) == 0 {
			t.Fatalf("rule for %q has no primary ingredients", cond)
		}
	}
}

func TestPrioritizeOrdersBySeverityPresenceThenConfidence(t *testing.T) {
	e := newTestEngine(t)
	conditions := []skin.DetectedCondition{
		{ConditionType: skin.ConditionPores, Severity: skin.SeverityNone, Confidence: 0.99},
		{ConditionType: skin.ConditionAcne, Severity: skin.SeverityMild, Confidence: 0.6},
		{ConditionType: skin.ConditionDryness, Severity: skin.SeverityModerate, Confidence: 0.8},
	}

	got := e.Prioritize(conditions, nil)

	if got[0].ConditionType != skin.ConditionDryness {
		t.Fatalf("expected dryness first, got %s", got[0].ConditionType)
	}
	if got[1].ConditionType != skin.ConditionAcne {
		t.Fatalf("expected acne second, got %s", got[1].ConditionType)
	}
	if got[2].ConditionType != skin.ConditionPores {
		t.Fatalf("expected none-severity pores last, got %s", got[2].ConditionType)
	}
}

func TestPrioritizeKeepsAtMostThree(t *testing.T) {
	e := newTestEngine(t)
	conditions := []skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeverityMild, Confidence: 0.9},
		{ConditionType: skin.ConditionOiliness, Severity: skin.SeverityMild, Confidence: 0.8},
		{ConditionType: skin.ConditionDryness, Severity: skin.SeverityMild, Confidence: 0.7},
		{ConditionType: skin.ConditionPores, Severity: skin.SeverityMild, Confidence: 0.6},
		{ConditionType: skin.ConditionWrinkles, Severity: skin.SeverityMild, Confidence: 0.5},
	}

	got := e.Prioritize(conditions, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 priority conditions, got %d", len(got))
	}
}

func TestPrioritizeMovesFocusAreasFirst(t *testing.T) {
	e := newTestEngine(t)
	conditions := []skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeveritySevere, Confidence: 0.95},
		{ConditionType: skin.ConditionWrinkles, Severity: skin.SeverityMild, Confidence: 0.5},
	}

	got := e.Prioritize(conditions, []skin.ConditionType{skin.ConditionWrinkles})

	if got[0].ConditionType != skin.ConditionWrinkles {
		t.Fatalf("expected focused wrinkles first, got %s", got[0].ConditionType)
	}
	if got[1].ConditionType != skin.ConditionAcne {
		t.Fatalf("expected acne second, got %s", got[1].ConditionType)
	}
}

func TestRecommendProductsRespectsTemplateCap(t *testing.T) {
	e := newTestEngine(t)
	priority := []skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeveritySevere, Confidence: 0.9},
		{ConditionType: skin.ConditionWrinkles, Severity: skin.SeverityModerate, Confidence: 0.85},
		{ConditionType: skin.ConditionDarkSpots, Severity: skin.SeverityModerate, Confidence: 0.8},
	}

	for _, complexity := range []string{"beginner", "intermediate", "advanced"} {
		products := e.recommendProducts(priority, nil, "", complexity)
		max := e.templates[complexity].MaxProducts
		if len(products) > max {
			t.Fatalf("%s routine has %d products, cap is %d", complexity, len(products), max)
		}
	}
}

func TestRecommendProductsBeginnerCoversBasics(t *testing.T) {
	e := newTestEngine(t)
	priority := e.Prioritize(sampleConditions(), nil)

	products := e.recommendProducts(priority, nil, "", "beginner")

	categories := map[ProductCategory]bool{}
	for _, p := range products {
		categories[p.Category] = true
	}
	for _, want := range []ProductCategory{CategoryCleanser, CategoryMoisturizer, CategorySunscreen} {
		if !categories[want] {
			t.Fatalf("beginner routine missing category %s", want)
		}
	}
	if len(products) > 4 {
		t.Fatalf("beginner routine has %d products, cap is 4", len(products))
	}
}

func TestRecommendProductsDoesNotDuplicateTreatments(t *testing.T) {
	e := newTestEngine(t)
	priority := []skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeveritySevere, Confidence: 0.9},
		{ConditionType: skin.ConditionPores, Severity: skin.SeverityModerate, Confidence: 0.85},
		{ConditionType: skin.ConditionOiliness, Severity: skin.SeverityModerate, Confidence: 0.8},
	}

	products := e.recommendProducts(priority, nil, "", "advanced")

	seen := map[string]bool{}
	for _, p := range products {
		if seen[p.ProductID] {
			t.Fatalf("product %s recommended twice", p.ProductID)
		}
		seen[p.ProductID] = true
	}
}

func TestBuildRoutineListsBothProductsTwice(t *testing.T) {
	e := newTestEngine(t)
	products := []Product{
		{ProductID: "a", TimeOfDay: Both, ApplicationOrder: 1, UsageFrequency: "twice daily"},
		{ProductID: "b", TimeOfDay: Morning, ApplicationOrder: 6, UsageFrequency: "daily"},
		{ProductID: "c", TimeOfDay: Evening, ApplicationOrder: 4, UsageFrequency: "every other day"},
	}

	routine := e.buildRoutine(products, "beginner")

	if len(routine.MorningRoutine) != 2 {
		t.Fatalf("expected 2 morning products, got %d", len(routine.MorningRoutine))
	}
	if len(routine.EveningRoutine) != 2 {
		t.Fatalf("expected 2 evening products, got %d", len(routine.EveningRoutine))
	}
	if routine.MorningRoutine[0].ProductID != "a" {
		t.Fatalf("expected application order to sort product a first, got %s", routine.MorningRoutine[0].ProductID)
	}
}

func TestBuildRoutineWeeklyDoubleListing(t *testing.T) {
	weekly := Product{ProductID: "retinol", TimeOfDay: Evening, ApplicationOrder: 4, UsageFrequency: "3 times per week"}

	withDouble := newTestEngine(t)
	routine := withDouble.buildRoutine([]Product{weekly}, "beginner")
	if len(routine.WeeklyTreatments) != 1 || len(routine.EveningRoutine) != 1 {
		t.Fatalf("double listing expected product in weekly and evening, got weekly=%d evening=%d",
			len(routine.WeeklyTreatments), len(routine.EveningRoutine))
	}

	noDouble, err := NewEngine(false)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	routine = noDouble.buildRoutine([]Product{weekly}, "beginner")
	if len(routine.WeeklyTreatments) != 1 {
		t.Fatalf("expected product in weekly treatments, got %d", len(routine.WeeklyTreatments))
	}
	if len(routine.EveningRoutine) != 0 {
		t.Fatalf("expected weekly product excluded from evening routine, got %d", len(routine.EveningRoutine))
	}
}

func TestEstimateCostTiers(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{2, "$30-60/month"},
		{3, "$30-60/month"},
		{4, "$50-100/month"},
		{5, "$50-100/month"},
		{6, "$80-150/month"},
	}
	for _, tc := range cases {
		if got := estimateCost(tc.count); got != tc.want {
			t.Fatalf("estimateCost(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestBudgetScore(t *testing.T) {
	cheap := Product{PriceRange: "$8-15"}
	pricey := Product{PriceRange: "$20-35"}

	if got := budgetScore(cheap, "low"); got != 1.0 {
		t.Fatalf("low budget score for cheap product = %v, want 1.0", got)
	}
	if got := budgetScore(pricey, "low"); got != 0.5 {
		t.Fatalf("low budget score for pricey product = %v, want 0.5", got)
	}
	if got := budgetScore(pricey, "high"); got != 1.0 {
		t.Fatalf("high budget score for pricey product = %v, want 1.0", got)
	}
	if got := budgetScore(cheap, "high"); got != 0.8 {
		t.Fatalf("high budget score for cheap product = %v, want 0.8", got)
	}
	if got := budgetScore(cheap, "medium"); got != 0.9 {
		t.Fatalf("medium budget score = %v, want 0.9", got)
	}
}

func TestConfidenceStaysWithinBounds(t *testing.T) {
	e := newTestEngine(t)

	high := []skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeveritySevere, Confidence: 1.0},
	}
	if got := e.confidence(high, true, "beginner"); got > 1.0 {
		t.Fatalf("confidence %v exceeds 1.0", got)
	}

	low := []skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeverityMild, Confidence: 0.0},
	}
	if got := e.confidence(low, false, "advanced"); got < 0.0 {
		t.Fatalf("confidence %v below 0.0", got)
	}
}

func TestConfidenceRewardsProfileAndSimplicity(t *testing.T) {
	e := newTestEngine(t)
	conditions := []skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeverityModerate, Confidence: 0.7},
	}

	base := e.confidence(conditions, false, "intermediate")
	withProfile := e.confidence(conditions, true, "intermediate")
	if withProfile <= base {
		t.Fatalf("profile should raise confidence: base=%v withProfile=%v", base, withProfile)
	}

	beginner := e.confidence(conditions, false, "beginner")
	advanced := e.confidence(conditions, false, "advanced")
	if beginner <= advanced {
		t.Fatalf("beginner confidence %v should exceed advanced %v", beginner, advanced)
	}
}

func TestImprovementTimeline(t *testing.T) {
	conditions := []skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeverityModerate, Confidence: 0.85},
		{ConditionType: skin.ConditionDryness, Severity: skin.SeverityMild, Confidence: 0.7},
	}
	got := improvementTimeline(conditions)
	want := "6-8 weeks for acne improvement; 1-2 weeks for hydration improvement"
	if got != want {
		t.Fatalf("timeline = %q, want %q", got, want)
	}

	if got := improvementTimeline(nil); got != "4-8 weeks for general skin improvement" {
		t.Fatalf("empty timeline = %q", got)
	}
}

func TestGenerateProducesCompleteResponse(t *testing.T) {
	e := newTestEngine(t)
	req := Request{
		AnalysisID:        "analysis-123",
		UserProfile:       map[string]any{"skin_type": "oily"},
		BudgetPreference:  "low",
		RoutineComplexity: "intermediate",
	}

	resp := e.Generate(req, sampleConditions())

	if resp.RecommendationID == "" {
		t.Fatal("missing recommendation id")
	}
	if resp.AnalysisID != "analysis-123" {
		t.Fatalf("analysis id = %q", resp.AnalysisID)
	}
	if !resp.Personalized {
		t.Fatal("expected personalized response with user profile")
	}
	if len(resp.PriorityConditions) == 0 || len(resp.PriorityConditions) > 3 {
		t.Fatalf("priority conditions = %d", len(resp.PriorityConditions))
	}
	if resp.FollowUpRecommended != "4-6 weeks" {
		t.Fatalf("follow up = %q", resp.FollowUpRecommended)
	}
	if resp.SkincareRoutine.DifficultyLevel != "intermediate" {
		t.Fatalf("difficulty = %q", resp.SkincareRoutine.DifficultyLevel)
	}
	if resp.ConfidenceScore < 0 || resp.ConfidenceScore > 1 {
		t.Fatalf("confidence %v out of range", resp.ConfidenceScore)
	}
}

func TestGenerateUnknownComplexityFallsBackToBeginner(t *testing.T) {
	e := newTestEngine(t)
	resp := e.Generate(Request{AnalysisID: "x", RoutineComplexity: "expert"}, sampleConditions())

	if resp.SkincareRoutine.DifficultyLevel != "beginner" {
		t.Fatalf("difficulty = %q, want beginner", resp.SkincareRoutine.DifficultyLevel)
	}
	total := len(resp.SkincareRoutine.MorningRoutine) + len(resp.SkincareRoutine.EveningRoutine)
	if total == 0 {
		t.Fatal("expected routine products for fallback template")
	}
}

func TestFormatPrioritySetsTreatmentPriority(t *testing.T) {
	got := formatPriority([]skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeveritySevere, Confidence: 0.9},
		{ConditionType: skin.ConditionPores, Severity: skin.SeverityMild, Confidence: 0.8},
	})

	if got[0].TreatmentPriority != "high" {
		t.Fatalf("severe condition priority = %q, want high", got[0].TreatmentPriority)
	}
	if got[1].TreatmentPriority != "medium" {
		t.Fatalf("mild condition priority = %q, want medium", got[1].TreatmentPriority)
	}
}

func TestAdviceExtendsForDetectedConditions(t *testing.T) {
	advice := buildAdvice([]skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeverityModerate, Confidence: 0.85},
	})

	found := false
	for _, tip := range advice.HabitsToAvoid {
		if tip == "Avoid heavy, pore-clogging products" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected acne-specific habit advice")
	}

	base := buildAdvice(nil)
	if len(base.HabitsToAvoid) >= len(advice.HabitsToAvoid) {
		t.Fatal("acne advice should extend the base list")
	}
}
