package recommendations

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

// Engine generates skincare routines from detected conditions using a
// rule table, a product catalog, and per-complexity routine templates.
type Engine struct {
	catalog   map[ProductCategory][]Product
	rules     map[skin.ConditionType]Rule
	templates map[string]Template

	// weeklyDoubleListing keeps weekly-frequency products in the daily
	// routine buckets in addition to the weekly list.
	weeklyDoubleListing bool
}

// NewEngine builds an Engine from the built-in catalog, rules, and
// templates. It fails when the rule table does not cover every supported
// condition or a template requires a category missing from the catalog.
func NewEngine(weeklyDoubleListing bool) (*Engine, error) {
	e := &Engine{
		catalog:             defaultCatalog(),
		rules:               defaultRules(),
		templates:           defaultTemplates(),
		weeklyDoubleListing: weeklyDoubleListing,
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) validate() error {
	for _, cond := range skin.AllConditions() {
		rule, ok := e.rules[cond]
		if !ok {
			return fmt.Errorf("recommendations: no rule for condition %q", cond)
		}
		for _, sev := range []skin.Severity{skin.SeverityMild, skin.SeverityModerate, skin.SeveritySevere} {
			if _, ok := rule.SeverityModifiers[sev]; !ok {
				return fmt.Errorf("recommendations: rule for %q missing severity modifier %q", cond, sev)
			}
		}
	}
	for name, tpl := range e.templates {
		for _, cat := range tpl.RequiredCategories {
			if len(e.catalog[cat]) == 0 {
				return fmt.Errorf("recommendations: template %q requires empty category %q", name, cat)
			}
		}
	}
	return nil
}

// Generate produces a complete recommendation for the given conditions.
func (e *Engine) Generate(req Request, conditions []skin.DetectedCondition) Response {
	priority := e.Prioritize(conditions, req.FocusAreas)
	products := e.recommendProducts(priority, req.UserProfile, req.BudgetPreference, req.RoutineComplexity)
	routine := e.buildRoutine(products, req.RoutineComplexity)

	return Response{
		RecommendationID:            uuid.NewString(),
		Timestamp:                   time.Now().UTC(),
		AnalysisID:                  req.AnalysisID,
		SkincareRoutine:             routine,
		GeneralAdvice:               buildAdvice(priority),
		PriorityConditions:          formatPriority(priority),
		ExpectedImprovementTimeline: improvementTimeline(priority),
		FollowUpRecommended:         "4-6 weeks",
		Personalized:                req.UserProfile != nil,
		ConfidenceScore:             e.confidence(priority, req.UserProfile != nil, req.RoutineComplexity),
	}
}

// Prioritize orders conditions by severity presence and confidence,
// moves focus-area conditions to the front, and keeps the top three.
func (e *Engine) Prioritize(conditions []skin.DetectedCondition, focusAreas []skin.ConditionType) []skin.DetectedCondition {
	priority := make([]skin.DetectedCondition, len(conditions))
	copy(priority, conditions)

	sort.SliceStable(priority, func(i, j int) bool {
		pi, pj := priority[i], priority[j]
		ni := pi.Severity != skin.SeverityNone
		nj := pj.Severity != skin.SeverityNone
		if ni != nj {
			return ni
		}
		if pi.Confidence != pj.Confidence {
			return pi.Confidence > pj.Confidence
		}
		si := pi.Severity == skin.SeveritySevere
		sj := pj.Severity == skin.SeveritySevere
		return si && !sj
	})

	if len(focusAreas) > 0 {
		focused := make([]skin.DetectedCondition, 0, len(priority))
		unfocused := make([]skin.DetectedCondition, 0, len(priority))
		for _, c := range priority {
			if containsCondition(focusAreas, c.ConditionType) {
				focused = append(focused, c)
			} else {
				unfocused = append(unfocused, c)
			}
		}
		priority = append(focused, unfocused...)
	}

	if len(priority) > 3 {
		priority = priority[:3]
	}
	return priority
}

func (e *Engine) recommendProducts(
	priority []skin.DetectedCondition,
	profile map[string]any,
	budget string,
	complexity string,
) []Product {
	template := e.template(complexity)
	var selected []Product

	for _, category := range template.RequiredCategories {
		candidates := e.productsForCategory(category, priority)
		if len(candidates) == 0 {
			continue
		}
		selected = append(selected, e.selectBest(candidates, profile, budget))
	}

	activesAdded := 0
	for _, cond := range priority {
		if activesAdded >= template.MaxActives {
			break
		}
		targeted := e.targetedTreatments(cond.ConditionType)
		if len(targeted) == 0 {
			continue
		}
		best := e.selectBest(targeted, profile, budget)
		if hasProduct(selected, best.ProductID) {
			continue
		}
		selected = append(selected, best)
		activesAdded++
	}

	if len(selected) > template.MaxProducts {
		selected = selected[:template.MaxProducts]
	}
	return selected
}

// template resolves a complexity level, falling back to beginner.
func (e *Engine) template(complexity string) Template {
	if tpl, ok := e.templates[complexity]; ok {
		return tpl
	}
	return e.templates["beginner"]
}

// productsForCategory returns the category's products that target any of
// the given conditions, or the whole category when nothing matches.
func (e *Engine) productsForCategory(category ProductCategory, conditions []skin.DetectedCondition) []Product {
	products := e.catalog[category]

	var relevant []Product
	for _, p := range products {
		for _, target := range p.TargetConditions {
			if hasCondition(conditions, target) {
				relevant = append(relevant, p)
				break
			}
		}
	}
	if len(relevant) > 0 {
		return relevant
	}
	return products
}

// targetedTreatments returns treatment and serum products that target
// the given condition.
func (e *Engine) targetedTreatments(cond skin.ConditionType) []Product {
	pool := append([]Product{}, e.catalog[CategoryTreatment]...)
	pool = append(pool, e.catalog[CategorySerum]...)

	var targeted []Product
	for _, p := range pool {
		if containsCondition(p.TargetConditions, cond) {
			targeted = append(targeted, p)
		}
	}
	return targeted
}

// selectBest scores candidates and returns the highest-scoring one.
// Ties keep the earliest candidate.
func (e *Engine) selectBest(products []Product, profile map[string]any, budget string) Product {
	best := products[0]
	bestScore := e.score(products[0], profile, budget)
	for _, p := range products[1:] {
		if s := e.score(p, profile, budget); s > bestScore {
			best, bestScore = p, s
		}
	}
	return best
}

func (e *Engine) score(p Product, profile map[string]any, budget string) float64 {
	score := p.RecommendationConfidence
	if profile != nil {
		score += p.PersonalizationScore * 0.2
	}
	if budget != "" {
		score += budgetScore(p, budget) * 0.1
	}
	return score
}

func budgetScore(p Product, budget string) float64 {
	priceRange := p.PriceRange
	if priceRange == "" {
		priceRange = "$0-50"
	}
	switch budget {
	case "low":
		if strings.Contains(priceRange, "$") && !strings.Contains(priceRange, "30") {
			return 1.0
		}
		return 0.5
	case "high":
		if strings.Contains(priceRange, "30") || strings.Contains(priceRange, "40") {
			return 1.0
		}
		return 0.8
	default:
		return 0.9
	}
}

func (e *Engine) buildRoutine(products []Product, complexity string) Routine {
	sorted := make([]Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ApplicationOrder < sorted[j].ApplicationOrder
	})

	morning := []Product{}
	evening := []Product{}
	weekly := []Product{}

	for _, p := range sorted {
		isWeekly := strings.Contains(p.UsageFrequency, "week")
		if isWeekly {
			weekly = append(weekly, p)
		}
		if isWeekly && !e.weeklyDoubleListing {
			continue
		}
		switch p.TimeOfDay {
		case Morning:
			morning = append(morning, p)
		case Evening:
			evening = append(evening, p)
		case Both:
			morning = append(morning, p)
			evening = append(evening, p)
		}
	}

	return Routine{
		RoutineID:        uuid.NewString(),
		MorningRoutine:   morning,
		EveningRoutine:   evening,
		WeeklyTreatments: weekly,
		DifficultyLevel:  complexityLevel(complexity),
		EstimatedCost:    estimateCost(len(products)),
		TimeCommitment:   estimateTime(complexity),
	}
}

// complexityLevel normalizes unknown levels to beginner so the routine
// label matches the template actually applied.
func complexityLevel(complexity string) string {
	switch complexity {
	case "beginner", "intermediate", "advanced":
		return complexity
	default:
		return "beginner"
	}
}

func estimateCost(productCount int) string {
	switch {
	case productCount <= 3:
		return "$30-60/month"
	case productCount <= 5:
		return "$50-100/month"
	default:
		return "$80-150/month"
	}
}

func estimateTime(complexity string) string {
	switch complexity {
	case "beginner":
		return "3-5 minutes"
	case "intermediate":
		return "5-8 minutes"
	default:
		return "8-12 minutes"
	}
}

func formatPriority(priority []skin.DetectedCondition) []PriorityCondition {
	formatted := make([]PriorityCondition, 0, len(priority))
	for _, c := range priority {
		treatmentPriority := "medium"
		if c.Severity == skin.SeveritySevere {
			treatmentPriority = "high"
		}
		formatted = append(formatted, PriorityCondition{
			Condition:         c.ConditionType,
			Severity:          c.Severity,
			Confidence:        c.Confidence,
			TreatmentPriority: treatmentPriority,
		})
	}
	return formatted
}

func improvementTimeline(priority []skin.DetectedCondition) string {
	var timelines []string
	for _, c := range priority {
		switch c.ConditionType {
		case skin.ConditionAcne:
			timelines = append(timelines, "6-8 weeks for acne improvement")
		case skin.ConditionDarkSpots:
			timelines = append(timelines, "8-12 weeks for dark spot fading")
		case skin.ConditionWrinkles:
			timelines = append(timelines, "12-16 weeks for anti-aging results")
		case skin.ConditionOiliness:
			timelines = append(timelines, "2-4 weeks for oil control")
		case skin.ConditionDryness:
			timelines = append(timelines, "1-2 weeks for hydration improvement")
		}
	}
	if len(timelines) > 0 {
		return strings.Join(timelines, "; ")
	}
	return "4-8 weeks for general skin improvement"
}

func (e *Engine) confidence(priority []skin.DetectedCondition, hasProfile bool, complexity string) float64 {
	confidence := 0.8

	if len(priority) > 0 {
		sum := 0.0
		for _, c := range priority {
			sum += c.Confidence
		}
		avg := sum / float64(len(priority))
		confidence += (avg - 0.7) * 0.2
	}

	if hasProfile {
		confidence += 0.1
	}

	switch complexity {
	case "beginner":
		confidence += 0.05
	case "advanced":
		confidence -= 0.05
	}

	if confidence > 1.0 {
		return 1.0
	}
	if confidence < 0.0 {
		return 0.0
	}
	return confidence
}

func hasCondition(conditions []skin.DetectedCondition, t skin.ConditionType) bool {
	for _, c := range conditions {
		if c.ConditionType == t {
			return true
		}
	}
	return false
}

func containsCondition(types []skin.ConditionType, t skin.ConditionType) bool {
	for _, c := range types {
		if c == t {
			return true
		}
	}
	return false
}

func hasProduct(products []Product, id string) bool {
	for _, p := range products {
		if p.ProductID == id {
			return true
		}
	}
	return false
}
