package analyses

import (
	"math"
	"strings"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

// severityWeights are the health score deductions per severity level.
var severityWeights = map[skin.Severity]float64{
	skin.SeverityNone:     0,
	skin.SeverityMild:     3,
	skin.SeverityModerate: 8,
	skin.SeveritySevere:   15,
}

// conditionWeights scale deductions by how much a condition impacts
// overall skin health.
var conditionWeights = map[skin.ConditionType]float64{
	skin.ConditionAcne:         1.2,
	skin.ConditionWrinkles:     1.0,
	skin.ConditionDarkSpots:    1.1,
	skin.ConditionOiliness:     0.8,
	skin.ConditionDryness:      0.9,
	skin.ConditionPores:        0.7,
	skin.ConditionPigmentation: 1.1,
}

// HealthScore computes an overall skin health score in [0, 100] from the
// detected conditions. An empty detection set yields a good baseline.
func HealthScore(conditions []skin.DetectedCondition) float64 {
	if len(conditions) == 0 {
		return 85.0
	}

	score := 100.0
	for _, c := range conditions {
		weight, ok := conditionWeights[c.ConditionType]
		if !ok {
			weight = 1.0
		}
		score -= severityWeights[c.Severity] * weight * c.Confidence
	}
	if score < 0 {
		score = 0
	}
	return math.Round(score*10) / 10
}

// ParseZones maps a comma-separated zone string to zones, defaulting
// unknown or empty entries to overall.
func ParseZones(raw string) []skin.Zone {
	if strings.TrimSpace(raw) == "" {
		return []skin.Zone{skin.ZoneOverall}
	}
	parts := strings.Split(raw, ",")
	zones := make([]skin.Zone, 0, len(parts))
	for _, p := range parts {
		zones = append(zones, skin.ParseZone(strings.ToLower(strings.TrimSpace(p))))
	}
	return zones
}
