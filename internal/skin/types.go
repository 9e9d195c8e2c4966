// Package skin defines the skin-condition domain model shared by the
// analysis and recommendation features.
package skin

// ConditionType identifies a detectable skin condition.
type ConditionType string

const (
	ConditionAcne         ConditionType = "acne"
	ConditionWrinkles     ConditionType = "wrinkles"
	ConditionDarkSpots    ConditionType = "dark_spots"
	ConditionOiliness     ConditionType = "oiliness"
	ConditionDryness      ConditionType = "dryness"
	ConditionPores        ConditionType = "pores"
	ConditionPigmentation ConditionType = "pigmentation"
)

// AllConditions lists every supported condition type.
func AllConditions() []ConditionType {
	return []ConditionType{
		ConditionAcne,
		ConditionWrinkles,
		ConditionDarkSpots,
		ConditionOiliness,
		ConditionDryness,
		ConditionPores,
		ConditionPigmentation,
	}
}

// ParseCondition maps a raw identifier to a ConditionType.
func ParseCondition(raw string) (ConditionType, bool) {
	for _, c := range AllConditions() {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// Severity is the ordinal severity of a detected condition.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Rank returns the ordinal position of the severity, none being lowest.
func (s Severity) Rank() int {
	switch s {
	case SeverityMild:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySevere:
		return 3
	default:
		return 0
	}
}

// Zone is a face region considered during analysis.
type Zone string

const (
	ZoneForehead Zone = "forehead"
	ZoneCheeks   Zone = "cheeks"
	ZoneNose     Zone = "nose"
	ZoneChin     Zone = "chin"
	ZoneTZone    Zone = "t_zone"
	ZoneOverall  Zone = "overall"
)

// FaceZones lists the concrete face regions, excluding the overall marker.
func FaceZones() []Zone {
	return []Zone{ZoneForehead, ZoneCheeks, ZoneNose, ZoneChin, ZoneTZone}
}

// ParseZone maps a raw zone name to a Zone, defaulting to overall for
// unrecognized input.
func ParseZone(raw string) Zone {
	switch Zone(raw) {
	case ZoneForehead, ZoneCheeks, ZoneNose, ZoneChin, ZoneTZone, ZoneOverall:
		return Zone(raw)
	default:
		return ZoneOverall
	}
}

// BoundingBox locates a detected region within the analyzed image.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetectedCondition is a single condition detection result.
type DetectedCondition struct {
	ConditionType ConditionType `json:"condition_type"`
	Severity      Severity      `json:"severity"`
	Confidence    float64       `json:"confidence"`
	AffectedZones []Zone        `json:"affected_zones"`
	BoundingBoxes []BoundingBox `json:"bounding_boxes,omitempty"`
}
