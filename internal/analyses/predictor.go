package analyses

import (
	"math/rand"
	"sync"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

// ConditionPredictor produces skin condition detections for an analyzed
// face region. The random implementation below stands in for a trained
// model; callers depend only on this interface so the two are swappable.
type ConditionPredictor interface {
	// PredictDetailed scores every supported condition, keeping those
	// above the confidence threshold, with zones and bounding boxes.
	PredictDetailed(zones []skin.Zone, width, height int) []skin.DetectedCondition
	// PredictBasic samples a small set of conditions with high confidence
	// and no localization detail.
	PredictBasic(zones []skin.Zone) []skin.DetectedCondition
}

// RandomPredictor draws condition detections from fixed distributions.
// Output is intentionally non-reproducible unless a seeded source is
// injected.
type RandomPredictor struct {
	mu         sync.Mutex
	rng        *rand.Rand
	threshold  float64
	conditions []skin.ConditionType
}

// NewRandomPredictor builds a predictor over the given condition set.
// Conditions below threshold are dropped in detailed mode.
func NewRandomPredictor(conditions []skin.ConditionType, threshold float64, src rand.Source) *RandomPredictor {
	return &RandomPredictor{
		rng:        rand.New(src),
		threshold:  threshold,
		conditions: conditions,
	}
}

// PredictDetailed draws a confidence in [0.3, 0.95] per supported
// condition and keeps those above the threshold.
func (p *RandomPredictor) PredictDetailed(zones []skin.Zone, width, height int) []skin.DetectedCondition {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []skin.DetectedCondition
	for _, ct := range p.conditions {
		confidence := p.uniform(0.3, 0.95)
		if confidence <= p.threshold {
			continue
		}
		severity := p.severityFor(confidence)
		dc := skin.DetectedCondition{
			ConditionType: ct,
			Severity:      severity,
			Confidence:    confidence,
			AffectedZones: p.affectedZones(ct, zones),
		}
		if severity != skin.SeverityNone {
			dc.BoundingBoxes = p.boundingBoxes(width, height)
		}
		out = append(out, dc)
	}
	return out
}

// PredictBasic samples 2-3 conditions with confidence in [0.7, 0.95].
func (p *RandomPredictor) PredictBasic(zones []skin.Zone) []skin.DetectedCondition {
	p.mu.Lock()
	defer p.mu.Unlock()

	k := 2 + p.rng.Intn(2)
	selected := p.sampleConditions(k)

	out := make([]skin.DetectedCondition, 0, len(selected))
	for _, ct := range selected {
		confidence := p.uniform(0.7, 0.95)
		out = append(out, skin.DetectedCondition{
			ConditionType: ct,
			Severity:      p.severityFor(confidence),
			Confidence:    confidence,
			AffectedZones: []skin.Zone{skin.ZoneOverall},
		})
	}
	return out
}

func (p *RandomPredictor) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}

// severityFor maps higher confidence onto more severe outcomes.
func (p *RandomPredictor) severityFor(confidence float64) skin.Severity {
	switch {
	case confidence > 0.9:
		return p.pickSeverity(skin.SeverityModerate, skin.SeveritySevere)
	case confidence > 0.8:
		return p.pickSeverity(skin.SeverityMild, skin.SeverityModerate)
	default:
		return p.pickSeverity(skin.SeverityNone, skin.SeverityMild)
	}
}

func (p *RandomPredictor) pickSeverity(options ...skin.Severity) skin.Severity {
	return options[p.rng.Intn(len(options))]
}

func (p *RandomPredictor) affectedZones(ct skin.ConditionType, requested []skin.Zone) []skin.Zone {
	if !containsZone(requested, skin.ZoneOverall) {
		return requested
	}
	switch ct {
	case skin.ConditionOiliness:
		return []skin.Zone{skin.ZoneTZone, skin.ZoneForehead, skin.ZoneNose}
	case skin.ConditionAcne:
		return p.sampleZones([]skin.Zone{skin.ZoneForehead, skin.ZoneCheeks, skin.ZoneChin}, 1+p.rng.Intn(2))
	case skin.ConditionWrinkles:
		return []skin.Zone{skin.ZoneForehead}
	default:
		return p.sampleZones(skin.FaceZones(), 1+p.rng.Intn(2))
	}
}

func (p *RandomPredictor) boundingBoxes(width, height int) []skin.BoundingBox {
	w := float64(width)
	h := float64(height)
	n := 1 + p.rng.Intn(3)
	boxes := make([]skin.BoundingBox, 0, n)
	for i := 0; i < n; i++ {
		boxes = append(boxes, skin.BoundingBox{
			X:      p.uniform(0, w*0.7),
			Y:      p.uniform(0, h*0.7),
			Width:  p.uniform(w*0.05, w*0.3),
			Height: p.uniform(h*0.05, h*0.3),
		})
	}
	return boxes
}

func (p *RandomPredictor) sampleZones(pool []skin.Zone, k int) []skin.Zone {
	shuffled := append([]skin.Zone(nil), pool...)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if k > len(shuffled) {
		k = len(shuffled)
	}
	return shuffled[:k]
}

func (p *RandomPredictor) sampleConditions(k int) []skin.ConditionType {
	shuffled := append([]skin.ConditionType(nil), p.conditions...)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if k > len(shuffled) {
		k = len(shuffled)
	}
	return shuffled[:k]
}

func containsZone(zones []skin.Zone, target skin.Zone) bool {
	for _, z := range zones {
		if z == target {
			return true
		}
	}
	return false
}
