package imaging

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

// FaceBox is a detected face bounding box in pixel coordinates.
type FaceBox struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
}

// FaceResult is the outcome of running face detection over an image.
type FaceResult struct {
	Detected bool
	Count    int
	Box      *FaceBox
}

// Detector locates faces in an image.
type Detector interface {
	Detect(img image.Image) (FaceResult, error)
}

// PigoDetector runs the pigo cascade classifier.
type PigoDetector struct {
	classifier *pigo.Pigo
	qThreshold float32
}

// NewPigoDetector loads the binary cascade file and prepares a classifier.
// minConfidence in [0,1] is mapped onto pigo's detection quality scale.
func NewPigoDetector(cascadePath string, minConfidence float64) (*PigoDetector, error) {
	data, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("read cascade file: %w", err)
	}
	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpack cascade: %w", err)
	}
	return &PigoDetector{
		classifier: classifier,
		qThreshold: float32(minConfidence * 10),
	}, nil
}

// Detect runs the cascade over the grayscale image and returns the highest
// quality detection above the threshold.
func (d *PigoDetector) Detect(img image.Image) (FaceResult, error) {
	bounds := img.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()
	pixels := pigo.RgbToGrayscale(img)

	params := pigo.CascadeParams{
		MinSize:     minSide(cols, rows) / 10,
		MaxSize:     minSide(cols, rows),
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, 0.2)

	var best *pigo.Detection
	count := 0
	for i := range dets {
		if dets[i].Q < d.qThreshold {
			continue
		}
		count++
		if best == nil || dets[i].Q > best.Q {
			best = &dets[i]
		}
	}

	if best == nil {
		return FaceResult{Detected: false, Count: 0}, nil
	}

	half := float64(best.Scale) / 2
	confidence := float64(best.Q) / 10
	if confidence > 1 {
		confidence = 1
	}
	return FaceResult{
		Detected: true,
		Count:    count,
		Box: &FaceBox{
			X:          float64(best.Col) - half,
			Y:          float64(best.Row) - half,
			Width:      float64(best.Scale),
			Height:     float64(best.Scale),
			Confidence: confidence,
		},
	}, nil
}

func minSide(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// PlaceholderDetector reports a centered face for every image. It stands in
// for the cascade classifier in dev environments without a cascade file.
type PlaceholderDetector struct{}

// Detect returns a face box covering the central 60% of the image.
func (PlaceholderDetector) Detect(img image.Image) (FaceResult, error) {
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	return FaceResult{
		Detected: true,
		Count:    1,
		Box: &FaceBox{
			X:          w * 0.2,
			Y:          h * 0.2,
			Width:      w * 0.6,
			Height:     h * 0.6,
			Confidence: 1,
		},
	}, nil
}
