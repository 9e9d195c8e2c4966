package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Quality holds image quality metrics and their ratings.
type Quality struct {
	BlurScore         float64 `json:"blur_score"`
	BlurQuality       string  `json:"blur_quality"`
	Brightness        float64 `json:"brightness"`
	BrightnessQuality string  `json:"brightness_quality"`
	Contrast          float64 `json:"contrast"`
	ContrastQuality   string  `json:"contrast_quality"`
	Resolution        string  `json:"resolution"`
	OverallQuality    string  `json:"overall_quality"`
}

// AnalyzeQuality computes blur, brightness, and contrast heuristics over
// the grayscale image and rates each as good/fair/poor.
func AnalyzeQuality(img image.Image) Quality {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	luma := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Grayscale output has equal channels; read red.
			luma[y*width+x] = float64(gray.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y).R)
		}
	}

	brightness := mean(luma)
	contrast := stddev(luma, brightness)
	blur := laplacianVariance(luma, width, height)

	q := Quality{
		BlurScore:  blur,
		Brightness: brightness,
		Contrast:   contrast,
		Resolution: fmt.Sprintf("%dx%d", width, height),
	}
	q.BlurQuality = rate(blur, 100, 50)
	if brightness > 50 && brightness < 200 {
		q.BrightnessQuality = "good"
	} else {
		q.BrightnessQuality = "fair"
	}
	q.ContrastQuality = rate(contrast, 30, 15)
	q.OverallQuality = overallRating(q.BlurQuality, q.BrightnessQuality, q.ContrastQuality)
	return q
}

func rate(value, goodAbove, fairAbove float64) string {
	switch {
	case value > goodAbove:
		return "good"
	case value > fairAbove:
		return "fair"
	default:
		return "poor"
	}
}

func overallRating(ratings ...string) string {
	scores := map[string]int{"good": 3, "fair": 2, "poor": 1}
	total := 0
	for _, r := range ratings {
		total += scores[r]
	}
	switch {
	case total >= 8:
		return "excellent"
	case total >= 6:
		return "good"
	case total >= 4:
		return "fair"
	default:
		return "poor"
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// laplacianVariance measures sharpness as the variance of the 4-neighbor
// Laplacian over interior pixels.
func laplacianVariance(luma []float64, width, height int) float64 {
	if width < 3 || height < 3 {
		return 0
	}
	responses := make([]float64, 0, (width-2)*(height-2))
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			c := luma[y*width+x]
			lap := 4*c - luma[(y-1)*width+x] - luma[(y+1)*width+x] - luma[y*width+x-1] - luma[y*width+x+1]
			responses = append(responses, lap)
		}
	}
	m := mean(responses)
	variance := 0.0
	for _, r := range responses {
		d := r - m
		variance += d * d
	}
	return variance / float64(len(responses))
}
