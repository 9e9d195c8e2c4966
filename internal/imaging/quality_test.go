package imaging

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func uniformImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func noisyImage(w, h int, seed int64) image.Image {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(rng.Intn(256))
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestAnalyzeQualityFlatImageIsBlurry(t *testing.T) {
	q := AnalyzeQuality(uniformImage(64, 64, color.RGBA{R: 128, G: 128, B: 128, A: 255}))

	if q.BlurScore != 0 {
		t.Fatalf("flat image blur score = %v, want 0", q.BlurScore)
	}
	if q.BlurQuality != "poor" {
		t.Fatalf("flat image blur quality = %q, want poor", q.BlurQuality)
	}
	if q.ContrastQuality != "poor" {
		t.Fatalf("flat image contrast quality = %q, want poor", q.ContrastQuality)
	}
	if q.Resolution != "64x64" {
		t.Fatalf("resolution = %q", q.Resolution)
	}
}

func TestAnalyzeQualityMidtoneBrightnessIsGood(t *testing.T) {
	q := AnalyzeQuality(uniformImage(32, 32, color.RGBA{R: 120, G: 120, B: 120, A: 255}))
	if q.BrightnessQuality != "good" {
		t.Fatalf("midtone brightness quality = %q, want good", q.BrightnessQuality)
	}
}

func TestAnalyzeQualityExtremesBrightnessIsFair(t *testing.T) {
	dark := AnalyzeQuality(uniformImage(32, 32, color.RGBA{A: 255}))
	if dark.BrightnessQuality != "fair" {
		t.Fatalf("dark brightness quality = %q, want fair", dark.BrightnessQuality)
	}

	bright := AnalyzeQuality(uniformImage(32, 32, color.RGBA{R: 250, G: 250, B: 250, A: 255}))
	if bright.BrightnessQuality != "fair" {
		t.Fatalf("bright brightness quality = %q, want fair", bright.BrightnessQuality)
	}
}

func TestAnalyzeQualityNoisyImageScoresHigher(t *testing.T) {
	flat := AnalyzeQuality(uniformImage(64, 64, color.RGBA{R: 128, G: 128, B: 128, A: 255}))
	noisy := AnalyzeQuality(noisyImage(64, 64, 7))

	if noisy.BlurScore <= flat.BlurScore {
		t.Fatalf("noisy blur score %v should exceed flat %v", noisy.BlurScore, flat.BlurScore)
	}
	if noisy.Contrast <= flat.Contrast {
		t.Fatalf("noisy contrast %v should exceed flat %v", noisy.Contrast, flat.Contrast)
	}
}

func TestPreprocessCapsLargeImages(t *testing.T) {
	big := uniformImage(2048, 1536, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	got := Preprocess(big)

	bounds := got.Bounds()
	if bounds.Dx() > 1024 || bounds.Dy() > 1024 {
		t.Fatalf("preprocessed size %dx%d exceeds 1024", bounds.Dx(), bounds.Dy())
	}

	small := uniformImage(320, 240, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	got = Preprocess(small)
	bounds = got.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 240 {
		t.Fatalf("small image resized to %dx%d, want untouched", bounds.Dx(), bounds.Dy())
	}
}

func TestPlaceholderDetectorReturnsCenteredFace(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	result, err := PlaceholderDetector{}.Detect(img)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if !result.Detected || result.Count != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Box == nil {
		t.Fatal("missing face box")
	}
	if result.Box.X < 0 || result.Box.Y < 0 || result.Box.X+result.Box.Width > 100 || result.Box.Y+result.Box.Height > 100 {
		t.Fatalf("face box %+v outside image", result.Box)
	}
}
