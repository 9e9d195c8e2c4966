// Package imaging provides image decoding, preprocessing, quality
// heuristics, and face detection for the analysis pipeline.
package imaging

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// maxDimension bounds the longest side of a preprocessed image.
const maxDimension = 1024

// Decode reads and decodes an image, honoring EXIF orientation.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Preprocess downscales oversized images while preserving aspect ratio.
func Preprocess(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxDimension && bounds.Dy() <= maxDimension {
		return img
	}
	return imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
}
