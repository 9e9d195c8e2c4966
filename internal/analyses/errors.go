package analyses

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrNoFace   = errors.New("no face detected in image")
)
