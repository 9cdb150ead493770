package yunet

import "errors"

// Sentinel errors for the yunet package.
var (
	// ErrInvalidInput indicates the supplied pixel buffer or
	// dimensions cannot describe a valid image.
	ErrInvalidInput = errors.New("yunet: invalid input file")

	// ErrDetectionFailed indicates the native detector reported a
	// failure.
	ErrDetectionFailed = errors.New("yunet: face detection failed")
)
