// Package yunet detects faces in images with the YuNet face detection
// model, wrapping the native detector behind a small geometric API:
// pixel buffer in, ordered Face values (confidence, rectangle,
// landmarks, normalized coordinates) out.
package yunet

import "fmt"

// RawDetection is one detection record as the native boundary reports
// it: a score, a pixel-space rectangle, and five landmark points as a
// flat array of x,y pairs in the fixed order right eye, left eye, nose,
// right mouth corner, left mouth corner.
type RawDetection struct {
	Score     float32
	X, Y      int32
	W, H      int32
	Landmarks [10]int32
}

// Detector is the boundary with the native face detector: given a
// pixel buffer and its geometry, produce raw detection records. pixels
// is BGR-ordered 8-bit triplets, row-major, with the given row stride
// in bytes. Implementations report detections in the detector's own
// order.
type Detector interface {
	Detect(pixels []byte, width, height, stride int) ([]RawDetection, error)

	// Close releases detector resources.
	Close() error
}

// Config holds detector configuration.
type Config struct {
	ModelPath      string  // Path to the YuNet ONNX model
	ScoreThreshold float32 // Minimum confidence kept by the detector
	NMSThreshold   float32 // Non-max suppression overlap threshold
	TopK           int     // Keep at most this many candidates before NMS
}

// DefaultConfig returns production defaults for YuNet.
func DefaultConfig() Config {
	return Config{
		ModelPath:      "models/face_detection_yunet.onnx",
		ScoreThreshold: 0.5,
		NMSThreshold:   0.3,
		TopK:           5000,
	}
}

// DetectFaces runs d over one image and converts every raw detection
// into a Face, preserving the detector's output order index-for-index.
//
// pixels must hold at least height × 3 × width bytes of BGR-ordered
// 8-bit triplets; the row stride is fixed at exactly 3 × width (padded
// or strided input is not supported). A buffer too short for the given
// dimensions, or non-positive dimensions, return ErrInvalidInput. A
// detector failure is wrapped in ErrDetectionFailed. An image with no
// faces yields an empty slice and a nil error.
//
// The buffer is only borrowed for the duration of the call; the
// returned faces are freshly allocated and independently owned by the
// caller.
func DetectFaces(d Detector, pixels []byte, width, height int) ([]Face, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, width, height)
	}
	stride := 3 * width
	if len(pixels) < height*stride {
		return nil, fmt.Errorf("%w: buffer holds %d bytes, %dx%d BGR needs %d",
			ErrInvalidInput, len(pixels), width, height, height*stride)
	}

	raw, err := d.Detect(pixels, width, height, stride)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectionFailed, err)
	}

	faces := make([]Face, len(raw))
	for i, r := range raw {
		faces[i] = FaceFromDetection(r, width, height)
	}
	return faces, nil
}
