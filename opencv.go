package yunet

import (
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"
)

// OpenCVDetector implements Detector with OpenCV's FaceDetectorYN, the
// reference YuNet binding.
type OpenCVDetector struct {
	detector gocv.FaceDetectorYN
	config   Config
	mu       sync.Mutex // Protects inference
}

// NewOpenCVDetector loads the YuNet model at cfg.ModelPath and prepares
// a detector. The input size is set per image at detection time.
func NewOpenCVDetector(cfg Config) (*OpenCVDetector, error) {
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: model file not found: %s", ErrInvalidInput, cfg.ModelPath)
	}

	detector := gocv.NewFaceDetectorYNWithParams(
		cfg.ModelPath,
		"", // No config file needed for ONNX
		image.Pt(320, 320),
		cfg.ScoreThreshold,
		cfg.NMSThreshold,
		cfg.TopK,
		int(gocv.NetBackendDefault),
		int(gocv.NetTargetCPU),
	)

	return &OpenCVDetector{
		detector: detector,
		config:   cfg,
	}, nil
}

// Detect runs YuNet over one BGR frame and returns its raw records in
// the order the detector produced them.
func (d *OpenCVDetector) Detect(pixels []byte, width, height, stride int) ([]RawDetection, error) {
	if stride != 3*width {
		return nil, fmt.Errorf("row stride must be 3*width, got %d for width %d", stride, width)
	}
	if len(pixels) < height*stride {
		return nil, fmt.Errorf("buffer holds %d bytes, %dx%d BGR needs %d",
			len(pixels), width, height, height*stride)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	img, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, pixels[:height*stride])
	if err != nil {
		return nil, fmt.Errorf("wrap pixel buffer: %w", err)
	}
	defer img.Close()

	d.detector.SetInputSize(image.Pt(width, height))

	faces := gocv.NewMat()
	defer faces.Close()

	d.detector.Detect(img, &faces)

	// YuNet output format (15 columns per row):
	// 0-3: x, y, w, h (bounding box in pixels)
	// 4-13: 5 facial landmarks (x,y pairs)
	// 14: face score
	detections := make([]RawDetection, 0, faces.Rows())
	for r := 0; r < faces.Rows(); r++ {
		raw := RawDetection{
			Score: faces.GetFloatAt(r, 14),
			X:     int32(faces.GetFloatAt(r, 0)),
			Y:     int32(faces.GetFloatAt(r, 1)),
			W:     int32(faces.GetFloatAt(r, 2)),
			H:     int32(faces.GetFloatAt(r, 3)),
		}
		for i := 0; i < 10; i++ {
			raw.Landmarks[i] = int32(faces.GetFloatAt(r, 4+i))
		}
		detections = append(detections, raw)
	}

	return detections, nil
}

// Close releases the native detector.
func (d *OpenCVDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Close()
	return nil
}
