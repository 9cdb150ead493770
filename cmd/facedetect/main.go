// Facedetect runs YuNet face detection over a single image and prints
// the detected faces as JSON.
//
// Usage: facedetect [-model path] [-min confidence] image.jpg
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gocv.io/x/gocv"

	yunet "github.com/kirinokirino/go-yunet"
	"github.com/kirinokirino/go-yunet/internal/config"
)

func main() {
	modelPath := flag.String("model", config.ModelPath(), "path to the YuNet ONNX model")
	minConfidence := flag.Float64("min", 0, "drop faces below this confidence")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: facedetect [-model path] [-min confidence] image.jpg")
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	img := gocv.IMRead(imagePath, gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		fmt.Fprintf(os.Stderr, "cannot read image: %s\n", imagePath)
		os.Exit(1)
	}

	cfg := yunet.DefaultConfig()
	cfg.ModelPath = *modelPath

	detector, err := yunet.NewOpenCVDetector(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load detector: %v\n", err)
		os.Exit(1)
	}
	defer detector.Close()

	faces, err := yunet.DetectFaces(detector, img.ToBytes(), img.Cols(), img.Rows())
	if err != nil {
		fmt.Fprintf(os.Stderr, "detect: %v\n", err)
		os.Exit(1)
	}

	type faceReport struct {
		Confidence     float32             `json:"confidence"`
		Rect           yunet.Rect          `json:"rect"`
		NormalizedRect yunet.Rect          `json:"normalized_rect"`
		Size           float32             `json:"size"`
		Landmarks      yunet.FaceLandmarks `json:"landmarks"`
	}

	reports := make([]faceReport, 0, len(faces))
	for _, f := range faces {
		if float64(f.Confidence()) < *minConfidence {
			continue
		}
		reports = append(reports, faceReport{
			Confidence:     f.Confidence(),
			Rect:           f.Rectangle(),
			NormalizedRect: f.NormalizedRectangle(),
			Size:           f.Size(),
			Landmarks:      f.Landmarks(),
		})
	}

	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
