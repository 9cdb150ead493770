package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"gocv.io/x/gocv"

	yunet "github.com/kirinokirino/go-yunet"
	"github.com/kirinokirino/go-yunet/internal/log"
)

// FaceResult is one detected face in a response.
type FaceResult struct {
	Confidence     float32             `json:"confidence"`
	Rect           yunet.Rect          `json:"rect"`
	NormalizedRect yunet.Rect          `json:"normalized_rect"`
	Size           float32             `json:"size"`
	Landmarks      yunet.FaceLandmarks `json:"landmarks"`
}

// DetectionResult is the response for one submitted image.
type DetectionResult struct {
	RequestID string       `json:"request_id"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Count     int          `json:"count"`
	Faces     []FaceResult `json:"faces"`
}

type errorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

// detect decodes an encoded image (JPEG, PNG, ...) and runs the
// detector over it.
func (s *Server) detect(body []byte) (DetectionResult, error) {
	img, err := gocv.IMDecode(body, gocv.IMReadColor)
	if err != nil {
		return DetectionResult{}, fmt.Errorf("%w: %v", yunet.ErrInvalidInput, err)
	}
	defer img.Close()

	if img.Empty() {
		return DetectionResult{}, fmt.Errorf("%w: undecodable image", yunet.ErrInvalidInput)
	}

	width, height := img.Cols(), img.Rows()
	faces, err := yunet.DetectFaces(s.detector, img.ToBytes(), width, height)
	if err != nil {
		return DetectionResult{}, err
	}

	result := DetectionResult{
		RequestID: uuid.NewString(),
		Width:     width,
		Height:    height,
		Count:     len(faces),
		Faces:     make([]FaceResult, len(faces)),
	}
	for i, f := range faces {
		result.Faces[i] = FaceResult{
			Confidence:     f.Confidence(),
			Rect:           f.Rectangle(),
			NormalizedRect: f.NormalizedRectangle(),
			Size:           f.Size(),
			Landmarks:      f.Landmarks(),
		}
	}
	return result, nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleDetect runs detection over the image in the request body.
func (s *Server) handleDetect(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error: "empty request body",
		})
	}

	result, err := s.detect(body)
	if err != nil {
		if errors.Is(err, yunet.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
				Error: err.Error(),
			})
		}
		log.Error("detection failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(result)
}

// handleDetectWS runs detection over a stream of binary frames, one
// JSON reply per frame in submission order.
func (s *Server) handleDetectWS(conn *websocket.Conn) {
	defer conn.Close()

	for {
		msgType, frame, err := conn.ReadMessage()
		if err != nil {
			return
		}

		if msgType != websocket.BinaryMessage {
			if err := conn.WriteJSON(errorResponse{Error: "expected a binary image frame"}); err != nil {
				return
			}
			continue
		}

		result, err := s.detect(frame)
		if err != nil {
			if writeErr := conn.WriteJSON(errorResponse{Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(result); err != nil {
			return
		}
		log.Debug("frame processed", "request_id", result.RequestID, "faces", result.Count)
	}
}
