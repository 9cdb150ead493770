package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	yunet "github.com/kirinokirino/go-yunet"
)

// stubDetector feeds canned records through the conversion layer so
// handlers can be tested without the native model.
type stubDetector struct {
	records []yunet.RawDetection
}

func (s *stubDetector) Detect(pixels []byte, width, height, stride int) ([]yunet.RawDetection, error) {
	return s.records, nil
}

func (s *stubDetector) Close() error { return nil }

func solidJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{90, 90, 90, 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestHandleHealth(t *testing.T) {
	srv := New("0", &stubDetector{})

	resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
}

func TestHandleDetect(t *testing.T) {
	records := []yunet.RawDetection{
		{Score: 0.9, X: 10, Y: 12, W: 20, H: 20, Landmarks: [10]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{Score: 0.6, X: 40, Y: 8, W: 10, H: 12},
	}
	srv := New("0", &stubDetector{records: records})

	req := httptest.NewRequest(http.MethodPost, "/detect", bytes.NewReader(solidJPEG(t, 64, 48)))
	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := srv.App().Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status: got %d, want 200 (%s)", resp.StatusCode, body)
	}

	var result DetectionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if result.RequestID == "" {
		t.Error("request_id missing")
	}
	if result.Width != 64 || result.Height != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", result.Width, result.Height)
	}
	if result.Count != 2 || len(result.Faces) != 2 {
		t.Fatalf("got %d faces, want 2", len(result.Faces))
	}

	// Detector order is preserved in the response.
	if result.Faces[0].Confidence != 0.9 || result.Faces[1].Confidence != 0.6 {
		t.Errorf("face order changed: %+v", result.Faces)
	}
	if result.Faces[0].Rect != yunet.NewRect(10, 12, 20, 20) {
		t.Errorf("rect: got %+v", result.Faces[0].Rect)
	}
	if result.Faces[0].Landmarks.RightEye != (yunet.Point{X: 1, Y: 2}) {
		t.Errorf("landmarks: got %+v", result.Faces[0].Landmarks)
	}
}

func TestHandleDetect_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body io.Reader
	}{
		{name: "empty body", body: nil},
		{name: "not an image", body: strings.NewReader("definitely not a jpeg")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := New("0", &stubDetector{})

			req := httptest.NewRequest(http.MethodPost, "/detect", tc.body)
			resp, err := srv.App().Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestHandleDetectWS(t *testing.T) {
	srv := New("0", &stubDetector{records: []yunet.RawDetection{{Score: 0.8, W: 10, H: 10}}})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go srv.App().Listener(ln)
	defer srv.Shutdown()

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/ws/detect", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// A binary frame gets a detection result.
	if err := conn.WriteMessage(websocket.BinaryMessage, solidJPEG(t, 64, 48)); err != nil {
		t.Fatalf("send frame: %v", err)
	}

	var result DetectionResult
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("read result: %v", err)
	}
	if result.Count != 1 || result.Faces[0].Confidence != 0.8 {
		t.Errorf("unexpected result: %+v", result)
	}

	// A text frame gets an error reply, and the stream keeps going.
	if err := conn.WriteMessage(websocket.TextMessage, []byte("hello")); err != nil {
		t.Fatalf("send text: %v", err)
	}

	var errReply errorResponse
	if err := conn.ReadJSON(&errReply); err != nil {
		t.Fatalf("read error reply: %v", err)
	}
	if errReply.Error == "" {
		t.Error("expected an error message for a text frame")
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, solidJPEG(t, 32, 32)); err != nil {
		t.Fatalf("send second frame: %v", err)
	}
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("read second result: %v", err)
	}
	if result.Width != 32 {
		t.Errorf("second frame width: got %d, want 32", result.Width)
	}
}
