// Package server exposes face detection over HTTP and websocket.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	yunet "github.com/kirinokirino/go-yunet"
)

// Server serves detection requests against a single detector.
type Server struct {
	app      *fiber.App
	port     string
	detector yunet.Detector
}

// New creates a detection server around detector. The detector is
// borrowed, not owned: the caller closes it after Shutdown.
func New(port string, detector yunet.Detector) *Server {
	s := &Server{
		port:     port,
		detector: detector,
	}

	app := fiber.New(fiber.Config{
		AppName:               "go-yunet",
		DisableStartupMessage: true,
		BodyLimit:             32 * 1024 * 1024, // raw camera frames get large
	})

	app.Use(cors.New())

	app.Get("/healthz", s.handleHealth)
	app.Post("/detect", s.handleDetect)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/detect", websocket.New(s.handleDetectWS))

	s.app = app
	return s
}

// Start blocks serving requests until Shutdown.
func (s *Server) Start() error {
	return s.app.Listen(":" + s.port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}
