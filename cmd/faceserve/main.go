// Faceserve runs the face detection HTTP/websocket service.
//
// Configuration is taken from the environment: YUNET_MODEL,
// YUNET_SCORE_THRESHOLD, PORT, LOG_LEVEL.
package main

import (
	"os"
	"os/signal"
	"syscall"

	yunet "github.com/kirinokirino/go-yunet"
	"github.com/kirinokirino/go-yunet/internal/config"
	"github.com/kirinokirino/go-yunet/internal/log"
	"github.com/kirinokirino/go-yunet/server"
)

func main() {
	log.Init(config.LogLevel())

	cfg := yunet.DefaultConfig()
	cfg.ModelPath = config.ModelPath()
	cfg.ScoreThreshold = config.ScoreThreshold()

	detector, err := yunet.NewOpenCVDetector(cfg)
	if err != nil {
		log.Error("load detector", "error", err, "model", cfg.ModelPath)
		os.Exit(1)
	}
	defer detector.Close()

	srv := server.New(config.Port(), detector)

	go func() {
		log.Info("serving", "port", config.Port(), "model", cfg.ModelPath)
		if err := srv.Start(); err != nil {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		log.Error("shutdown", "error", err)
	}
}
