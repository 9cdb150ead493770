// Package config provides configuration helpers for go-yunet commands.
package config

import (
	"os"
	"strconv"
)

// Defaults for the detection commands.
const (
	DefaultModelPath      = "models/face_detection_yunet.onnx"
	DefaultPort           = "8080"
	DefaultScoreThreshold = 0.5
)

// ModelPath returns the YuNet model path from the YUNET_MODEL env var.
// Falls back to the default if not set.
func ModelPath() string {
	if p := os.Getenv("YUNET_MODEL"); p != "" {
		return p
	}
	return DefaultModelPath
}

// ScoreThreshold returns the minimum detection confidence from the
// YUNET_SCORE_THRESHOLD env var, or the default if unset or unparseable.
func ScoreThreshold() float32 {
	if s := os.Getenv("YUNET_SCORE_THRESHOLD"); s != "" {
		if v, err := strconv.ParseFloat(s, 32); err == nil {
			return float32(v)
		}
	}
	return DefaultScoreThreshold
}

// Port returns the HTTP listen port from the PORT env var or default.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// LogLevel returns the log level from the LOG_LEVEL env var or "info".
func LogLevel() string {
	if l := os.Getenv("LOG_LEVEL"); l != "" {
		return l
	}
	return "info"
}
