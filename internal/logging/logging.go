package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/pixelforge/studio-console/internal/config"
)

// New builds the process-wide logger. Release mode emits JSON for log
// shippers; anything else stays human-readable.
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.GinMode == "release" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
