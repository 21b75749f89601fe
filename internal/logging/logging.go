// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"flota/internal/config"
)

// Setup applies the level and format from cfg to the standard logger.
// Unknown levels fall back to info.
func Setup(cfg config.LogConfig) {
	Configure(logrus.StandardLogger(), cfg)
}

// Configure applies cfg to l.
func Configure(l *logrus.Logger, cfg config.LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetOutput(os.Stdout)

	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
