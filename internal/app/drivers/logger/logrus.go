package logger

import (
	"carepulse-service/internal/app/config"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger backs the command line tools, which print human readable
// progress outside production.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if internalConfig.App.Env == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
		return logger
	}
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}
