package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/subosito/gotenv"
)

// Logger is usable before Init so library code and tests can log without
// the file/env setup.
var Logger = logrus.New()

// Init configures the package-level logger. The .env file is optional so
// the tracker can run with plain environment variables.
func Init(level string) error {
	if err := gotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load env variables: %w", err)
	}

	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	if appEnv == "production" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		// default environment is development
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Logger.SetLevel(parsed)

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "./logging/logs"
	}
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFileName := time.Now().Format("02_01_2006") + ".log"
	file, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	Logger.SetOutput(io.MultiWriter(os.Stdout, file))
	return nil
}
