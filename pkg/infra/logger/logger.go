package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const consoleBufferSize = 1024

func NewLogger() *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "debug" {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Console output goes through the async hook so slow terminal IO never
	// stalls the request path.
	logger.SetOutput(io.Discard)
	logger.AddHook(newAsyncConsoleHook(os.Stdout, consoleBufferSize))

	return logger
}
