package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestAsyncConsoleHook(t *testing.T) {
	t.Run("it should write fired entries to the console writer", func(t *testing.T) {
		var buf bytes.Buffer
		hook := newAsyncConsoleHook(&buf, 16)

		log := logrus.New()
		log.SetOutput(io.Discard)
		log.SetFormatter(&logrus.JSONFormatter{})
		log.AddHook(hook)

		log.WithField("test_id", "b2c0").Info("run recorded")
		hook.Close()

		assert.Contains(t, buf.String(), "run recorded")
		assert.Contains(t, buf.String(), "test_id")
	})

	t.Run("it should drain queued entries on close", func(t *testing.T) {
		var buf bytes.Buffer
		hook := newAsyncConsoleHook(&buf, 16)

		log := logrus.New()
		log.SetOutput(io.Discard)
		log.SetFormatter(&logrus.JSONFormatter{})
		log.AddHook(hook)

		for i := 0; i < 5; i++ {
			log.Info("queued entry")
		}
		hook.Close()

		assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte("queued entry")))
	})

	t.Run("it should fire on all levels", func(t *testing.T) {
		hook := newAsyncConsoleHook(io.Discard, 1)
		defer hook.Close()

		assert.Equal(t, logrus.AllLevels, hook.Levels())
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("it should attach the console hook", func(t *testing.T) {
		log := NewLogger()

		assert.Len(t, log.Hooks[logrus.InfoLevel], 1)
	})
}
