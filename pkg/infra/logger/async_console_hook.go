package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// asyncConsoleHook decouples console IO from the caller. A full buffer drops
// the entry instead of blocking the logging goroutine; Close drains whatever
// is still queued before returning.
type asyncConsoleHook struct {
	out     io.Writer
	entries chan string
	done    chan struct{}
	wg      sync.WaitGroup
}

func newAsyncConsoleHook(out io.Writer, bufferSize int) *asyncConsoleHook {
	h := &asyncConsoleHook{
		out:     out,
		entries: make(chan string, bufferSize),
		done:    make(chan struct{}),
	}

	h.wg.Add(1)
	go h.drain()

	return h
}

func (h *asyncConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	select {
	case h.entries <- line:
	default:
	}

	return nil
}

func (h *asyncConsoleHook) drain() {
	defer h.wg.Done()

	for {
		select {
		case line := <-h.entries:
			_, _ = io.WriteString(h.out, line)

		case <-h.done:
			for len(h.entries) > 0 {
				_, _ = io.WriteString(h.out, <-h.entries)
			}
			return
		}
	}
}

func (h *asyncConsoleHook) Close() {
	close(h.done)
	h.wg.Wait()
}

func (h *asyncConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
