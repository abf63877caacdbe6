package backends

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/metrics"
)

// Executor wraps backend calls with a per-attempt timeout, bounded retry with
// exponential backoff on transient failures, and a per-vendor circuit
// breaker. After retries are exhausted the error comes back as a value; the
// orchestrator records it as a failed run and carries on.
type Executor struct {
	logger     *logrus.Logger
	timeout    time.Duration
	maxRetries int
	breakers   sync.Map
}

func NewExecutor(logger *logrus.Logger, timeout time.Duration, maxRetries int) *Executor {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Executor{
		logger:     logger,
		timeout:    timeout,
		maxRetries: maxRetries,
	}
}

func (e *Executor) Generate(
	ctx context.Context,
	client Client,
	config *Config,
	prompt string,
	params *Params,
) (*Response, error) {
	breaker := e.breakerFor(config, client)

	var lastErr error
	for attempt := 0; attempt < e.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		start := time.Now()
		result, err := breaker.Execute(func() (interface{}, error) {
			attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()
			return client.Generate(attemptCtx, config, prompt, params)
		})
		if err == nil {
			resp, ok := result.(*Response)
			if !ok {
				return nil, fmt.Errorf("unexpected backend response type %T", result)
			}
			if resp.Metadata.ResponseTimeMs == 0 {
				resp.Metadata.ResponseTimeMs = time.Since(start).Milliseconds()
			}
			metrics.BackendLatency.WithLabelValues(resp.Vendor).Observe(float64(resp.Metadata.ResponseTimeMs))
			return resp, nil
		}

		lastErr = err
		if !IsTransient(err) {
			break
		}
		e.logger.WithError(err).WithFields(logrus.Fields{
			"vendor":  client.ModelInfo(config).Vendor,
			"model":   config.Model,
			"attempt": attempt + 1,
		}).Warn("transient backend failure, retrying")
	}

	return nil, fmt.Errorf("backend call failed after %d attempts: %w", e.maxRetries, lastErr)
}

func (e *Executor) breakerFor(config *Config, client Client) *gobreaker.CircuitBreaker {
	key := client.ModelInfo(config).Vendor
	if cb, ok := e.breakers.Load(key); ok {
		breaker, ok := cb.(*gobreaker.CircuitBreaker)
		if ok {
			return breaker
		}
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    key,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	e.breakers.Store(key, breaker)
	return breaker
}
