package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/config"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/metrics"
)

const runQueueKey = "aisec:run_queue"

// RunJob is one unit of work: execute a single style variant against a
// single target model.
type RunJob struct {
	TestID    uuid.UUID              `json:"test_id"`
	VariantID uuid.UUID              `json:"variant_id"`
	Model     domainTest.ModelConfig `json:"model"`
}

// RunQueue is a Redis-list backed job queue. LPUSH on enqueue, BRPOP on
// dequeue; jobs survive a worker restart as long as Redis does.
type RunQueue struct {
	logger *logrus.Logger
	client *redis.Client
}

func NewRunQueue(logger *logrus.Logger, cfg config.RedisConfig) (*RunQueue, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"host": cfg.Host,
		"port": cfg.Port,
	}).Info("redis connected successfully")

	return &RunQueue{
		logger: logger,
		client: client,
	}, nil
}

func (q *RunQueue) Enqueue(ctx context.Context, job RunJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal run job: %w", err)
	}
	if err := q.client.LPush(ctx, runQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue run job: %w", err)
	}
	if depth, err := q.client.LLen(ctx, runQueueKey).Result(); err == nil {
		metrics.QueueDepth.WithLabelValues(runQueueKey).Set(float64(depth))
	}
	return nil
}

// EnqueueRun satisfies the scheduler's enqueuer contract.
func (q *RunQueue) EnqueueRun(ctx context.Context, testID, variantID uuid.UUID, model domainTest.ModelConfig) error {
	return q.Enqueue(ctx, RunJob{
		TestID:    testID,
		VariantID: variantID,
		Model:     model,
	})
}

func (q *RunQueue) Depth(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, runQueueKey).Result()
}

// Dequeue blocks up to timeout for the next job. Returns (nil, nil) when the
// wait times out with nothing to do.
func (q *RunQueue) Dequeue(ctx context.Context, timeout time.Duration) (*RunJob, error) {
	result, err := q.client.BRPop(ctx, timeout, runQueueKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dequeue run job: %w", err)
	}
	if len(result) < 2 {
		return nil, fmt.Errorf("unexpected BRPOP reply of length %d", len(result))
	}

	var job RunJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run job: %w", err)
	}
	if depth, err := q.Depth(ctx); err == nil {
		metrics.QueueDepth.WithLabelValues(runQueueKey).Set(float64(depth))
	}
	return &job, nil
}

func (q *RunQueue) Close() error {
	return q.client.Close()
}
