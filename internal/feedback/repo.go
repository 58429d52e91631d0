package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	myErr "feedbackhub/internal/types/errors"
	types "feedbackhub/internal/types/feedback"
)

// RedisSetter - узкий интерфейс над redis-клиентом,
// чтобы в тестах подменять его фейком
type RedisSetter interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

type FeedbackRepository struct {
	RedisClient RedisSetter
	Logger      *zap.SugaredLogger
	maxAttempts int
	backoffBase time.Duration
}

func NewFeedbackRepository(
	redisClient RedisSetter,
	logger *zap.SugaredLogger,
	maxAttempts int,
	backoffBase time.Duration,
) *FeedbackRepository {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &FeedbackRepository{
		RedisClient: redisClient,
		Logger:      logger,
		maxAttempts: maxAttempts,
		backoffBase: backoffBase,
	}
}

// Create - одна условная запись под свежесгенерированным ключом.
// SETNX не даёт перезаписать чужую запись, если генератор вдруг выдал коллизию.
// Транзиентные ошибки ретраятся с экспоненциальным бэкоффом не больше
// maxAttempts раз, фатальные отдаются сразу.
func (r *FeedbackRepository) Create(ctx context.Context, record *types.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		r.Logger.Errorw(
			"Failed to encode feedback record",
			"feedback_id", record.ID,
			"error", err,
		)

		return fmt.Errorf("%w: %v", myErr.ErrStoreRejected, err)
	}

	backoff := r.backoffBase
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		ok, err := r.RedisClient.SetNX(ctx, record.ID, data, 0).Result()
		if err == nil {
			if !ok {
				r.Logger.Errorw("Feedback key already exists", "feedback_id", record.ID)

				return myErr.ErrAlreadyExists
			}

			r.Logger.Infof("Feedback %s saved successfully", record.ID)

			return nil
		}

		if !isTransient(err) {
			r.Logger.Errorw(
				"Fatal store error",
				"feedback_id", record.ID,
				"error", err,
			)

			return fmt.Errorf("%w: %v", myErr.ErrStoreRejected, err)
		}

		lastErr = err
		r.Logger.Warnw(
			"Transient store error",
			"feedback_id", record.ID,
			"attempt", attempt,
			"error", err,
		)

		if attempt == r.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", myErr.ErrStoreUnavailable, ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return fmt.Errorf("%w: %v", myErr.ErrStoreUnavailable, lastErr)
}

// isTransient - ошибки, после которых есть смысл повторить запись
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := err.Error()
	for _, prefix := range []string{"LOADING", "BUSY", "TRYAGAIN", "CLUSTERDOWN"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}

	return false
}
