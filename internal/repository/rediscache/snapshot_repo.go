package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/xela07ax/predictaflow/internal/infra"
	"github.com/xela07ax/predictaflow/internal/mockdata"
)

var (
	ErrSnapshotNotReady = errors.New("shared snapshot not published yet")
	ErrSnapshotInvalid  = errors.New("shared snapshot is incomplete")
)

// Client - подмножество redis.Cmdable, которое нужно репозиторию.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// SnapshotRepo публикует каталог дня в Redis, чтобы все инстансы консоли
// отдавали одинаковые синтетические ряды.
type SnapshotRepo struct {
	rdb    Client
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger

	snapshotTTL  time.Duration
	lockTTL      time.Duration
	waitTimeout  time.Duration
	pollInterval time.Duration
	instanceID   string
}

func NewSnapshotRepo(rdb Client, cfg infra.RedisConfig, logger *zap.Logger) *SnapshotRepo {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "snapshot-redis",
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		// Отсутствие ключа - нормальный ответ, а не сбой Redis
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
	})

	return &SnapshotRepo{
		rdb:          rdb,
		cb:           cb,
		logger:       logger.Named("snapshot-repo"),
		snapshotTTL:  cfg.SnapshotTTL,
		lockTTL:      cfg.LockTTL,
		waitTimeout:  cfg.WaitTimeout,
		pollInterval: 200 * time.Millisecond,
		instanceID:   uuid.NewString(),
	}
}

// Share возвращает каталог, который должен обслуживать этот инстанс:
// уже опубликованный за день, либо локальный (если мы первыми взяли блокировку).
// При любой ошибке возвращается локальный каталог и shared=false.
func (r *SnapshotRepo) Share(ctx context.Context, local *mockdata.Catalog) (*mockdata.Catalog, bool, error) {
	day := local.Day

	// 1. Кто-то уже опубликовал снапшот - берем его
	existing, err := r.Load(ctx, day)
	if err == nil {
		r.logger.Info("adopted shared snapshot", zap.String("day", day))
		return existing, true, nil
	}
	if !errors.Is(err, ErrSnapshotNotReady) {
		return local, false, err
	}

	// 2. Распределенная блокировка (SetNX), чтобы публиковал только один инстанс
	won, err := r.acquire(ctx, day)
	if err != nil {
		return local, false, err
	}
	if won {
		if err := r.Publish(ctx, local); err != nil {
			return local, false, err
		}
		r.logger.Info("published shared snapshot", zap.String("day", day), zap.String("instance", r.instanceID))
		return local, true, nil
	}

	// 3. Блокировка у другого инстанса - ждем его публикацию
	shared, err := r.waitForSnapshot(ctx, day)
	if err != nil {
		return local, false, err
	}
	r.logger.Info("adopted shared snapshot after wait", zap.String("day", day))
	return shared, true, nil
}

// Load читает опубликованный каталог дня.
func (r *SnapshotRepo) Load(ctx context.Context, day string) (*mockdata.Catalog, error) {
	res, err := r.cb.Execute(func() (interface{}, error) {
		return r.rdb.Get(ctx, infra.SnapshotKey(day)).Bytes()
	})
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotReady
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot get: %w", err)
	}

	var c mockdata.Catalog
	if err := json.Unmarshal(res.([]byte), &c); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	if !c.Complete() || c.Day != day {
		return nil, ErrSnapshotInvalid
	}
	return &c, nil
}

// Publish записывает каталог с TTL.
func (r *SnapshotRepo) Publish(ctx context.Context, c *mockdata.Catalog) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	_, err = r.cb.Execute(func() (interface{}, error) {
		return nil, r.rdb.Set(ctx, infra.SnapshotKey(c.Day), data, r.snapshotTTL).Err()
	})
	if err != nil {
		return fmt.Errorf("snapshot set: %w", err)
	}
	return nil
}

func (r *SnapshotRepo) acquire(ctx context.Context, day string) (bool, error) {
	res, err := r.cb.Execute(func() (interface{}, error) {
		return r.rdb.SetNX(ctx, infra.SnapshotLockKey(day), r.instanceID, r.lockTTL).Result()
	})
	if err != nil {
		return false, fmt.Errorf("snapshot lock: %w", err)
	}
	return res.(bool), nil
}

func (r *SnapshotRepo) waitForSnapshot(ctx context.Context, day string) (*mockdata.Catalog, error) {
	attempts := uint(r.waitTimeout / r.pollInterval)
	if attempts == 0 {
		attempts = 1
	}

	var shared *mockdata.Catalog
	rt := retry.New(
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.DelayType(func(n uint, err error, config retry.DelayContext) time.Duration {
			return r.pollInterval
		}),
	)
	err := rt.Do(func() error {
		c, err := r.Load(ctx, day)
		if err != nil {
			return err
		}
		shared = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("wait for snapshot %s: %w", day, err)
	}
	return shared, nil
}
