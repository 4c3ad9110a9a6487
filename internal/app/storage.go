package app

import (
	"context"
	"fmt"

	fileslot "github.com/heartmarshall/captionkit-backend/internal/adapter/file/slot"
	memslot "github.com/heartmarshall/captionkit-backend/internal/adapter/memory/slot"
	"github.com/heartmarshall/captionkit-backend/internal/adapter/postgres"
	pgslot "github.com/heartmarshall/captionkit-backend/internal/adapter/postgres/slot"
	"github.com/heartmarshall/captionkit-backend/internal/adapter/redis"
	redisslot "github.com/heartmarshall/captionkit-backend/internal/adapter/redis/slot"
	"github.com/heartmarshall/captionkit-backend/internal/config"
)

// Slot is the durable key-value slot behind the saved-captions store.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Storage is an opened slot backend. Close releases its connections.
type Storage struct {
	Slot   Slot
	Driver string
	close  func()
}

// Close releases the backend's connections. Safe to call on a nil Storage.
func (s *Storage) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// OpenStorage connects the slot backend selected by cfg.Driver.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return &Storage{Slot: memslot.New(), Driver: cfg.Driver}, nil

	case config.DriverFile:
		repo, err := fileslot.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return &Storage{Slot: repo, Driver: cfg.Driver}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Storage{Slot: pgslot.New(pool), Driver: cfg.Driver, close: pool.Close}, nil

	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Slot:   redisslot.New(client, cfg.Redis.KeyPrefix),
			Driver: cfg.Driver,
			close:  func() { _ = client.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
