package kv

import (
	"fmt"

	"go.uber.org/zap"
)

// Backend identifies a persistence backend
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

// Config selects and configures the persistence backend
type Config struct {
	Backend    Backend
	DataDir    string // file backend
	SQLitePath string // sqlite backend
	Redis      RedisConfig
}

// NewStore creates the configured Store implementation
func NewStore(cfg Config, log *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		log.Info("using in-memory persistence, state will not survive restarts")
		return NewMemoryStore(), nil
	case BackendFile:
		store, err := NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		log.Info("using file persistence", zap.String("dir", cfg.DataDir))
		return store, nil
	case BackendSQLite:
		store, err := NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		log.Info("using sqlite persistence", zap.String("path", cfg.SQLitePath))
		return store, nil
	case BackendRedis:
		store, err := NewRedisStore(cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info("using redis persistence",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
