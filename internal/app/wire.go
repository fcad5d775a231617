package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hashicon/internal/cache"
	"hashicon/internal/domain"
	"hashicon/internal/services/render"
)

// Wire bundles the cache, services and logger for the binaries.
type Wire struct {
	Icons domain.IconService
	Sizes domain.SizeTable
	Cache *cache.Memo
	Log   *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	sizes := domain.DefaultSizes()
	memo := cache.New(cfg.CacheCapacity)
	return &Wire{
		Icons: render.New(sizes, memo),
		Sizes: sizes,
		Cache: memo,
		Log:   logger,
	}, nil
}

func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zcfg := zap.NewProductionConfig()
	if cfg.LogDev {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
