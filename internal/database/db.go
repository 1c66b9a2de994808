package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotConnected is returned when the pool has not been opened
var ErrNotConnected = errors.New("database not initialized")

// PoolConfig holds connection pool settings
type PoolConfig struct {
	URL             string
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

var (
	pool   *pgxpool.Pool
	poolMu sync.RWMutex
)

// Connect opens the shared connection pool. Calling it again while a pool is
// open is a no-op.
func Connect(ctx context.Context, cfg PoolConfig) error {
	poolMu.Lock()
	defer poolMu.Unlock()
	if pool != nil {
		return nil
	}

	p, err := Open(ctx, cfg)
	if err != nil {
		return err
	}
	pool = p
	return nil
}

// Open creates a standalone pool and verifies it with a ping
func Open(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error parsing database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		config.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		config.MinConns = int32(cfg.MinConns)
	}
	if cfg.MaxConnLifetime > 0 {
		config.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	config.HealthCheckPeriod = 1 * time.Minute

	p, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error creating connection pool: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return p, nil
}

// Close closes the shared pool
func Close() {
	poolMu.Lock()
	defer poolMu.Unlock()
	if pool != nil {
		pool.Close()
		pool = nil
	}
}

// Pool returns the shared pool, or nil before Connect
func Pool() *pgxpool.Pool {
	poolMu.RLock()
	defer poolMu.RUnlock()
	return pool
}

// Status pings the shared pool
func Status(ctx context.Context) error {
	p := Pool()
	if p == nil {
		return ErrNotConnected
	}
	return p.Ping(ctx)
}
