package api

import (
	"context"
	"sync/atomic"
)

// WorkerPool bounds concurrent request processing. Queries (coverage,
// render) are cheap and get a wide semaphore; searches (solve, analyze)
// are exponential and get a narrow one.
type WorkerPool struct {
	querySem  chan struct{}
	searchSem chan struct{}

	activeQueries  int64
	activeSearches int64
	totalQueries   int64
	totalSearches  int64
}

// PoolConfig configures the worker pool.
type PoolConfig struct {
	MaxQueries  int // Max concurrent query operations (default: 100)
	MaxSearches int // Max concurrent search operations (default: 4)
}

// DefaultPoolConfig returns a PoolConfig with sensible defaults.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{MaxQueries: 100, MaxSearches: 4}
}

// PoolStats is a snapshot of pool activity.
type PoolStats struct {
	ActiveQueries  int64 `json:"active_queries"`
	ActiveSearches int64 `json:"active_searches"`
	TotalQueries   int64 `json:"total_queries"`
	TotalSearches  int64 `json:"total_searches"`
}

// NewWorkerPool creates a worker pool with the given configuration.
func NewWorkerPool(config PoolConfig) *WorkerPool {
	if config.MaxQueries <= 0 {
		config.MaxQueries = 100
	}
	if config.MaxSearches <= 0 {
		config.MaxSearches = 4
	}
	return &WorkerPool{
		querySem:  make(chan struct{}, config.MaxQueries),
		searchSem: make(chan struct{}, config.MaxSearches),
	}
}

// AcquireQuery takes a query slot, waiting until one frees up or the
// context is cancelled.
func (p *WorkerPool) AcquireQuery(ctx context.Context) error {
	select {
	case p.querySem <- struct{}{}:
		atomic.AddInt64(&p.activeQueries, 1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReleaseQuery returns a query slot.
func (p *WorkerPool) ReleaseQuery() {
	atomic.AddInt64(&p.activeQueries, -1)
	atomic.AddInt64(&p.totalQueries, 1)
	<-p.querySem
}

// AcquireSearch takes a search slot, waiting until one frees up or the
// context is cancelled.
func (p *WorkerPool) AcquireSearch(ctx context.Context) error {
	select {
	case p.searchSem <- struct{}{}:
		atomic.AddInt64(&p.activeSearches, 1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReleaseSearch returns a search slot.
func (p *WorkerPool) ReleaseSearch() {
	atomic.AddInt64(&p.activeSearches, -1)
	atomic.AddInt64(&p.totalSearches, 1)
	<-p.searchSem
}

// Stats returns a snapshot of pool activity.
func (p *WorkerPool) Stats() PoolStats {
	return PoolStats{
		ActiveQueries:  atomic.LoadInt64(&p.activeQueries),
		ActiveSearches: atomic.LoadInt64(&p.activeSearches),
		TotalQueries:   atomic.LoadInt64(&p.totalQueries),
		TotalSearches:  atomic.LoadInt64(&p.totalSearches),
	}
}
