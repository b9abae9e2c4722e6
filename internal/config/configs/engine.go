package configs

import (
	"fmt"
	"time"
)

// Event sources the engine can read delivery counts from.
const (
	EventSourceRedis      = "redis"
	EventSourceClickHouse = "clickhouse"
)

// Engine tunes the recomputation runs.
type Engine struct {
	// Concurrency bounds the number of ads priced in parallel.
	Concurrency int `env:"CONCURRENCY" envDefault:"8"`
	// AdTimeout limits the work done for a single ad, persistence included.
	AdTimeout time.Duration `env:"AD_TIMEOUT" envDefault:"5s"`
	// RecomputeInterval schedules periodic runs. Zero disables the scheduler.
	RecomputeInterval time.Duration `env:"RECOMPUTE_INTERVAL" envDefault:"5m"`
	// EventSource selects where delivery counts come from.
	EventSource string `env:"EVENT_SOURCE" envDefault:"redis"`
}

// Validate rejects settings the engine cannot run with.
func (c Engine) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("ENGINE_CONCURRENCY must be positive, got %d", c.Concurrency)
	}
	if c.AdTimeout <= 0 {
		return fmt.Errorf("ENGINE_AD_TIMEOUT must be positive, got %s", c.AdTimeout)
	}
	if c.RecomputeInterval < 0 {
		return fmt.Errorf("ENGINE_RECOMPUTE_INTERVAL must not be negative, got %s", c.RecomputeInterval)
	}
	switch c.EventSource {
	case EventSourceRedis, EventSourceClickHouse:
		return nil
	default:
		return fmt.Errorf("ENGINE_EVENT_SOURCE must be %q or %q, got %q",
			EventSourceRedis, EventSourceClickHouse, c.EventSource)
	}
}
