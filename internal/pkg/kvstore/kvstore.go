package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// ErrUnknownDriver is returned by NewFromDriver for unsupported drivers.
var ErrUnknownDriver = errors.New("kvstore: unknown driver")

// Store is an asynchronous-style key-value store. Each call is independent;
// callers that write several keys get no atomicity across them.
type Store interface {
	io.Closer

	// Get returns the value for key, or goerror.ErrNotFound when absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// FactoryOptions holds per-driver settings for NewFromDriver.
type FactoryOptions struct {
	RedisURL   string
	SQLitePath string
}

// NewFromDriver builds the Store for the named driver.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Store, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverRedis:
		return NewRedisFromURL(ctx, opts.RedisURL)
	case DriverSQLite:
		return NewSQLite(ctx, opts.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
