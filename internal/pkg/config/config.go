package config

import (
	"io"
	"time"
)

// TimeConfig defines helpers for retrieving duration values stored as integers.
type TimeConfig interface {
	// GetMillisecond retrieves the value for key as milliseconds.
	GetMillisecond(key string) time.Duration

	// GetSecond retrieves the value for key as seconds.
	GetSecond(key string) time.Duration
}

// Config defines a set of methods for retrieving configuration values of various types.
// Missing keys resolve to the registered default, or the zero value.
type Config interface {
	io.Closer
	TimeConfig

	GetBool(key string) bool
	GetInt(key string) int
	GetUint(key string) uint
	GetFloat64(key string) float64
	GetString(key string) string

	// GetArray retrieves the value for key as a slice of strings.
	// Configuration value is stored with format <element1>,<element2>,...
	// Blank elements are dropped.
	GetArray(key string) []string
}
