// Package config abstracts runtime configuration behind a small read-only
// interface so wiring code never depends on a concrete provider.
package config

import (
	"io"
	"time"
)

// Config exposes typed accessors over the configuration source.
//
// Implementations return the zero value when a key is missing or cannot be
// converted to the requested type.
type Config interface {
	io.Closer

	// GetString retrieves the value for key as a string.
	GetString(key string) string

	// GetBool retrieves the value for key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value for key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the value for key as an int32.
	GetInt32(key string) int32

	// GetInt64 retrieves the value for key as an int64.
	GetInt64(key string) int64

	// GetUint16 retrieves the value for key as a uint16.
	GetUint16(key string) uint16

	// GetFloat64 retrieves the value for key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the value for key as a duration in seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value for key as a duration in minutes.
	GetMinute(key string) time.Duration

	// GetBinary retrieves the value for key as raw bytes.
	// The configuration value is stored base64 encoded.
	GetBinary(key string) []byte

	// GetArray retrieves the value for key as a string slice.
	// The configuration value is stored as <element1>,<element2>,...
	GetArray(key string) []string
}
