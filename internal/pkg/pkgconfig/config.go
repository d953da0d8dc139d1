package pkgconfig

import "time"

// Config is the read-only view of application configuration.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetBinary(key string) []byte
	GetArray(key string) []string
	GetMap(key string) map[string]string
	// GetTime returns the zero time when the key is unset or not a timestamp.
	GetTime(key string) time.Time
	Close() error
}

var _ Config = (*Viper)(nil)
