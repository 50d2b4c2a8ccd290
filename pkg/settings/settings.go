// Package settings persists extension-scoped key-value settings. The copy and
// paste commands keep their clipboard slot here.
package settings

import "time"

// Store is a persisted key-value store. Get reports ok=false for keys that
// were never set or have been deleted.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Entry(key string) (*Entry, error)
	Delete(key string) error
	Close() error
}

// Entry is a stored value with its last write time.
type Entry struct {
	Key       string    `json:"key" yaml:"key"`
	Value     string    `json:"value" yaml:"value"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}
