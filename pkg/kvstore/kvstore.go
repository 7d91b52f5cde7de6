// Package kvstore provides the durable key-value store that backs every
// entity table.
//
// Three drivers are available out of the box:
//   - "file"   — one JSON document per key on the local filesystem (default)
//   - "memory" — map-backed, for tests and ephemeral runs
//   - "sqlite" — a key/value table in an embedded sqlite database
//
// Application code never talks to a Driver directly; it goes through an
// Adapter, which is fail-soft: a driver or serialisation failure is logged
// and degraded (reads report absent, writes and removes become no-ops).
// Persistence loss must never crash the caller — the in-memory stores stay
// authoritative for the rest of the session.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jfcardenas/panapp/config"
	"github.com/jfcardenas/panapp/pkg/logger"
)

// Driver is the storage backend interface. Every driver must implement this.
type Driver interface {
	// Get returns the raw value stored under key. A missing key is
	// (nil, ErrNotFound).
	Get(key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// Open builds the Driver named by STORE_DRIVER.
func Open() (Driver, error) {
	switch driver := config.StoreDriver(); driver {
	case "file":
		return NewFileDriver(config.StorePath()), nil
	case "memory":
		return NewMemoryDriver(), nil
	case "sqlite":
		return NewSQLiteDriver(config.DatabaseDSN())
	default:
		return nil, fmt.Errorf("kvstore: unsupported STORE_DRIVER %q (supported: file, memory, sqlite)", driver)
	}
}

// Adapter wraps a Driver with JSON encoding and the fail-soft policy.
type Adapter struct {
	driver Driver
}

// NewAdapter wraps driver. A nil driver yields an adapter where every key
// is absent and every write is dropped.
func NewAdapter(driver Driver) *Adapter {
	return &Adapter{driver: driver}
}

// Read returns the JSON value stored under key and whether it was present.
// Driver failures and corrupt values report absent.
func (a *Adapter) Read(key string) (json.RawMessage, bool) {
	if a.driver == nil {
		return nil, false
	}

	raw, err := a.driver.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("kvstore: read failed", "key", key, "error", err)
		}
		return nil, false
	}
	if !json.Valid(raw) {
		logger.Warn("kvstore: corrupt value", "key", key)
		return nil, false
	}
	return raw, true
}

// ReadInto unmarshals the value stored under key into dest and reports
// whether anything was loaded. dest is untouched when the key is absent.
func (a *Adapter) ReadInto(key string, dest interface{}) bool {
	raw, ok := a.Read(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Warn("kvstore: unmarshal failed", "key", key, "error", err)
		return false
	}
	return true
}

// Write marshals value and stores it under key. Failures are logged and
// swallowed.
func (a *Adapter) Write(key string, value interface{}) {
	if a.driver == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("kvstore: marshal failed", "key", key, "error", err)
		return
	}
	if err := a.driver.Put(key, raw); err != nil {
		logger.Warn("kvstore: write failed", "key", key, "error", err)
	}
}

// Remove deletes key. Failures are logged and swallowed; removing a missing
// key is a no-op.
func (a *Adapter) Remove(key string) {
	if a.driver == nil {
		return
	}

	if err := a.driver.Delete(key); err != nil {
		logger.Warn("kvstore: remove failed", "key", key, "error", err)
	}
}
