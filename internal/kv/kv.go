package kv

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is the persisted key-value store the catalog and stock data
// live in. Values are opaque JSON documents.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

type memoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns a process-local backend, used by tests and the
// "memory" store setting.
func NewMemory() Backend {
	return &memoryBackend{values: make(map[string][]byte)}
}

func (m *memoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), val...), nil
}

func (m *memoryBackend) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryBackend) Close() error {
	return nil
}

// Prefixed namespaces every key of b.
func Prefixed(b Backend, prefix string) Backend {
	if prefix == "" {
		return b
	}
	return &prefixed{Backend: b, prefix: prefix}
}

type prefixed struct {
	Backend
	prefix string
}

func (p *prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.Backend.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.Backend.Set(ctx, p.prefix+key, value)
}
