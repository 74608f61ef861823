package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrRecordNotFound is returned by a backend when no record answers the
// request. The gateway maps it to HTTP 404.
var ErrRecordNotFound = errors.New("record not found")

// Backend answers resolution requests. Given the DNS-encoded name and the
// inner call data it returns the ABI-encoded result bytes the caller's
// resolution function expects. How records are stored and looked up is
// entirely up to the implementation.
type Backend interface {
	Lookup(ctx context.Context, name, data []byte) ([]byte, error)
}

// MemoryBackend is an in-memory Backend keyed on the exact (name, data)
// request pair, useful for tests and demos.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		records: make(map[string][]byte),
	}
}

// Set stores the result returned for the given (name, data) request
func (b *MemoryBackend) Set(name, data, result []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records[recordKey(name, data)] = append([]byte(nil), result...)
}

// Lookup implements Backend
func (b *MemoryBackend) Lookup(ctx context.Context, name, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	result, ok := b.records[recordKey(name, data)]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return append([]byte(nil), result...), nil
}

func recordKey(name, data []byte) string {
	return fmt.Sprintf("%x:%x", name, data)
}
