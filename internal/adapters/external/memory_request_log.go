package external

import (
	"context"
	"sync"

	"toolkitaccess.app/internal/ports"
)

// MemoryRequestLogAdapter keeps access requests in process memory.
// Entries are lost on restart.
type MemoryRequestLogAdapter struct {
	mu      sync.RWMutex
	entries []ports.AccessRequestData
}

// NewMemoryRequestLogAdapter creates an empty in-memory request log
func NewMemoryRequestLogAdapter() *MemoryRequestLogAdapter {
	return &MemoryRequestLogAdapter{}
}

// Append adds an entry to the end of the log
func (m *MemoryRequestLogAdapter) Append(ctx context.Context, data ports.AccessRequestData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, data)
	return nil
}

// List returns a copy of every entry in insertion order
func (m *MemoryRequestLogAdapter) List(ctx context.Context) ([]ports.AccessRequestData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ports.AccessRequestData, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// Ping always succeeds
func (m *MemoryRequestLogAdapter) Ping(ctx context.Context) error {
	return nil
}
