package export

import (
	"context"
	"sort"
	"sync"
)

// Memory keeps exported files in memory.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemory creates an empty Memory exporter.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// Export implements Exporter. data is copied.
func (m *Memory) Export(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.files[path] = append([]byte(nil), data...)
	m.mu.Unlock()
	return nil
}

// File returns the contents exported to path.
func (m *Memory) File(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// Paths returns every exported path in ascending order.
func (m *Memory) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of exported files.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.files)
}

// Reset drops every file.
func (m *Memory) Reset() {
	m.mu.Lock()
	m.files = make(map[string][]byte)
	m.mu.Unlock()
}
