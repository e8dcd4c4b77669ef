package repository

import (
	"sync"
	"time"
)

type mockEntry struct {
	value     string
	expiresAt time.Time
}

// MockCache is the in-process CacheRepository used when no Redis
// address is configured. Handlers hit it concurrently, so access is
// mutex-guarded; expired entries are dropped on read.
type MockCache struct {
	mu   sync.Mutex
	data map[string]mockEntry
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]mockEntry),
	}
}

func (m *MockCache) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return "", false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(m.data, key)
		return "", false
	}
	return entry.value, true
}

func (m *MockCache) Set(key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := mockEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}
