package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value    []byte
	storedAt time.Time
}

// Memory — in-process реализация Store.
//
// Размер не ограничен, LRU нет. Параллельные промахи по одному ключу
// не схлопываются: каждый запрос сходит к провайдерам сам.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     Clock
}

// NewMemory создаёт пустой кэш. now == nil означает time.Now.
func NewMemory(now Clock) *Memory {
	if now == nil {
		now = time.Now
	}

	return &Memory{entries: make(map[string]entry), now: now}
}

func (m *Memory) Get(_ context.Context, key string, ttl time.Duration) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}

	if m.now().Sub(e.storedAt) > ttl {
		delete(m.entries, key)
		return nil, false, nil
	}

	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	buf := append([]byte(nil), value...)

	m.mu.Lock()
	m.entries[key] = entry{value: buf, storedAt: m.now()}
	m.mu.Unlock()

	return nil
}

func (m *Memory) Clear(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prefix == "" {
		m.entries = make(map[string]entry)
		return nil
	}

	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}

	return nil
}

func (m *Memory) Stats(_ context.Context) (Stats, error) {
	m.mu.Lock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	m.mu.Unlock()

	sort.Strings(keys)
	return Stats{Size: len(keys), Keys: keys}, nil
}

func (m *Memory) Close() error { return nil }
