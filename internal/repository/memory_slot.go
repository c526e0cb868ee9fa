package repository

import (
	"context"
	"sync"
)

// MemorySlotRepo keeps slot values in process memory. Nothing survives a
// restart. Setting ReplaceErr makes every Replace fail without touching data.
type MemorySlotRepo struct {
	mu         sync.Mutex
	data       map[string][]byte
	writes     int
	ReplaceErr error
}

func NewMemorySlotRepo() *MemorySlotRepo {
	return &MemorySlotRepo{data: make(map[string][]byte)}
}

// Seed stores value under key without counting a write.
func (m *MemorySlotRepo) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
}

// Writes returns the number of successful Replace calls.
func (m *MemorySlotRepo) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *MemorySlotRepo) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemorySlotRepo) Replace(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.data[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}
