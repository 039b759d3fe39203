package store

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

// MemoryStore keeps the serialized cart in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decode(s.data)
}

func (s *MemoryStore) Save(_ context.Context, cart []models.Product) error {
	data, err := encode(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Raw returns the stored blob, nil when nothing was saved yet.
func (s *MemoryStore) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}
