package memory

import (
	"context"
	"sync"
)

// KVStore — хранилище в памяти процесса, для storage.driver=memory и тестов.
// Между перезапусками ничего не сохраняет
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

func (s *KVStore) Get(_ context.Context, keys []string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := s.data[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *KVStore) Set(_ context.Context, record map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range record {
		s.data[k] = v
	}
	return nil
}
