package memory

import (
	"fmt"
	"sync"

	"github.com/hiddengems/gemstore/pkg/persistence"
)

type Store[K comparable, T any] struct {
	lock sync.Mutex
	data map[K]T
}

func NewStore[K comparable, T any]() *Store[K, T] {
	return &Store[K, T]{
		lock: sync.Mutex{},
		data: make(map[K]T),
	}
}

func (s *Store[K, T]) Save(key K, data T) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.data[key] = data
	return nil
}

func (s *Store[K, T]) Load(key K) (T, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	val, exist := s.data[key]
	if !exist {
		var zero T
		return zero, fmt.Errorf("resource %v: %w", key, persistence.ErrKeyNotFound)
	}
	return val, nil
}

func (s *Store[K, T]) LoadAll() (map[K]T, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	result := make(map[K]T, len(s.data))
	for key, val := range s.data {
		result[key] = val
	}

	return result, nil
}

func (s *Store[K, T]) Delete(key K) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Store[K, T]) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.data = make(map[K]T)
	return nil
}
