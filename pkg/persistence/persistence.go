package persistence

import "errors"

// ErrKeyNotFound is wrapped by Store.Load when the key has no entry.
// Callers that treat absence as a valid outcome check it with errors.Is.
var ErrKeyNotFound = errors.New("key not found")

type Store[K comparable, T any] interface {
	Save(key K, data T) error
	Load(key K) (T, error)
	LoadAll() (map[K]T, error)
	Delete(key K) error
	Clear() error
}
