package mock_collaborators

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"vocalize-lambda/application/ports/outbound"
)

// InMemoryObjectStore backs the harness dry-run mode and the service tests
// with a map of buckets. Safe for concurrent use.
type InMemoryObjectStore struct {
	mu       sync.Mutex
	buckets  map[string]map[string][]byte
	FetchErr error
	StoreErr error
	ListErr  error
}

func NewInMemoryObjectStore() *InMemoryObjectStore {
	return &InMemoryObjectStore{
		buckets: make(map[string]map[string][]byte),
	}
}

func (s *InMemoryObjectStore) Seed(bucket string, key string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets[bucket] == nil {
		s.buckets[bucket] = make(map[string][]byte)
	}
	s.buckets[bucket][key] = body
}

func (s *InMemoryObjectStore) Fetch(_ context.Context, bucket string, key string) ([]byte, error) {
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.buckets[bucket][key]
	if !ok {
		return nil, fmt.Errorf("no such key %q in bucket %q", key, bucket)
	}

	return body, nil
}

func (s *InMemoryObjectStore) Store(_ context.Context, bucket string, key string, body []byte) error {
	if s.StoreErr != nil {
		return s.StoreErr
	}

	s.Seed(bucket, key, body)

	return nil
}

func (s *InMemoryObjectStore) ListKeys(_ context.Context, bucket string, prefix string, suffix string) ([]string, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for key := range s.buckets[bucket] {
		if strings.HasPrefix(key, prefix) && strings.HasSuffix(key, suffix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	return keys, nil
}

// Object returns the stored body and whether the key exists.
func (s *InMemoryObjectStore) Object(bucket string, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.buckets[bucket][key]

	return body, ok
}

// ObjectCount reports how many objects a bucket holds.
func (s *InMemoryObjectStore) ObjectCount(bucket string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.buckets[bucket])
}

var _ outbound.ObjectStorePort = (*InMemoryObjectStore)(nil)
