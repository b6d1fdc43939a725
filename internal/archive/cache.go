// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package archive

import (
	"sort"
	"sync"
)

// Store is the in-memory payload cache, keyed by endpoint. Entries are
// write-once: the first successful payload for a key is the one returned for
// the rest of the process lifetime. There is no eviction and no expiry.
type Store struct {
	mu       sync.RWMutex
	entries  map[string][]byte
	inflight map[string]*call
}

// call tracks one in-flight fill so concurrent fetches of the same uncached
// endpoint share a single network request.
type call struct {
	done chan struct{}
	data []byte
	err  error
}

func NewStore() *Store {
	return &Store{
		entries:  make(map[string][]byte),
		inflight: make(map[string]*call),
	}
}

// Get returns the cached payload for key, if present.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.entries[key]
	return data, ok
}

// Len reports the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns the cached endpoint keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Do returns the cached payload for key, running fill at most once per key
// across concurrent callers when the key is absent. A successful fill is
// cached; a failed fill is not, so a later call may try again.
func (s *Store) Do(key string, fill func() ([]byte, error)) ([]byte, error) {
	s.mu.Lock()
	if data, ok := s.entries[key]; ok {
		s.mu.Unlock()
		return data, nil
	}
	if c, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		<-c.done
		return c.data, c.err
	}
	c := &call{done: make(chan struct{})}
	s.inflight[key] = c
	s.mu.Unlock()

	c.data, c.err = fill()

	s.mu.Lock()
	delete(s.inflight, key)
	if c.err == nil {
		// Write-once: keep an earlier entry if one somehow got there first.
		if _, ok := s.entries[key]; !ok {
			s.entries[key] = c.data
		}
	}
	s.mu.Unlock()
	close(c.done)

	return c.data, c.err
}
