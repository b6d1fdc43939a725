// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package archive

import "sync"

// Stats tracks the running counters for a process. Counters only ever go up;
// nothing resets them.
type Stats struct {
	mu       sync.Mutex
	apiCalls int64
	errors   int64
	dataSize int64
}

// Snapshot is a point-in-time copy of the counters, shaped for the /stats
// body and the console report.
type Snapshot struct {
	APICalls int64 `json:"api_calls"`
	Errors   int64 `json:"errors"`
	DataSize int64 `json:"data_size"`
}

// RecordCall counts one network fetch attempt. Cache hits never reach here.
func (s *Stats) RecordCall() {
	s.mu.Lock()
	s.apiCalls++
	s.mu.Unlock()
}

// RecordError counts one failed fetch. Each failure is counted exactly once,
// at the point it is classified.
func (s *Stats) RecordError() {
	s.mu.Lock()
	s.errors++
	s.mu.Unlock()
}

// AddDataSize accumulates the serialized byte length of a payload a consumer
// worked with, whether it came from the network or the cache.
func (s *Stats) AddDataSize(n int) {
	s.mu.Lock()
	s.dataSize += int64(n)
	s.mu.Unlock()
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		APICalls: s.apiCalls,
		Errors:   s.errors,
		DataSize: s.dataSize,
	}
}
