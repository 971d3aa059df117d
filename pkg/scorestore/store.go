/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package scorestore holds per-network score curves in memory with
// wildcard-BSSID fallback.
package scorestore

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
)

// Store is the concurrent score cache. Entries live for the process
// lifetime; there is no eviction.
type Store interface {
	// Put inserts or replaces the entry under its exact key. A wildcard
	// entry never shadows an existing exact entry for the same SSID.
	Put(network *models.ScoredNetwork)
	// Get looks up an exact (SSID,BSSID) match first, then falls back to
	// the (SSID,wildcard) entry if present.
	Get(key models.NetworkKey) (*models.ScoredNetwork, bool)
	// Len returns the number of stored entries.
	Len() int
	// Dump writes stored entries for diagnostics.
	Dump(w io.Writer)
}

// ssidScores holds every entry for one SSID: the optional wildcard entry
// plus entries keyed by concrete BSSID.
type ssidScores struct {
	wildcard *models.ScoredNetwork
	byBSSID  map[string]*models.ScoredNetwork
}

// MemoryStore implements Store with a two-level map under an RWMutex.
// Lookup volume is low (one per scan observation), so sharding is not
// worth the bookkeeping here.
type MemoryStore struct {
	mu     sync.RWMutex
	ssids  map[string]*ssidScores
	count  int
	logger logger.Logger
}

// NewMemoryStore creates an empty score store.
func NewMemoryStore(log logger.Logger) *MemoryStore {
	return &MemoryStore{
		ssids:  make(map[string]*ssidScores),
		logger: log,
	}
}

func (s *MemoryStore) Put(network *models.ScoredNetwork) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.ssids[network.Key.SSID]
	if entry == nil {
		entry = &ssidScores{byBSSID: make(map[string]*models.ScoredNetwork)}
		s.ssids[network.Key.SSID] = entry
	}

	if network.Key.IsWildcard() {
		if entry.wildcard == nil {
			s.count++
		}

		entry.wildcard = network
	} else {
		if _, ok := entry.byBSSID[network.Key.BSSID]; !ok {
			s.count++
		}

		entry.byBSSID[network.Key.BSSID] = network
	}

	s.logger.Debug().
		Str("ssid", network.Key.SSID).
		Str("bssid", network.Key.BSSID).
		Msg("Stored network score")
}

func (s *MemoryStore) Get(key models.NetworkKey) (*models.ScoredNetwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry := s.ssids[key.SSID]
	if entry == nil {
		return nil, false
	}

	if !key.IsWildcard() {
		if network, ok := entry.byBSSID[key.BSSID]; ok {
			return network, true
		}
	}

	if entry.wildcard != nil {
		return entry.wildcard, true
	}

	return nil, false
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.count
}

func (s *MemoryStore) Dump(w io.Writer) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ssids := make([]string, 0, len(s.ssids))
	for ssid := range s.ssids {
		ssids = append(ssids, ssid)
	}

	sort.Strings(ssids)

	for _, ssid := range ssids {
		entry := s.ssids[ssid]
		if entry.wildcard != nil {
			fmt.Fprintf(w, "%s,%s: %v\n", ssid, models.WildcardBSSID, entry.wildcard.Curve.Buckets)
		}

		bssids := make([]string, 0, len(entry.byBSSID))
		for bssid := range entry.byBSSID {
			bssids = append(bssids, bssid)
		}

		sort.Strings(bssids)

		for _, bssid := range bssids {
			fmt.Fprintf(w, "%s,%s: %v\n", ssid, bssid, entry.byBSSID[bssid].Curve.Buckets)
		}
	}
}
