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

// Package selector picks the saved network the device would most likely
// associate with if Wi-Fi were enabled.
package selector

import (
	"github.com/carverauto/netrec/pkg/models"
)

// Config holds the scoring thresholds and awards. All values are injected;
// none are hardcoded in the scoring path.
type Config struct {
	ThresholdQualifiedRSSI24 int `json:"threshold_qualified_rssi_24"`
	ThresholdQualifiedRSSI5  int `json:"threshold_qualified_rssi_5"`
	ThresholdSaturatedRSSI24 int `json:"threshold_saturated_rssi_24"`
	RSSIScoreSlope           int `json:"rssi_score_slope"`
	RSSIScoreOffset          int `json:"rssi_score_offset"`
	PasspointSecurityAward   int `json:"passpoint_security_award"`
	SecurityAward            int `json:"security_award"`
	Band5GHzAward            int `json:"band_5ghz_award"`
}

// DefaultConfig mirrors the platform defaults for the scoring parameters.
func DefaultConfig() Config {
	return Config{
		ThresholdQualifiedRSSI24: -73,
		ThresholdQualifiedRSSI5:  -70,
		ThresholdSaturatedRSSI24: -60,
		RSSIScoreSlope:           4,
		RSSIScoreOffset:          85,
		PasspointSecurityAward:   40,
		SecurityAward:            80,
		Band5GHzAward:            40,
	}
}

// Selector scores visible saved networks.
type Selector struct {
	cfg Config
}

// NewSelector creates a Selector with the given scoring configuration.
func NewSelector(cfg Config) *Selector {
	return &Selector{cfg: cfg}
}

// SelectNetwork returns the saved network the device would most likely
// connect to, or nil when no visible candidate qualifies. savedNetworks is
// keyed by raw (unquoted) SSID. Ties keep the first-encountered candidate
// in scan order.
func (s *Selector) SelectNetwork(
	savedNetworks map[string]models.SavedNetwork, scans []models.ScanObservation) *models.SavedNetwork {
	var candidate *models.SavedNetwork

	candidateScore := -1

	for i := range scans {
		scan := &scans[i]

		saved, ok := savedNetworks[scan.SSID]
		if !ok {
			continue
		}

		if scan.Is5GHz() && scan.RSSI < s.cfg.ThresholdQualifiedRSSI5 ||
			scan.Is24GHz() && scan.RSSI < s.cfg.ThresholdQualifiedRSSI24 {
			continue
		}

		if !scan.MatchesSecurity(&saved) {
			continue
		}

		score := s.calculateScore(scan, &saved)
		if candidate == nil || score > candidateScore {
			network := saved
			candidate = &network
			candidateScore = score
		}
	}

	return candidate
}

func (s *Selector) calculateScore(scan *models.ScanObservation, saved *models.SavedNetwork) int {
	rssi := scan.RSSI
	if rssi > s.cfg.ThresholdSaturatedRSSI24 {
		rssi = s.cfg.ThresholdSaturatedRSSI24
	}

	score := (rssi + s.cfg.RSSIScoreOffset) * s.cfg.RSSIScoreSlope

	if scan.Is5GHz() {
		score += s.cfg.Band5GHzAward
	}

	switch {
	case saved.IsPasspoint():
		score += s.cfg.PasspointSecurityAward
	case !saved.IsOpen():
		score += s.cfg.SecurityAward
	}

	return score
}
