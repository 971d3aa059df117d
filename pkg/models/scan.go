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

package models

import "strings"

const (
	band24GHzLow  = 2400 // MHz
	band24GHzHigh = 2500
	band5GHzLow   = 4900
	band5GHzHigh  = 5900

	minSignalRSSI = -100 // dBm, floor for signal level buckets
	maxSignalRSSI = -55  // dBm, ceiling for signal level buckets
)

// ScanObservation is a single access point seen in one scan cycle. SSID is
// the raw (unquoted) form reported by the radio.
type ScanObservation struct {
	SSID         string `json:"ssid"`
	BSSID        string `json:"bssid"`
	RSSI         int    `json:"rssi"`
	Frequency    int    `json:"frequency"` // MHz
	Capabilities string `json:"capabilities"`
}

// Is24GHz reports whether the observation is on the 2.4GHz band.
func (s *ScanObservation) Is24GHz() bool {
	return s.Frequency > band24GHzLow && s.Frequency < band24GHzHigh
}

// Is5GHz reports whether the observation is on the 5GHz band.
func (s *ScanObservation) Is5GHz() bool {
	return s.Frequency > band5GHzLow && s.Frequency < band5GHzHigh
}

// IsOpen reports whether the advertised capabilities describe an open
// access point. A bare "[ESS]" capability string is an open AP available
// for a station to connect.
func (s *ScanObservation) IsOpen() bool {
	for _, enc := range []string{"WEP", "PSK", "EAP", "SAE", "OWE"} {
		if strings.Contains(s.Capabilities, enc) {
			return false
		}
	}

	return true
}

// MatchesSecurity reports whether the advertised security matches the
// saved network's configured security type. Passpoint networks are
// secured on the air.
func (s *ScanObservation) MatchesSecurity(saved *SavedNetwork) bool {
	return s.IsOpen() == saved.IsOpen()
}

// SignalLevel buckets an RSSI into numLevels bars, clamping at -100 and
// -55 dBm.
func SignalLevel(rssi, numLevels int) int {
	if numLevels < 2 {
		return 0
	}

	if rssi <= minSignalRSSI {
		return 0
	}

	if rssi >= maxSignalRSSI {
		return numLevels - 1
	}

	inputRange := maxSignalRSSI - minSignalRSSI
	outputRange := numLevels - 1

	return (rssi - minSignalRSSI) * outputRange / inputRange
}
