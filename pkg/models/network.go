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

// Package models contains the shared data types for the network
// recommendation service.
package models

import (
	"errors"
	"net"
	"strings"
)

const (
	// WildcardBSSID marks a score entry that applies to every access point
	// sharing an SSID.
	WildcardBSSID = "any"

	// zeroBSSID is the legacy spelling of the wildcard accepted on the wire.
	zeroBSSID = "00:00:00:00:00:00"
)

var (
	ErrInvalidSSID  = errors.New("ssid is not in quoted canonical form")
	ErrInvalidBSSID = errors.New("bssid is not a valid MAC address")
)

// NetworkKey identifies a network for scoring and saved-network lookup.
// SSID is always the double-quoted canonical form. BSSID is either a
// concrete MAC address or WildcardBSSID.
type NetworkKey struct {
	SSID  string `json:"ssid"`
	BSSID string `json:"bssid"`
}

// NewNetworkKey validates ssid quoting and the bssid format. The all-zero
// BSSID is normalized to WildcardBSSID.
func NewNetworkKey(ssid, bssid string) (NetworkKey, error) {
	if !IsQuotedSSID(ssid) {
		return NetworkKey{}, ErrInvalidSSID
	}

	if bssid == WildcardBSSID || bssid == zeroBSSID {
		return NetworkKey{SSID: ssid, BSSID: WildcardBSSID}, nil
	}

	if _, err := net.ParseMAC(bssid); err != nil {
		return NetworkKey{}, ErrInvalidBSSID
	}

	return NetworkKey{SSID: ssid, BSSID: strings.ToLower(bssid)}, nil
}

// IsWildcard reports whether the key matches any access point for its SSID.
func (k NetworkKey) IsWildcard() bool {
	return k.BSSID == WildcardBSSID
}

// WildcardOf returns the wildcard key for the same SSID.
func (k NetworkKey) WildcardOf() NetworkKey {
	return NetworkKey{SSID: k.SSID, BSSID: WildcardBSSID}
}

// IsQuotedSSID reports whether s is a double-quoted canonical SSID.
func IsQuotedSSID(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

// QuoteSSID converts a raw scan SSID to the quoted canonical form.
func QuoteSSID(ssid string) string {
	if IsQuotedSSID(ssid) {
		return ssid
	}

	return `"` + ssid + `"`
}

// UnquoteSSID strips the canonical quoting, returning the raw SSID used in
// scan results.
func UnquoteSSID(ssid string) string {
	if IsQuotedSSID(ssid) {
		return ssid[1 : len(ssid)-1]
	}

	return ssid
}

// Security classifies how a network authenticates stations.
type Security string

const (
	SecurityOpen      Security = "open"
	SecuritySecured   Security = "secured"
	SecurityPasspoint Security = "passpoint"
)

// SavedNetwork is a user-configured network. It is supplied by the external
// configuration store; the service only filters and consumes it.
type SavedNetwork struct {
	SSID                     string   `json:"ssid"` // quoted canonical form
	BSSID                    string   `json:"bssid,omitempty"`
	Security                 Security `json:"security"`
	Enabled                  bool     `json:"enabled"`
	NoInternetAccess         bool     `json:"no_internet_access,omitempty"`
	NoInternetAccessExpected bool     `json:"no_internet_access_expected,omitempty"`
	UseExternalScores        bool     `json:"use_external_scores,omitempty"`
}

// Eligible reports whether the network participates in wakeup tracking and
// selection. Disabled, externally scored, and internet-suppressed networks
// are ignored.
func (n *SavedNetwork) Eligible() bool {
	return n.Enabled &&
		!n.UseExternalScores &&
		!n.NoInternetAccess &&
		!n.NoInternetAccessExpected &&
		UnquoteSSID(n.SSID) != ""
}

// IsOpen reports whether the saved network has no security configured.
func (n *SavedNetwork) IsOpen() bool {
	return n.Security == SecurityOpen || n.Security == ""
}

// IsPasspoint reports whether the saved network uses a passpoint profile.
func (n *SavedNetwork) IsPasspoint() bool {
	return n.Security == SecurityPasspoint
}
