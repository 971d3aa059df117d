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

import "time"

// WifiState is the radio enablement state reported by the radio subsystem.
type WifiState string

const (
	WifiStateUnknown  WifiState = "unknown"
	WifiStateEnabled  WifiState = "enabled"
	WifiStateDisabled WifiState = "disabled"
)

// NetworkState is the detailed supplicant state for the current network.
type NetworkState string

const (
	NetworkStateIdle              NetworkState = "idle"
	NetworkStateScanning          NetworkState = "scanning"
	NetworkStateConnecting        NetworkState = "connecting"
	NetworkStateConnected         NetworkState = "connected"
	NetworkStateDisconnected      NetworkState = "disconnected"
	NetworkStateCaptivePortal     NetworkState = "captive_portal_check"
	NetworkStateUnknown           NetworkState = "unknown"
	NetworkStateAuthenticating    NetworkState = "authenticating"
	NetworkStateObtainingIPAddr   NetworkState = "obtaining_ipaddr"
	NetworkStateFailed            NetworkState = "failed"
	NetworkStateBlocked           NetworkState = "blocked"
	NetworkStateVerifyingPoorLink NetworkState = "verifying_poor_link"
)

// Event is a discrete input to the recommendation service. All events are
// processed in arrival order by a single worker.
type Event interface {
	isEvent()
}

// ScanResultsEvent carries one complete scan cycle.
type ScanResultsEvent struct {
	Results []ScanObservation `json:"results"`
}

// WifiStateEvent reports a radio enablement change.
type WifiStateEvent struct {
	State WifiState `json:"state"`
}

// NetworkStateEvent reports a supplicant state change.
type NetworkStateEvent struct {
	State NetworkState `json:"state"`
}

// ApStateEvent reports whether local AP (hotspot) mode is active.
type ApStateEvent struct {
	Enabled bool `json:"enabled"`
}

// ConfiguredNetworksEvent carries the full saved-network list after a
// configuration change.
type ConfiguredNetworksEvent struct {
	Networks []SavedNetwork `json:"networks"`
}

// SettingsEvent carries the user settings the service observes.
type SettingsEvent struct {
	WakeupEnabled        bool `json:"wakeup_enabled"`
	AirplaneMode         bool `json:"airplane_mode"`
	NotificationsEnabled bool `json:"notifications_enabled"`
}

// ConnectRequestEvent is the user acting on the "connect" notification
// action.
type ConnectRequestEvent struct{}

// NotificationDismissedEvent is the user dismissing the notification.
type NotificationDismissedEvent struct{}

func (ScanResultsEvent) isEvent()           {}
func (WifiStateEvent) isEvent()             {}
func (NetworkStateEvent) isEvent()          {}
func (ApStateEvent) isEvent()               {}
func (ConfiguredNetworksEvent) isEvent()    {}
func (SettingsEvent) isEvent()              {}
func (ConnectRequestEvent) isEvent()        {}
func (NotificationDismissedEvent) isEvent() {}

// CloudEvent is the envelope used when publishing score updates to the
// external scoring sink.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Type            string      `json:"type"`
	DataContentType string      `json:"datacontenttype"`
	Subject         string      `json:"subject"`
	Time            *time.Time  `json:"time,omitempty"`
	Data            interface{} `json:"data"`
}
