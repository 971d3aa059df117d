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

// Package wakeup re-enables Wi-Fi when the user is near a network that
// would be autojoined if the radio were on. After the user disables Wi-Fi,
// the radio stays off until the user's context changes: for saved networks
// that means leaving the range of every saved SSID that was visible at
// disable time.
package wakeup

import (
	"fmt"
	"io"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
	"github.com/carverauto/netrec/pkg/selector"
)

//go:generate mockgen -destination=mock_radio.go -package=wakeup github.com/carverauto/netrec/pkg/wakeup RadioController

// Number of scans to confirm that a previously in-range AP is now out of
// range.
const defaultConfirmScans = 3

// RadioController is the external capability that turns the Wi-Fi radio
// back on. Calls are fire-and-forget; failures surface through later
// events, not retries.
type RadioController interface {
	EnableWifi() error
}

// Config holds the wakeup debounce settings.
type Config struct {
	ConfirmScans int `json:"confirm_scans"`
}

// Controller is the wakeup state machine. All handlers must be invoked
// from the single event worker; the controller does no locking of its own.
type Controller struct {
	selector *selector.Selector
	radio    RadioController
	logger   logger.Logger

	confirmScans int

	savedNetworks        map[string]models.SavedNetwork // keyed by raw SSID
	savedSSIDs           map[string]struct{}
	savedSSIDsInLastScan map[string]struct{}
	savedSSIDsOnDisable  map[string]int

	wifiState     models.WifiState
	apEnabled     bool
	wakeupEnabled bool
	airplaneMode  bool
}

// NewController creates a wakeup controller. A zero ConfirmScans falls
// back to the default debounce window of 3 scans.
func NewController(cfg Config, sel *selector.Selector, radio RadioController, log logger.Logger) *Controller {
	confirm := cfg.ConfirmScans
	if confirm <= 0 {
		confirm = defaultConfirmScans
	}

	return &Controller{
		selector:             sel,
		radio:                radio,
		logger:               log,
		confirmScans:         confirm,
		savedNetworks:        make(map[string]models.SavedNetwork),
		savedSSIDs:           make(map[string]struct{}),
		savedSSIDsInLastScan: make(map[string]struct{}),
		savedSSIDsOnDisable:  make(map[string]int),
		wifiState:            models.WifiStateUnknown,
	}
}

// HandleSettings records the wakeup and airplane mode settings.
func (c *Controller) HandleSettings(ev models.SettingsEvent) {
	c.wakeupEnabled = ev.WakeupEnabled
	c.airplaneMode = ev.AirplaneMode
}

// HandleConfiguredNetworks rebuilds the saved-network cache. Eligibility
// is filtered once here, not per scan: disabled, externally scored, and
// internet-suppressed networks never enter the tracked sets.
func (c *Controller) HandleConfiguredNetworks(ev models.ConfiguredNetworksEvent) {
	if !c.wakeupEnabled {
		return
	}

	c.savedNetworks = make(map[string]models.SavedNetwork, len(ev.Networks))
	c.savedSSIDs = make(map[string]struct{}, len(ev.Networks))

	for i := range ev.Networks {
		network := ev.Networks[i]
		if !network.Eligible() {
			continue
		}

		ssid := models.UnquoteSSID(network.SSID)
		c.savedNetworks[ssid] = network
		c.savedSSIDs[ssid] = struct{}{}
	}

	for ssid := range c.savedSSIDsInLastScan {
		if _, ok := c.savedSSIDs[ssid]; !ok {
			delete(c.savedSSIDsInLastScan, ssid)
		}
	}

	for ssid := range c.savedSSIDsOnDisable {
		if _, ok := c.savedSSIDs[ssid]; !ok {
			delete(c.savedSSIDsOnDisable, ssid)
		}
	}
}

// HandleWifiState arms or disarms the machine. Enabling clears the
// disable snapshot; disabling snapshots the saved SSIDs visible in the
// most recent scan with a full confirmation countdown each.
func (c *Controller) HandleWifiState(ev models.WifiStateEvent) {
	if !c.wakeupEnabled {
		return
	}

	c.wifiState = ev.State

	switch ev.State {
	case models.WifiStateEnabled:
		c.savedSSIDsOnDisable = make(map[string]int)
	case models.WifiStateDisabled:
		for ssid := range c.savedSSIDsInLastScan {
			c.savedSSIDsOnDisable[ssid] = c.confirmScans
		}
	case models.WifiStateUnknown:
	}
}

// HandleApState records whether local AP (hotspot) mode is active.
func (c *Controller) HandleApState(ev models.ApStateEvent) {
	if !c.wakeupEnabled {
		return
	}

	c.apEnabled = ev.Enabled
}

// HandleScanResults runs one debounce step against a fresh scan and
// enables the radio once the user has genuinely left the disable-time
// context and a saved network qualifies.
func (c *Controller) HandleScanResults(ev models.ScanResultsEvent) {
	if !c.wakeupEnabled {
		return
	}

	c.savedSSIDsInLastScan = make(map[string]struct{})

	for i := range ev.Results {
		if _, ok := c.savedSSIDs[ev.Results[i].SSID]; ok {
			c.savedSSIDsInLastScan[ev.Results[i].SSID] = struct{}{}
		}
	}

	if c.airplaneMode || c.wifiState != models.WifiStateDisabled || c.apEnabled {
		return
	}

	// Drop tracked ssids the user has moved away from; a reappearance
	// restarts its countdown.
	for ssid, remaining := range c.savedSSIDsOnDisable {
		if _, visible := c.savedSSIDsInLastScan[ssid]; visible {
			c.savedSSIDsOnDisable[ssid] = c.confirmScans
		} else if remaining > 1 {
			c.savedSSIDsOnDisable[ssid] = remaining - 1
		} else {
			delete(c.savedSSIDsOnDisable, ssid)
		}
	}

	if len(c.savedSSIDsOnDisable) > 0 {
		c.logger.Debug().
			Int("tracked", len(c.savedSSIDsOnDisable)).
			Msg("Still near a network from the disable-time snapshot")

		return
	}

	selected := c.selector.SelectNetwork(c.savedNetworks, ev.Results)
	if selected == nil {
		return
	}

	c.logger.Info().Str("ssid", selected.SSID).Msg("Enabling wifi for selected network")

	if err := c.radio.EnableWifi(); err != nil {
		c.logger.Error().Err(err).Msg("Failed to enable wifi")
	}
}

// Dump writes the controller state for diagnostics.
func (c *Controller) Dump(w io.Writer) {
	fmt.Fprintf(w, "wakeupEnabled: %t\n", c.wakeupEnabled)
	fmt.Fprintf(w, "wifiState: %s\n", c.wifiState)
	fmt.Fprintf(w, "savedSSIDs: %d\n", len(c.savedSSIDs))
	fmt.Fprintf(w, "savedSSIDsInLastScan: %d\n", len(c.savedSSIDsInLastScan))
	fmt.Fprintf(w, "savedSSIDsOnDisable: %v\n", c.savedSSIDsOnDisable)
}
