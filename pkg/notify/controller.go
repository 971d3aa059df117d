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

// Package notify drives the "open network available" notification
// lifecycle: a debounced show, then connecting/connected/failed updates,
// then retraction.
package notify

import (
	"fmt"
	"io"
	"time"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
)

// State is the notification lifecycle state.
type State string

const (
	StateIdle             State = "idle"
	StateCandidatePending State = "candidate_pending"
	StateShown            State = "shown"
	StateConnecting       State = "connecting"
	StateConnected        State = "connected"
	StateFailed           State = "failed"
)

const (
	defaultRepeatDelay       = 900 * time.Second
	defaultConnectingTimeout = 10 * time.Second
	defaultDismissDelay      = 5 * time.Second
	defaultScansBeforeShow   = 3
)

// Config holds the notification debounce and timer settings.
type Config struct {
	// RepeatDelay is the minimum wall time between two showings.
	RepeatDelay models.Duration `json:"repeat_delay"`
	// ConnectingTimeout bounds how long the connecting notification is
	// displayed before falling back to failed.
	ConnectingTimeout models.Duration `json:"connecting_timeout"`
	// ConnectedDismissDelay is how long the connected notification stays up.
	ConnectedDismissDelay models.Duration `json:"connected_dismiss_delay"`
	// FailedDismissDelay is how long the failed notification stays up.
	FailedDismissDelay models.Duration `json:"failed_dismiss_delay"`
	// ScansBeforeShow is the number of consecutive qualifying scans
	// required before the notification is surfaced.
	ScansBeforeShow int `json:"scans_before_show"`
}

func (c *Config) setDefaults() {
	if c.RepeatDelay == 0 {
		c.RepeatDelay = models.Duration(defaultRepeatDelay)
	}

	if c.ConnectingTimeout == 0 {
		c.ConnectingTimeout = models.Duration(defaultConnectingTimeout)
	}

	if c.ConnectedDismissDelay == 0 {
		c.ConnectedDismissDelay = models.Duration(defaultDismissDelay)
	}

	if c.FailedDismissDelay == 0 {
		c.FailedDismissDelay = models.Duration(defaultDismissDelay)
	}

	if c.ScansBeforeShow <= 0 {
		c.ScansBeforeShow = defaultScansBeforeShow
	}
}

// Controller is the notification state machine. All handlers and timer
// callbacks run on the single event worker.
type Controller struct {
	cfg      Config
	engine   Recommender
	notifier Notifier
	radio    RadioConnector
	sched    Scheduler
	clock    Clock
	logger   logger.Logger

	state                State
	wifiState            models.WifiState
	networkState         models.NetworkState
	notificationsEnabled bool

	recommended *models.SavedNetwork
	content     *NotificationContent
	scanCount   int
	repeatTime  time.Time
	shown       bool

	cancelFailure func()
	cancelDismiss func()
}

// NewController creates a notification controller. A nil clock uses wall
// time.
func NewController(
	cfg Config,
	engine Recommender,
	notifier Notifier,
	radio RadioConnector,
	sched Scheduler,
	clock Clock,
	log logger.Logger,
) *Controller {
	cfg.setDefaults()

	if clock == nil {
		clock = NewRealClock()
	}

	return &Controller{
		cfg:          cfg,
		engine:       engine,
		notifier:     notifier,
		radio:        radio,
		sched:        sched,
		clock:        clock,
		logger:       log,
		state:        StateIdle,
		wifiState:    models.WifiStateUnknown,
		networkState: models.NetworkStateIdle,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// HandleSettings reacts to the notifications-enabled setting. Toggling it
// resets the machine; unrelated settings changes are ignored.
func (c *Controller) HandleSettings(ev models.SettingsEvent) {
	if ev.NotificationsEnabled == c.notificationsEnabled {
		return
	}

	c.notificationsEnabled = ev.NotificationsEnabled
	c.reset()
}

// HandleWifiState resets the machine on any radio state change.
func (c *Controller) HandleWifiState(ev models.WifiStateEvent) {
	c.wifiState = ev.State
	c.reset()
}

// HandleNetworkState processes a supplicant state change. Scanning
// transitions never count as a state change; they happen on every normal
// scan cycle and must not reset the debounce counter.
func (c *Controller) HandleNetworkState(ev models.NetworkStateEvent) {
	if ev.State == models.NetworkStateScanning || ev.State == c.networkState {
		return
	}

	c.networkState = ev.State
	c.scanCount = 0

	switch ev.State {
	case models.NetworkStateConnected:
		c.onConnected()
	case models.NetworkStateDisconnected, models.NetworkStateCaptivePortal:
		c.reset()
	}
}

// HandleScanResults evaluates one scan cycle against the recommendation
// engine and advances the debounced show logic.
func (c *Controller) HandleScanResults(ev models.ScanResultsEvent) {
	switch c.state {
	case StateConnecting, StateConnected, StateFailed:
		// A connect attempt is in flight; its outcome arrives as a
		// network-state event or a timer, not a scan.
		return
	case StateIdle, StateCandidatePending, StateShown:
	}

	if !c.scanQualifies(ev) {
		c.dropCandidate()
		return
	}

	open := make([]models.ScanObservation, 0, len(ev.Results))

	for i := range ev.Results {
		if ev.Results[i].IsOpen() {
			open = append(open, ev.Results[i])
		}
	}

	result := c.engine.Recommend(models.RecommendationRequest{Scans: open})
	if result.Connect == nil {
		c.dropCandidate()
		return
	}

	content := c.buildContent(result.Connect, ev.Results)
	if content == nil {
		c.dropCandidate()
		return
	}

	c.recommended = result.Connect
	c.content = content
	c.scanCount++

	if c.state == StateIdle {
		c.state = StateCandidatePending
	}

	if c.scanCount >= c.cfg.ScansBeforeShow {
		c.maybeShow()
	}
}

func (c *Controller) scanQualifies(ev models.ScanResultsEvent) bool {
	if !c.notificationsEnabled || c.wifiState != models.WifiStateEnabled || len(ev.Results) == 0 {
		return false
	}

	switch c.networkState {
	case models.NetworkStateIdle, models.NetworkStateUnknown, models.NetworkStateDisconnected:
		return true
	default:
		return false
	}
}

// buildContent renders the recommendation into notification content. It
// requires a matching scan observation and a stored badge curve; without
// both there is nothing displayable.
func (c *Controller) buildContent(
	config *models.SavedNetwork, scans []models.ScanObservation) *NotificationContent {
	ssid := models.UnquoteSSID(config.SSID)

	var match *models.ScanObservation

	for i := range scans {
		if scans[i].SSID == ssid && scans[i].BSSID == config.BSSID {
			match = &scans[i]
			break
		}
	}

	if match == nil {
		return nil
	}

	key, err := models.NewNetworkKey(config.SSID, config.BSSID)
	if err != nil {
		return nil
	}

	entry, ok := c.engine.Score(key)
	if !ok || entry.BadgeCurve == nil {
		return nil
	}

	return &NotificationContent{
		SSID:        ssid,
		Badge:       entry.CalculateBadge(match.RSSI),
		SignalLevel: models.SignalLevel(match.RSSI, 5),
	}
}

// maybeShow surfaces the notification unless the repeat-delay guard
// suppresses it. Suppression keeps the machine in CandidatePending so a
// later qualifying scan retries.
func (c *Controller) maybeShow() {
	if c.clock.Now().Before(c.repeatTime) {
		return
	}

	c.notifier.ShowAvailable(*c.content)
	c.repeatTime = c.clock.Now().Add(time.Duration(c.cfg.RepeatDelay))
	c.shown = true
	c.state = StateShown

	c.logger.Info().Str("ssid", c.content.SSID).Msg("Showing network available notification")
}

// HandleConnectRequest is the user acting on the connect action.
func (c *Controller) HandleConnectRequest() {
	if c.state != StateShown || c.recommended == nil {
		return
	}

	if err := c.radio.Connect(*c.recommended); err != nil {
		c.logger.Error().Err(err).Str("ssid", c.recommended.SSID).Msg("Connect call failed")
	}

	c.notifier.ShowConnecting(*c.content)
	c.cancelTimers()
	c.cancelFailure = c.sched.After(time.Duration(c.cfg.ConnectingTimeout), c.onConnectingTimeout)
	c.state = StateConnecting
}

// HandleDismissed is the user dismissing the notification; the renderer
// already removed it.
func (c *Controller) HandleDismissed() {
	c.dismiss(false)
}

func (c *Controller) onConnected() {
	if c.state != StateConnecting {
		return
	}

	c.cancelTimers()
	c.notifier.ShowConnected(*c.content)
	c.cancelDismiss = c.sched.After(time.Duration(c.cfg.ConnectedDismissDelay), c.onDismissTimeout)
	c.state = StateConnected
}

func (c *Controller) onConnectingTimeout() {
	if c.state != StateConnecting {
		return
	}

	c.cancelFailure = nil
	c.notifier.ShowFailed(*c.content)
	c.cancelDismiss = c.sched.After(time.Duration(c.cfg.FailedDismissDelay), c.onDismissTimeout)
	c.state = StateFailed

	c.logger.Info().Str("ssid", c.content.SSID).Msg("Connect attempt timed out")
}

func (c *Controller) onDismissTimeout() {
	c.dismiss(true)
}

// dismiss returns the machine to Idle and clears the recommended network
// and badge state. Duplicate timer firings are no-ops.
func (c *Controller) dismiss(retract bool) {
	if c.state == StateIdle && c.recommended == nil {
		return
	}

	c.cancelTimers()

	if retract {
		c.notifier.Retract()
	}

	c.shown = false
	c.recommended = nil
	c.content = nil
	c.state = StateIdle
}

// dropCandidate clears the debounce progress on a non-qualifying scan and
// retracts a shown notification that no longer has a candidate behind it.
func (c *Controller) dropCandidate() {
	c.scanCount = 0

	if c.shown {
		c.notifier.Retract()
		c.shown = false
	}

	c.recommended = nil
	c.content = nil
	c.state = StateIdle
}

// reset clears the repeat timer and scan counter and retracts any shown
// notification.
func (c *Controller) reset() {
	c.repeatTime = time.Time{}
	c.scanCount = 0
	c.cancelTimers()

	if c.shown {
		c.notifier.Retract()
		c.shown = false
	}

	c.recommended = nil
	c.content = nil
	c.state = StateIdle
}

func (c *Controller) cancelTimers() {
	if c.cancelFailure != nil {
		c.cancelFailure()
		c.cancelFailure = nil
	}

	if c.cancelDismiss != nil {
		c.cancelDismiss()
		c.cancelDismiss = nil
	}
}

// Dump writes the controller state for diagnostics.
func (c *Controller) Dump(w io.Writer) {
	fmt.Fprintf(w, "state: %s\n", c.state)
	fmt.Fprintf(w, "notificationsEnabled: %t\n", c.notificationsEnabled)
	fmt.Fprintf(w, "scanCount: %d\n", c.scanCount)
	fmt.Fprintf(w, "repeatTime: %s\n", c.repeatTime)

	if c.recommended != nil {
		fmt.Fprintf(w, "recommended: %s\n", c.recommended.SSID)
	}
}
