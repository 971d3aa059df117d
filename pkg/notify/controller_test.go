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

package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
)

type stubRecommender struct {
	connect *models.SavedNetwork
	entry   *models.ScoredNetwork
}

func (s *stubRecommender) Recommend(models.RecommendationRequest) models.RecommendationResult {
	return models.RecommendationResult{Connect: s.connect}
}

func (s *stubRecommender) Score(models.NetworkKey) (*models.ScoredNetwork, bool) {
	if s.entry == nil {
		return nil, false
	}

	return s.entry, true
}

type manualTimer struct {
	d         time.Duration
	fn        func()
	cancelled bool
}

// manualScheduler records timers so tests can fire them deterministically.
type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) After(d time.Duration, fn func()) (cancel func()) {
	timer := &manualTimer{d: d, fn: fn}
	s.timers = append(s.timers, timer)

	return func() { timer.cancelled = true }
}

// fire runs the most recently scheduled live timer.
func (s *manualScheduler) fire(t *testing.T) {
	t.Helper()

	for i := len(s.timers) - 1; i >= 0; i-- {
		if !s.timers[i].cancelled {
			timer := s.timers[i]
			timer.cancelled = true
			timer.fn()

			return
		}
	}

	t.Fatal("no live timer to fire")
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type harness struct {
	controller *Controller
	notifier   *MockNotifier
	radio      *MockRadioConnector
	engine     *stubRecommender
	sched      *manualScheduler
	clock      *fakeClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := NewMockNotifier(ctrl)
	radio := NewMockRadioConnector(ctrl)
	sched := &manualScheduler{}
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}

	engine := &stubRecommender{
		connect: &models.SavedNetwork{
			SSID:     `"cafe"`,
			BSSID:    "aa:bb:cc:dd:ee:01",
			Security: models.SecurityOpen,
			Enabled:  true,
		},
		entry: &models.ScoredNetwork{
			BadgeCurve: &models.RssiCurve{Start: models.CurveStart, BucketWidth: 10, Buckets: []int{int(models.BadgeSD)}},
		},
	}

	h := &harness{
		controller: NewController(Config{}, engine, notifier, radio, sched, clock, logger.NewTestLogger()),
		notifier:   notifier,
		radio:      radio,
		engine:     engine,
		sched:      sched,
		clock:      clock,
	}

	h.controller.HandleSettings(models.SettingsEvent{NotificationsEnabled: true})
	h.controller.HandleWifiState(models.WifiStateEvent{State: models.WifiStateEnabled})

	return h
}

func (h *harness) scan() models.ScanResultsEvent {
	return models.ScanResultsEvent{
		Results: []models.ScanObservation{{
			SSID:         "cafe",
			BSSID:        "aa:bb:cc:dd:ee:01",
			RSSI:         -60,
			Frequency:    2437,
			Capabilities: "[ESS]",
		}},
	}
}

func (h *harness) expectedContent() NotificationContent {
	return NotificationContent{
		SSID:        "cafe",
		Badge:       models.BadgeSD,
		SignalLevel: models.SignalLevel(-60, 5),
	}
}

// show walks the machine through the full debounce to StateShown.
func (h *harness) show(t *testing.T) {
	t.Helper()

	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())

	h.notifier.EXPECT().ShowAvailable(h.expectedContent())
	h.controller.HandleScanResults(h.scan())

	require.Equal(t, StateShown, h.controller.State())
}

func TestNotifyShowsAfterThreeQualifyingScans(t *testing.T) {
	h := newHarness(t)

	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateCandidatePending, h.controller.State())

	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateCandidatePending, h.controller.State())

	h.notifier.EXPECT().ShowAvailable(h.expectedContent())
	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateShown, h.controller.State())
}

func TestNotifyNonQualifyingScanResetsCounter(t *testing.T) {
	h := newHarness(t)

	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())

	// The candidate vanishes for one cycle; the debounce starts over.
	h.engine.connect = nil
	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateIdle, h.controller.State())

	h.engine.connect = &models.SavedNetwork{
		SSID: `"cafe"`, BSSID: "aa:bb:cc:dd:ee:01", Security: models.SecurityOpen, Enabled: true,
	}

	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateCandidatePending, h.controller.State())

	h.notifier.EXPECT().ShowAvailable(h.expectedContent())
	h.controller.HandleScanResults(h.scan())
}

func TestNotifyScanningStateKeepsCounter(t *testing.T) {
	h := newHarness(t)

	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())

	// Scanning fires on every scan cycle and is exempt from the
	// state-change counter reset.
	h.controller.HandleNetworkState(models.NetworkStateEvent{State: models.NetworkStateScanning})

	h.notifier.EXPECT().ShowAvailable(h.expectedContent())
	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateShown, h.controller.State())
}

func TestNotifyNetworkStateChangeResetsCounter(t *testing.T) {
	h := newHarness(t)

	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())

	h.controller.HandleNetworkState(models.NetworkStateEvent{State: models.NetworkStateDisconnected})

	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateCandidatePending, h.controller.State())

	h.notifier.EXPECT().ShowAvailable(h.expectedContent())
	h.controller.HandleScanResults(h.scan())
}

func TestNotifyRepeatDelaySuppressesSecondShow(t *testing.T) {
	h := newHarness(t)
	h.show(t)

	h.controller.HandleDismissed()
	assert.Equal(t, StateIdle, h.controller.State())

	// Within the repeat window nothing shows no matter how many scans
	// qualify.
	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())
	assert.NotEqual(t, StateShown, h.controller.State())

	h.clock.advance(901 * time.Second)

	h.notifier.EXPECT().ShowAvailable(h.expectedContent())
	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateShown, h.controller.State())
}

func TestNotifyConnectFlowToConnected(t *testing.T) {
	h := newHarness(t)
	h.show(t)

	h.radio.EXPECT().Connect(*h.engine.connect).Return(nil)
	h.notifier.EXPECT().ShowConnecting(h.expectedContent())
	h.controller.HandleConnectRequest()
	assert.Equal(t, StateConnecting, h.controller.State())

	h.notifier.EXPECT().ShowConnected(h.expectedContent())
	h.controller.HandleNetworkState(models.NetworkStateEvent{State: models.NetworkStateConnected})
	assert.Equal(t, StateConnected, h.controller.State())

	h.notifier.EXPECT().Retract()
	h.sched.fire(t)
	assert.Equal(t, StateIdle, h.controller.State())
}

func TestNotifyConnectTimeoutShowsFailed(t *testing.T) {
	h := newHarness(t)
	h.show(t)

	h.radio.EXPECT().Connect(gomock.Any()).Return(nil)
	h.notifier.EXPECT().ShowConnecting(h.expectedContent())
	h.controller.HandleConnectRequest()

	h.notifier.EXPECT().ShowFailed(h.expectedContent())
	h.sched.fire(t)
	assert.Equal(t, StateFailed, h.controller.State())

	h.notifier.EXPECT().Retract()
	h.sched.fire(t)
	assert.Equal(t, StateIdle, h.controller.State())
}

func TestNotifyConnectedTimerCancelledOnDismiss(t *testing.T) {
	h := newHarness(t)
	h.show(t)

	h.radio.EXPECT().Connect(gomock.Any()).Return(nil)
	h.notifier.EXPECT().ShowConnecting(h.expectedContent())
	h.controller.HandleConnectRequest()

	h.controller.HandleDismissed()
	assert.Equal(t, StateIdle, h.controller.State())

	// Both the connecting timeout and any dismiss timer are cancelled.
	for _, timer := range h.sched.timers {
		assert.True(t, timer.cancelled)
	}
}

func TestNotifyConnectedOutsideConnectingIgnored(t *testing.T) {
	h := newHarness(t)

	// Connected arrives without a connect attempt; nothing shows.
	h.controller.HandleNetworkState(models.NetworkStateEvent{State: models.NetworkStateConnected})
	assert.Equal(t, StateIdle, h.controller.State())
}

func TestNotifyConnectRequestOutsideShownIgnored(t *testing.T) {
	h := newHarness(t)

	h.controller.HandleScanResults(h.scan())
	h.controller.HandleConnectRequest()
	assert.Equal(t, StateCandidatePending, h.controller.State())
}

func TestNotifyScansIgnoredWhileConnecting(t *testing.T) {
	h := newHarness(t)
	h.show(t)

	h.radio.EXPECT().Connect(gomock.Any()).Return(nil)
	h.notifier.EXPECT().ShowConnecting(h.expectedContent())
	h.controller.HandleConnectRequest()

	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateConnecting, h.controller.State())
}

func TestNotifyWifiStateChangeRetractsShown(t *testing.T) {
	h := newHarness(t)
	h.show(t)

	h.notifier.EXPECT().Retract()
	h.controller.HandleWifiState(models.WifiStateEvent{State: models.WifiStateDisabled})
	assert.Equal(t, StateIdle, h.controller.State())
}

func TestNotifySettingsToggleResets(t *testing.T) {
	h := newHarness(t)
	h.show(t)

	h.notifier.EXPECT().Retract()
	h.controller.HandleSettings(models.SettingsEvent{NotificationsEnabled: false})
	assert.Equal(t, StateIdle, h.controller.State())

	// Disabled means scans no longer qualify.
	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateIdle, h.controller.State())
}

func TestNotifyDisabledWifiNeverShows(t *testing.T) {
	h := newHarness(t)

	h.controller.HandleWifiState(models.WifiStateEvent{State: models.WifiStateDisabled})

	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateIdle, h.controller.State())
}

func TestNotifyNoBadgeCurveNoShow(t *testing.T) {
	h := newHarness(t)
	h.engine.entry = &models.ScoredNetwork{}

	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())
	h.controller.HandleScanResults(h.scan())
	assert.Equal(t, StateIdle, h.controller.State())
}

func TestNotifyDismissalFromEveryState(t *testing.T) {
	tests := []struct {
		name  string
		reach func(*testing.T, *harness)
	}{
		{
			name:  "shown",
			reach: func(t *testing.T, h *harness) { t.Helper(); h.show(t) },
		},
		{
			name: "connecting",
			reach: func(t *testing.T, h *harness) {
				t.Helper()
				h.show(t)
				h.radio.EXPECT().Connect(gomock.Any()).Return(nil)
				h.notifier.EXPECT().ShowConnecting(h.expectedContent())
				h.controller.HandleConnectRequest()
			},
		},
		{
			name: "connected",
			reach: func(t *testing.T, h *harness) {
				t.Helper()
				h.show(t)
				h.radio.EXPECT().Connect(gomock.Any()).Return(nil)
				h.notifier.EXPECT().ShowConnecting(h.expectedContent())
				h.controller.HandleConnectRequest()
				h.notifier.EXPECT().ShowConnected(h.expectedContent())
				h.controller.HandleNetworkState(models.NetworkStateEvent{State: models.NetworkStateConnected})
			},
		},
		{
			name: "failed",
			reach: func(t *testing.T, h *harness) {
				t.Helper()
				h.show(t)
				h.radio.EXPECT().Connect(gomock.Any()).Return(nil)
				h.notifier.EXPECT().ShowConnecting(h.expectedContent())
				h.controller.HandleConnectRequest()
				h.notifier.EXPECT().ShowFailed(h.expectedContent())
				h.sched.fire(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.reach(t, h)

			h.controller.HandleDismissed()
			assert.Equal(t, StateIdle, h.controller.State())

			for _, timer := range h.sched.timers {
				assert.True(t, timer.cancelled, "dismissal leaves no live timers")
			}
		})
	}
}

func TestNotifyDismissTimerIdempotent(t *testing.T) {
	h := newHarness(t)
	h.show(t)

	h.radio.EXPECT().Connect(gomock.Any()).Return(nil)
	h.notifier.EXPECT().ShowConnecting(h.expectedContent())
	h.controller.HandleConnectRequest()

	h.notifier.EXPECT().ShowConnected(h.expectedContent())
	h.controller.HandleNetworkState(models.NetworkStateEvent{State: models.NetworkStateConnected})

	h.notifier.EXPECT().Retract()
	h.sched.fire(t)

	// A duplicate dismissal does nothing further.
	h.controller.HandleDismissed()
	assert.Equal(t, StateIdle, h.controller.State())
}
