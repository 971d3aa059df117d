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

package engine

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
	"github.com/carverauto/netrec/pkg/notify"
	"github.com/carverauto/netrec/pkg/selector"
	"github.com/carverauto/netrec/pkg/wakeup"
)

type noopRecommender struct{}

func (noopRecommender) Recommend(models.RecommendationRequest) models.RecommendationResult {
	return models.RecommendationResult{}
}

func (noopRecommender) Score(models.NetworkKey) (*models.ScoredNetwork, bool) {
	return nil, false
}

func newTestService(t *testing.T) (*Service, *wakeup.MockRadioController) {
	t.Helper()

	ctrl := gomock.NewController(t)
	radio := wakeup.NewMockRadioController(ctrl)
	log := logger.NewTestLogger()

	queue := NewQueue(64, log)
	sel := selector.NewSelector(selector.DefaultConfig())
	wk := wakeup.NewController(wakeup.Config{ConfirmScans: 1}, sel, radio, log)
	nt := notify.NewController(notify.Config{}, noopRecommender{}, notify.NewMockNotifier(ctrl),
		notify.NewMockRadioConnector(ctrl), queue, nil, log)

	svc := NewService(queue, wk, nt, log)
	svc.Start()
	t.Cleanup(svc.Stop)

	return svc, radio
}

func TestServiceDispatchesWakeupFlow(t *testing.T) {
	svc, radio := newTestService(t)

	enabled := make(chan struct{})

	radio.EXPECT().EnableWifi().DoAndReturn(func() error {
		close(enabled)
		return nil
	})

	svc.Submit(models.SettingsEvent{WakeupEnabled: true})
	svc.Submit(models.ConfiguredNetworksEvent{Networks: []models.SavedNetwork{
		{SSID: `"home"`, Security: models.SecurityOpen, Enabled: true},
	}})
	svc.Submit(models.WifiStateEvent{State: models.WifiStateDisabled})
	svc.Submit(models.ScanResultsEvent{Results: []models.ScanObservation{
		{SSID: "home", BSSID: "aa:bb:cc:dd:ee:ff", RSSI: -50, Frequency: 2437, Capabilities: "[ESS]"},
	}})

	select {
	case <-enabled:
	case <-time.After(5 * time.Second):
		t.Fatal("wakeup never enabled the radio")
	}
}

func TestServiceDumpSerializedThroughWorker(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Submit(models.SettingsEvent{WakeupEnabled: true})

	var out bytes.Buffer

	svc.Dump(&out)

	assert.Contains(t, out.String(), "wakeupEnabled: true")
	assert.Contains(t, out.String(), "state: idle")
}
