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

//go:generate mockgen -destination=mock_collaborators.go -package=notify github.com/carverauto/netrec/pkg/notify Notifier,RadioConnector

package notify

import (
	"time"

	"github.com/carverauto/netrec/pkg/models"
)

// NotificationContent is what the external notifier renders: the network
// name, its quality badge, and the signal strength bucket (0-4 bars).
type NotificationContent struct {
	SSID        string       `json:"ssid"`
	Badge       models.Badge `json:"badge"`
	SignalLevel int          `json:"signal_level"`
}

// Notifier is the external notification renderer. Show and Retract are
// idempotent from the controller's perspective.
type Notifier interface {
	ShowAvailable(content NotificationContent)
	ShowConnecting(content NotificationContent)
	ShowConnected(content NotificationContent)
	ShowFailed(content NotificationContent)
	Retract()
}

// RadioConnector is the external capability that connects to a network.
// The call is fire-and-forget; success or failure arrives later as a
// network-state event.
type RadioConnector interface {
	Connect(network models.SavedNetwork) error
}

// Recommender is the slice of the recommendation engine the controller
// needs: a connect recommendation plus cached score lookup for badges.
type Recommender interface {
	Recommend(req models.RecommendationRequest) models.RecommendationResult
	Score(key models.NetworkKey) (*models.ScoredNetwork, bool)
}

// Scheduler runs a callback on the event worker after a delay. The
// returned cancel is safe to call from worker context; a timer cancelled
// before its callback runs never fires.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Clock abstracts wall time for the repeat-delay guard.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewRealClock returns a Clock backed by time.Now.
func NewRealClock() Clock { return realClock{} }
