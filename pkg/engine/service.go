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
	"fmt"
	"io"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
	"github.com/carverauto/netrec/pkg/notify"
	"github.com/carverauto/netrec/pkg/wakeup"
)

// Service routes incoming events onto the worker queue and dispatches
// them to the wakeup and notification controllers. Wakeup sees each
// event first so a radio enable can precede notification evaluation of
// the same scan cycle.
type Service struct {
	queue  *Queue
	wakeup *wakeup.Controller
	notify *notify.Controller
	logger logger.Logger
}

// NewService wires the controllers behind a queue.
func NewService(queue *Queue, wk *wakeup.Controller, nt *notify.Controller, log logger.Logger) *Service {
	return &Service{
		queue:  queue,
		wakeup: wk,
		notify: nt,
		logger: log,
	}
}

// Start begins draining the queue.
func (s *Service) Start() { s.queue.Start() }

// Stop halts the worker.
func (s *Service) Stop() { s.queue.Stop() }

// Submit hands an event to the worker. It never blocks the caller beyond
// queue backpressure.
func (s *Service) Submit(ev models.Event) {
	s.queue.Post(func() { s.dispatch(ev) })
}

func (s *Service) dispatch(ev models.Event) {
	switch e := ev.(type) {
	case models.ScanResultsEvent:
		s.wakeup.HandleScanResults(e)
		s.notify.HandleScanResults(e)
	case models.WifiStateEvent:
		s.wakeup.HandleWifiState(e)
		s.notify.HandleWifiState(e)
	case models.NetworkStateEvent:
		s.notify.HandleNetworkState(e)
	case models.ApStateEvent:
		s.wakeup.HandleApState(e)
	case models.ConfiguredNetworksEvent:
		s.wakeup.HandleConfiguredNetworks(e)
	case models.SettingsEvent:
		s.wakeup.HandleSettings(e)
		s.notify.HandleSettings(e)
	case models.ConnectRequestEvent:
		s.notify.HandleConnectRequest()
	case models.NotificationDismissedEvent:
		s.notify.HandleDismissed()
	default:
		s.logger.Warn().Str("type", fmt.Sprintf("%T", ev)).Msg("Dropping event with no handler")
	}
}

// Dump writes both controllers' state, serialized through the worker so
// the snapshot is consistent. It blocks until the worker has produced it.
func (s *Service) Dump(w io.Writer) {
	done := make(chan struct{})

	s.queue.Post(func() {
		defer close(done)

		io.WriteString(w, "--- wakeup ---\n")
		s.wakeup.Dump(w)
		io.WriteString(w, "--- notify ---\n")
		s.notify.Dump(w)
	})

	<-done
}
