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

package feed

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
	"github.com/carverauto/netrec/pkg/notify"
)

const (
	subjectEnableWifi = "netrec.actions.enable_wifi"
	subjectConnectNet = "netrec.actions.connect"

	subjectNotifyAvailable  = "netrec.notifications.available"
	subjectNotifyConnecting = "netrec.notifications.connecting"
	subjectNotifyConnected  = "netrec.notifications.connected"
	subjectNotifyFailed     = "netrec.notifications.failed"
	subjectNotifyRetract    = "netrec.notifications.retract"
)

// Actions publishes the service's outbound commands to the radio and
// notification subsystems. It satisfies the controllers' collaborator
// interfaces; the controllers treat every call as fire-and-forget.
type Actions struct {
	conn   *nats.Conn
	logger logger.Logger
}

// NewActions creates an Actions publisher over an established connection.
func NewActions(conn *nats.Conn, log logger.Logger) *Actions {
	return &Actions{
		conn:   conn,
		logger: log,
	}
}

// EnableWifi asks the radio subsystem to turn Wi-Fi on.
func (a *Actions) EnableWifi() error {
	if err := a.conn.Publish(subjectEnableWifi, nil); err != nil {
		return fmt.Errorf("failed to publish enable-wifi action: %w", err)
	}

	return nil
}

// Connect asks the radio subsystem to connect to the given saved network.
func (a *Actions) Connect(network models.SavedNetwork) error {
	payload, err := json.Marshal(network)
	if err != nil {
		return fmt.Errorf("failed to marshal connect action: %w", err)
	}

	if err := a.conn.Publish(subjectConnectNet, payload); err != nil {
		return fmt.Errorf("failed to publish connect action: %w", err)
	}

	return nil
}

// ShowAvailable publishes the "network available" notification.
func (a *Actions) ShowAvailable(content notify.NotificationContent) {
	a.publishNotification(subjectNotifyAvailable, &content)
}

// ShowConnecting publishes the connecting notification.
func (a *Actions) ShowConnecting(content notify.NotificationContent) {
	a.publishNotification(subjectNotifyConnecting, &content)
}

// ShowConnected publishes the connected notification.
func (a *Actions) ShowConnected(content notify.NotificationContent) {
	a.publishNotification(subjectNotifyConnected, &content)
}

// ShowFailed publishes the connection-failed notification.
func (a *Actions) ShowFailed(content notify.NotificationContent) {
	a.publishNotification(subjectNotifyFailed, &content)
}

// Retract publishes the retraction message.
func (a *Actions) Retract() {
	a.publishNotification(subjectNotifyRetract, nil)
}

func (a *Actions) publishNotification(subject string, content *notify.NotificationContent) {
	var payload []byte

	if content != nil {
		var err error

		payload, err = json.Marshal(content)
		if err != nil {
			a.logger.Error().Err(err).Str("subject", subject).Msg("Failed to marshal notification")
			return
		}
	}

	if err := a.conn.Publish(subject, payload); err != nil {
		a.logger.Error().Err(err).Str("subject", subject).Msg("Failed to publish notification")
	}
}
