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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
)

const (
	subjectScanResults   = "netrec.events.scan"
	subjectWifiState     = "netrec.events.wifi_state"
	subjectNetworkState  = "netrec.events.network_state"
	subjectApState       = "netrec.events.ap_state"
	subjectNetworks      = "netrec.events.networks"
	subjectSettings      = "netrec.events.settings"
	subjectConnect       = "netrec.events.connect"
	subjectDismissed     = "netrec.events.dismissed"
	subjectAdminCommands = "netrec.admin.cmd"
)

// EventSink receives decoded events for ordered processing.
type EventSink interface {
	Submit(ev models.Event)
}

// CommandHandler executes an admin command line and writes its output.
type CommandHandler interface {
	HandleCommand(ctx context.Context, w io.Writer, args []string) error
}

// Subscriber binds the NATS event subjects to an EventSink and the admin
// subject to a CommandHandler.
type Subscriber struct {
	conn   *nats.Conn
	sink   EventSink
	admin  CommandHandler
	logger logger.Logger
	subs   []*nats.Subscription
}

// NewSubscriber creates a Subscriber over an established connection.
func NewSubscriber(conn *nats.Conn, sink EventSink, admin CommandHandler, log logger.Logger) *Subscriber {
	return &Subscriber{
		conn:   conn,
		sink:   sink,
		admin:  admin,
		logger: log,
	}
}

// Start subscribes to every event subject. Decoding failures are logged
// and the message dropped; they never stop the feed.
func (s *Subscriber) Start(ctx context.Context) error {
	bindings := []struct {
		subject string
		decode  func([]byte) (models.Event, error)
	}{
		{subjectScanResults, decodeInto[models.ScanResultsEvent]},
		{subjectWifiState, decodeInto[models.WifiStateEvent]},
		{subjectNetworkState, decodeInto[models.NetworkStateEvent]},
		{subjectApState, decodeInto[models.ApStateEvent]},
		{subjectNetworks, decodeInto[models.ConfiguredNetworksEvent]},
		{subjectSettings, decodeInto[models.SettingsEvent]},
		{subjectConnect, decodeInto[models.ConnectRequestEvent]},
		{subjectDismissed, decodeInto[models.NotificationDismissedEvent]},
	}

	for _, b := range bindings {
		decode := b.decode
		subject := b.subject

		sub, err := s.conn.Subscribe(subject, func(msg *nats.Msg) {
			ev, err := decode(msg.Data)
			if err != nil {
				s.logger.Warn().Err(err).Str("subject", subject).Msg("Dropping undecodable event")
				return
			}

			s.sink.Submit(ev)
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}

		s.subs = append(s.subs, sub)
	}

	adminSub, err := s.conn.Subscribe(subjectAdminCommands, func(msg *nats.Msg) {
		s.handleAdmin(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subjectAdminCommands, err)
	}

	s.subs = append(s.subs, adminSub)

	s.logger.Info().Int("subjects", len(s.subs)).Msg("Event feed started")

	return nil
}

// Stop drains all subscriptions.
func (s *Subscriber) Stop() {
	for _, sub := range s.subs {
		if err := sub.Drain(); err != nil {
			s.logger.Warn().Err(err).Str("subject", sub.Subject).Msg("Failed to drain subscription")
		}
	}

	s.subs = nil
}

// handleAdmin runs one admin command line. When the message carries a
// reply subject the command output (or error) goes back to the caller.
func (s *Subscriber) handleAdmin(ctx context.Context, msg *nats.Msg) {
	args := splitCommandLine(string(msg.Data))

	var out bytes.Buffer

	if err := s.admin.HandleCommand(ctx, &out, args); err != nil {
		s.logger.Warn().Err(err).Str("command", string(msg.Data)).Msg("Admin command failed")
		out.Reset()
		fmt.Fprintf(&out, "error: %v\n", err)
	}

	if msg.Reply == "" {
		return
	}

	if err := msg.Respond(out.Bytes()); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to reply to admin command")
	}
}

// splitCommandLine splits an admin line into command and argument. The
// argument keeps its internal spaces; quoted SSIDs may contain them.
func splitCommandLine(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if rest, ok := strings.CutPrefix(line, "netrec"); ok && (rest == "" || rest[0] == ' ') {
		line = strings.TrimSpace(rest)
	}

	if line == "" {
		return nil
	}

	parts := strings.SplitN(line, " ", 2)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func decodeInto[T models.Event](data []byte) (models.Event, error) {
	var ev T

	if len(data) > 0 {
		if err := json.Unmarshal(data, &ev); err != nil {
			return nil, err
		}
	}

	return ev, nil
}
