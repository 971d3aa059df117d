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

// Package feed connects the recommendation service to NATS: it decodes
// platform events from the bus and publishes score updates back onto it.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
)

const (
	eventSource     = "netrec"
	scoresSubject   = "netrec.scores.updated"
	scoresEventType = "com.carverauto.netrec.scores.updated"
)

// Publisher emits score-update CloudEvents to the scores subject.
type Publisher struct {
	conn   *nats.Conn
	logger logger.Logger
}

// NewPublisher creates a Publisher over an established connection.
func NewPublisher(conn *nats.Conn, log logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// PublishScores sends the given scored networks as a single CloudEvent.
func (p *Publisher) PublishScores(_ context.Context, scores []*models.ScoredNetwork) error {
	now := time.Now()

	event := models.CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.New().String(),
		Source:          eventSource,
		Type:            scoresEventType,
		DataContentType: "application/json",
		Subject:         scoresSubject,
		Time:            &now,
		Data:            scores,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal score event: %w", err)
	}

	if err := p.conn.Publish(scoresSubject, payload); err != nil {
		return fmt.Errorf("failed to publish score event: %w", err)
	}

	p.logger.Debug().
		Str("event_id", event.ID).
		Int("networks", len(scores)).
		Msg("Published score update")

	return nil
}
