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

// Package recommend combines stored score curves with scan observations to
// produce connect recommendations.
package recommend

import (
	"context"
	"fmt"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/models"
	"github.com/carverauto/netrec/pkg/scorestore"
)

//go:generate mockgen -destination=mock_publisher.go -package=recommend github.com/carverauto/netrec/pkg/recommend ScorePublisher

// ScorePublisher delivers score updates to the external scoring sink.
type ScorePublisher interface {
	PublishScores(ctx context.Context, scores []*models.ScoredNetwork) error
}

// Engine answers recommendation requests and serves score queries from the
// store.
type Engine struct {
	store     scorestore.Store
	publisher ScorePublisher
	logger    logger.Logger
}

// NewEngine creates a recommendation engine backed by the given store.
func NewEngine(store scorestore.Store, publisher ScorePublisher, log logger.Logger) *Engine {
	return &Engine{
		store:     store,
		publisher: publisher,
		logger:    log,
	}
}

// Recommend chooses the scan observation with the highest stored score and
// returns the network to connect to. With no scans to evaluate the current
// config, when present, is returned unchanged so the device stays put.
func (e *Engine) Recommend(req models.RecommendationRequest) models.RecommendationResult {
	if len(req.Scans) == 0 {
		return models.RecommendationResult{Connect: req.CurrentConfig}
	}

	var best *models.ScanObservation

	bestScore := 0

	for i := range req.Scans {
		scan := &req.Scans[i]

		key, err := models.NewNetworkKey(models.QuoteSSID(scan.SSID), scan.BSSID)
		if err != nil {
			e.logger.Debug().Err(err).Str("ssid", scan.SSID).Msg("Skipping unkeyable scan result")
			continue
		}

		entry, ok := e.store.Get(key)
		if !ok {
			continue
		}

		score := entry.Curve.Score(scan.RSSI)
		if best == nil || score > bestScore {
			best = scan
			bestScore = score
		}
	}

	if best == nil {
		return models.RecommendationResult{}
	}

	if cur := req.CurrentConfig; cur != nil && models.UnquoteSSID(cur.SSID) == best.SSID {
		return models.RecommendationResult{Connect: cur}
	}

	return models.RecommendationResult{Connect: synthesizeConfig(best)}
}

// synthesizeConfig builds a connectable config from a scan observation when
// no saved config matches the recommended network.
func synthesizeConfig(scan *models.ScanObservation) *models.SavedNetwork {
	security := models.SecuritySecured
	if scan.IsOpen() {
		security = models.SecurityOpen
	}

	return &models.SavedNetwork{
		SSID:     models.QuoteSSID(scan.SSID),
		BSSID:    scan.BSSID,
		Security: security,
		Enabled:  true,
	}
}

// Score returns the cached score entry for a key, exact match first, then
// the wildcard fallback.
func (e *Engine) Score(key models.NetworkKey) (*models.ScoredNetwork, bool) {
	return e.store.Get(key)
}

// RequestScores publishes the stored entries for the requested keys to the
// external scoring sink. Wildcard-keyed entries are served locally but
// never published; only a concrete-BSSID score is externally actionable.
// An empty batch is a no-op.
func (e *Engine) RequestScores(ctx context.Context, keys []models.NetworkKey) error {
	if len(keys) == 0 {
		return nil
	}

	scores := make([]*models.ScoredNetwork, 0, len(keys))

	for _, key := range keys {
		entry, ok := e.store.Get(key)
		if !ok || entry.Key.IsWildcard() {
			continue
		}

		scores = append(scores, entry)
	}

	if len(scores) == 0 {
		return nil
	}

	if err := e.publisher.PublishScores(ctx, scores); err != nil {
		return fmt.Errorf("failed to publish scores: %w", err)
	}

	return nil
}

// AddScore parses one score line, stores it, and publishes it if it is
// keyed by a concrete BSSID. Malformed input fails the whole command
// without touching the store.
func (e *Engine) AddScore(ctx context.Context, line string) (*models.ScoredNetwork, error) {
	network, err := ParseScoredNetwork(line)
	if err != nil {
		return nil, err
	}

	e.store.Put(network)

	if !network.Key.IsWildcard() {
		if err := e.publisher.PublishScores(ctx, []*models.ScoredNetwork{network}); err != nil {
			e.logger.Warn().Err(err).
				Str("ssid", network.Key.SSID).
				Msg("Stored score but failed to publish it")
		}
	}

	return network, nil
}
