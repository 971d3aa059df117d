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

package recommend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carverauto/netrec/pkg/models"
)

var (
	errMalformedScore = errors.New("malformed score line")
	errUnknownCommand = errors.New("unknown command")
)

const scoreLineFields = 5

// ParseScoredNetwork parses the pipe-delimited diagnostic score encoding:
//
//	"SSID",BSSID|bucketWidth,sample0,sample1,...|metered|captivePortal|badge
//
// The whole line is validated before anything is returned; a malformed
// line yields no partial result.
func ParseScoredNetwork(line string) (*models.ScoredNetwork, error) {
	fields := strings.Split(line, "|")
	if len(fields) != scoreLineFields {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", errMalformedScore, scoreLineFields, len(fields))
	}

	key, err := parseNetworkKey(fields[0])
	if err != nil {
		return nil, err
	}

	curve, err := parseCurve(fields[1])
	if err != nil {
		return nil, err
	}

	metered, err := parseFlag(fields[2])
	if err != nil {
		return nil, err
	}

	captivePortal, err := parseFlag(fields[3])
	if err != nil {
		return nil, err
	}

	badge, err := models.ParseBadge(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedScore, err)
	}

	return &models.ScoredNetwork{
		Key:              key,
		Curve:            *curve,
		BadgeCurve:       BadgeCurve(badge),
		MeteredHint:      metered,
		HasCaptivePortal: captivePortal,
	}, nil
}

func parseNetworkKey(field string) (models.NetworkKey, error) {
	// The BSSID never contains a comma; the SSID may.
	idx := strings.LastIndex(field, ",")
	if idx < 0 {
		return models.NetworkKey{}, fmt.Errorf("%w: missing bssid in %q", errMalformedScore, field)
	}

	key, err := models.NewNetworkKey(field[:idx], field[idx+1:])
	if err != nil {
		return models.NetworkKey{}, fmt.Errorf("%w: %w", errMalformedScore, err)
	}

	return key, nil
}

func parseCurve(field string) (*models.RssiCurve, error) {
	parts := strings.Split(field, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: curve needs a bucket width and at least one sample", errMalformedScore)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil || width <= 0 {
		return nil, fmt.Errorf("%w: bad bucket width %q", errMalformedScore, parts[0])
	}

	buckets := make([]int, 0, len(parts)-1)

	for _, part := range parts[1:] {
		sample, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: bad curve sample %q", errMalformedScore, part)
		}

		buckets = append(buckets, sample)
	}

	return &models.RssiCurve{
		Start:       models.CurveStart,
		BucketWidth: width,
		Buckets:     buckets,
	}, nil
}

func parseFlag(field string) (bool, error) {
	switch field {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%w: bad flag %q", errMalformedScore, field)
	}
}

// HandleCommand is the diagnostic entry point. "addScore <line>" injects a
// score; anything else dumps the store contents. A leading "netrec" token
// is tolerated.
func (e *Engine) HandleCommand(ctx context.Context, w io.Writer, args []string) error {
	if len(args) > 0 && args[0] == "netrec" {
		args = args[1:]
	}

	if len(args) == 0 {
		e.store.Dump(w)
		return nil
	}

	switch args[0] {
	case "addScore":
		if len(args) != 2 {
			return fmt.Errorf("%w: addScore takes one score line", errMalformedScore)
		}

		network, err := e.AddScore(ctx, args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "addScore: %s,%s\n", network.Key.SSID, network.Key.BSSID)

		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, args[0])
	}
}
