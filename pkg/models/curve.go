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

package models

import "fmt"

// CurveStart is the RSSI at which every stored score curve begins.
const CurveStart = -150

// RssiCurve maps RSSI buckets to scores. Buckets are contiguous and
// monotonically increasing in RSSI starting at Start.
type RssiCurve struct {
	Start       int   `json:"start"`
	BucketWidth int   `json:"bucket_width"`
	Buckets     []int `json:"buckets"`
}

// Score returns the curve value for the given RSSI. Lookups outside the
// curve range clamp to the nearest bucket.
func (c *RssiCurve) Score(rssi int) int {
	if len(c.Buckets) == 0 || c.BucketWidth <= 0 {
		return 0
	}

	idx := (rssi - c.Start) / c.BucketWidth
	if idx < 0 {
		idx = 0
	}

	if idx >= len(c.Buckets) {
		idx = len(c.Buckets) - 1
	}

	return c.Buckets[idx]
}

// Equal reports whether two curves are identical.
func (c *RssiCurve) Equal(other *RssiCurve) bool {
	if other == nil || c.Start != other.Start || c.BucketWidth != other.BucketWidth ||
		len(c.Buckets) != len(other.Buckets) {
		return false
	}

	for i := range c.Buckets {
		if c.Buckets[i] != other.Buckets[i] {
			return false
		}
	}

	return true
}

// Badge is a qualitative connection-quality indicator derived from a score
// curve at a given RSSI. The numeric values match the platform constants.
type Badge int

const (
	BadgeNone Badge = 0
	BadgeSD   Badge = 10
	BadgeHD   Badge = 20
	Badge4K   Badge = 30
)

func (b Badge) String() string {
	switch b {
	case BadgeSD:
		return "SD"
	case BadgeHD:
		return "HD"
	case Badge4K:
		return "4K"
	case BadgeNone:
		return "NONE"
	default:
		return fmt.Sprintf("Badge(%d)", int(b))
	}
}

// ParseBadge converts the textual badge level used by the score line
// protocol.
func ParseBadge(s string) (Badge, error) {
	switch s {
	case "NONE":
		return BadgeNone, nil
	case "SD":
		return BadgeSD, nil
	case "HD":
		return BadgeHD, nil
	case "4K":
		return Badge4K, nil
	default:
		return BadgeNone, fmt.Errorf("unknown badge level %q", s)
	}
}

// BadgeForValue maps a badge-curve score back to a Badge. Values between
// levels round down to the highest level reached.
func BadgeForValue(v int) Badge {
	switch {
	case v >= int(Badge4K):
		return Badge4K
	case v >= int(BadgeHD):
		return BadgeHD
	case v >= int(BadgeSD):
		return BadgeSD
	default:
		return BadgeNone
	}
}
