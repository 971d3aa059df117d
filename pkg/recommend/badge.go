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

import "github.com/carverauto/netrec/pkg/models"

// Badge curves are constant across the whole RSSI range; the badge level
// itself carries the quality signal.
var (
	BadgeCurveSD = constantBadgeCurve(models.BadgeSD)
	BadgeCurveHD = constantBadgeCurve(models.BadgeHD)
	BadgeCurve4K = constantBadgeCurve(models.Badge4K)
)

// BadgeCurve returns the constant curve for a badge level, or nil for
// BadgeNone.
func BadgeCurve(badge models.Badge) *models.RssiCurve {
	switch badge {
	case models.BadgeSD:
		return BadgeCurveSD
	case models.BadgeHD:
		return BadgeCurveHD
	case models.Badge4K:
		return BadgeCurve4K
	default:
		return nil
	}
}

func constantBadgeCurve(badge models.Badge) *models.RssiCurve {
	return &models.RssiCurve{
		Start:       models.CurveStart,
		BucketWidth: 10,
		Buckets:     []int{int(badge)},
	}
}
