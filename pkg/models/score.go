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

// ScoredNetwork is a network score curve plus quality metadata. Entries are
// immutable once stored except by full replacement.
type ScoredNetwork struct {
	Key              NetworkKey `json:"key"`
	Curve            RssiCurve  `json:"curve"`
	BadgeCurve       *RssiCurve `json:"badge_curve,omitempty"`
	MeteredHint      bool       `json:"metered_hint"`
	HasCaptivePortal bool       `json:"has_captive_portal"`
}

// CalculateBadge evaluates the badge curve at the given RSSI. Entries
// without a badge curve always report BadgeNone.
func (s *ScoredNetwork) CalculateBadge(rssi int) Badge {
	if s.BadgeCurve == nil {
		return BadgeNone
	}

	return BadgeForValue(s.BadgeCurve.Score(rssi))
}
