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

// CapabilityFilter carries the network capability constraints attached to a
// recommendation request by the caller.
type CapabilityFilter struct {
	Trusted bool `json:"trusted"`
	Metered bool `json:"metered"`
}

// RecommendationRequest asks which network, if any, the device should
// connect to given the latest scan.
type RecommendationRequest struct {
	Scans         []ScanObservation `json:"scans"`
	Capabilities  CapabilityFilter  `json:"capabilities"`
	CurrentConfig *SavedNetwork     `json:"current_config,omitempty"`
}

// RecommendationResult is the answer to a RecommendationRequest. A nil
// Connect means "do not connect"; a Connect equal to the request's current
// config means "stay put".
type RecommendationResult struct {
	Connect *SavedNetwork `json:"connect,omitempty"`
}
