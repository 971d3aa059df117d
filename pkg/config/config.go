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

// Package config loads the service configuration from a JSON file.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/notify"
	"github.com/carverauto/netrec/pkg/selector"
	"github.com/carverauto/netrec/pkg/wakeup"
)

const defaultNATSURL = "nats://127.0.0.1:4222"

// NATSConfig holds the event bus connection settings.
type NATSConfig struct {
	URL string `json:"url"`
	// Name is the client name reported to the server.
	Name string `json:"name,omitempty"`
}

// Config is the full service configuration.
type Config struct {
	NATS      NATSConfig      `json:"nats"`
	Selector  selector.Config `json:"selector"`
	Wakeup    wakeup.Config   `json:"wakeup"`
	Notify    notify.Config   `json:"notify"`
	QueueSize int             `json:"queue_size,omitempty"`
	Logging   *logger.Config  `json:"logging,omitempty"`
}

func (c *Config) setDefaults() {
	if c.NATS.URL == "" {
		c.NATS.URL = defaultNATSURL
	}

	if c.NATS.Name == "" {
		c.NATS.Name = "netrec"
	}

	if c.Selector == (selector.Config{}) {
		c.Selector = selector.DefaultConfig()
	}

	if c.Logging == nil {
		c.Logging = &logger.Config{Level: "info"}
	}
}

// LoadFromFile reads and unmarshals a JSON config file, then applies
// defaults for anything left unset.
func LoadFromFile(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var cfg Config

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()

	return cfg
}
