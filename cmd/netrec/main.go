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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"

	"github.com/carverauto/netrec/pkg/config"
	"github.com/carverauto/netrec/pkg/engine"
	"github.com/carverauto/netrec/pkg/feed"
	"github.com/carverauto/netrec/pkg/logger"
	"github.com/carverauto/netrec/pkg/notify"
	"github.com/carverauto/netrec/pkg/recommend"
	"github.com/carverauto/netrec/pkg/scorestore"
	"github.com/carverauto/netrec/pkg/selector"
	"github.com/carverauto/netrec/pkg/wakeup"
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/netrec/netrec.json", "Path to netrec config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadFromFile(ctx, *configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	mainLogger, err := logger.New(*cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	nc, err := nats.Connect(cfg.NATS.URL, nats.Name(cfg.NATS.Name))
	if err != nil {
		return fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATS.URL, err)
	}
	defer nc.Close()

	store := scorestore.NewMemoryStore(mainLogger)
	publisher := feed.NewPublisher(nc, mainLogger)
	eng := recommend.NewEngine(store, publisher, mainLogger)

	actions := feed.NewActions(nc, mainLogger)
	queue := engine.NewQueue(cfg.QueueSize, mainLogger)

	sel := selector.NewSelector(cfg.Selector)
	wk := wakeup.NewController(cfg.Wakeup, sel, actions, mainLogger)
	nt := notify.NewController(cfg.Notify, eng, actions, actions, queue, nil, mainLogger)

	svc := engine.NewService(queue, wk, nt, mainLogger)
	svc.Start()

	defer svc.Stop()

	sub := feed.NewSubscriber(nc, svc, eng, mainLogger)
	if err := sub.Start(ctx); err != nil {
		return fmt.Errorf("failed to start event feed: %w", err)
	}

	mainLogger.Info().Str("nats_url", cfg.NATS.URL).Msg("Network recommendation service started")

	<-ctx.Done()

	mainLogger.Info().Msg("Shutting down")
	sub.Stop()

	return nil
}
