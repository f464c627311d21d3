/*
 * Copyright 2026 Jihyung Song.
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
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jihyungSong/inventory/pkg/api"
	"github.com/jihyungSong/inventory/pkg/config"
	"github.com/jihyungSong/inventory/pkg/db"
	"github.com/jihyungSong/inventory/pkg/devicetype"
	"github.com/jihyungSong/inventory/pkg/identity"
	"github.com/jihyungSong/inventory/pkg/inventory"
	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/models"
)

var errFailedToLoadConfig = errors.New("failed to load config")

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/inventory/core.json", "Path to config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg models.CoreConfig

	cfgLoader := config.NewConfig(nil)
	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = &logger.Config{Level: "info", Output: "stdout"}
	}

	appLogger, err := logger.New(*logConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	database, err := db.New(ctx, &cfg.Database, appLogger)
	if err != nil {
		return err
	}
	defer database.Close()

	types := devicetype.NewManager(database, appLogger)
	resolver := identity.NewClient(&cfg.Identity)
	devices := inventory.NewDeviceManager(database, types, resolver, appLogger)
	templates := inventory.NewDeviceTemplateManager(database, types, appLogger)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewServer(types, devices, templates, appLogger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		appLogger.Info().Str("listen_addr", cfg.ListenAddr).Msg("Starting inventory service")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
