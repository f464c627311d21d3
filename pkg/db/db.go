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

// Package db is the persistence layer: PostgreSQL used as a
// schema-flexible document store, fixed identity columns plus JSONB
// documents with secondary indexes.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/models"
	"github.com/jihyungSong/inventory/pkg/tx"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/jihyungSong/inventory/pkg/db Service

// Service is the storage contract consumed by the managers. Get
// returns NotFound when the id/domain pair does not resolve; Update
// applies only the given partial fields and returns the updated
// record; Query returns the page plus the unpaged total count.
type Service interface {
	tx.Reverter

	CreateDeviceType(ctx context.Context, deviceType *models.DeviceType) error
	GetDeviceType(ctx context.Context, id, domain string) (*models.DeviceType, error)
	UpdateDeviceType(ctx context.Context, id, domain string, fields map[string]any) (*models.DeviceType, error)
	DeleteDeviceType(ctx context.Context, id, domain string) error
	QueryDeviceTypes(ctx context.Context, query *models.Query) ([]*models.DeviceType, int, error)
	StatDeviceTypes(ctx context.Context, query *models.StatQuery) ([]models.StatRow, error)

	CreateDevice(ctx context.Context, device *models.Device) error
	GetDevice(ctx context.Context, id, domain string) (*models.Device, error)
	UpdateDevice(ctx context.Context, id, domain string, fields map[string]any) (*models.Device, error)
	DeleteDevice(ctx context.Context, id, domain string) error
	QueryDevices(ctx context.Context, query *models.Query) ([]*models.Device, int, error)
	StatDevices(ctx context.Context, query *models.StatQuery) ([]models.StatRow, error)

	CreateDeviceTemplate(ctx context.Context, template *models.DeviceTemplate) error
	GetDeviceTemplate(ctx context.Context, id, domain string) (*models.DeviceTemplate, error)
	UpdateDeviceTemplate(ctx context.Context, id, domain string, fields map[string]any) (*models.DeviceTemplate, error)
	DeleteDeviceTemplate(ctx context.Context, id, domain string) error
	QueryDeviceTemplates(ctx context.Context, query *models.Query) ([]*models.DeviceTemplate, int, error)
	StatDeviceTemplates(ctx context.Context, query *models.StatQuery) ([]models.StatRow, error)

	Close()
}

// DB wraps the pgx connection pool.
type DB struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

// New opens the connection pool, pings it, and applies migrations.
func New(ctx context.Context, config *models.DBConfig, log logger.Logger) (Service, error) {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username, config.Password, config.Host, config.Port, config.Database, sslMode)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	if config.MaxConns > 0 {
		poolConfig.MaxConns = config.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	database := &DB{pool: pool, log: log.WithComponent("db")}

	if err := database.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return database, nil
}

// Close releases the connection pool.
func (d *DB) Close() {
	d.pool.Close()
}

// newID generates a prefixed record id, e.g. "device-5f2a9c1b04d3".
func newID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
