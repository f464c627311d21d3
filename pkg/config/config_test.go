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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/models"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "core.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"listen_addr": ":8080",
		"database": {"host": "localhost", "port": 5432, "database": "inventory"},
		"identity": {"endpoint": "http://identity:8081", "timeout": "5s"}
	}`)

	var cfg models.CoreConfig

	c := NewConfig(logger.NewTestLogger())
	require.NoError(t, c.LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "http://identity:8081", cfg.Identity.Endpoint)
	assert.Equal(t, models.Duration(5*time.Second), cfg.Identity.Timeout)
}

func TestLoadFromFileValidates(t *testing.T) {
	path := writeConfigFile(t, `{"listen_addr": ":8080", "database": {"port": 5432}}`)

	var cfg models.CoreConfig

	c := NewConfig(logger.NewTestLogger())
	err := c.LoadAndValidate(context.Background(), path, &cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("INVENTORY_LISTEN_ADDR", ":9090")
	t.Setenv("INVENTORY_DATABASE_HOST", "db.internal")
	t.Setenv("INVENTORY_DATABASE_PORT", "5433")
	t.Setenv("INVENTORY_DATABASE_DATABASE", "inventory")
	t.Setenv("INVENTORY_IDENTITY_ENDPOINT", "http://identity:8081")

	var cfg models.CoreConfig

	c := NewConfig(logger.NewTestLogger())
	require.NoError(t, c.LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "http://identity:8081", cfg.Identity.Endpoint)
}

func TestLoadFromEnvJSONDocument(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("INVENTORY_CONFIG_JSON", `{
		"listen_addr": ":7070",
		"database": {"host": "localhost", "database": "inventory"}
	}`)

	var cfg models.CoreConfig

	c := NewConfig(logger.NewTestLogger())
	require.NoError(t, c.LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, ":7070", cfg.ListenAddr)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "consul")

	var cfg models.CoreConfig

	c := NewConfig(logger.NewTestLogger())
	err := c.LoadAndValidate(context.Background(), "", &cfg)

	assert.ErrorIs(t, err, errInvalidConfigSource)
}
