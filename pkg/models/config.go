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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jihyungSong/inventory/pkg/logger"
)

var (
	errListenAddrRequired = errors.New("listen address is required")
	errDatabaseRequired   = errors.New("database host and name are required")
	errInvalidDuration    = errors.New("invalid duration")
)

// Duration is a time.Duration that accepts either a Go duration string
// ("5s") or a number of nanoseconds in JSON config documents.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(parsed)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// DBConfig is the PostgreSQL connection configuration.
type DBConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"password"`
	SSLMode  string `json:"ssl_mode,omitempty"`
	MaxConns int32  `json:"max_conns,omitempty"`
}

// IdentityConfig points at the identity collaborator used for project
// existence checks.
type IdentityConfig struct {
	Endpoint string   `json:"endpoint"`
	Timeout  Duration `json:"timeout,omitempty"`
}

// CoreConfig is the top-level service configuration.
type CoreConfig struct {
	ListenAddr string         `json:"listen_addr"`
	Database   DBConfig       `json:"database"`
	Identity   IdentityConfig `json:"identity"`
	Logging    *logger.Config `json:"logging,omitempty"`
}

// Validate checks the fields without which the process cannot start.
func (c *CoreConfig) Validate() error {
	if c.ListenAddr == "" {
		return errListenAddrRequired
	}

	if c.Database.Host == "" || c.Database.Database == "" {
		return errDatabaseRequired
	}

	return nil
}
