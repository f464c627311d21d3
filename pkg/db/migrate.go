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

package db

import (
	"context"
	"fmt"
)

// Referential-integrity rules are enforced here, not by the managers:
// all three relationships are deny-on-referenced (RESTRICT), so a
// device type cannot be deleted while devices, templates, or child
// types reference it.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS device_types (
		device_type_id        TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		parent_device_type_id TEXT REFERENCES device_types (device_type_id) ON DELETE RESTRICT,
		labels                JSONB NOT NULL DEFAULT '[]',
		metadata              JSONB NOT NULL DEFAULT '{}',
		template              JSONB NOT NULL DEFAULT '{}',
		tags                  JSONB NOT NULL DEFAULT '{}',
		domain_id             TEXT NOT NULL,
		created_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at            TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_device_types_name ON device_types (name)`,
	`CREATE INDEX IF NOT EXISTS idx_device_types_domain ON device_types (domain_id)`,
	`CREATE INDEX IF NOT EXISTS idx_device_types_parent ON device_types (parent_device_type_id)`,

	`CREATE TABLE IF NOT EXISTS devices (
		device_id       TEXT PRIMARY KEY,
		state           TEXT NOT NULL DEFAULT 'INSERVICE',
		name            TEXT,
		device_type_id  TEXT NOT NULL REFERENCES device_types (device_type_id) ON DELETE RESTRICT,
		region_code     TEXT,
		region_type     TEXT,
		region_ref      TEXT,
		project_id      TEXT,
		data            JSONB NOT NULL DEFAULT '{}',
		reference       JSONB,
		tags            JSONB NOT NULL DEFAULT '{}',
		collection_info JSONB NOT NULL DEFAULT '{}',
		domain_id       TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_state ON devices (state)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_name ON devices (name)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_type ON devices (device_type_id)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_region ON devices (region_type, region_code)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_project ON devices (project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_domain ON devices (domain_id)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_collection_state ON devices ((collection_info ->> 'state'))`,
	`CREATE INDEX IF NOT EXISTS idx_devices_reference_resource ON devices ((reference ->> 'resource_id'))`,

	`CREATE TABLE IF NOT EXISTS device_templates (
		device_template_id TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		device_type_id     TEXT NOT NULL REFERENCES device_types (device_type_id) ON DELETE RESTRICT,
		data               JSONB NOT NULL DEFAULT '{}',
		tags               JSONB NOT NULL DEFAULT '{}',
		domain_id          TEXT NOT NULL,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_device_templates_name ON device_templates (name)`,
	`CREATE INDEX IF NOT EXISTS idx_device_templates_type ON device_templates (device_type_id)`,
	`CREATE INDEX IF NOT EXISTS idx_device_templates_domain ON device_templates (domain_id)`,
}

func (d *DB) migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := d.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToInit, err)
		}
	}

	return nil
}
