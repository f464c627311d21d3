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
	"encoding/json"
	"fmt"
	"time"

	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/models"
)

const (
	entityDeviceTemplate = "device_template"

	deviceTemplateColumns = `device_template_id, name, device_type_id, data, tags, domain_id, created_at`
)

var deviceTemplateJSONBColumns = map[string]bool{
	"data": true,
	"tags": true,
}

// CreateDeviceTemplate inserts a new template, generating its id when
// absent.
func (d *DB) CreateDeviceTemplate(ctx context.Context, template *models.DeviceTemplate) error {
	if template.ID == "" {
		template.ID = newID("device-tpl")
	}

	template.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(orEmptyMap(template.Data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	tags, err := json.Marshal(orEmptyStringMap(template.Tags))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	_, err = d.pool.Exec(ctx,
		`INSERT INTO device_templates (device_template_id, name, device_type_id, data, tags, domain_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		template.ID, template.Name, template.DeviceTypeID, data, tags, template.DomainID, template.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, translateErr(err, entityDeviceTemplate, template.ID, template.DomainID))
	}

	return nil
}

func (d *DB) GetDeviceTemplate(ctx context.Context, id, domain string) (*models.DeviceTemplate, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+deviceTemplateColumns+` FROM device_templates WHERE device_template_id = $1 AND domain_id = $2`,
		id, domain)

	template, err := scanDeviceTemplate(row)
	if err != nil {
		return nil, translateErr(err, entityDeviceTemplate, id, domain)
	}

	return template, nil
}

func (d *DB) UpdateDeviceTemplate(ctx context.Context, id, domain string, fields map[string]any) (*models.DeviceTemplate, error) {
	sql, args, err := buildUpdate("device_templates", "device_template_id", id, domain,
		fields, &models.DeviceTemplateCapability, deviceTemplateJSONBColumns, false)
	if err != nil {
		return nil, err
	}

	row := d.pool.QueryRow(ctx, sql+" RETURNING "+deviceTemplateColumns, args...)

	template, err := scanDeviceTemplate(row)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToUpdate, translateErr(err, entityDeviceTemplate, id, domain))
	}

	return template, nil
}

func (d *DB) DeleteDeviceTemplate(ctx context.Context, id, domain string) error {
	tag, err := d.pool.Exec(ctx,
		`DELETE FROM device_templates WHERE device_template_id = $1 AND domain_id = $2`, id, domain)
	if err != nil {
		return translateErr(err, entityDeviceTemplate, id, domain)
	}

	if tag.RowsAffected() == 0 {
		return &errdefs.NotFoundError{Entity: entityDeviceTemplate, ID: id, Domain: domain}
	}

	return nil
}

func (d *DB) QueryDeviceTemplates(ctx context.Context, query *models.Query) ([]*models.DeviceTemplate, int, error) {
	where, args, err := buildWhere(query.Domain, query.Filter, query.Keyword, &models.DeviceTemplateCapability)
	if err != nil {
		return nil, 0, err
	}

	order, err := buildOrder(query.Sort, &models.DeviceTemplateCapability)
	if err != nil {
		return nil, 0, err
	}

	columns := deviceTemplateColumns
	if query.Minimal {
		columns = `device_template_id, name, NULL, '{}'::jsonb, '{}'::jsonb, domain_id, created_at`
	}

	sql := `SELECT ` + columns + `, COUNT(*) OVER () AS total FROM device_templates` + where + order + buildPage(query.Page)

	rows, err := d.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var (
		results []*models.DeviceTemplate
		total   int
	)

	for rows.Next() {
		template, rowTotal, err := scanDeviceTemplateColumns(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrFailedToScan, err)
		}

		results = append(results, template)
		total = rowTotal
	}

	return results, total, rows.Err()
}

func (d *DB) StatDeviceTemplates(ctx context.Context, query *models.StatQuery) ([]models.StatRow, error) {
	return d.stat(ctx, "device_templates", query, &models.DeviceTemplateCapability)
}

func scanDeviceTemplate(row pgxRow) (*models.DeviceTemplate, error) {
	template, _, err := scanDeviceTemplateColumns(row, false)
	return template, err
}

func scanDeviceTemplateColumns(row pgxRow, withTotal bool) (*models.DeviceTemplate, int, error) {
	var (
		template     models.DeviceTemplate
		deviceTypeID *string
		data         []byte
		tags         []byte
		total        int
	)

	dest := []any{
		&template.ID, &template.Name, &deviceTypeID, &data, &tags,
		&template.DomainID, &template.CreatedAt,
	}
	if withTotal {
		dest = append(dest, &total)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, 0, err
	}

	template.DeviceTypeID = deref(deviceTypeID)

	if err := unmarshalDocs(map[*[]byte]any{
		&data: &template.Data,
		&tags: &template.Tags,
	}); err != nil {
		return nil, 0, err
	}

	return &template, total, nil
}
