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
	entityDeviceType = "device_type"

	deviceTypeColumns = `device_type_id, name, parent_device_type_id, labels, metadata, template, tags,
		domain_id, created_at, updated_at`
)

var deviceTypeJSONBColumns = map[string]bool{
	"labels":   true,
	"metadata": true,
	"template": true,
	"tags":     true,
}

// CreateDeviceType inserts a new device type, generating its id when
// absent.
func (d *DB) CreateDeviceType(ctx context.Context, deviceType *models.DeviceType) error {
	if deviceType.ID == "" {
		deviceType.ID = newID("device-type")
	}

	now := time.Now().UTC()
	deviceType.CreatedAt = now
	deviceType.UpdatedAt = now

	labels, metadata, template, tags, err := marshalDeviceTypeDocs(deviceType)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	var parent any
	if deviceType.ParentDeviceTypeID != "" {
		parent = deviceType.ParentDeviceTypeID
	}

	_, err = d.pool.Exec(ctx,
		`INSERT INTO device_types (device_type_id, name, parent_device_type_id, labels, metadata, template, tags, domain_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		deviceType.ID, deviceType.Name, parent, labels, metadata, template, tags,
		deviceType.DomainID, deviceType.CreatedAt, deviceType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, translateErr(err, entityDeviceType, deviceType.ID, deviceType.DomainID))
	}

	return nil
}

func (d *DB) GetDeviceType(ctx context.Context, id, domain string) (*models.DeviceType, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+deviceTypeColumns+` FROM device_types WHERE device_type_id = $1 AND domain_id = $2`,
		id, domain)

	deviceType, err := scanDeviceType(row)
	if err != nil {
		return nil, translateErr(err, entityDeviceType, id, domain)
	}

	return deviceType, nil
}

func (d *DB) UpdateDeviceType(ctx context.Context, id, domain string, fields map[string]any) (*models.DeviceType, error) {
	sql, args, err := buildUpdate("device_types", "device_type_id", id, domain,
		fields, &models.DeviceTypeCapability, deviceTypeJSONBColumns, true)
	if err != nil {
		return nil, err
	}

	row := d.pool.QueryRow(ctx, sql+" RETURNING "+deviceTypeColumns, args...)

	deviceType, err := scanDeviceType(row)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToUpdate, translateErr(err, entityDeviceType, id, domain))
	}

	return deviceType, nil
}

// DeleteDeviceType removes the type. The RESTRICT rules on devices,
// templates, and child types surface as ErrReferentialIntegrity.
func (d *DB) DeleteDeviceType(ctx context.Context, id, domain string) error {
	tag, err := d.pool.Exec(ctx,
		`DELETE FROM device_types WHERE device_type_id = $1 AND domain_id = $2`, id, domain)
	if err != nil {
		return translateErr(err, entityDeviceType, id, domain)
	}

	if tag.RowsAffected() == 0 {
		return &errdefs.NotFoundError{Entity: entityDeviceType, ID: id, Domain: domain}
	}

	return nil
}

func (d *DB) QueryDeviceTypes(ctx context.Context, query *models.Query) ([]*models.DeviceType, int, error) {
	where, args, err := buildWhere(query.Domain, query.Filter, query.Keyword, &models.DeviceTypeCapability)
	if err != nil {
		return nil, 0, err
	}

	order, err := buildOrder(query.Sort, &models.DeviceTypeCapability)
	if err != nil {
		return nil, 0, err
	}

	columns := deviceTypeColumns
	if query.Minimal {
		columns = `device_type_id, name, NULL, '[]'::jsonb, '{}'::jsonb, '{}'::jsonb, '{}'::jsonb,
			domain_id, created_at, updated_at`
	}

	sql := `SELECT ` + columns + `, COUNT(*) OVER () AS total FROM device_types` + where + order + buildPage(query.Page)

	rows, err := d.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var (
		results []*models.DeviceType
		total   int
	)

	for rows.Next() {
		deviceType, rowTotal, err := scanDeviceTypeWithTotal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrFailedToScan, err)
		}

		results = append(results, deviceType)
		total = rowTotal
	}

	return results, total, rows.Err()
}

func (d *DB) StatDeviceTypes(ctx context.Context, query *models.StatQuery) ([]models.StatRow, error) {
	return d.stat(ctx, "device_types", query, &models.DeviceTypeCapability)
}

func marshalDeviceTypeDocs(deviceType *models.DeviceType) (labels, metadata, template, tags []byte, err error) {
	if labels, err = json.Marshal(orEmptyList(deviceType.Labels)); err != nil {
		return
	}

	if metadata, err = json.Marshal(orEmptyMap(deviceType.Metadata)); err != nil {
		return
	}

	if template, err = json.Marshal(orEmptyMap(deviceType.Template)); err != nil {
		return
	}

	tags, err = json.Marshal(orEmptyStringMap(deviceType.Tags))

	return
}

func scanDeviceType(row pgxRow) (*models.DeviceType, error) {
	deviceType, _, err := scanDeviceTypeColumns(row, false)
	return deviceType, err
}

func scanDeviceTypeWithTotal(row pgxRow) (*models.DeviceType, int, error) {
	return scanDeviceTypeColumns(row, true)
}

func scanDeviceTypeColumns(row pgxRow, withTotal bool) (*models.DeviceType, int, error) {
	var (
		deviceType models.DeviceType
		parent     *string
		labels     []byte
		metadata   []byte
		template   []byte
		tags       []byte
		total      int
	)

	dest := []any{
		&deviceType.ID, &deviceType.Name, &parent, &labels, &metadata, &template, &tags,
		&deviceType.DomainID, &deviceType.CreatedAt, &deviceType.UpdatedAt,
	}
	if withTotal {
		dest = append(dest, &total)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, 0, err
	}

	if parent != nil {
		deviceType.ParentDeviceTypeID = *parent
	}

	if err := unmarshalDocs(map[*[]byte]any{
		&labels:   &deviceType.Labels,
		&metadata: &deviceType.Metadata,
		&template: &deviceType.Template,
		&tags:     &deviceType.Tags,
	}); err != nil {
		return nil, 0, err
	}

	return &deviceType, total, nil
}
