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
	entityDevice = "device"

	deviceColumns = `device_id, state, name, device_type_id, region_code, region_type, region_ref,
		project_id, data, reference, tags, collection_info, domain_id, created_at, updated_at`

	deviceMinimalColumns = `device_id, state, name, NULL, NULL, NULL, NULL,
		NULL, '{}'::jsonb, reference, '{}'::jsonb, '{}'::jsonb, domain_id, created_at, updated_at`
)

var deviceJSONBColumns = map[string]bool{
	"data":            true,
	"reference":       true,
	"tags":            true,
	"collection_info": true,
}

// CreateDevice inserts a new device, generating its id when absent.
// The referenced device type must exist; its RESTRICT rule also keeps
// it alive while this device does.
func (d *DB) CreateDevice(ctx context.Context, device *models.Device) error {
	if device.ID == "" {
		device.ID = newID("device")
	}

	if device.State == "" {
		device.State = models.DeviceStateInService
	}

	now := time.Now().UTC()
	device.CreatedAt = now
	device.UpdatedAt = now

	data, err := json.Marshal(orEmptyMap(device.Data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	tags, err := json.Marshal(orEmptyStringMap(device.Tags))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	collectionInfo, err := json.Marshal(device.CollectionInfo)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	var reference any
	if device.Reference != nil {
		if reference, err = json.Marshal(device.Reference); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
		}
	}

	_, err = d.pool.Exec(ctx,
		`INSERT INTO devices (device_id, state, name, device_type_id, region_code, region_type, region_ref,
			project_id, data, reference, tags, collection_info, domain_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		device.ID, device.State, nullable(device.Name), device.DeviceTypeID,
		nullable(device.RegionCode), nullable(device.RegionType), nullable(device.RegionRef),
		nullable(device.ProjectID), data, reference, tags, collectionInfo,
		device.DomainID, device.CreatedAt, device.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, translateErr(err, entityDevice, device.ID, device.DomainID))
	}

	return nil
}

func (d *DB) GetDevice(ctx context.Context, id, domain string) (*models.Device, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE device_id = $1 AND domain_id = $2`, id, domain)

	device, err := scanDevice(row)
	if err != nil {
		return nil, translateErr(err, entityDevice, id, domain)
	}

	return device, nil
}

func (d *DB) UpdateDevice(ctx context.Context, id, domain string, fields map[string]any) (*models.Device, error) {
	sql, args, err := buildUpdate("devices", "device_id", id, domain,
		fields, &models.DeviceCapability, deviceJSONBColumns, true)
	if err != nil {
		return nil, err
	}

	row := d.pool.QueryRow(ctx, sql+" RETURNING "+deviceColumns, args...)

	device, err := scanDevice(row)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToUpdate, translateErr(err, entityDevice, id, domain))
	}

	return device, nil
}

func (d *DB) DeleteDevice(ctx context.Context, id, domain string) error {
	tag, err := d.pool.Exec(ctx,
		`DELETE FROM devices WHERE device_id = $1 AND domain_id = $2`, id, domain)
	if err != nil {
		return translateErr(err, entityDevice, id, domain)
	}

	if tag.RowsAffected() == 0 {
		return &errdefs.NotFoundError{Entity: entityDevice, ID: id, Domain: domain}
	}

	return nil
}

func (d *DB) QueryDevices(ctx context.Context, query *models.Query) ([]*models.Device, int, error) {
	where, args, err := buildWhere(query.Domain, query.Filter, query.Keyword, &models.DeviceCapability)
	if err != nil {
		return nil, 0, err
	}

	order, err := buildOrder(query.Sort, &models.DeviceCapability)
	if err != nil {
		return nil, 0, err
	}

	columns := deviceColumns
	if query.Minimal {
		columns = deviceMinimalColumns
	}

	sql := `SELECT ` + columns + `, COUNT(*) OVER () AS total FROM devices` + where + order + buildPage(query.Page)

	rows, err := d.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var (
		results []*models.Device
		total   int
	)

	for rows.Next() {
		device, rowTotal, err := scanDeviceColumns(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrFailedToScan, err)
		}

		results = append(results, device)
		total = rowTotal
	}

	return results, total, rows.Err()
}

func (d *DB) StatDevices(ctx context.Context, query *models.StatQuery) ([]models.StatRow, error) {
	return d.stat(ctx, "devices", query, &models.DeviceCapability)
}

func scanDevice(row pgxRow) (*models.Device, error) {
	device, _, err := scanDeviceColumns(row, false)
	return device, err
}

func scanDeviceColumns(row pgxRow, withTotal bool) (*models.Device, int, error) {
	var (
		device         models.Device
		name           *string
		deviceTypeID   *string
		regionCode     *string
		regionType     *string
		regionRef      *string
		projectID      *string
		data           []byte
		reference      []byte
		tags           []byte
		collectionInfo []byte
		total          int
	)

	dest := []any{
		&device.ID, &device.State, &name, &deviceTypeID, &regionCode, &regionType, &regionRef,
		&projectID, &data, &reference, &tags, &collectionInfo,
		&device.DomainID, &device.CreatedAt, &device.UpdatedAt,
	}
	if withTotal {
		dest = append(dest, &total)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, 0, err
	}

	device.Name = deref(name)
	device.DeviceTypeID = deref(deviceTypeID)
	device.RegionCode = deref(regionCode)
	device.RegionType = deref(regionType)
	device.RegionRef = deref(regionRef)
	device.ProjectID = deref(projectID)

	if err := unmarshalDocs(map[*[]byte]any{
		&data: &device.Data,
		&tags: &device.Tags,
	}); err != nil {
		return nil, 0, err
	}

	if len(reference) > 0 {
		device.Reference = &models.ReferenceResource{}
		if err := json.Unmarshal(reference, device.Reference); err != nil {
			return nil, 0, err
		}
	}

	if len(collectionInfo) > 0 && string(collectionInfo) != "{}" {
		device.CollectionInfo = &models.CollectionInfo{}
		if err := json.Unmarshal(collectionInfo, device.CollectionInfo); err != nil {
			return nil, 0, err
		}
	}

	return &device, total, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
