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
	"errors"
	"fmt"

	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/models"
	"github.com/jihyungSong/inventory/pkg/tx"
)

// DeleteCreated undoes a create. A record that is already gone counts
// as undone.
func (d *DB) DeleteCreated(ctx context.Context, entity tx.Entity, id, domain string) error {
	var err error

	switch entity {
	case tx.EntityDevice:
		err = d.DeleteDevice(ctx, id, domain)
	case tx.EntityDeviceType:
		err = d.DeleteDeviceType(ctx, id, domain)
	case tx.EntityDeviceTemplate:
		err = d.DeleteDeviceTemplate(ctx, id, domain)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}

	if errors.Is(err, errdefs.ErrNotFound) {
		return nil
	}

	return err
}

// RestoreSnapshot undoes an update by writing the pre-update document
// back over the record's updatable fields.
func (d *DB) RestoreSnapshot(ctx context.Context, entity tx.Entity, id, domain string, snapshot json.RawMessage) error {
	switch entity {
	case tx.EntityDevice:
		var device models.Device
		if err := json.Unmarshal(snapshot, &device); err != nil {
			return err
		}

		_, err := d.UpdateDevice(ctx, id, domain, deviceSnapshotFields(&device))

		return err
	case tx.EntityDeviceType:
		var deviceType models.DeviceType
		if err := json.Unmarshal(snapshot, &deviceType); err != nil {
			return err
		}

		_, err := d.UpdateDeviceType(ctx, id, domain, map[string]any{
			"metadata": orEmptyMap(deviceType.Metadata),
			"template": orEmptyMap(deviceType.Template),
			"labels":   orEmptyList(deviceType.Labels),
			"tags":     orEmptyStringMap(deviceType.Tags),
		})

		return err
	case tx.EntityDeviceTemplate:
		var template models.DeviceTemplate
		if err := json.Unmarshal(snapshot, &template); err != nil {
			return err
		}

		_, err := d.UpdateDeviceTemplate(ctx, id, domain, map[string]any{
			"name": template.Name,
			"data": orEmptyMap(template.Data),
			"tags": orEmptyStringMap(template.Tags),
		})

		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
}

func deviceSnapshotFields(device *models.Device) map[string]any {
	fields := map[string]any{
		"state": string(device.State),
		"data":  orEmptyMap(device.Data),
		"tags":  orEmptyStringMap(device.Tags),
	}

	fields["name"] = nullable(device.Name)
	fields["project_id"] = nullable(device.ProjectID)
	fields["region_code"] = nullable(device.RegionCode)
	fields["region_type"] = nullable(device.RegionType)
	fields["region_ref"] = nullable(device.RegionRef)

	if device.Reference != nil {
		fields["reference"] = device.Reference
	} else {
		fields["reference"] = nil
	}

	if device.CollectionInfo != nil {
		fields["collection_info"] = device.CollectionInfo
	}

	return fields
}
