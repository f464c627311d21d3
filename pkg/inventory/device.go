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

// Package inventory orchestrates device and device-template
// operations: type resolution through the hierarchy manager, data
// merging through the provenance engine, and the compensating-action
// discipline around every durable write.
package inventory

import (
	"context"
	"time"

	"github.com/jihyungSong/inventory/pkg/db"
	"github.com/jihyungSong/inventory/pkg/devicetype"
	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/identity"
	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/models"
	"github.com/jihyungSong/inventory/pkg/provenance"
	"github.com/jihyungSong/inventory/pkg/tx"
)

// Identifier keys are not part of the tracked data payload.
var (
	createExcludeKeys = []string{"domain_id"}
	updateExcludeKeys = []string{"device_id", "domain_id"}
)

// DeviceManager owns device records.
type DeviceManager struct {
	db       db.Service
	types    *devicetype.Manager
	identity identity.Resolver
	log      logger.Logger
}

func NewDeviceManager(database db.Service, types *devicetype.Manager, resolver identity.Resolver, log logger.Logger) *DeviceManager {
	return &DeviceManager{
		db:       database,
		types:    types,
		identity: resolver,
		log:      log.WithComponent("device"),
	}
}

// Create resolves the device type, validates region and project
// references, initializes collection provenance, and persists. The
// final step re-reads the persisted record; if that fails after the
// insert succeeded, the registered rollback removes the record so the
// operation leaves no trace.
func (m *DeviceManager) Create(ctx context.Context, params *models.CreateDeviceParams) (*models.Device, error) {
	if params.DeviceTypeID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "device_type_id"}
	}

	if params.Data == nil {
		return nil, &errdefs.MissingRequiredFieldError{Field: "data"}
	}

	if params.DomainID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "domain_id"}
	}

	deviceType, err := m.types.Get(ctx, params.DeviceTypeID, params.DomainID)
	if err != nil {
		return nil, err
	}

	regionRef, err := regionRef(params.RegionCode, params.RegionType)
	if err != nil {
		return nil, err
	}

	projectID, err := m.resolveProject(ctx, params.ProjectID, params.DomainID)
	if err != nil {
		return nil, err
	}

	info := provenance.Initialize(params.Data, createExcludeKeys, time.Now().UTC())

	device := &models.Device{
		State:          models.DeviceStateInService,
		Name:           params.Name,
		DeviceTypeID:   deviceType.ID,
		RegionCode:     params.RegionCode,
		RegionType:     params.RegionType,
		RegionRef:      regionRef,
		ProjectID:      projectID,
		Data:           params.Data,
		Reference:      params.Reference,
		Tags:           params.Tags,
		CollectionInfo: &info,
		DomainID:       params.DomainID,
	}

	txn := tx.New(m.db, m.log)

	if err := m.db.CreateDevice(ctx, device); err != nil {
		return nil, err
	}

	txn.Add(tx.DeleteCreated(tx.EntityDevice, device.ID, device.DomainID))

	created, err := m.db.GetDevice(ctx, device.ID, device.DomainID)
	if err != nil {
		txn.Rollback(ctx)
		return nil, err
	}

	txn.Discard()

	created.DeviceType = deviceType

	m.log.Info().
		Str("device_id", created.ID).
		Str("device_type_id", deviceType.ID).
		Str("domain_id", created.DomainID).
		Msg("Created device")

	return created, nil
}

// Update merges incoming data against the stored record through the
// provenance engine (manual origin) and applies region/project
// release-or-set logic symmetric to create. The pre-update document
// is registered as a restore snapshot before the write.
func (m *DeviceManager) Update(ctx context.Context, params *models.UpdateDeviceParams) (*models.Device, error) {
	return m.update(ctx, params, models.OriginManual)
}

// MergeCollectorData is the collector-facing merge entry point: the
// same contract as Update's data path, tagged with collector origin
// so pinned keys resist the overwrite and provenance records the
// actor class.
func (m *DeviceManager) MergeCollectorData(ctx context.Context, deviceID, domainID string, data map[string]any) (*models.Device, error) {
	return m.update(ctx, &models.UpdateDeviceParams{
		DeviceID: deviceID,
		Data:     data,
		DomainID: domainID,
	}, models.OriginCollector)
}

func (m *DeviceManager) update(ctx context.Context, params *models.UpdateDeviceParams, origin models.Origin) (*models.Device, error) {
	if params.DeviceID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "device_id"}
	}

	if params.DomainID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "domain_id"}
	}

	device, err := m.db.GetDevice(ctx, params.DeviceID, params.DomainID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)

	if params.ReleaseRegion {
		fields["region_code"] = nil
		fields["region_type"] = nil
		fields["region_ref"] = nil
	} else if params.RegionCode != "" || params.RegionType != "" {
		ref, err := regionRef(params.RegionCode, params.RegionType)
		if err != nil {
			return nil, err
		}

		fields["region_code"] = params.RegionCode
		fields["region_type"] = params.RegionType
		fields["region_ref"] = ref
	}

	if params.ReleaseProject {
		fields["project_id"] = nil
	} else {
		projectID, err := m.resolveProject(ctx, params.ProjectID, params.DomainID)
		if err != nil {
			return nil, err
		}

		if projectID != "" {
			fields["project_id"] = projectID
		}
	}

	if params.Name != nil {
		fields["name"] = *params.Name
	}

	if params.State != nil {
		fields["state"] = string(*params.State)
	}

	if params.Reference != nil {
		fields["reference"] = params.Reference
	}

	if params.Tags != nil {
		fields["tags"] = params.Tags
	}

	if params.Data != nil {
		merged, info, err := provenance.Merge(params.Data, device, updateExcludeKeys, origin, time.Now().UTC())
		if err != nil {
			return nil, err
		}

		fields["data"] = merged
		fields["collection_info"] = info
	}

	if len(fields) == 0 {
		return device, nil
	}

	return m.persistUpdate(ctx, device, fields)
}

// Pin is a restricted update that only grows the pinned-key set;
// values are untouched.
func (m *DeviceManager) Pin(ctx context.Context, params *models.PinDeviceDataParams) (*models.Device, error) {
	if params.DeviceID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "device_id"}
	}

	if len(params.Keys) == 0 {
		return nil, &errdefs.MissingRequiredFieldError{Field: "keys"}
	}

	if params.DomainID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "domain_id"}
	}

	device, err := m.db.GetDevice(ctx, params.DeviceID, params.DomainID)
	if err != nil {
		return nil, err
	}

	if device.CollectionInfo == nil {
		return nil, errdefs.ErrMalformedRecord
	}

	info := provenance.Pin(params.Keys, *device.CollectionInfo)

	return m.persistUpdate(ctx, device, map[string]any{"collection_info": info})
}

func (m *DeviceManager) persistUpdate(ctx context.Context, device *models.Device, fields map[string]any) (*models.Device, error) {
	txn := tx.New(m.db, m.log)

	snapshot, err := tx.RestoreSnapshot(tx.EntityDevice, device.ID, device.DomainID, device)
	if err != nil {
		return nil, err
	}

	txn.Add(snapshot)

	updated, err := m.db.UpdateDevice(ctx, device.ID, device.DomainID, fields)
	if err != nil {
		txn.Rollback(ctx)
		return nil, err
	}

	txn.Discard()

	return updated, nil
}

func (m *DeviceManager) Get(ctx context.Context, id, domain string) (*models.Device, error) {
	return m.db.GetDevice(ctx, id, domain)
}

func (m *DeviceManager) List(ctx context.Context, query *models.Query) ([]*models.Device, int, error) {
	return m.db.QueryDevices(ctx, query)
}

func (m *DeviceManager) Delete(ctx context.Context, id, domain string) error {
	return m.db.DeleteDevice(ctx, id, domain)
}

func (m *DeviceManager) Stat(ctx context.Context, query *models.StatQuery) ([]models.StatRow, error) {
	return m.db.StatDevices(ctx, query)
}

// resolveProject validates an explicit project reference against the
// identity service. Without one, the implicit project carried in the
// request context is trusted as-is.
func (m *DeviceManager) resolveProject(ctx context.Context, projectID, domainID string) (string, error) {
	if projectID != "" {
		if err := m.identity.GetProject(ctx, projectID, domainID); err != nil {
			return "", err
		}

		return projectID, nil
	}

	return ImplicitProjectFrom(ctx), nil
}

// regionRef derives the combined region reference key. Both parts are
// required together.
func regionRef(code, typ string) (string, error) {
	if code == "" && typ == "" {
		return "", nil
	}

	if typ == "" {
		return "", &errdefs.MissingRequiredFieldError{Field: "region_type"}
	}

	if code == "" {
		return "", &errdefs.MissingRequiredFieldError{Field: "region_code"}
	}

	return typ + "." + code, nil
}
