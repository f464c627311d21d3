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

package inventory

import (
	"context"

	"github.com/jihyungSong/inventory/pkg/db"
	"github.com/jihyungSong/inventory/pkg/devicetype"
	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/models"
	"github.com/jihyungSong/inventory/pkg/tx"
)

// DeviceTemplateManager owns reusable device presets. Templates pin a
// device type and the relationship denies deleting a referenced type.
type DeviceTemplateManager struct {
	db    db.Service
	types *devicetype.Manager
	log   logger.Logger
}

func NewDeviceTemplateManager(database db.Service, types *devicetype.Manager, log logger.Logger) *DeviceTemplateManager {
	return &DeviceTemplateManager{
		db:    database,
		types: types,
		log:   log.WithComponent("device_template"),
	}
}

func (m *DeviceTemplateManager) Create(ctx context.Context, params *models.CreateDeviceTemplateParams) (*models.DeviceTemplate, error) {
	if params.Name == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "name"}
	}

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

	template := &models.DeviceTemplate{
		Name:         params.Name,
		DeviceTypeID: deviceType.ID,
		Data:         params.Data,
		Tags:         params.Tags,
		DomainID:     params.DomainID,
	}

	if err := m.db.CreateDeviceTemplate(ctx, template); err != nil {
		return nil, err
	}

	template.DeviceType = deviceType

	m.log.Info().
		Str("device_template_id", template.ID).
		Str("device_type_id", deviceType.ID).
		Str("domain_id", template.DomainID).
		Msg("Created device template")

	return template, nil
}

// Update overwrites data and tags wholesale; templates carry no
// per-key provenance.
func (m *DeviceTemplateManager) Update(ctx context.Context, params *models.UpdateDeviceTemplateParams) (*models.DeviceTemplate, error) {
	if params.DeviceTemplateID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "device_template_id"}
	}

	if params.DomainID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "domain_id"}
	}

	template, err := m.db.GetDeviceTemplate(ctx, params.DeviceTemplateID, params.DomainID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)

	if params.Name != nil {
		fields["name"] = *params.Name
	}

	if params.Data != nil {
		fields["data"] = params.Data
	}

	if params.Tags != nil {
		fields["tags"] = params.Tags
	}

	if len(fields) == 0 {
		return template, nil
	}

	txn := tx.New(m.db, m.log)

	snapshot, err := tx.RestoreSnapshot(tx.EntityDeviceTemplate, template.ID, template.DomainID, template)
	if err != nil {
		return nil, err
	}

	txn.Add(snapshot)

	updated, err := m.db.UpdateDeviceTemplate(ctx, template.ID, template.DomainID, fields)
	if err != nil {
		txn.Rollback(ctx)
		return nil, err
	}

	txn.Discard()

	return updated, nil
}

func (m *DeviceTemplateManager) Get(ctx context.Context, id, domain string) (*models.DeviceTemplate, error) {
	return m.db.GetDeviceTemplate(ctx, id, domain)
}

func (m *DeviceTemplateManager) List(ctx context.Context, query *models.Query) ([]*models.DeviceTemplate, int, error) {
	return m.db.QueryDeviceTemplates(ctx, query)
}

func (m *DeviceTemplateManager) Delete(ctx context.Context, id, domain string) error {
	return m.db.DeleteDeviceTemplate(ctx, id, domain)
}

func (m *DeviceTemplateManager) Stat(ctx context.Context, query *models.StatQuery) ([]models.StatRow, error) {
	return m.db.StatDeviceTemplates(ctx, query)
}
