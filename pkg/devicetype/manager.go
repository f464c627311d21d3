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

// Package devicetype owns the device-type hierarchy: a single-parent
// tree of schema templates where no two schemas in one inheritance
// chain may declare the same property key, and a declared property
// type is immutable once established.
package devicetype

import (
	"context"
	"errors"
	"sort"

	"github.com/jihyungSong/inventory/pkg/db"
	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/models"
	"github.com/jihyungSong/inventory/pkg/schema"
	"github.com/jihyungSong/inventory/pkg/tx"
)

// maxHierarchyDepth bounds the ancestor walk. Cycles are impossible
// because a parent must exist before a child references it, but a
// corrupted store should not walk forever.
const maxHierarchyDepth = 64

var errHierarchyTooDeep = errors.New("device type hierarchy exceeds maximum depth")

// Manager owns device-type records and the schema-compatibility rules.
type Manager struct {
	db        db.Service
	validator schema.Validator
	log       logger.Logger
}

func NewManager(database db.Service, log logger.Logger) *Manager {
	return &Manager{
		db:  database,
		log: log.WithComponent("devicetype"),
	}
}

// Create validates the schema template, checks it against every
// ancestor's property keys when a parent is given, and persists the
// new type. All checks run before the write, so a failure here never
// needs rollback.
func (m *Manager) Create(ctx context.Context, params *models.CreateDeviceTypeParams) (*models.DeviceType, error) {
	if params.Name == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "name"}
	}

	if params.DomainID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "domain_id"}
	}

	deviceType := &models.DeviceType{
		Name:               params.Name,
		ParentDeviceTypeID: params.ParentDeviceTypeID,
		Labels:             params.Labels,
		Metadata:           params.Metadata,
		Template:           params.Template,
		Tags:               params.Tags,
		DomainID:           params.DomainID,
	}

	deviceSchema := deviceType.DeviceSchema()
	if err := m.validator.Validate(deviceSchema); err != nil {
		return nil, err
	}

	if params.ParentDeviceTypeID != "" {
		ancestorKeys, err := m.AncestorSchemaKeys(ctx, params.ParentDeviceTypeID, params.DomainID)
		if err != nil {
			return nil, err
		}

		if err := checkDuplicateSchemaKeys(deviceSchema, ancestorKeys); err != nil {
			return nil, err
		}
	}

	if err := m.db.CreateDeviceType(ctx, deviceType); err != nil {
		return nil, err
	}

	m.log.Info().
		Str("device_type_id", deviceType.ID).
		Str("domain_id", deviceType.DomainID).
		Msg("Created device type")

	return deviceType, nil
}

// Update applies template/metadata/labels/tags changes. A supplied
// template must be structurally valid and may not retype any property
// declared by the current schema; it may add keys or change non-type
// attributes. The force flag is reserved: it is accepted and logged
// but does not bypass the type-immutability check.
func (m *Manager) Update(ctx context.Context, params *models.UpdateDeviceTypeParams) (*models.DeviceType, error) {
	if params.DeviceTypeID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "device_type_id"}
	}

	if params.DomainID == "" {
		return nil, &errdefs.MissingRequiredFieldError{Field: "domain_id"}
	}

	current, err := m.db.GetDeviceType(ctx, params.DeviceTypeID, params.DomainID)
	if err != nil {
		return nil, err
	}

	if params.Force {
		m.log.Warn().
			Str("device_type_id", params.DeviceTypeID).
			Msg("Force flag is reserved and has no effect")
	}

	fields := make(map[string]any)

	if params.Template != nil {
		newSchema := extractDeviceSchema(params.Template)

		if err := m.validator.Validate(newSchema); err != nil {
			return nil, err
		}

		if err := checkSchemaTypeCompatibility(current.DeviceSchema(), newSchema); err != nil {
			return nil, err
		}

		fields["template"] = params.Template
	}

	if params.Metadata != nil {
		fields["metadata"] = params.Metadata
	}

	if params.Labels != nil {
		fields["labels"] = params.Labels
	}

	if params.Tags != nil {
		fields["tags"] = params.Tags
	}

	if len(fields) == 0 {
		return current, nil
	}

	txn := tx.New(m.db, m.log)

	snapshot, err := tx.RestoreSnapshot(tx.EntityDeviceType, current.ID, current.DomainID, current)
	if err != nil {
		return nil, err
	}

	txn.Add(snapshot)

	updated, err := m.db.UpdateDeviceType(ctx, params.DeviceTypeID, params.DomainID, fields)
	if err != nil {
		txn.Rollback(ctx)
		return nil, err
	}

	txn.Discard()

	return updated, nil
}

func (m *Manager) Get(ctx context.Context, id, domain string) (*models.DeviceType, error) {
	return m.db.GetDeviceType(ctx, id, domain)
}

func (m *Manager) List(ctx context.Context, query *models.Query) ([]*models.DeviceType, int, error) {
	return m.db.QueryDeviceTypes(ctx, query)
}

// Delete removes the type. The persistence layer's deny-on-referenced
// rules reject the delete while devices, templates, or child types
// reference it; that surfaces as ErrReferentialIntegrity and is not
// re-derived here.
func (m *Manager) Delete(ctx context.Context, id, domain string) error {
	return m.db.DeleteDeviceType(ctx, id, domain)
}

func (m *Manager) Stat(ctx context.Context, query *models.StatQuery) ([]models.StatRow, error) {
	return m.db.StatDeviceTypes(ctx, query)
}

// AncestorSchemaKeys resolves the type and walks its parent links,
// collecting every property key declared by the type and its
// ancestors into one set.
func (m *Manager) AncestorSchemaKeys(ctx context.Context, id, domain string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})

	for depth := 0; id != ""; depth++ {
		if depth >= maxHierarchyDepth {
			return nil, errHierarchyTooDeep
		}

		deviceType, err := m.db.GetDeviceType(ctx, id, domain)
		if err != nil {
			return nil, err
		}

		for key := range models.SchemaPropertyKeys(deviceType.DeviceSchema()) {
			keys[key] = struct{}{}
		}

		id = deviceType.ParentDeviceTypeID
	}

	return keys, nil
}

// checkDuplicateSchemaKeys rejects any property key the ancestor
// chain already declares. Iteration is sorted so the reported key is
// deterministic when several collide.
func checkDuplicateSchemaKeys(deviceSchema map[string]any, ancestorKeys map[string]struct{}) error {
	own := models.SchemaPropertyKeys(deviceSchema)

	sorted := make([]string, 0, len(own))
	for key := range own {
		sorted = append(sorted, key)
	}

	sort.Strings(sorted)

	for _, key := range sorted {
		if _, exists := ancestorKeys[key]; exists {
			return &errdefs.DuplicateSchemaKeyError{Key: key}
		}
	}

	return nil
}

// checkSchemaTypeCompatibility rejects retyping: every property
// present in both schemas must keep its declared type.
func checkSchemaTypeCompatibility(oldSchema, newSchema map[string]any) error {
	oldKeys := models.SchemaPropertyKeys(oldSchema)

	newKeys := make([]string, 0)
	for key := range models.SchemaPropertyKeys(newSchema) {
		newKeys = append(newKeys, key)
	}

	sort.Strings(newKeys)

	for _, key := range newKeys {
		if _, exists := oldKeys[key]; !exists {
			continue
		}

		oldType := models.SchemaPropertyType(oldSchema, key)
		newType := models.SchemaPropertyType(newSchema, key)

		if oldType != newType {
			return &errdefs.SchemaTypeChangedError{Key: key, Type: newType}
		}
	}

	return nil
}

func extractDeviceSchema(template map[string]any) map[string]any {
	deviceType := models.DeviceType{Template: template}
	return deviceType.DeviceSchema()
}
