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

import "time"

// DeviceType describes a class of devices. Types form a single-parent
// tree; a parent must exist before a child can reference it, so the
// tree is cycle-free by construction.
type DeviceType struct {
	ID                 string            `json:"device_type_id"`
	Name               string            `json:"name"`
	ParentDeviceTypeID string            `json:"parent_device_type_id,omitempty"`
	Labels             []string          `json:"labels,omitempty"`
	Metadata           map[string]any    `json:"metadata,omitempty"`
	Template           map[string]any    `json:"template,omitempty"`
	Tags               map[string]string `json:"tags,omitempty"`
	DomainID           string            `json:"domain_id"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// DeviceSchema extracts template.device.schema, the JSON-Schema
// document describing the shape of a device's data. Absent levels
// yield an empty schema, which is valid.
func (t *DeviceType) DeviceSchema() map[string]any {
	device, _ := t.Template["device"].(map[string]any)
	schema, _ := device["schema"].(map[string]any)

	return schema
}

// SchemaPropertyKeys returns the property keys declared by a schema
// document. A nil schema declares nothing.
func SchemaPropertyKeys(schema map[string]any) map[string]struct{} {
	properties, _ := schema["properties"].(map[string]any)
	keys := make(map[string]struct{}, len(properties))

	for k := range properties {
		keys[k] = struct{}{}
	}

	return keys
}

// SchemaPropertyType returns the declared type of a schema property,
// or "" when the property or its type is absent.
func SchemaPropertyType(schema map[string]any, key string) string {
	properties, _ := schema["properties"].(map[string]any)
	property, _ := properties[key].(map[string]any)
	typ, _ := property["type"].(string)

	return typ
}

// CreateDeviceTypeParams carries the create contract. Name and
// DomainID are required.
type CreateDeviceTypeParams struct {
	Name               string            `json:"name"`
	ParentDeviceTypeID string            `json:"parent_device_type_id,omitempty"`
	Template           map[string]any    `json:"template,omitempty"`
	Metadata           map[string]any    `json:"metadata,omitempty"`
	Labels             []string          `json:"labels,omitempty"`
	Tags               map[string]string `json:"tags,omitempty"`
	DomainID           string            `json:"domain_id"`
}

// UpdateDeviceTypeParams carries the update contract. The parent link
// and name are not updatable. Force is accepted but reserved; it does
// not bypass the type-immutability check.
type UpdateDeviceTypeParams struct {
	DeviceTypeID string            `json:"device_type_id"`
	Template     map[string]any    `json:"template,omitempty"`
	Metadata     map[string]any    `json:"metadata,omitempty"`
	Labels       []string          `json:"labels,omitempty"`
	Tags         map[string]string `json:"tags,omitempty"`
	Force        bool              `json:"force,omitempty"`
	DomainID     string            `json:"domain_id"`
}
