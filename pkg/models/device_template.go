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

// DeviceTemplate is a reusable data preset tied to a device type.
// Templates carry no provenance tracking; updates overwrite whole
// fields.
type DeviceTemplate struct {
	ID           string            `json:"device_template_id"`
	Name         string            `json:"name"`
	DeviceTypeID string            `json:"device_type_id"`
	DeviceType   *DeviceType       `json:"device_type,omitempty"`
	Data         map[string]any    `json:"data"`
	Tags         map[string]string `json:"tags,omitempty"`
	DomainID     string            `json:"domain_id"`
	CreatedAt    time.Time         `json:"created_at"`
}

// CreateDeviceTemplateParams carries the create contract. Name,
// DeviceTypeID, Data and DomainID are required.
type CreateDeviceTemplateParams struct {
	Name         string            `json:"name"`
	DeviceTypeID string            `json:"device_type_id"`
	Data         map[string]any    `json:"data"`
	Tags         map[string]string `json:"tags,omitempty"`
	DomainID     string            `json:"domain_id"`
}

// UpdateDeviceTemplateParams carries the update contract. Provided
// fields fully replace the stored ones.
type UpdateDeviceTemplateParams struct {
	DeviceTemplateID string            `json:"device_template_id"`
	Name             *string           `json:"name,omitempty"`
	Data             map[string]any    `json:"data,omitempty"`
	Tags             map[string]string `json:"tags,omitempty"`
	DomainID         string            `json:"domain_id"`
}
