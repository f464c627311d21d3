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

// DeviceState is the informational lifecycle state of a device. It is
// not a soft-delete marker; deletes are hard removals.
type DeviceState string

const (
	DeviceStateInStock   DeviceState = "INSTOCK"
	DeviceStateInService DeviceState = "INSERVICE"
	DeviceStateDeleted   DeviceState = "DELETED"
)

// Advisory region type values. Validated at the API boundary only.
const (
	RegionTypeAWS         = "AWS"
	RegionTypeGoogleCloud = "GOOGLE_CLOUD"
	RegionTypeAzure       = "AZURE"
	RegionTypeDatacenter  = "DATACENTER"
)

// ValidRegionType reports whether s is one of the advisory region
// type values.
func ValidRegionType(s string) bool {
	switch s {
	case RegionTypeAWS, RegionTypeGoogleCloud, RegionTypeAzure, RegionTypeDatacenter:
		return true
	default:
		return false
	}
}

// ReferenceResource links a device to the external system it was
// imported from.
type ReferenceResource struct {
	ResourceID   string `json:"resource_id,omitempty"`
	ExternalLink string `json:"external_link,omitempty"`
}

// Device is a single inventory record. DeviceTypeID is set at creation
// and has no field in the update contract, so it is immutable.
type Device struct {
	ID             string             `json:"device_id"`
	State          DeviceState        `json:"state"`
	Name           string             `json:"name,omitempty"`
	DeviceTypeID   string             `json:"device_type_id"`
	DeviceType     *DeviceType        `json:"device_type,omitempty"`
	RegionCode     string             `json:"region_code,omitempty"`
	RegionType     string             `json:"region_type,omitempty"`
	RegionRef      string             `json:"region_ref,omitempty"`
	ProjectID      string             `json:"project_id,omitempty"`
	Data           map[string]any     `json:"data"`
	Reference      *ReferenceResource `json:"reference,omitempty"`
	Tags           map[string]string  `json:"tags,omitempty"`
	CollectionInfo *CollectionInfo    `json:"collection_info,omitempty"`
	DomainID       string             `json:"domain_id"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// CreateDeviceParams carries the create contract. DeviceTypeID, Data
// and DomainID are required.
type CreateDeviceParams struct {
	DeviceTypeID string             `json:"device_type_id"`
	Name         string             `json:"name,omitempty"`
	Data         map[string]any     `json:"data"`
	Reference    *ReferenceResource `json:"reference,omitempty"`
	ProjectID    string             `json:"project_id,omitempty"`
	RegionCode   string             `json:"region_code,omitempty"`
	RegionType   string             `json:"region_type,omitempty"`
	Tags         map[string]string  `json:"tags,omitempty"`
	DomainID     string             `json:"domain_id"`
}

// UpdateDeviceParams carries the update contract. Nil/zero fields are
// left untouched; ReleaseProject and ReleaseRegion clear the
// corresponding references explicitly.
type UpdateDeviceParams struct {
	DeviceID       string             `json:"device_id"`
	Name           *string            `json:"name,omitempty"`
	State          *DeviceState       `json:"state,omitempty"`
	Data           map[string]any     `json:"data,omitempty"`
	Reference      *ReferenceResource `json:"reference,omitempty"`
	ReleaseProject bool               `json:"release_project,omitempty"`
	ReleaseRegion  bool               `json:"release_region,omitempty"`
	ProjectID      string             `json:"project_id,omitempty"`
	RegionCode     string             `json:"region_code,omitempty"`
	RegionType     string             `json:"region_type,omitempty"`
	Tags           map[string]string  `json:"tags,omitempty"`
	DomainID       string             `json:"domain_id"`
}

// PinDeviceDataParams marks data keys as protected from collector
// overwrites.
type PinDeviceDataParams struct {
	DeviceID string   `json:"device_id"`
	Keys     []string `json:"keys"`
	DomainID string   `json:"domain_id"`
}
