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

// Capability is the static per-entity descriptor driving generic query
// and update behavior: which fields an update may touch, which fields
// a filter may match exactly, which fields keyword search spans, and
// the minimal projection. Resolved at compile time, never introspected.
type Capability struct {
	Updatable []string
	Exact     []string
	Keyword   []string
	Minimal   []string
	Ordering  string
}

// CanUpdate reports whether field is part of the update contract.
func (c *Capability) CanUpdate(field string) bool { return contains(c.Updatable, field) }

// CanFilter reports whether field may be used as an exact-match filter.
func (c *Capability) CanFilter(field string) bool { return contains(c.Exact, field) }

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}

	return false
}

// DeviceCapability mirrors the device collection's index and contract
// surface. collection_info and region_ref are internal write targets
// of the merge and region paths, not part of the caller-facing update
// contract, but the persistence layer treats them as updatable.
var DeviceCapability = Capability{
	Updatable: []string{
		"name", "state", "data", "reference", "project_id",
		"region_code", "region_type", "region_ref", "tags", "collection_info",
	},
	Exact: []string{
		"device_id", "state", "device_type_id", "region_code", "region_type",
		"project_id", "reference.resource_id", "domain_id", "collection_info.state",
	},
	Keyword: []string{"device_id", "device_type_id", "project_id", "reference.resource_id"},
	Minimal: []string{"device_id", "state", "name", "reference", "domain_id"},
	Ordering: "name",
}

var DeviceTypeCapability = Capability{
	Updatable: []string{"metadata", "template", "labels", "tags"},
	Exact:     []string{"device_type_id", "name", "parent_device_type_id", "domain_id"},
	Keyword:   []string{"device_type_id", "name"},
	Minimal:   []string{"device_type_id", "name", "domain_id"},
	Ordering:  "name",
}

var DeviceTemplateCapability = Capability{
	Updatable: []string{"name", "data", "tags"},
	Exact:     []string{"device_template_id", "name", "device_type_id", "domain_id"},
	Keyword:   []string{"device_template_id", "name"},
	Minimal:   []string{"device_template_id", "name", "domain_id"},
	Ordering:  "name",
}
