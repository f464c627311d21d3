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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollectionInfoCloneDoesNotAlias(t *testing.T) {
	original := CollectionInfo{
		State:      CollectionStateActive,
		PinnedKeys: []string{"ip"},
		UpdateHistory: map[string]KeyHistory{
			"ip": {Origin: OriginManual, UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	clone := original.Clone()
	clone.PinnedKeys[0] = "cpu"
	clone.UpdateHistory["ip"] = KeyHistory{Origin: OriginCollector}

	assert.Equal(t, []string{"ip"}, original.PinnedKeys)
	assert.Equal(t, OriginManual, original.UpdateHistory["ip"].Origin)
}

func TestIsPinned(t *testing.T) {
	info := CollectionInfo{PinnedKeys: []string{"ip", "cpu"}}

	assert.True(t, info.IsPinned("ip"))
	assert.False(t, info.IsPinned("disk"))
}

func TestValidRegionType(t *testing.T) {
	for _, valid := range []string{RegionTypeAWS, RegionTypeGoogleCloud, RegionTypeAzure, RegionTypeDatacenter} {
		assert.True(t, ValidRegionType(valid), valid)
	}

	assert.False(t, ValidRegionType("OPENSTACK"))
	assert.False(t, ValidRegionType(""))
}
