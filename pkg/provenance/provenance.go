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

// Package provenance is the collection provenance engine: pure
// functions that compute a device's next data document and collection
// info from the previous record and an incoming partial update. No
// storage access and no hidden mutation happen here, so merge
// semantics are unit-testable in isolation.
package provenance

import (
	"sort"
	"time"

	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/models"
)

// Initialize builds the collection info for a freshly created device.
// Every top-level key of data, minus excluded identifier keys, is
// recorded with manual origin: creation is a user-initiated write.
func Initialize(data map[string]any, exclude []string, now time.Time) models.CollectionInfo {
	info := models.CollectionInfo{
		State:         models.CollectionStateActive,
		PinnedKeys:    []string{},
		UpdateHistory: make(map[string]models.KeyHistory, len(data)),
	}

	excluded := toSet(exclude)

	for key := range data {
		if _, skip := excluded[key]; skip {
			continue
		}

		info.UpdateHistory[key] = models.KeyHistory{Origin: models.OriginManual, UpdatedAt: now}
	}

	return info
}

// Merge combines an incoming partial data update with the previous
// record. Pinned keys keep their previous value no matter what the
// incoming update says; unpinned keys take the incoming value and
// have their provenance refreshed to the given origin. Keys absent
// from the incoming update are left untouched, so a partial update
// never deletes fields implicitly.
//
// Merge fails only when the previous record lacks its collection info
// substructure, which the device lifecycle should make impossible.
func Merge(incoming map[string]any, previous *models.Device, exclude []string, origin models.Origin, now time.Time) (map[string]any, models.CollectionInfo, error) {
	if previous == nil || previous.CollectionInfo == nil {
		return nil, models.CollectionInfo{}, errdefs.ErrMalformedRecord
	}

	info := previous.CollectionInfo.Clone()

	merged := make(map[string]any, len(previous.Data)+len(incoming))
	for key, value := range previous.Data {
		merged[key] = value
	}

	excluded := toSet(exclude)

	for key, value := range incoming {
		if _, skip := excluded[key]; skip {
			continue
		}

		if info.IsPinned(key) {
			continue
		}

		merged[key] = value
		info.UpdateHistory[key] = models.KeyHistory{Origin: origin, UpdatedAt: now}
	}

	return merged, info, nil
}

// Pin adds keys to the pinned set without touching their values.
// Re-pinning an already-pinned key is a no-op; the resulting set is
// sorted and duplicate-free.
func Pin(keys []string, info models.CollectionInfo) models.CollectionInfo {
	out := info.Clone()

	pinned := toSet(out.PinnedKeys)
	for _, key := range keys {
		pinned[key] = struct{}{}
	}

	out.PinnedKeys = make([]string, 0, len(pinned))
	for key := range pinned {
		out.PinnedKeys = append(out.PinnedKeys, key)
	}

	sort.Strings(out.PinnedKeys)

	return out
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}

	return set
}
