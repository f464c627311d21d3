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

// CollectionState says whether the owning collector run still asserts
// this record.
type CollectionState string

const (
	CollectionStateActive       CollectionState = "ACTIVE"
	CollectionStateDisconnected CollectionState = "DISCONNECTED"
)

// Origin is the actor class that last set a data field.
type Origin string

const (
	OriginManual    Origin = "MANUAL"
	OriginCollector Origin = "COLLECTOR"
)

// KeyHistory records when a top-level data key was last touched and by
// which actor class.
type KeyHistory struct {
	Origin    Origin    `json:"origin"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollectionInfo tracks per-key provenance for a device's data map.
// Keys listed in PinnedKeys are never altered by collector-originated
// merges; pins are one-directional, there is no unpin operation.
type CollectionInfo struct {
	State         CollectionState       `json:"state"`
	PinnedKeys    []string              `json:"pinned_keys"`
	UpdateHistory map[string]KeyHistory `json:"update_history"`
}

// Clone returns a deep copy so merge results never alias the stored record.
func (c *CollectionInfo) Clone() CollectionInfo {
	out := CollectionInfo{
		State:         c.State,
		PinnedKeys:    make([]string, len(c.PinnedKeys)),
		UpdateHistory: make(map[string]KeyHistory, len(c.UpdateHistory)),
	}
	copy(out.PinnedKeys, c.PinnedKeys)

	for k, v := range c.UpdateHistory {
		out.UpdateHistory[k] = v
	}

	return out
}

// IsPinned reports whether key is protected from collector overwrites.
func (c *CollectionInfo) IsPinned(key string) bool {
	for _, k := range c.PinnedKeys {
		if k == key {
			return true
		}
	}

	return false
}
