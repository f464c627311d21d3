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

// Filter is a single exact-match condition. Keys are checked against
// the entity's capability descriptor before being executed.
type Filter struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Page is offset pagination. A zero Limit means no limit.
type Page struct {
	Start int `json:"start,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// Sort names the ordering field. When Key is empty the entity's
// default ordering applies.
type Sort struct {
	Key  string `json:"key,omitempty"`
	Desc bool   `json:"desc,omitempty"`
}

// Query is the list contract shared by every entity.
type Query struct {
	Filter  []Filter `json:"filter,omitempty"`
	Keyword string   `json:"keyword,omitempty"`
	Page    Page     `json:"page,omitempty"`
	Sort    Sort     `json:"sort,omitempty"`
	Minimal bool     `json:"minimal,omitempty"`
	Domain  string   `json:"domain_id,omitempty"`
}

// StatQuery is a group-by/count aggregation over an entity collection.
type StatQuery struct {
	GroupBy []string `json:"group_by"`
	Filter  []Filter `json:"filter,omitempty"`
	Domain  string   `json:"domain_id,omitempty"`
}

// StatRow is one aggregated result row: the group-by values plus a
// "count" entry.
type StatRow map[string]any
