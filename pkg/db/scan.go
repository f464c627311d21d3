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

package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jihyungSong/inventory/pkg/models"
)

// pgxRow is the single-row scan surface shared by QueryRow results
// and Rows.
type pgxRow interface {
	Scan(dest ...any) error
}

// unmarshalDocs decodes the fetched JSONB columns into their typed
// destinations, skipping SQL NULLs.
func unmarshalDocs(docs map[*[]byte]any) error {
	for raw, dest := range docs {
		if len(*raw) == 0 {
			continue
		}

		if err := json.Unmarshal(*raw, dest); err != nil {
			return err
		}
	}

	return nil
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return m
}

func orEmptyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}

	return m
}

func orEmptyList(l []string) []string {
	if l == nil {
		return []string{}
	}

	return l
}

// stat executes a group-by/count aggregation and returns the rows
// keyed by the requested group-by keys plus "count".
func (d *DB) stat(ctx context.Context, table string, query *models.StatQuery, capability *models.Capability) ([]models.StatRow, error) {
	sql, args, err := buildStat(table, query, capability)
	if err != nil {
		return nil, err
	}

	rows, err := d.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()

	var results []models.StatRow

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToScan, err)
		}

		row := make(models.StatRow, len(fields))
		for i, field := range fields {
			row[field.Name] = values[i]
		}

		results = append(results, row)
	}

	return results, rows.Err()
}
