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
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jihyungSong/inventory/pkg/models"
)

// columnExpr maps a contract key onto a SQL expression. Dotted keys
// address into JSONB documents, e.g. "reference.resource_id" becomes
// "reference ->> 'resource_id'". Keys are validated against the
// entity capability before they reach this point.
func columnExpr(key string) string {
	if i := strings.Index(key, "."); i >= 0 {
		return fmt.Sprintf("(%s ->> '%s')", key[:i], key[i+1:])
	}

	return key
}

// buildWhere renders the WHERE clause for a domain-scoped query:
// exact-match filters restricted to the capability's filter fields,
// plus keyword search spanning the capability's keyword fields.
func buildWhere(domain string, filters []models.Filter, keyword string, capability *models.Capability) (string, []any, error) {
	var (
		clauses []string
		args    []any
	)

	if domain != "" {
		args = append(args, domain)
		clauses = append(clauses, fmt.Sprintf("domain_id = $%d", len(args)))
	}

	for _, filter := range filters {
		if !capability.CanFilter(filter.Key) {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidFilterKey, filter.Key)
		}

		args = append(args, fmt.Sprint(filter.Value))
		clauses = append(clauses, fmt.Sprintf("%s = $%d", columnExpr(filter.Key), len(args)))
	}

	if keyword != "" {
		args = append(args, "%"+keyword+"%")

		matches := make([]string, 0, len(capability.Keyword))
		for _, key := range capability.Keyword {
			matches = append(matches, fmt.Sprintf("%s ILIKE $%d", columnExpr(key), len(args)))
		}

		clauses = append(clauses, "("+strings.Join(matches, " OR ")+")")
	}

	if len(clauses) == 0 {
		return "", args, nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// buildOrder renders ORDER BY, falling back to the entity's default
// ordering. Only plain exact-match columns and timestamps may sort.
func buildOrder(sort models.Sort, capability *models.Capability) (string, error) {
	key := sort.Key
	if key == "" {
		key = capability.Ordering
	}

	allowed := key == capability.Ordering || key == "created_at" || key == "updated_at" ||
		(capability.CanFilter(key) && !strings.Contains(key, "."))
	if !allowed {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
	}

	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}

	return fmt.Sprintf(" ORDER BY %s %s", key, direction), nil
}

func buildPage(page models.Page) string {
	var sb strings.Builder

	if page.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", page.Limit)
	}

	if page.Start > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", page.Start)
	}

	return sb.String()
}

// buildUpdate renders an UPDATE for the given partial fields, keyed by
// column name and validated against the capability's updatable set.
// A nil value writes SQL NULL; values for JSONB columns are marshaled.
func buildUpdate(table, idColumn, id, domain string, fields map[string]any, capability *models.Capability, jsonbColumns map[string]bool, touchUpdatedAt bool) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrEmptyUpdate
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}

	sort.Strings(columns)

	args := []any{id, domain}
	sets := make([]string, 0, len(fields)+1)

	for _, column := range columns {
		value := fields[column]
		if !capability.CanUpdate(column) {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidUpdateKey, column)
		}

		if value == nil {
			sets = append(sets, column+" = NULL")
			continue
		}

		if jsonbColumns[column] {
			raw, err := json.Marshal(value)
			if err != nil {
				return "", nil, err
			}

			value = raw
		}

		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if touchUpdatedAt {
		sets = append(sets, "updated_at = now()")
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1 AND domain_id = $2",
		table, strings.Join(sets, ", "), idColumn)

	return sql, args, nil
}

// buildStat renders a group-by/count aggregation. Group-by keys are
// restricted to the entity's exact-match fields.
func buildStat(table string, query *models.StatQuery, capability *models.Capability) (string, []any, error) {
	if len(query.GroupBy) == 0 {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidGroupByKey, "")
	}

	groups := make([]string, 0, len(query.GroupBy))

	for _, key := range query.GroupBy {
		if !capability.CanFilter(key) {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidGroupByKey, key)
		}

		groups = append(groups, fmt.Sprintf("%s AS %q", columnExpr(key), key))
	}

	where, args, err := buildWhere(query.Domain, query.Filter, "", capability)
	if err != nil {
		return "", nil, err
	}

	groupExprs := make([]string, 0, len(query.GroupBy))
	for _, key := range query.GroupBy {
		groupExprs = append(groupExprs, columnExpr(key))
	}

	sql := fmt.Sprintf("SELECT %s, COUNT(*) AS count FROM %s%s GROUP BY %s ORDER BY count DESC",
		strings.Join(groups, ", "), table, where, strings.Join(groupExprs, ", "))

	return sql, args, nil
}
