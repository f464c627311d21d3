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
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jihyungSong/inventory/pkg/errdefs"
)

var (
	ErrFailedOpenDB   = errors.New("failed to open database")
	ErrFailedToQuery  = errors.New("failed to query")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToUpdate = errors.New("failed to update")
	ErrFailedToDelete = errors.New("failed to delete")
	ErrFailedToScan   = errors.New("failed to scan")
	ErrFailedToInit   = errors.New("failed to initialize schema")

	ErrInvalidFilterKey  = errors.New("filter key is not allowed for this entity")
	ErrInvalidSortKey    = errors.New("sort key is not allowed for this entity")
	ErrInvalidUpdateKey  = errors.New("update field is not allowed for this entity")
	ErrInvalidGroupByKey = errors.New("group-by key is not allowed for this entity")
	ErrEmptyUpdate       = errors.New("update carries no fields")
	ErrUnknownEntity     = errors.New("unknown entity")
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateErr maps low-level pgx errors onto the shared taxonomy:
// missing rows become NotFound, referential-integrity delete rules
// surface as ErrReferentialIntegrity.
func translateErr(err error, entity, id, domain string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &errdefs.NotFoundError{Entity: entity, ID: id, Domain: domain}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s %q", errdefs.ErrReferentialIntegrity, entity, id)
	}

	return err
}
