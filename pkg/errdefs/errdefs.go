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

// Package errdefs defines the error taxonomy shared by every manager.
// Typed errors carry the offending key/entity so callers can log and
// surface them verbatim; each typed error matches its sentinel through
// errors.Is.
package errdefs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist
	// in the requested domain.
	ErrNotFound = errors.New("not found")

	// ErrMissingRequiredField is returned when a required parameter is absent.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidSchema is returned when a schema document fails
	// structural validation.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrDuplicateSchemaKey is returned when a child schema re-declares
	// a property already declared by an ancestor.
	ErrDuplicateSchemaKey = errors.New("duplicate schema key")

	// ErrSchemaTypeChanged is returned on an attempt to retype an
	// existing schema property.
	ErrSchemaTypeChanged = errors.New("schema property type changed")

	// ErrReferentialIntegrity is returned when a delete is blocked by
	// live references.
	ErrReferentialIntegrity = errors.New("referenced by other resources")

	// ErrMalformedRecord is returned when a stored record lacks its
	// expected embedded collection info.
	ErrMalformedRecord = errors.New("malformed record")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// NotFoundError reports which entity/id/domain failed to resolve.
type NotFoundError struct {
	Entity string
	ID     string
	Domain string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in domain %q", e.Entity, e.ID, e.Domain)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// MissingRequiredFieldError names the absent parameter.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

func (e *MissingRequiredFieldError) Is(target error) bool { return target == ErrMissingRequiredField }

// InvalidSchemaError names the parameter whose schema failed validation.
type InvalidSchemaError struct {
	Key string
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("schema format is invalid (key = %s)", e.Key)
}

func (e *InvalidSchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// DuplicateSchemaKeyError names the property declared twice in one
// inheritance chain.
type DuplicateSchemaKeyError struct {
	Key string
}

func (e *DuplicateSchemaKeyError) Error() string {
	return fmt.Sprintf("schema property %q duplicates an ancestor device type schema", e.Key)
}

func (e *DuplicateSchemaKeyError) Is(target error) bool { return target == ErrDuplicateSchemaKey }

// SchemaTypeChangedError names the retyped property and the rejected type.
type SchemaTypeChangedError struct {
	Key  string
	Type string
}

func (e *SchemaTypeChangedError) Error() string {
	return fmt.Sprintf("cannot modify data type of schema property (key = %s, type = %s)", e.Key, e.Type)
}

func (e *SchemaTypeChangedError) Is(target error) bool { return target == ErrSchemaTypeChanged }
