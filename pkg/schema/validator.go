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

// Package schema validates device-type schema documents against the
// JSON-Schema draft-07 meta-schema.
package schema

import (
	"github.com/xeipuuv/gojsonschema"

	"github.com/jihyungSong/inventory/pkg/errdefs"
)

// Validator checks that a document is a well-formed JSON-Schema. The
// zero value is ready to use.
type Validator struct{}

// Validate returns an InvalidSchemaError when doc does not compile as
// a draft-07 schema. An empty document is a valid schema. Device data
// is never validated against these schemas at write time; they are
// descriptive.
func (Validator) Validate(doc map[string]any) error {
	if doc == nil {
		doc = map[string]any{}
	}

	sl := gojsonschema.NewSchemaLoader()
	sl.Draft = gojsonschema.Draft7
	sl.Validate = true

	if _, err := sl.Compile(gojsonschema.NewGoLoader(doc)); err != nil {
		return &errdefs.InvalidSchemaError{Key: "schema"}
	}

	return nil
}
