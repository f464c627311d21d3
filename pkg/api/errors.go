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

package api

import (
	"errors"
	"net/http"

	"github.com/jihyungSong/inventory/pkg/errdefs"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps domain errors onto HTTP statuses. Anything
// unrecognized is a 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, errdefs.ErrReferentialIntegrity):
		return http.StatusConflict, "REFERENCED"
	case errors.Is(err, errdefs.ErrMissingRequiredField):
		return http.StatusBadRequest, "MISSING_REQUIRED_FIELD"
	case errors.Is(err, errdefs.ErrInvalidSchema):
		return http.StatusBadRequest, "INVALID_SCHEMA"
	case errors.Is(err, errdefs.ErrDuplicateSchemaKey):
		return http.StatusBadRequest, "DUPLICATE_SCHEMA_KEY"
	case errors.Is(err, errdefs.ErrSchemaTypeChanged):
		return http.StatusBadRequest, "SCHEMA_TYPE_CHANGED"
	case errors.Is(err, errdefs.ErrMalformedRecord):
		return http.StatusBadRequest, "MALFORMED_RECORD"
	case errors.Is(err, errdefs.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, errdefs.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)

	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	}

	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: err.Error()}})
}
