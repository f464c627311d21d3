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
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jihyungSong/inventory/pkg/models"
)

const maxBodyBytes = 1 << 20

type searchRequest struct {
	Query    models.Query `json:"query"`
	DomainID string       `json:"domain_id"`
}

type statRequest struct {
	Query    models.StatQuery `json:"query"`
	DomainID string           `json:"domain_id"`
}

type listResponse struct {
	Results    any `json:"results"`
	TotalCount int `json:"total_count"`
}

func decode(r *http.Request, dst any) error {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}

	return json.Unmarshal(body, dst)
}

// onlyFrom reads the get-projection parameter: a comma-separated list
// of top-level fields to return.
func onlyFrom(r *http.Request) []string {
	raw := r.URL.Query().Get("only")
	if raw == "" {
		return nil
	}

	fields := strings.Split(raw, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

// projectFields reduces an entity document to the requested top-level
// fields. With no fields requested the entity passes through intact.
func projectFields(entity any, only []string) any {
	if len(only) == 0 {
		return entity
	}

	raw, err := json.Marshal(entity)
	if err != nil {
		return entity
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entity
	}

	out := make(map[string]any, len(only))

	for _, key := range only {
		if value, ok := doc[key]; ok {
			out[key] = value
		}
	}

	return out
}

// domainFrom reads the domain scoping for requests without a body.
func domainFrom(r *http.Request) string {
	if domain := r.URL.Query().Get("domain_id"); domain != "" {
		return domain
	}

	return r.Header.Get("X-Domain-ID")
}

func (s *Server) badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{Code: "BAD_REQUEST", Message: message}})
}
