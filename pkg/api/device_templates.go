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
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jihyungSong/inventory/pkg/models"
)

func (s *Server) createDeviceTemplate(w http.ResponseWriter, r *http.Request) {
	var params models.CreateDeviceTemplateParams
	if err := decode(r, &params); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	template, err := s.templates.Create(r.Context(), &params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, template)
}

func (s *Server) getDeviceTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := s.templates.Get(r.Context(), chi.URLParam(r, "id"), domainFrom(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, projectFields(template, onlyFrom(r)))
}

func (s *Server) updateDeviceTemplate(w http.ResponseWriter, r *http.Request) {
	var params models.UpdateDeviceTemplateParams
	if err := decode(r, &params); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	params.DeviceTemplateID = chi.URLParam(r, "id")

	template, err := s.templates.Update(r.Context(), &params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, template)
}

func (s *Server) deleteDeviceTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.templates.Delete(r.Context(), chi.URLParam(r, "id"), domainFrom(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) searchDeviceTemplates(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	req.Query.Domain = req.DomainID

	templates, total, err := s.templates.List(r.Context(), &req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Results: templates, TotalCount: total})
}

func (s *Server) statDeviceTemplates(w http.ResponseWriter, r *http.Request) {
	var req statRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	req.Query.Domain = req.DomainID

	rows, err := s.templates.Stat(r.Context(), &req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Results: rows, TotalCount: len(rows)})
}
