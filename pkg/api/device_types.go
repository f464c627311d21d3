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

func (s *Server) createDeviceType(w http.ResponseWriter, r *http.Request) {
	var params models.CreateDeviceTypeParams
	if err := decode(r, &params); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	deviceType, err := s.deviceTypes.Create(r.Context(), &params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, deviceType)
}

func (s *Server) getDeviceType(w http.ResponseWriter, r *http.Request) {
	deviceType, err := s.deviceTypes.Get(r.Context(), chi.URLParam(r, "id"), domainFrom(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, projectFields(deviceType, onlyFrom(r)))
}

func (s *Server) updateDeviceType(w http.ResponseWriter, r *http.Request) {
	var params models.UpdateDeviceTypeParams
	if err := decode(r, &params); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	params.DeviceTypeID = chi.URLParam(r, "id")

	deviceType, err := s.deviceTypes.Update(r.Context(), &params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deviceType)
}

func (s *Server) deleteDeviceType(w http.ResponseWriter, r *http.Request) {
	if err := s.deviceTypes.Delete(r.Context(), chi.URLParam(r, "id"), domainFrom(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) searchDeviceTypes(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	req.Query.Domain = req.DomainID

	deviceTypes, total, err := s.deviceTypes.List(r.Context(), &req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Results: deviceTypes, TotalCount: total})
}

func (s *Server) statDeviceTypes(w http.ResponseWriter, r *http.Request) {
	var req statRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	req.Query.Domain = req.DomainID

	rows, err := s.deviceTypes.Stat(r.Context(), &req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Results: rows, TotalCount: len(rows)})
}
