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

func (s *Server) createDevice(w http.ResponseWriter, r *http.Request) {
	var params models.CreateDeviceParams
	if err := decode(r, &params); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	if params.RegionType != "" && !models.ValidRegionType(params.RegionType) {
		s.badRequest(w, "unknown region_type")
		return
	}

	device, err := s.devices.Create(r.Context(), &params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, device)
}

func (s *Server) getDevice(w http.ResponseWriter, r *http.Request) {
	device, err := s.devices.Get(r.Context(), chi.URLParam(r, "id"), domainFrom(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, projectFields(device, onlyFrom(r)))
}

func (s *Server) updateDevice(w http.ResponseWriter, r *http.Request) {
	var params models.UpdateDeviceParams
	if err := decode(r, &params); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	if params.RegionType != "" && !models.ValidRegionType(params.RegionType) {
		s.badRequest(w, "unknown region_type")
		return
	}

	params.DeviceID = chi.URLParam(r, "id")

	device, err := s.devices.Update(r.Context(), &params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, device)
}

func (s *Server) deleteDevice(w http.ResponseWriter, r *http.Request) {
	if err := s.devices.Delete(r.Context(), chi.URLParam(r, "id"), domainFrom(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) pinDeviceData(w http.ResponseWriter, r *http.Request) {
	var params models.PinDeviceDataParams
	if err := decode(r, &params); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	params.DeviceID = chi.URLParam(r, "id")

	device, err := s.devices.Pin(r.Context(), &params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, device)
}

type mergeDataRequest struct {
	Data     map[string]any `json:"data"`
	DomainID string         `json:"domain_id"`
}

// mergeDeviceData is the collector-facing ingestion path.
func (s *Server) mergeDeviceData(w http.ResponseWriter, r *http.Request) {
	var req mergeDataRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	if req.Data == nil {
		s.badRequest(w, "data is required")
		return
	}

	device, err := s.devices.MergeCollectorData(r.Context(), chi.URLParam(r, "id"), req.DomainID, req.Data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, device)
}

func (s *Server) searchDevices(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	req.Query.Domain = req.DomainID

	devices, total, err := s.devices.List(r.Context(), &req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Results: devices, TotalCount: total})
}

func (s *Server) statDevices(w http.ResponseWriter, r *http.Request) {
	var req statRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	req.Query.Domain = req.DomainID

	rows, err := s.devices.Stat(r.Context(), &req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Results: rows, TotalCount: len(rows)})
}
