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

// Package api exposes the catalog over HTTP. Routing is chi, payloads
// are JSON, and domain errors map onto conventional statuses.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jihyungSong/inventory/pkg/devicetype"
	"github.com/jihyungSong/inventory/pkg/inventory"
	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/metrics"
)

// Server wires the entity managers to HTTP handlers.
type Server struct {
	deviceTypes *devicetype.Manager
	devices     *inventory.DeviceManager
	templates   *inventory.DeviceTemplateManager
	log         logger.Logger
}

func NewServer(
	deviceTypes *devicetype.Manager,
	devices *inventory.DeviceManager,
	templates *inventory.DeviceTemplateManager,
	log logger.Logger,
) *Server {
	return &Server{
		deviceTypes: deviceTypes,
		devices:     devices,
		templates:   templates,
		log:         log.WithComponent("api"),
	}
}

// Router builds the HTTP surface.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(metrics.Middleware)
	r.Use(implicitProject)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/device-types", func(r chi.Router) {
			r.Post("/", s.createDeviceType)
			r.Post("/search", s.searchDeviceTypes)
			r.Post("/stat", s.statDeviceTypes)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getDeviceType)
				r.Put("/", s.updateDeviceType)
				r.Delete("/", s.deleteDeviceType)
			})
		})

		r.Route("/devices", func(r chi.Router) {
			r.Post("/", s.createDevice)
			r.Post("/search", s.searchDevices)
			r.Post("/stat", s.statDevices)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getDevice)
				r.Put("/", s.updateDevice)
				r.Delete("/", s.deleteDevice)
				r.Post("/pin", s.pinDeviceData)
				r.Post("/data", s.mergeDeviceData)
			})
		})

		r.Route("/device-templates", func(r chi.Router) {
			r.Post("/", s.createDeviceTemplate)
			r.Post("/search", s.searchDeviceTemplates)
			r.Post("/stat", s.statDeviceTemplates)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getDeviceTemplate)
				r.Put("/", s.updateDeviceTemplate)
				r.Delete("/", s.deleteDeviceTemplate)
			})
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Handled request")
	})
}

// implicitProject lifts the caller-scoped project header into the
// request context. It applies only when the payload has no explicit
// project reference.
func implicitProject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if projectID := r.Header.Get("X-Project-ID"); projectID != "" {
			r = r.WithContext(inventory.WithImplicitProject(r.Context(), projectID))
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
