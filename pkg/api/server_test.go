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
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jihyungSong/inventory/pkg/db"
	"github.com/jihyungSong/inventory/pkg/devicetype"
	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/identity"
	"github.com/jihyungSong/inventory/pkg/inventory"
	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/models"
)

const testDomain = "domain-1"

type apiFixture struct {
	db       *db.MockService
	identity *identity.MockResolver
	router   http.Handler
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	mockIdentity := identity.NewMockResolver(ctrl)
	log := logger.NewTestLogger()

	types := devicetype.NewManager(mockDB, log)
	devices := inventory.NewDeviceManager(mockDB, types, mockIdentity, log)
	templates := inventory.NewDeviceTemplateManager(mockDB, types, log)

	return &apiFixture{
		db:       mockDB,
		identity: mockIdentity,
		router:   NewServer(types, devices, templates, log).Router(),
	}
}

func (f *apiFixture) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateDeviceType(t *testing.T) {
	f := newAPIFixture(t)

	f.db.EXPECT().CreateDeviceType(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, dt *models.DeviceType) error {
			dt.ID = "device-type-aa11bb22cc33"
			return nil
		})

	rec := f.do(t, http.MethodPost, "/v1/device-types",
		fmt.Sprintf(`{"name": "server", "domain_id": %q}`, testDomain), nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.DeviceType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "device-type-aa11bb22cc33", created.ID)
}

func TestCreateDeviceTypeMissingName(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/device-types",
		fmt.Sprintf(`{"domain_id": %q}`, testDomain), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_REQUIRED_FIELD", errorCode(t, rec))
}

func TestGetDeviceNotFound(t *testing.T) {
	f := newAPIFixture(t)

	f.db.EXPECT().GetDevice(gomock.Any(), "device-missing", testDomain).Return(nil,
		&errdefs.NotFoundError{Entity: "device", ID: "device-missing", Domain: testDomain})

	rec := f.do(t, http.MethodGet, "/v1/devices/device-missing?domain_id="+testDomain, "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestDeleteReferencedDeviceType(t *testing.T) {
	f := newAPIFixture(t)

	f.db.EXPECT().DeleteDeviceType(gomock.Any(), "device-type-parent", testDomain).Return(
		fmt.Errorf("device_type device-type-parent: %w", errdefs.ErrReferentialIntegrity))

	rec := f.do(t, http.MethodDelete, "/v1/device-types/device-type-parent?domain_id="+testDomain, "", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "REFERENCED", errorCode(t, rec))
}

func TestSearchDevices(t *testing.T) {
	f := newAPIFixture(t)

	f.db.EXPECT().QueryDevices(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, query *models.Query) ([]*models.Device, int, error) {
			assert.Equal(t, testDomain, query.Domain)
			assert.Equal(t, "server", query.Keyword)

			return []*models.Device{{ID: "device-000000000001", DomainID: testDomain}}, 7, nil
		})

	rec := f.do(t, http.MethodPost, "/v1/devices/search",
		fmt.Sprintf(`{"query": {"keyword": "server"}, "domain_id": %q}`, testDomain), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results    []*models.Device `json:"results"`
		TotalCount int              `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 7, resp.TotalCount)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "device-000000000001", resp.Results[0].ID)
}

func TestPinDeviceData(t *testing.T) {
	f := newAPIFixture(t)
	device := &models.Device{
		ID:       "device-000000000001",
		DomainID: testDomain,
		CollectionInfo: &models.CollectionInfo{
			State:         models.CollectionStateActive,
			UpdateHistory: map[string]models.KeyHistory{},
		},
	}

	f.db.EXPECT().GetDevice(gomock.Any(), device.ID, testDomain).Return(device, nil)
	f.db.EXPECT().UpdateDevice(gomock.Any(), device.ID, testDomain, gomock.Any()).Return(device, nil)

	rec := f.do(t, http.MethodPost, "/v1/devices/"+device.ID+"/pin",
		fmt.Sprintf(`{"keys": ["ip"], "domain_id": %q}`, testDomain), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateDeviceUsesProjectHeader(t *testing.T) {
	f := newAPIFixture(t)

	f.db.EXPECT().GetDeviceType(gomock.Any(), "device-type-server", testDomain).Return(
		&models.DeviceType{ID: "device-type-server", Name: "server", DomainID: testDomain}, nil)
	f.db.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, device *models.Device) error {
			device.ID = "device-000000000001"

			assert.Equal(t, "project-implicit", device.ProjectID)

			return nil
		})
	f.db.EXPECT().GetDevice(gomock.Any(), "device-000000000001", testDomain).Return(
		&models.Device{ID: "device-000000000001", DomainID: testDomain}, nil)

	rec := f.do(t, http.MethodPost, "/v1/devices",
		fmt.Sprintf(`{"device_type_id": "device-type-server", "data": {}, "domain_id": %q}`, testDomain),
		map[string]string{"X-Project-ID": "project-implicit"})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestInvalidJSONBody(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/devices", `{"device_type_id":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, rec))
}

func TestCreateDeviceRejectsUnknownRegionType(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/devices",
		fmt.Sprintf(`{"device_type_id": "device-type-server", "data": {}, "region_code": "kr-east-1", "region_type": "OPENSTACK", "domain_id": %q}`, testDomain), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, rec))
}

func TestGetDeviceOnlyProjection(t *testing.T) {
	f := newAPIFixture(t)

	f.db.EXPECT().GetDevice(gomock.Any(), "device-000000000001", testDomain).Return(&models.Device{
		ID:       "device-000000000001",
		Name:     "edge-01",
		Data:     map[string]any{"ip": "10.0.0.4"},
		DomainID: testDomain,
	}, nil)

	rec := f.do(t, http.MethodGet,
		"/v1/devices/device-000000000001?domain_id="+testDomain+"&only=device_id,name", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, map[string]any{
		"device_id": "device-000000000001",
		"name":      "edge-01",
	}, doc)
}

func TestMergeCollectorData(t *testing.T) {
	f := newAPIFixture(t)
	device := &models.Device{
		ID:       "device-000000000001",
		Data:     map[string]any{"ip": "10.0.0.4"},
		DomainID: testDomain,
		CollectionInfo: &models.CollectionInfo{
			State:         models.CollectionStateActive,
			UpdateHistory: map[string]models.KeyHistory{},
		},
	}

	f.db.EXPECT().GetDevice(gomock.Any(), device.ID, testDomain).Return(device, nil)
	f.db.EXPECT().UpdateDevice(gomock.Any(), device.ID, testDomain, gomock.Any()).Return(device, nil)

	rec := f.do(t, http.MethodPost, "/v1/devices/"+device.ID+"/data",
		fmt.Sprintf(`{"data": {"ip": "10.0.0.9"}, "domain_id": %q}`, testDomain), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
