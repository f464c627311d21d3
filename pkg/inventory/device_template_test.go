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

package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jihyungSong/inventory/pkg/db"
	"github.com/jihyungSong/inventory/pkg/devicetype"
	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/models"
	"github.com/jihyungSong/inventory/pkg/tx"
)

type templateFixture struct {
	db      *db.MockService
	manager *DeviceTemplateManager
}

func newTemplateFixture(t *testing.T) *templateFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	log := logger.NewTestLogger()
	types := devicetype.NewManager(mockDB, log)

	return &templateFixture{
		db:      mockDB,
		manager: NewDeviceTemplateManager(mockDB, types, log),
	}
}

func TestCreateDeviceTemplate(t *testing.T) {
	f := newTemplateFixture(t)
	ctx := context.Background()

	f.db.EXPECT().GetDeviceType(ctx, "device-type-server", testDomain).Return(serverType(), nil)
	f.db.EXPECT().CreateDeviceTemplate(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, template *models.DeviceTemplate) error {
			template.ID = "device-template-aa11bb22cc33"
			return nil
		})

	created, err := f.manager.Create(ctx, &models.CreateDeviceTemplateParams{
		Name:         "web preset",
		DeviceTypeID: "device-type-server",
		Data:         map[string]any{"image": "ubuntu-24.04"},
		DomainID:     testDomain,
	})
	require.NoError(t, err)

	assert.Equal(t, "device-template-aa11bb22cc33", created.ID)
	require.NotNil(t, created.DeviceType)
	assert.Equal(t, "server", created.DeviceType.Name)
}

func TestCreateDeviceTemplateUnknownType(t *testing.T) {
	f := newTemplateFixture(t)
	ctx := context.Background()

	f.db.EXPECT().GetDeviceType(ctx, "device-type-missing", testDomain).Return(nil,
		&errdefs.NotFoundError{Entity: "device_type", ID: "device-type-missing", Domain: testDomain})

	_, err := f.manager.Create(ctx, &models.CreateDeviceTemplateParams{
		Name:         "preset",
		DeviceTypeID: "device-type-missing",
		Data:         map[string]any{},
		DomainID:     testDomain,
	})

	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestUpdateDeviceTemplateOverwritesData(t *testing.T) {
	f := newTemplateFixture(t)
	ctx := context.Background()
	template := &models.DeviceTemplate{
		ID:       "device-template-aa11bb22cc33",
		Name:     "web preset",
		Data:     map[string]any{"image": "ubuntu-22.04", "cpu": 2},
		DomainID: testDomain,
	}

	var fields map[string]any

	f.db.EXPECT().GetDeviceTemplate(ctx, template.ID, testDomain).Return(template, nil)
	f.db.EXPECT().UpdateDeviceTemplate(ctx, template.ID, testDomain, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, got map[string]any) (*models.DeviceTemplate, error) {
			fields = got
			return template, nil
		})

	_, err := f.manager.Update(ctx, &models.UpdateDeviceTemplateParams{
		DeviceTemplateID: template.ID,
		Data:             map[string]any{"image": "ubuntu-24.04"},
		DomainID:         testDomain,
	})
	require.NoError(t, err)

	// Template data replaces wholesale, no per-key merging.
	assert.Equal(t, map[string]any{"image": "ubuntu-24.04"}, fields["data"])
}

func TestUpdateDeviceTemplateRollsBackOnFailure(t *testing.T) {
	f := newTemplateFixture(t)
	ctx := context.Background()
	template := &models.DeviceTemplate{
		ID:       "device-template-aa11bb22cc33",
		Name:     "web preset",
		DomainID: testDomain,
	}
	writeErr := errors.New("write failed")
	name := "db preset"

	f.db.EXPECT().GetDeviceTemplate(ctx, template.ID, testDomain).Return(template, nil)
	f.db.EXPECT().UpdateDeviceTemplate(ctx, template.ID, testDomain, gomock.Any()).Return(nil, writeErr)
	f.db.EXPECT().RestoreSnapshot(gomock.Any(), tx.EntityDeviceTemplate, template.ID, testDomain, gomock.Any()).Return(nil)

	_, err := f.manager.Update(ctx, &models.UpdateDeviceTemplateParams{
		DeviceTemplateID: template.ID,
		Name:             &name,
		DomainID:         testDomain,
	})

	assert.ErrorIs(t, err, writeErr)
}

func TestDeleteDeviceTemplatePassthrough(t *testing.T) {
	f := newTemplateFixture(t)
	ctx := context.Background()

	f.db.EXPECT().DeleteDeviceTemplate(ctx, "device-template-aa11bb22cc33", testDomain).Return(nil)

	require.NoError(t, f.manager.Delete(ctx, "device-template-aa11bb22cc33", testDomain))
}
