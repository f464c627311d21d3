package devicetype

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jihyungSong/inventory/pkg/db"
	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/models"
)

const testDomain = "domain-1"

func schemaTemplate(properties map[string]any) map[string]any {
	return map[string]any{
		"device": map[string]any{
			"schema": map[string]any{
				"properties": properties,
			},
		},
	}
}

func TestCreate_RequiredFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := NewManager(db.NewMockService(ctrl), logger.NewTestLogger())

	_, err := manager.Create(context.Background(), &models.CreateDeviceTypeParams{DomainID: testDomain})
	require.ErrorIs(t, err, errdefs.ErrMissingRequiredField)

	var missing *errdefs.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)

	_, err = manager.Create(context.Background(), &models.CreateDeviceTypeParams{Name: "server"})
	assert.ErrorIs(t, err, errdefs.ErrMissingRequiredField)
}

func TestCreate_WithoutParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	mockDB.EXPECT().
		CreateDeviceType(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, deviceType *models.DeviceType) error {
			deviceType.ID = "device-type-1"
			return nil
		})

	created, err := manager.Create(context.Background(), &models.CreateDeviceTypeParams{
		Name:     "server",
		Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
		DomainID: testDomain,
	})
	require.NoError(t, err)
	assert.Equal(t, "device-type-1", created.ID)
}

func TestCreate_InvalidSchemaRejectedBeforeWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	// type must be a string in JSON-Schema; no persistence call expected.
	_, err := manager.Create(context.Background(), &models.CreateDeviceTypeParams{
		Name:     "server",
		Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": 42}}),
		DomainID: testDomain,
	})
	assert.ErrorIs(t, err, errdefs.ErrInvalidSchema)
}

func TestCreate_DuplicateKeyAgainstParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-parent", testDomain).
		Return(&models.DeviceType{
			ID:       "device-type-parent",
			Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
			DomainID: testDomain,
		}, nil)

	_, err := manager.Create(context.Background(), &models.CreateDeviceTypeParams{
		Name:               "rack-server",
		ParentDeviceTypeID: "device-type-parent",
		Template:           schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
		DomainID:           testDomain,
	})
	require.ErrorIs(t, err, errdefs.ErrDuplicateSchemaKey)

	var duplicate *errdefs.DuplicateSchemaKeyError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "cpu", duplicate.Key)
}

func TestCreate_DuplicateKeyAgainstGrandparent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-parent", testDomain).
		Return(&models.DeviceType{
			ID:                 "device-type-parent",
			ParentDeviceTypeID: "device-type-root",
			Template:           schemaTemplate(map[string]any{"memory": map[string]any{"type": "integer"}}),
			DomainID:           testDomain,
		}, nil)
	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-root", testDomain).
		Return(&models.DeviceType{
			ID:       "device-type-root",
			Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
			DomainID: testDomain,
		}, nil)

	_, err := manager.Create(context.Background(), &models.CreateDeviceTypeParams{
		Name:               "blade",
		ParentDeviceTypeID: "device-type-parent",
		Template:           schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
		DomainID:           testDomain,
	})
	assert.ErrorIs(t, err, errdefs.ErrDuplicateSchemaKey)
}

func TestCreate_DisjointKeysSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-parent", testDomain).
		Return(&models.DeviceType{
			ID:       "device-type-parent",
			Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
			DomainID: testDomain,
		}, nil)
	mockDB.EXPECT().CreateDeviceType(gomock.Any(), gomock.Any()).Return(nil)

	_, err := manager.Create(context.Background(), &models.CreateDeviceTypeParams{
		Name:               "rack-server",
		ParentDeviceTypeID: "device-type-parent",
		Template:           schemaTemplate(map[string]any{"memory": map[string]any{"type": "integer"}}),
		DomainID:           testDomain,
	})
	assert.NoError(t, err)
}

func TestCreate_ParentNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-missing", testDomain).
		Return(nil, &errdefs.NotFoundError{Entity: "device_type", ID: "device-type-missing", Domain: testDomain})

	_, err := manager.Create(context.Background(), &models.CreateDeviceTypeParams{
		Name:               "orphan",
		ParentDeviceTypeID: "device-type-missing",
		DomainID:           testDomain,
	})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestUpdate_RetypeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-1", testDomain).
		Return(&models.DeviceType{
			ID:       "device-type-1",
			Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
			DomainID: testDomain,
		}, nil)

	_, err := manager.Update(context.Background(), &models.UpdateDeviceTypeParams{
		DeviceTypeID: "device-type-1",
		Template:     schemaTemplate(map[string]any{"cpu": map[string]any{"type": "integer"}}),
		DomainID:     testDomain,
	})
	require.ErrorIs(t, err, errdefs.ErrSchemaTypeChanged)

	var changed *errdefs.SchemaTypeChangedError
	require.ErrorAs(t, err, &changed)
	assert.Equal(t, "cpu", changed.Key)
	assert.Equal(t, "integer", changed.Type)
}

func TestUpdate_NonTypeAttributeAndNewKeyAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	template := schemaTemplate(map[string]any{
		"cpu":    map[string]any{"type": "string", "title": "CPU architecture"},
		"memory": map[string]any{"type": "integer"},
	})

	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-1", testDomain).
		Return(&models.DeviceType{
			ID:       "device-type-1",
			Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
			DomainID: testDomain,
		}, nil)
	mockDB.EXPECT().
		UpdateDeviceType(gomock.Any(), "device-type-1", testDomain, gomock.Any()).
		Return(&models.DeviceType{ID: "device-type-1", Template: template, DomainID: testDomain}, nil)

	updated, err := manager.Update(context.Background(), &models.UpdateDeviceTypeParams{
		DeviceTypeID: "device-type-1",
		Template:     template,
		DomainID:     testDomain,
	})
	require.NoError(t, err)
	assert.Equal(t, template, updated.Template)
}

func TestUpdate_ForceDoesNotBypassRetypeCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-1", testDomain).
		Return(&models.DeviceType{
			ID:       "device-type-1",
			Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
			DomainID: testDomain,
		}, nil)

	_, err := manager.Update(context.Background(), &models.UpdateDeviceTypeParams{
		DeviceTypeID: "device-type-1",
		Template:     schemaTemplate(map[string]any{"cpu": map[string]any{"type": "integer"}}),
		Force:        true,
		DomainID:     testDomain,
	})
	assert.ErrorIs(t, err, errdefs.ErrSchemaTypeChanged)
}

func TestUpdate_RollbackOnPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	current := &models.DeviceType{
		ID:       "device-type-1",
		Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
		DomainID: testDomain,
	}
	persistErr := errors.New("write failed")

	mockDB.EXPECT().GetDeviceType(gomock.Any(), "device-type-1", testDomain).Return(current, nil)
	mockDB.EXPECT().
		UpdateDeviceType(gomock.Any(), "device-type-1", testDomain, gomock.Any()).
		Return(nil, persistErr)
	mockDB.EXPECT().
		RestoreSnapshot(gomock.Any(), gomock.Any(), "device-type-1", testDomain, gomock.Any()).
		Return(nil)

	_, err := manager.Update(context.Background(), &models.UpdateDeviceTypeParams{
		DeviceTypeID: "device-type-1",
		Labels:       []string{"compute"},
		DomainID:     testDomain,
	})
	assert.ErrorIs(t, err, persistErr)
}

func TestAncestorSchemaKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	manager := NewManager(mockDB, logger.NewTestLogger())

	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-child", testDomain).
		Return(&models.DeviceType{
			ID:                 "device-type-child",
			ParentDeviceTypeID: "device-type-root",
			Template:           schemaTemplate(map[string]any{"memory": map[string]any{"type": "integer"}}),
		}, nil)
	mockDB.EXPECT().
		GetDeviceType(gomock.Any(), "device-type-root", testDomain).
		Return(&models.DeviceType{
			ID:       "device-type-root",
			Template: schemaTemplate(map[string]any{"cpu": map[string]any{"type": "string"}}),
		}, nil)

	keys, err := manager.AncestorSchemaKeys(context.Background(), "device-type-child", testDomain)
	require.NoError(t, err)

	assert.Contains(t, keys, "cpu")
	assert.Contains(t, keys, "memory")
	assert.Len(t, keys, 2)
}
