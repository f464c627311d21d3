package provenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihyungSong/inventory/pkg/errdefs"
	"github.com/jihyungSong/inventory/pkg/models"
)

func TestInitialize(t *testing.T) {
	now := time.Unix(1760000000, 0).UTC()

	info := Initialize(map[string]any{
		"cpu":       "x86",
		"memory":    16,
		"domain_id": "domain-1",
	}, []string{"domain_id"}, now)

	assert.Equal(t, models.CollectionStateActive, info.State)
	assert.Empty(t, info.PinnedKeys)

	require.Len(t, info.UpdateHistory, 2)
	assert.Equal(t, models.OriginManual, info.UpdateHistory["cpu"].Origin)
	assert.Equal(t, now, info.UpdateHistory["cpu"].UpdatedAt)
	assert.NotContains(t, info.UpdateHistory, "domain_id")
}

func TestMerge_UnpinnedKeyTakesIncomingValue(t *testing.T) {
	now := time.Unix(1760000100, 0).UTC()
	device := deviceWithData(map[string]any{"cpu": "x86", "memory": 16})

	merged, info, err := Merge(map[string]any{"cpu": "arm"}, device, nil, models.OriginCollector, now)
	require.NoError(t, err)

	assert.Equal(t, "arm", merged["cpu"])
	assert.Equal(t, 16, merged["memory"])
	assert.Equal(t, models.OriginCollector, info.UpdateHistory["cpu"].Origin)
	assert.Equal(t, now, info.UpdateHistory["cpu"].UpdatedAt)
}

func TestMerge_PinnedKeyRetainsPreviousValue(t *testing.T) {
	now := time.Unix(1760000200, 0).UTC()
	device := deviceWithData(map[string]any{"cpu": "x86"})
	device.CollectionInfo.PinnedKeys = []string{"cpu"}

	before := device.CollectionInfo.UpdateHistory["cpu"]

	merged, info, err := Merge(map[string]any{"cpu": "arm"}, device, nil, models.OriginManual, now)
	require.NoError(t, err)

	assert.Equal(t, "x86", merged["cpu"])
	assert.Equal(t, before, info.UpdateHistory["cpu"], "provenance of a pinned key must not be refreshed")
}

func TestMerge_PartialUpdateNeverRemovesKeys(t *testing.T) {
	device := deviceWithData(map[string]any{"cpu": "x86", "memory": 16, "disk": "ssd"})

	merged, _, err := Merge(map[string]any{"memory": 32}, device, nil, models.OriginManual, time.Now())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"cpu": "x86", "memory": 32, "disk": "ssd"}, merged)
}

func TestMerge_ExcludedKeysAreIgnored(t *testing.T) {
	device := deviceWithData(map[string]any{"cpu": "x86"})

	merged, info, err := Merge(map[string]any{"device_id": "device-2", "cpu": "arm"}, device,
		[]string{"device_id", "domain_id"}, models.OriginManual, time.Now())
	require.NoError(t, err)

	assert.NotContains(t, merged, "device_id")
	assert.NotContains(t, info.UpdateHistory, "device_id")
	assert.Equal(t, "arm", merged["cpu"])
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	device := deviceWithData(map[string]any{"cpu": "x86"})

	_, _, err := Merge(map[string]any{"cpu": "arm", "memory": 32}, device, nil, models.OriginManual, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "x86", device.Data["cpu"])
	assert.NotContains(t, device.Data, "memory")
	assert.Equal(t, models.OriginManual, device.CollectionInfo.UpdateHistory["cpu"].Origin)
}

func TestMerge_MissingCollectionInfo(t *testing.T) {
	device := &models.Device{ID: "device-1", Data: map[string]any{"cpu": "x86"}}

	_, _, err := Merge(map[string]any{"cpu": "arm"}, device, nil, models.OriginManual, time.Now())
	assert.ErrorIs(t, err, errdefs.ErrMalformedRecord)

	_, _, err = Merge(map[string]any{"cpu": "arm"}, nil, nil, models.OriginManual, time.Now())
	assert.ErrorIs(t, err, errdefs.ErrMalformedRecord)
}

func TestPin_Idempotent(t *testing.T) {
	info := Initialize(map[string]any{"cpu": "x86", "memory": 16}, nil, time.Now())

	once := Pin([]string{"cpu"}, info)
	twice := Pin([]string{"cpu"}, once)

	assert.Equal(t, []string{"cpu"}, once.PinnedKeys)
	assert.Equal(t, once.PinnedKeys, twice.PinnedKeys)
}

func TestPin_GrowsMonotonically(t *testing.T) {
	info := Initialize(map[string]any{"cpu": "x86", "memory": 16, "disk": "ssd"}, nil, time.Now())

	info = Pin([]string{"memory"}, info)
	info = Pin([]string{"cpu", "memory"}, info)

	assert.Equal(t, []string{"cpu", "memory"}, info.PinnedKeys)
}

func TestPin_DoesNotMutateInput(t *testing.T) {
	info := Initialize(map[string]any{"cpu": "x86"}, nil, time.Now())

	_ = Pin([]string{"cpu"}, info)

	assert.Empty(t, info.PinnedKeys)
}

func deviceWithData(data map[string]any) *models.Device {
	created := time.Unix(1750000000, 0).UTC()
	info := Initialize(data, nil, created)

	return &models.Device{
		ID:             "device-1",
		DomainID:       "domain-1",
		Data:           data,
		CollectionInfo: &info,
	}
}
