package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihyungSong/inventory/pkg/models"
)

func TestColumnExpr(t *testing.T) {
	assert.Equal(t, "device_id", columnExpr("device_id"))
	assert.Equal(t, "(reference ->> 'resource_id')", columnExpr("reference.resource_id"))
	assert.Equal(t, "(collection_info ->> 'state')", columnExpr("collection_info.state"))
}

func TestBuildWhere(t *testing.T) {
	where, args, err := buildWhere("domain-1", []models.Filter{
		{Key: "state", Value: "INSERVICE"},
		{Key: "collection_info.state", Value: "ACTIVE"},
	}, "", &models.DeviceCapability)
	require.NoError(t, err)

	assert.Equal(t, ` WHERE domain_id = $1 AND state = $2 AND (collection_info ->> 'state') = $3`, where)
	assert.Equal(t, []any{"domain-1", "INSERVICE", "ACTIVE"}, args)
}

func TestBuildWhere_Keyword(t *testing.T) {
	where, args, err := buildWhere("domain-1", nil, "web", &models.DeviceTypeCapability)
	require.NoError(t, err)

	assert.Equal(t, ` WHERE domain_id = $1 AND (device_type_id ILIKE $2 OR name ILIKE $2)`, where)
	assert.Equal(t, []any{"domain-1", "%web%"}, args)
}

func TestBuildWhere_RejectsUnknownFilterKey(t *testing.T) {
	_, _, err := buildWhere("domain-1", []models.Filter{{Key: "data", Value: "x"}}, "", &models.DeviceCapability)
	assert.ErrorIs(t, err, ErrInvalidFilterKey)
}

func TestBuildOrder(t *testing.T) {
	order, err := buildOrder(models.Sort{}, &models.DeviceCapability)
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY name ASC", order)

	order, err = buildOrder(models.Sort{Key: "created_at", Desc: true}, &models.DeviceCapability)
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY created_at DESC", order)

	_, err = buildOrder(models.Sort{Key: "reference.resource_id"}, &models.DeviceCapability)
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestBuildPage(t *testing.T) {
	assert.Empty(t, buildPage(models.Page{}))
	assert.Equal(t, " LIMIT 10", buildPage(models.Page{Limit: 10}))
	assert.Equal(t, " LIMIT 10 OFFSET 20", buildPage(models.Page{Start: 20, Limit: 10}))
}

func TestBuildUpdate(t *testing.T) {
	sql, args, err := buildUpdate("devices", "device_id", "device-1", "domain-1",
		map[string]any{"state": "INSTOCK"}, &models.DeviceCapability, deviceJSONBColumns, true)
	require.NoError(t, err)

	assert.Equal(t, `UPDATE devices SET state = $3, updated_at = now() WHERE device_id = $1 AND domain_id = $2`, sql)
	assert.Equal(t, []any{"device-1", "domain-1", "INSTOCK"}, args)
}

func TestBuildUpdate_MarshalsJSONBAndNulls(t *testing.T) {
	sql, args, err := buildUpdate("devices", "device_id", "device-1", "domain-1",
		map[string]any{"data": map[string]any{"cpu": "x86"}}, &models.DeviceCapability, deviceJSONBColumns, true)
	require.NoError(t, err)

	assert.Contains(t, sql, "data = $3")
	require.Len(t, args, 3)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(args[2].([]byte), &doc))
	assert.Equal(t, "x86", doc["cpu"])

	sql, args, err = buildUpdate("devices", "device_id", "device-1", "domain-1",
		map[string]any{"project_id": nil}, &models.DeviceCapability, deviceJSONBColumns, true)
	require.NoError(t, err)
	assert.Contains(t, sql, "project_id = NULL")
	assert.Equal(t, []any{"device-1", "domain-1"}, args)
}

func TestBuildUpdate_RejectsNonUpdatableField(t *testing.T) {
	// device_type_id is immutable after creation: not in the update contract.
	_, _, err := buildUpdate("devices", "device_id", "device-1", "domain-1",
		map[string]any{"device_type_id": "device-type-2"}, &models.DeviceCapability, deviceJSONBColumns, true)
	assert.ErrorIs(t, err, ErrInvalidUpdateKey)

	_, _, err = buildUpdate("devices", "device_id", "device-1", "domain-1",
		nil, &models.DeviceCapability, deviceJSONBColumns, true)
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestBuildStat(t *testing.T) {
	sql, args, err := buildStat("devices", &models.StatQuery{
		GroupBy: []string{"device_type_id", "state"},
		Domain:  "domain-1",
	}, &models.DeviceCapability)
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT device_type_id AS "device_type_id", state AS "state", COUNT(*) AS count FROM devices`+
			` WHERE domain_id = $1 GROUP BY device_type_id, state ORDER BY count DESC`, sql)
	assert.Equal(t, []any{"domain-1"}, args)
}

func TestBuildStat_RejectsUnknownGroupBy(t *testing.T) {
	_, _, err := buildStat("devices", &models.StatQuery{GroupBy: []string{"data"}}, &models.DeviceCapability)
	assert.ErrorIs(t, err, ErrInvalidGroupByKey)
}
