package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncPushesLocalOnlyRecords(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(true)

	require.NoError(t, local.Upsert(ctx, CacheKey(CollectionCompetitions), json.RawMessage(`{"id":"c1","name":"Quiz"}`)))

	require.NoError(t, h.SyncAll(ctx))

	records, err := remote.GetAll(ctx, CollectionCompetitions)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "c1", RecordID(records[0]))
}

func TestSyncMatchesStudentsByCode(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(true)

	// Same student exists on both sides under different document ids
	require.NoError(t, remote.CreateWithID(ctx, CollectionStudents, "remote_1",
		json.RawMessage(`{"id":"remote_1","code":"RV2025001","name":"Aalia","points":0}`)))
	require.NoError(t, local.Upsert(ctx, CacheKey(CollectionStudents),
		json.RawMessage(`{"id":"local_1","code":"RV2025001","name":"Aalia","points":12}`)))

	require.NoError(t, h.SyncAll(ctx))

	records, err := remote.GetAll(ctx, CollectionStudents)
	require.NoError(t, err)
	require.Len(t, records, 1, "matching by code must update, not duplicate")

	var m map[string]any
	require.NoError(t, json.Unmarshal(records[0], &m))
	assert.Equal(t, "remote_1", m["id"], "the remote document id wins")
	assert.Equal(t, float64(12), m["points"], "the local data wins")
}

func TestSyncLeavesRemoteOnlyRecords(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(true)

	require.NoError(t, remote.CreateWithID(ctx, CollectionGallery, "g1", json.RawMessage(`{"id":"g1","title":"Stage"}`)))

	require.NoError(t, h.SyncAll(ctx))

	// Sync is one-directional: nothing is pulled into the cache
	cached, err := local.Get(ctx, CacheKey(CollectionGallery))
	require.NoError(t, err)
	assert.Empty(t, cached)

	records, err := remote.GetAll(ctx, CollectionGallery)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSyncIsIdempotent(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(true)

	require.NoError(t, local.Upsert(ctx, CacheKey(CollectionStudents),
		json.RawMessage(`{"id":"s1","code":"RV2025001","name":"Aalia"}`)))

	require.NoError(t, h.SyncAll(ctx))
	require.NoError(t, h.SyncAll(ctx))

	records, err := remote.GetAll(ctx, CollectionStudents)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
