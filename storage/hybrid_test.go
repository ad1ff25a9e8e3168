package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHybrid(online bool) (*Hybrid, *MemoryRemote, *MemoryLocal) {
	remote := NewMemoryRemote()
	local := NewMemoryLocal()
	return NewHybrid(remote, local, online), remote, local
}

func TestCreateWritesBothStores(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(true)

	record, err := h.CreateRaw(ctx, CollectionStudents, json.RawMessage(`{"name":"Aalia"}`))
	require.NoError(t, err)

	id := RecordID(record)
	require.NotEmpty(t, id)

	remoteCopy, err := remote.GetByID(ctx, CollectionStudents, id)
	require.NoError(t, err)
	assert.NotNil(t, remoteCopy)

	cached, err := local.Get(ctx, CacheKey(CollectionStudents))
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, id, RecordID(cached[0]))
}

func TestCreateSurvivesRemoteFailure(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(true)
	remote.FailWrites = true

	record, err := h.CreateRaw(ctx, CollectionStudents, json.RawMessage(`{"name":"Bilal"}`))
	require.NoError(t, err, "local write must stand when the remote leg fails")

	cached, err := local.Get(ctx, CacheKey(CollectionStudents))
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, RecordID(record), RecordID(cached[0]))

	// A failed remote write flips the layer offline
	assert.False(t, h.Online())
}

func TestReadFallsBackToCacheWhenRemoteDies(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(true)

	_, err := h.CreateRaw(ctx, CollectionStudents, json.RawMessage(`{"id":"s1","name":"Chand"}`))
	require.NoError(t, err)

	remote.FailAll = true

	records, err := h.GetAllRaw(ctx, CollectionStudents)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "s1", RecordID(records[0]))
	assert.False(t, h.Online())

	// Writes continue against the cache while offline
	_, err = h.CreateRaw(ctx, CollectionStudents, json.RawMessage(`{"id":"s2","name":"Dana"}`))
	require.NoError(t, err)

	cached, err := local.Get(ctx, CacheKey(CollectionStudents))
	require.NoError(t, err)
	assert.Len(t, cached, 2)
}

func TestOnlineReadMirrorsIntoCache(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(true)

	require.NoError(t, remote.CreateWithID(ctx, CollectionGallery, "g1", json.RawMessage(`{"title":"Stage"}`)))

	_, err := h.GetAllRaw(ctx, CollectionGallery)
	require.NoError(t, err)

	cached, err := local.Get(ctx, CacheKey(CollectionGallery))
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "g1", RecordID(cached[0]))
}

func TestUpdateMergesPartial(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newTestHybrid(true)

	_, err := h.CreateRaw(ctx, CollectionStudents, json.RawMessage(`{"id":"s1","name":"Aalia","team":"A"}`))
	require.NoError(t, err)

	updated, err := h.UpdateRaw(ctx, CollectionStudents, "s1", json.RawMessage(`{"team":"B"}`))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(updated, &m))
	assert.Equal(t, "Aalia", m["name"])
	assert.Equal(t, "B", m["team"])
}

func TestUpdateMissingRecord(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newTestHybrid(true)

	_, err := h.UpdateRaw(ctx, CollectionStudents, "ghost", json.RawMessage(`{"team":"B"}`))
	assert.Error(t, err)
}

func TestDeleteRemovesFromBothStores(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(true)

	_, err := h.CreateRaw(ctx, CollectionAnnouncements, json.RawMessage(`{"id":"a1","title":"Welcome"}`))
	require.NoError(t, err)

	require.NoError(t, h.DeleteRaw(ctx, CollectionAnnouncements, "a1"))

	remoteCopy, err := remote.GetByID(ctx, CollectionAnnouncements, "a1")
	require.NoError(t, err)
	assert.Nil(t, remoteCopy)

	cached, err := local.Get(ctx, CacheKey(CollectionAnnouncements))
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestMarkOnlineRunsSync(t *testing.T) {
	ctx := context.Background()
	h, remote, local := newTestHybrid(false)

	// Offline writes accumulate in the cache only
	require.NoError(t, local.Upsert(ctx, CacheKey(CollectionStudents), json.RawMessage(`{"id":"s1","code":"RV2025001","name":"Aalia"}`)))

	h.MarkOnline(ctx)

	records, err := remote.GetAll(ctx, CollectionStudents)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "RV2025001", NaturalKey(CollectionStudents, records[0]))
}
