package migration

import (
	"context"
	"encoding/json"
	"testing"

	"festival/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLocal(t *testing.T, local storage.LocalStore, collection string, records ...string) {
	t.Helper()
	ctx := context.Background()
	for _, record := range records {
		require.NoError(t, local.Upsert(ctx, storage.CacheKey(collection), json.RawMessage(record)))
	}
}

func TestCheckStatus(t *testing.T) {
	ctx := context.Background()
	remote := storage.NewMemoryRemote()
	local := storage.NewMemoryLocal()
	m := NewMigrator(remote, local)

	needs, status, err := m.CheckStatus(ctx)
	require.NoError(t, err)
	assert.True(t, needs)
	for _, collection := range storage.Collections {
		assert.False(t, status[collection])
	}

	require.NoError(t, remote.CreateWithID(ctx, storage.CollectionStudents, "s1", json.RawMessage(`{"name":"Aalia"}`)))

	needs, status, err = m.CheckStatus(ctx)
	require.NoError(t, err)
	assert.True(t, needs, "one populated collection is not enough")
	assert.True(t, status[storage.CollectionStudents])
}

func TestRunFullMigrationCopiesLocalData(t *testing.T) {
	ctx := context.Background()
	remote := storage.NewMemoryRemote()
	local := storage.NewMemoryLocal()
	m := NewMigrator(remote, local)

	seedLocal(t, local, storage.CollectionStudents,
		`{"id":"s1","code":"RV2025001","name":"Aalia"}`,
		`{"id":"s2","code":"RV2025002","name":"Bilal"}`)
	seedLocal(t, local, storage.CollectionCompetitions, `{"id":"c1","name":"Quiz"}`)

	result, err := m.RunFullMigration(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalMigrated)
	assert.Empty(t, result.Errors)

	students, err := remote.GetAll(ctx, storage.CollectionStudents)
	require.NoError(t, err)
	assert.Len(t, students, 2)
}

func TestRunFullMigrationSkipsPopulatedCollections(t *testing.T) {
	ctx := context.Background()
	remote := storage.NewMemoryRemote()
	local := storage.NewMemoryLocal()
	m := NewMigrator(remote, local)

	require.NoError(t, remote.CreateWithID(ctx, storage.CollectionStudents, "existing", json.RawMessage(`{"name":"Remote"}`)))
	seedLocal(t, local, storage.CollectionStudents, `{"id":"s1","name":"Aalia"}`)

	result, err := m.RunFullMigration(ctx, false)
	require.NoError(t, err)

	students, err := remote.GetAll(ctx, storage.CollectionStudents)
	require.NoError(t, err)
	assert.Len(t, students, 1, "populated collection must not be touched without force")
	assert.Equal(t, "already populated", result.Results[storage.CollectionStudents].Message)
}

func TestRunFullMigrationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	remote := storage.NewMemoryRemote()
	local := storage.NewMemoryLocal()
	m := NewMigrator(remote, local)

	seedLocal(t, local, storage.CollectionStudents, `{"id":"s1","name":"Aalia"}`)

	_, err := m.RunFullMigration(ctx, false)
	require.NoError(t, err)
	_, err = m.RunFullMigration(ctx, false)
	require.NoError(t, err)

	students, err := remote.GetAll(ctx, storage.CollectionStudents)
	require.NoError(t, err)
	assert.Len(t, students, 1, "a second run must not duplicate records")
}

func TestRunFullMigrationCreatesDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	remote := storage.NewMemoryRemote()
	local := storage.NewMemoryLocal()
	m := NewMigrator(remote, local)

	_, err := m.RunFullMigration(ctx, false)
	require.NoError(t, err)

	admins, err := remote.GetAll(ctx, storage.CollectionAdmins)
	require.NoError(t, err)
	require.Len(t, admins, 1)

	var admin map[string]any
	require.NoError(t, json.Unmarshal(admins[0], &admin))
	assert.Equal(t, "admin", admin["username"])
}

func TestGenerateDocIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateDocID("student")
		assert.False(t, seen[id])
		seen[id] = true
	}
}
