package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordID(t *testing.T) {
	t.Run("string id", func(t *testing.T) {
		assert.Equal(t, "abc", RecordID(json.RawMessage(`{"id":"abc","name":"x"}`)))
	})

	t.Run("legacy numeric id", func(t *testing.T) {
		assert.Equal(t, "1694712345678", RecordID(json.RawMessage(`{"id":1694712345678}`)))
	})

	t.Run("missing id", func(t *testing.T) {
		assert.Equal(t, "", RecordID(json.RawMessage(`{"name":"x"}`)))
	})

	t.Run("malformed json", func(t *testing.T) {
		assert.Equal(t, "", RecordID(json.RawMessage(`not json`)))
	})
}

func TestWithID(t *testing.T) {
	out := WithID(json.RawMessage(`{"name":"x"}`), "doc1")
	assert.Equal(t, "doc1", RecordID(out))

	overwritten := WithID(json.RawMessage(`{"id":"old","name":"x"}`), "new")
	assert.Equal(t, "new", RecordID(overwritten))
}

func TestNaturalKey(t *testing.T) {
	t.Run("students match by code", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"s1","code":"RV2025007"}`)
		assert.Equal(t, "RV2025007", NaturalKey(CollectionStudents, raw))
	})

	t.Run("students without code fall back to id", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"s1"}`)
		assert.Equal(t, "s1", NaturalKey(CollectionStudents, raw))
	})

	t.Run("other collections use the id", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"c1","code":"A"}`)
		assert.Equal(t, "c1", NaturalKey(CollectionCompetitions, raw))
	})
}

func TestSameJSON(t *testing.T) {
	assert.True(t, SameJSON(
		json.RawMessage(`{"a":1,"b":"x"}`),
		json.RawMessage(`{"b":"x","a":1}`),
	))
	assert.False(t, SameJSON(
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"a":2}`),
	))
}

func TestMergeRecord(t *testing.T) {
	existing := json.RawMessage(`{"id":"s1","name":"Aalia","points":5}`)
	merged := MergeRecord(existing, json.RawMessage(`{"points":12}`))

	var m map[string]any
	assert.NoError(t, json.Unmarshal(merged, &m))
	assert.Equal(t, "s1", m["id"])
	assert.Equal(t, "Aalia", m["name"])
	assert.Equal(t, float64(12), m["points"])
}
