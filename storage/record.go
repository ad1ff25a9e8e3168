package storage

import (
	"encoding/json"
	"reflect"
	"strconv"
)

// Records cross the storage boundary as raw JSON objects with the document
// id embedded under "id", mirroring how the remote store returns documents.

// RecordID extracts the embedded document id of a raw record
func RecordID(raw json.RawMessage) string {
	return recordField(raw, "id")
}

// WithID returns a copy of raw with its "id" field set to id
func WithID(raw json.RawMessage, id string) json.RawMessage {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return raw
	}
	m["id"] = id
	out, err := json.Marshal(m)
	if err != nil {
		return raw
	}
	return out
}

// NaturalKey returns the business identifier used to match local and remote
// copies of a record. Students match by their code; everything else only
// has the document id.
func NaturalKey(collection string, raw json.RawMessage) string {
	if collection == CollectionStudents {
		if code := recordField(raw, "code"); code != "" {
			return code
		}
	}
	return RecordID(raw)
}

// SameJSON reports whether two raw records hold the same data, ignoring
// key order
func SameJSON(a, b json.RawMessage) bool {
	var av, bv any
	if err := json.Unmarshal(a, &av); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bv); err != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}

// MergeRecord applies a partial update on top of an existing raw record,
// field by field at the top level, the way the remote store merges patches
func MergeRecord(existing, partial json.RawMessage) json.RawMessage {
	var base, patch map[string]any
	if err := json.Unmarshal(existing, &base); err != nil {
		return existing
	}
	if err := json.Unmarshal(partial, &patch); err != nil {
		return existing
	}
	for k, v := range patch {
		base[k] = v
	}
	out, err := json.Marshal(base)
	if err != nil {
		return existing
	}
	return out
}

// recordField reads a top-level field as a string. Legacy local records
// carry numeric ids, so numbers are formatted rather than rejected.
func recordField(raw json.RawMessage, field string) string {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	switch v := m[field].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}
