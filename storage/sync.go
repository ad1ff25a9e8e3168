package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"festival/metrics"
)

// SyncAll runs the one-shot reconciliation for every collection. Sync is
// one-directional by construction: local records are pushed to the remote
// store, remote-only records are never pulled down.
func (h *Hybrid) SyncAll(ctx context.Context) error {
	var firstErr error
	for _, collection := range Collections {
		created, updated, err := h.syncCollection(ctx, collection)
		if err != nil {
			log.Printf("Sync of %s failed: %v", collection, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if created > 0 || updated > 0 {
			log.Printf("Synced %s: %d created, %d updated", collection, created, updated)
		}
	}
	return firstErr
}

// syncCollection diffs the local cache against the remote store. Records
// are matched by natural key (student code, else document id); a local
// record with no remote counterpart is created, one whose JSON differs is
// pushed as an update. The remote copy is always treated as the one that
// needs to catch up.
func (h *Hybrid) syncCollection(ctx context.Context, collection string) (created, updated int, err error) {
	locals, err := h.local.Get(ctx, CacheKey(collection))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read local %s: %w", collection, err)
	}
	remotes, err := h.remoteStore().GetAll(ctx, collection)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read remote %s: %w", collection, err)
	}

	remoteByKey := make(map[string]json.RawMessage, len(remotes))
	for _, record := range remotes {
		remoteByKey[NaturalKey(collection, record)] = record
	}

	for _, local := range locals {
		counterpart, exists := remoteByKey[NaturalKey(collection, local)]
		if !exists {
			id := RecordID(local)
			if err := h.remoteStore().CreateWithID(ctx, collection, id, local); err != nil {
				log.Printf("Failed to push new %s record %s: %v", collection, id, err)
				continue
			}
			metrics.SyncedRecords.WithLabelValues(collection, "create").Inc()
			created++
			continue
		}
		remoteID := RecordID(counterpart)
		if !SameJSON(WithID(local, remoteID), counterpart) {
			if err := h.remoteStore().Update(ctx, collection, remoteID, WithID(local, remoteID)); err != nil {
				log.Printf("Failed to push changed %s record %s: %v", collection, remoteID, err)
				continue
			}
			metrics.SyncedRecords.WithLabelValues(collection, "update").Inc()
			updated++
		}
	}

	return created, updated, nil
}
