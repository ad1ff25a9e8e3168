package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"festival/metrics"
	"festival/realtime"

	"github.com/google/uuid"
)

// Store is the process-wide hybrid storage instance, set once in main
var Store *Hybrid

// Hybrid is the reconciliation layer bridging the remote document store
// and the local cache. It owns the connectivity state explicitly: reads
// try the remote store first while online and fall back to the cache,
// writes always land in the cache first and reach the remote store on a
// best-effort basis. The OFFLINE -> ONLINE transition runs a one-shot
// local-to-remote sync.
type Hybrid struct {
	remote RemoteStore
	local  LocalStore

	mu     sync.Mutex
	online bool
}

func NewHybrid(remote RemoteStore, local LocalStore, online bool) *Hybrid {
	h := &Hybrid{remote: remote, local: local, online: online}
	setConnectivityGauge(online)
	return h
}

// SetRemote swaps the remote store, used when the remote backend only
// becomes reachable after startup
func (h *Hybrid) SetRemote(remote RemoteStore) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remote = remote
}

// Remote exposes the underlying remote store, for the migration utility
func (h *Hybrid) Remote() RemoteStore {
	return h.remoteStore()
}

func (h *Hybrid) remoteStore() RemoteStore {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.remote
}

// Local exposes the underlying local cache store
func (h *Hybrid) Local() LocalStore {
	return h.local
}

// Online reports whether reads currently route to the remote store
func (h *Hybrid) Online() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.online
}

// MarkOnline records a connectivity-restored event. The first transition
// from offline runs the one-shot reconciliation sync.
func (h *Hybrid) MarkOnline(ctx context.Context) {
	h.mu.Lock()
	wasOffline := !h.online
	h.online = true
	h.mu.Unlock()

	setConnectivityGauge(true)
	if wasOffline {
		log.Println("Connectivity restored, syncing local changes to remote store")
		if err := h.SyncAll(ctx); err != nil {
			log.Printf("Reconciliation sync failed: %v", err)
		}
	}
}

// MarkOffline records a connectivity-lost event
func (h *Hybrid) MarkOffline() {
	h.mu.Lock()
	wasOnline := h.online
	h.online = false
	h.mu.Unlock()

	setConnectivityGauge(false)
	if wasOnline {
		log.Println("Remote store unreachable, falling back to local cache")
	}
}

// GetAllRaw reads the full contents of a collection. While online the
// remote store is authoritative and the result is mirrored into the local
// cache; a remote failure marks the layer offline and serves the cache.
func (h *Hybrid) GetAllRaw(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if h.Online() {
		records, err := h.remoteStore().GetAll(ctx, collection)
		if err == nil {
			if cacheErr := h.local.Set(ctx, CacheKey(collection), records); cacheErr != nil {
				log.Printf("Failed to mirror %s into local cache: %v", collection, cacheErr)
			}
			return records, nil
		}
		log.Printf("Remote read of %s failed, using local cache: %v", collection, err)
		h.MarkOffline()
	}
	return h.local.Get(ctx, CacheKey(collection))
}

// GetByIDRaw reads one record; nil means not found
func (h *Hybrid) GetByIDRaw(ctx context.Context, collection, id string) (json.RawMessage, error) {
	if h.Online() {
		record, err := h.remoteStore().GetByID(ctx, collection, id)
		if err == nil {
			return record, nil
		}
		log.Printf("Remote read of %s/%s failed, using local cache: %v", collection, id, err)
		h.MarkOffline()
	}

	records, err := h.local.Get(ctx, CacheKey(collection))
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if RecordID(record) == id {
			return record, nil
		}
	}
	return nil, nil
}

// CreateRaw writes a new record: local cache first (synchronously), then
// best-effort remote. A failed remote leg is logged and counted but never
// rolls the local write back.
func (h *Hybrid) CreateRaw(ctx context.Context, collection string, data json.RawMessage) (json.RawMessage, error) {
	id := RecordID(data)
	if id == "" {
		id = uuid.NewString()
	}
	record := WithID(data, id)

	if err := h.local.Upsert(ctx, CacheKey(collection), record); err != nil {
		return nil, fmt.Errorf("local write to %s failed: %w", collection, err)
	}
	h.remoteWrite(ctx, collection, func() error {
		return h.remoteStore().CreateWithID(ctx, collection, id, record)
	})

	h.broadcast(ctx, collection)
	return record, nil
}

// UpdateRaw merges a partial update into a record, local first
func (h *Hybrid) UpdateRaw(ctx context.Context, collection, id string, partial json.RawMessage) (json.RawMessage, error) {
	existing, err := h.GetByIDRaw(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("document %s/%s: %w", collection, id, ErrNotFound)
	}

	updated := MergeRecord(existing, WithID(partial, id))
	if err := h.local.Upsert(ctx, CacheKey(collection), updated); err != nil {
		return nil, fmt.Errorf("local write to %s failed: %w", collection, err)
	}
	h.remoteWrite(ctx, collection, func() error {
		return h.remoteStore().Update(ctx, collection, id, updated)
	})

	h.broadcast(ctx, collection)
	return updated, nil
}

// DeleteRaw removes a record from both stores, local first
func (h *Hybrid) DeleteRaw(ctx context.Context, collection, id string) error {
	if err := h.local.Remove(ctx, CacheKey(collection), id); err != nil {
		return fmt.Errorf("local delete from %s failed: %w", collection, err)
	}
	h.remoteWrite(ctx, collection, func() error {
		return h.remoteStore().Delete(ctx, collection, id)
	})

	h.broadcast(ctx, collection)
	return nil
}

// SetAllRaw rewrites a full collection, local first, then record by
// record against the remote store. Derivation and bulk resets use it.
func (h *Hybrid) SetAllRaw(ctx context.Context, collection string, records []json.RawMessage) error {
	stamped := make([]json.RawMessage, 0, len(records))
	for _, record := range records {
		id := RecordID(record)
		if id == "" {
			id = uuid.NewString()
		}
		stamped = append(stamped, WithID(record, id))
	}

	if err := h.local.Set(ctx, CacheKey(collection), stamped); err != nil {
		return fmt.Errorf("local write to %s failed: %w", collection, err)
	}

	for _, record := range stamped {
		record := record
		h.remoteWrite(ctx, collection, func() error {
			existing, err := h.remoteStore().GetByID(ctx, collection, RecordID(record))
			if err != nil {
				return err
			}
			if existing == nil {
				return h.remoteStore().CreateWithID(ctx, collection, RecordID(record), record)
			}
			return h.remoteStore().Update(ctx, collection, RecordID(record), record)
		})
	}

	h.broadcast(ctx, collection)
	return nil
}

// RunMonitor probes the remote store until ctx is cancelled, emitting
// online/offline transitions. interval controls the probe cadence.
func (h *Hybrid) RunMonitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := h.remoteStore().Ping(ctx); err != nil {
				h.MarkOffline()
			} else {
				h.MarkOnline(ctx)
			}
		}
	}
}

// remoteWrite runs the remote leg of a dual write. Failures are counted
// and flip the layer offline, but the local write stands.
func (h *Hybrid) remoteWrite(ctx context.Context, collection string, write func() error) {
	if !h.Online() {
		return
	}
	if err := write(); err != nil {
		log.Printf("Remote write to %s failed (local copy kept): %v", collection, err)
		metrics.RemoteWriteFailures.WithLabelValues(collection).Inc()
		h.MarkOffline()
	}
}

// broadcast re-reads the full collection and hands the snapshot to the
// realtime hub, mirroring the document database's listener semantics
func (h *Hybrid) broadcast(ctx context.Context, collection string) {
	records, err := h.GetAllRaw(ctx, collection)
	if err != nil {
		log.Printf("Failed to read %s for snapshot broadcast: %v", collection, err)
		return
	}
	realtime.BroadcastSnapshot(realtime.Snapshot{Collection: collection, Records: records})
}

func setConnectivityGauge(online bool) {
	if online {
		metrics.ConnectivityState.Set(1)
	} else {
		metrics.ConnectivityState.Set(0)
	}
}
