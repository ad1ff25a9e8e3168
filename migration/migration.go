// Package migration performs the one-time bulk copy of the local cache
// into the remote document store. It is idempotent at the collection
// level: a collection that already has remote records is skipped unless
// the caller forces a re-run.
package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"festival/config"
	"festival/models"
	"festival/storage"

	"github.com/google/uuid"
)

// ItemError records one failed record copy; the loop continues past it
type ItemError struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Error      string `json:"error"`
}

// CollectionResult summarizes one collection's migration
type CollectionResult struct {
	Migrated bool   `json:"migrated"`
	Count    int    `json:"count"`
	Message  string `json:"message,omitempty"`
}

// Result is the outcome of a full migration run
type Result struct {
	Results       map[string]CollectionResult `json:"results"`
	Errors        []ItemError                 `json:"errors,omitempty"`
	TotalMigrated int                         `json:"totalMigrated"`
	Message       string                      `json:"message"`
}

// Migrator copies local cache collections into the remote store
type Migrator struct {
	Remote storage.RemoteStore
	Local  storage.LocalStore
}

func NewMigrator(remote storage.RemoteStore, local storage.LocalStore) *Migrator {
	return &Migrator{Remote: remote, Local: local}
}

// CheckStatus reports, per collection, whether the remote store already
// holds data. needsMigration is true when at least one collection is
// still empty.
func (m *Migrator) CheckStatus(ctx context.Context) (needsMigration bool, status map[string]bool, err error) {
	status = make(map[string]bool, len(storage.Collections))
	for _, collection := range storage.Collections {
		records, err := m.Remote.GetAll(ctx, collection)
		if err != nil {
			return true, status, fmt.Errorf("failed to check %s: %w", collection, err)
		}
		populated := len(records) > 0
		status[collection] = populated
		if !populated {
			needsMigration = true
		}
	}
	return needsMigration, status, nil
}

// RunFullMigration copies every still-empty collection (or every
// collection, with force) from the local cache to the remote store, then
// creates the default admin account if none exists. Each record is copied
// independently; failures are collected and the loop continues, so the
// result can report partial success.
func (m *Migrator) RunFullMigration(ctx context.Context, force bool) (*Result, error) {
	result := &Result{Results: make(map[string]CollectionResult)}

	needsMigration, status, err := m.CheckStatus(ctx)
	if err != nil {
		return nil, err
	}
	if !needsMigration && !force {
		result.Message = "Migration not needed - all collections already populated"
		log.Println(result.Message)
		return result, nil
	}

	for _, collection := range storage.Collections {
		if status[collection] && !force {
			result.Results[collection] = CollectionResult{Message: "already populated"}
			continue
		}
		count, itemErrors := m.migrateCollection(ctx, collection)
		result.Results[collection] = CollectionResult{Migrated: count > 0, Count: count}
		result.Errors = append(result.Errors, itemErrors...)
		result.TotalMigrated += count
	}

	if err := m.ensureDefaultAdmin(ctx); err != nil {
		result.Errors = append(result.Errors, ItemError{Collection: storage.CollectionAdmins, Error: err.Error()})
	}

	if len(result.Errors) > 0 {
		result.Message = fmt.Sprintf("Migration completed with %d errors, %d records migrated", len(result.Errors), result.TotalMigrated)
	} else {
		result.Message = fmt.Sprintf("Migration completed, %d records migrated", result.TotalMigrated)
	}
	log.Println(result.Message)
	return result, nil
}

func (m *Migrator) migrateCollection(ctx context.Context, collection string) (int, []ItemError) {
	records, err := m.Local.Get(ctx, storage.CacheKey(collection))
	if err != nil {
		return 0, []ItemError{{Collection: collection, Error: err.Error()}}
	}
	if len(records) == 0 {
		log.Printf("No local %s records to migrate", collection)
		return 0, nil
	}

	var errors []ItemError
	migrated := 0
	for _, record := range records {
		id := storage.RecordID(record)
		if id == "" {
			id = GenerateDocID(idPrefix(collection))
		}
		if err := m.Remote.CreateWithID(ctx, collection, id, record); err != nil {
			log.Printf("Failed to migrate %s record %s: %v", collection, id, err)
			errors = append(errors, ItemError{Collection: collection, ID: id, Error: err.Error()})
			continue
		}
		migrated++
	}

	log.Printf("Migrated %d %s records", migrated, collection)
	return migrated, errors
}

// ensureDefaultAdmin creates the singleton default credential record when
// the admins collection is empty
func (m *Migrator) ensureDefaultAdmin(ctx context.Context) error {
	admins, err := m.Remote.GetAll(ctx, storage.CollectionAdmins)
	if err != nil {
		return fmt.Errorf("failed to check admins: %w", err)
	}
	if len(admins) > 0 {
		return nil
	}

	password := "admin123"
	if config.DefaultAdminPassword != "" {
		password = config.DefaultAdminPassword
	}
	admin := models.Admin{
		Username: "admin",
		Password: password,
		Name:     "System Administrator",
		Role:     "super_admin",
	}
	data, err := json.Marshal(admin)
	if err != nil {
		return err
	}
	if err := m.Remote.CreateWithID(ctx, storage.CollectionAdmins, GenerateDocID("admin"), data); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	log.Println("Created default admin account")
	return nil
}

// GenerateDocID builds a collision-resistant document id from a prefix,
// the current timestamp and a random suffix
func GenerateDocID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

func idPrefix(collection string) string {
	switch collection {
	case storage.CollectionStudents:
		return "student"
	case storage.CollectionCompetitions:
		return "comp"
	case storage.CollectionAnnouncements:
		return "ann"
	case storage.CollectionGallery:
		return "gallery"
	case storage.CollectionFestivalData:
		return "festival"
	case storage.CollectionAdmins:
		return "admin"
	}
	return "doc"
}
