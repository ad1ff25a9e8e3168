package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"festival/metrics"
	"festival/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRemote stores documents in a Postgres table, one row per document
// with the payload in a jsonb column. It fills the RemoteStore role the
// cloud document database played in the portal.
type GormRemote struct {
	db *gorm.DB
}

func NewGormRemote(db *gorm.DB) *GormRemote {
	return &GormRemote{db: db}
}

func (r *GormRemote) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	defer metrics.RecordStorageOperation("remote", "get_all", collection, time.Now())

	var docs []models.Document
	if err := r.db.WithContext(ctx).Where("collection = ?", collection).Order("created_at").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", collection, err)
	}

	records := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		records = append(records, WithID(doc.Data, doc.DocID))
	}
	return records, nil
}

func (r *GormRemote) GetByID(ctx context.Context, collection, id string) (json.RawMessage, error) {
	defer metrics.RecordStorageOperation("remote", "get_by_id", collection, time.Now())

	var doc models.Document
	err := r.db.WithContext(ctx).Where("collection = ? AND doc_id = ?", collection, id).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s/%s: %w", collection, id, err)
	}
	return WithID(doc.Data, doc.DocID), nil
}

func (r *GormRemote) Create(ctx context.Context, collection string, data json.RawMessage) (string, error) {
	id := uuid.NewString()
	if err := r.CreateWithID(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (r *GormRemote) CreateWithID(ctx context.Context, collection, id string, data json.RawMessage) error {
	defer metrics.RecordStorageOperation("remote", "create", collection, time.Now())

	doc := models.Document{
		Collection: collection,
		DocID:      id,
		Data:       WithID(data, id),
	}
	if err := r.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return fmt.Errorf("failed to create document in %s: %w", collection, err)
	}
	return nil
}

// Update applies a merge patch: fields present in partial overwrite the
// stored document, everything else is kept
func (r *GormRemote) Update(ctx context.Context, collection, id string, partial json.RawMessage) error {
	defer metrics.RecordStorageOperation("remote", "update", collection, time.Now())

	var doc models.Document
	err := r.db.WithContext(ctx).Where("collection = ? AND doc_id = ?", collection, id).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("document %s/%s not found", collection, id)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch %s/%s: %w", collection, id, err)
	}

	doc.Data = []byte(MergeRecord(doc.Data, partial))
	if err := r.db.WithContext(ctx).Save(&doc).Error; err != nil {
		return fmt.Errorf("failed to update document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (r *GormRemote) Delete(ctx context.Context, collection, id string) error {
	defer metrics.RecordStorageOperation("remote", "delete", collection, time.Now())

	if err := r.db.WithContext(ctx).Where("collection = ? AND doc_id = ?", collection, id).Delete(&models.Document{}).Error; err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	return nil
}

// Ping probes the underlying connection; the connectivity monitor uses it
// to drive online/offline transitions
func (r *GormRemote) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
