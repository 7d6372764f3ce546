package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
)

type AuditEntryRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAuditEntryRepository(writerDB, readerDB *gorm.DB) *AuditEntryRepository {
	return &AuditEntryRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AuditEntryRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(entry).Error
}

func (r *AuditEntryRepository) List(ctx context.Context, filter domain.AuditEntryFilter) ([]domain.AuditEntry, int64, error) {
	db := tenantScoped(r.readerDB, ctx, filter.TenantID).Model(&domain.AuditEntry{})

	if filter.ActorID != "" {
		db = db.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		db = db.Where("action = ?", filter.Action)
	}
	if filter.ResourceType != "" {
		db = db.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		db = db.Where("resource_id = ?", filter.ResourceID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []domain.AuditEntry
	offset := (filter.Page - 1) * filter.Limit
	if err := db.Order("timestamp DESC").Limit(filter.Limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
