package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
)

type APIKeyRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAPIKeyRepository(writerDB, readerDB *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *APIKeyRepository) Create(ctx context.Context, key *domain.APIKey) error {
	if key.ID == "" {
		key.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(key).Error
}

func (r *APIKeyRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.APIKey{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *APIKeyRepository) List(ctx context.Context, filter domain.APIKeyFilter) ([]domain.APIKey, int64, error) {
	db := tenantScoped(r.readerDB, ctx, filter.TenantID).Model(&domain.APIKey{})
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var keys []domain.APIKey
	offset := (filter.Page - 1) * filter.Limit
	if err := db.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&keys).Error; err != nil {
		return nil, 0, err
	}

	return keys, total, nil
}
