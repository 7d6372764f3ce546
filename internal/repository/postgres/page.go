package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
)

type PageRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPageRepository(writerDB, readerDB *gorm.DB) *PageRepository {
	return &PageRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// GetByID resolves a tenant's page. Soft-deleted rows are excluded by
// gorm's DeletedAt handling, so a deleted page reads as not found.
func (r *PageRepository) GetByID(ctx context.Context, tenantID, pageID string) (*domain.Page, error) {
	var page domain.Page
	db := tenantScoped(r.readerDB, ctx, tenantID)
	if err := db.First(&page, "id = ?", pageID).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) Create(ctx context.Context, page *domain.Page) (*domain.Page, error) {
	if err := r.writerDB.WithContext(ctx).Create(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}
