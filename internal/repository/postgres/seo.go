package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
)

type SEORepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSEORepository(writerDB, readerDB *gorm.DB) *SEORepository {
	return &SEORepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SEORepository) GetByPageID(ctx context.Context, pageID string) (*domain.SEOMetadata, error) {
	var metadata domain.SEOMetadata
	if err := r.readerDB.WithContext(ctx).First(&metadata, "page_id = ?", pageID).Error; err != nil {
		return nil, err
	}
	return &metadata, nil
}

// Upsert relies on the unique page_id index: concurrent identical
// upserts resolve through ON CONFLICT rather than application locking.
func (r *SEORepository) Upsert(ctx context.Context, metadata *domain.SEOMetadata) (*domain.SEOMetadata, error) {
	if metadata.ID == "" {
		metadata.ID = uuid.New().String()
	}
	metadata.UpdatedAt = time.Now()

	err := r.writerDB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"meta_title", "meta_description", "keywords", "canonical_url",
			"robots", "og_title", "og_description", "og_image", "updated_at",
		}),
	}).Create(metadata).Error
	if err != nil {
		return nil, err
	}

	return r.GetByPageID(ctx, metadata.PageID)
}

func (r *SEORepository) DeleteByPageID(ctx context.Context, pageID string) (int64, error) {
	result := r.writerDB.WithContext(ctx).Delete(&domain.SEOMetadata{}, "page_id = ?", pageID)
	return result.RowsAffected, result.Error
}
