package repository

import (
	"context"
	"time"

	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByKey(ctx context.Context, key string) (*domain.Tenant, error)
}

//go:generate mockery --name PageRepository --output ../mocks
type PageRepository interface {
	// GetByID excludes soft-deleted pages.
	GetByID(ctx context.Context, tenantID, pageID string) (*domain.Page, error)
	Create(ctx context.Context, page *domain.Page) (*domain.Page, error)
}

//go:generate mockery --name SEORepository --output ../mocks
type SEORepository interface {
	GetByPageID(ctx context.Context, pageID string) (*domain.SEOMetadata, error)
	// Upsert creates the record if absent, else replaces the supplied
	// fields; atomic with respect to concurrent identical upserts.
	Upsert(ctx context.Context, metadata *domain.SEOMetadata) (*domain.SEOMetadata, error)
	// DeleteByPageID reports the number of rows removed.
	DeleteByPageID(ctx context.Context, pageID string) (int64, error)
}

//go:generate mockery --name APIKeyRepository --output ../mocks
type APIKeyRepository interface {
	Create(ctx context.Context, key *domain.APIKey) error
	List(ctx context.Context, filter domain.APIKeyFilter) ([]domain.APIKey, int64, error)
	// DeactivateExpired flips is_active off for keys whose expiry has
	// passed and reports how many rows changed.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

//go:generate mockery --name AuditEntryRepository --output ../mocks
type AuditEntryRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, filter domain.AuditEntryFilter) ([]domain.AuditEntry, int64, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	Page() PageRepository
	SEO() SEORepository
	APIKey() APIKeyRepository
	AuditEntry() AuditEntryRepository
}
