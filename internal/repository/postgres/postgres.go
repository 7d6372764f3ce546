package postgres

import (
	"github.com/jigardalal/siteninja-backend-sub001/internal/config"
	"github.com/jigardalal/siteninja-backend-sub001/internal/repository"
)

type postgresRepository struct {
	tenantRepo     repository.TenantRepository
	pageRepo       repository.PageRepository
	seoRepo        repository.SEORepository
	apiKeyRepo     repository.APIKeyRepository
	auditEntryRepo repository.AuditEntryRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		tenantRepo:     NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		pageRepo:       NewPageRepository(dbConnections.Writer, dbConnections.Reader),
		seoRepo:        NewSEORepository(dbConnections.Writer, dbConnections.Reader),
		apiKeyRepo:     NewAPIKeyRepository(dbConnections.Writer, dbConnections.Reader),
		auditEntryRepo: NewAuditEntryRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Page() repository.PageRepository {
	return r.pageRepo
}

func (r *postgresRepository) SEO() repository.SEORepository {
	return r.seoRepo
}

func (r *postgresRepository) APIKey() repository.APIKeyRepository {
	return r.apiKeyRepo
}

func (r *postgresRepository) AuditEntry() repository.AuditEntryRepository {
	return r.auditEntryRepo
}
