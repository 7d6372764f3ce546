package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
	"github.com/jigardalal/siteninja-backend-sub001/internal/repository"
)

//go:generate mockery --name AuditRecorder --output ../mocks
type AuditRecorder interface {
	Record(ctx context.Context, tenantID, actorID string, action domain.ActionType, resourceType, resourceID string, metadata map[string]any, reqCtx RequestContext)
}

type SEOService struct {
	repo  repository.Repository
	audit AuditRecorder
}

func NewSEOService(repo repository.Repository, audit AuditRecorder) *SEOService {
	return &SEOService{repo: repo, audit: audit}
}

// resolveTenant maps the caller-facing tenant key to the tenant row.
func resolveTenant(ctx context.Context, repo repository.Repository, tenantKey string) (*domain.Tenant, error) {
	tenant, err := repo.Tenant().GetByKey(ctx, tenantKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}
	return tenant, nil
}

// resolvePage looks up a tenant's page; soft-deleted pages read as not
// found. Page resolution always precedes any metadata lookup.
func (s *SEOService) resolvePage(ctx context.Context, tenantKey, pageID string) (*domain.Page, error) {
	tenant, err := resolveTenant(ctx, s.repo, tenantKey)
	if err != nil {
		return nil, err
	}

	page, err := s.repo.Page().GetByID(ctx, tenant.ID, pageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to resolve page: %w", err)
	}
	return page, nil
}

func (s *SEOService) Get(ctx context.Context, tenantKey, pageID string) (*dto.SEOMetadataResponse, error) {
	page, err := s.resolvePage(ctx, tenantKey, pageID)
	if err != nil {
		return nil, err
	}

	metadata, err := s.repo.SEO().GetByPageID(ctx, page.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSEOMetadataNotFound
		}
		return nil, fmt.Errorf("failed to load seo metadata: %w", err)
	}

	return dto.FromSEOMetadata(metadata), nil
}

// Upsert creates the page's metadata if absent, else replaces the
// supplied fields. Identical bodies yield identical stored state.
func (s *SEOService) Upsert(ctx context.Context, tenantKey, pageID string, req dto.UpsertSEORequest, actorID string, reqCtx RequestContext) (*dto.SEOMetadataResponse, error) {
	page, err := s.resolvePage(ctx, tenantKey, pageID)
	if err != nil {
		return nil, err
	}

	metadata := &domain.SEOMetadata{
		PageID:          page.ID,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		CanonicalURL:    req.CanonicalURL,
		Robots:          req.Robots,
		OGTitle:         req.OGTitle,
		OGDescription:   req.OGDescription,
		OGImage:         req.OGImage,
	}

	stored, err := s.repo.SEO().Upsert(ctx, metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert seo metadata: %w", err)
	}

	s.audit.Record(ctx, page.TenantID, actorID, domain.ActionUpdate, "seo_metadata", stored.ID,
		map[string]any{"page_id": page.ID, "meta_title": stored.MetaTitle}, reqCtx)

	return dto.FromSEOMetadata(stored), nil
}

func (s *SEOService) Delete(ctx context.Context, tenantKey, pageID, actorID string, reqCtx RequestContext) error {
	page, err := s.resolvePage(ctx, tenantKey, pageID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.SEO().DeleteByPageID(ctx, page.ID)
	if err != nil {
		return fmt.Errorf("failed to delete seo metadata: %w", err)
	}
	if deleted == 0 {
		return ErrSEOMetadataNotFound
	}

	s.audit.Record(ctx, page.TenantID, actorID, domain.ActionDelete, "seo_metadata", "",
		map[string]any{"page_id": page.ID}, reqCtx)

	return nil
}
