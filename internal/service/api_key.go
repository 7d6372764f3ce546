package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
	"github.com/jigardalal/siteninja-backend-sub001/internal/repository"
	"github.com/jigardalal/siteninja-backend-sub001/pkg/utils"
)

const (
	secretPrefix    = "sn_"
	secretRandBytes = 24
	prefixLen       = 11 // "sn_" plus the first 8 hex chars
)

type APIKeyService struct {
	repo  repository.Repository
	audit AuditRecorder
}

func NewAPIKeyService(repo repository.Repository, audit AuditRecorder) *APIKeyService {
	return &APIKeyService{repo: repo, audit: audit}
}

// Generate issues a new key. The plaintext secret is present only in
// the returned response; the stored row keeps the prefix and a SHA-256
// hash.
func (s *APIKeyService) Generate(ctx context.Context, tenantKey string, req dto.CreateAPIKeyRequest, actorID string, reqCtx RequestContext) (*dto.APIKeyCreatedResponse, error) {
	tenant, err := resolveTenant(ctx, s.repo, tenantKey)
	if err != nil {
		return nil, err
	}

	for _, p := range req.Permissions {
		if !domain.IsValidPermission(p) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPermission, p)
		}
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		t, err := utils.ParseUserTime(req.ExpiresAt, true)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExpiry, req.ExpiresAt)
		}
		if t.Before(time.Now()) {
			return nil, fmt.Errorf("%w: expiry must be in the future", ErrInvalidExpiry)
		}
		expiresAt = &t
	}

	secret, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key secret: %w", err)
	}

	hash := sha256.Sum256([]byte(secret))
	key := &domain.APIKey{
		TenantID:    tenant.ID,
		Name:        req.Name,
		KeyPrefix:   secret[:prefixLen],
		KeyHash:     hex.EncodeToString(hash[:]),
		Permissions: req.Permissions,
		RateLimit:   req.RateLimit,
		ExpiresAt:   expiresAt,
		IsActive:    true,
		CreatedBy:   actorID,
	}

	if err := s.repo.APIKey().Create(ctx, key); err != nil {
		return nil, fmt.Errorf("failed to store api key: %w", err)
	}

	// The audit entry records the prefix, never the secret.
	s.audit.Record(ctx, tenant.ID, actorID, domain.ActionCreate, "api_key", key.ID,
		map[string]any{
			"name":        key.Name,
			"key_prefix":  key.KeyPrefix,
			"permissions": []string(key.Permissions),
		}, reqCtx)

	return &dto.APIKeyCreatedResponse{
		ID:          key.ID,
		Name:        key.Name,
		Key:         secret,
		KeyPrefix:   key.KeyPrefix,
		Permissions: key.Permissions,
		RateLimit:   key.RateLimit,
		ExpiresAt:   key.ExpiresAt,
		CreatedAt:   key.CreatedAt,
	}, nil
}

// List returns key summaries for a tenant plus the total count.
func (s *APIKeyService) List(ctx context.Context, tenantKey string, query dto.ListAPIKeysQuery) ([]dto.APIKeySummary, int64, error) {
	tenant, err := resolveTenant(ctx, s.repo, tenantKey)
	if err != nil {
		return nil, 0, err
	}

	filter := domain.APIKeyFilter{
		TenantID: tenant.ID,
		IsActive: query.IsActive,
		Page:     query.Page,
		Limit:    query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	keys, total, err := s.repo.APIKey().List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list api keys: %w", err)
	}

	return dto.FromAPIKeys(keys), total, nil
}

func generateSecret() (string, error) {
	buf := make([]byte, secretRandBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return secretPrefix + hex.EncodeToString(buf), nil
}
