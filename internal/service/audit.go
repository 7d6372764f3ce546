package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
	"github.com/jigardalal/siteninja-backend-sub001/internal/repository"
	"github.com/jigardalal/siteninja-backend-sub001/pkg/logger"
)

// RequestContext carries the transport-level details recorded with
// every audit entry.
type RequestContext struct {
	IPAddress string
	UserAgent string
}

type AuditService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewAuditService(repo repository.Repository, logger *logger.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Record appends one audit entry. Failures are logged, never returned:
// the audit write is not transactionally joined to the mutation it
// describes, and a lost entry must not fail the request.
func (s *AuditService) Record(ctx context.Context, tenantID, actorID string, action domain.ActionType, resourceType, resourceID string, metadata map[string]any, reqCtx RequestContext) {
	var payload json.RawMessage
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			s.logger.Error("Failed to encode audit metadata", err,
				zap.String("tenant_id", tenantID),
				zap.String("action", string(action)))
		} else {
			payload = raw
		}
	}

	entry := &domain.AuditEntry{
		TenantID:     tenantID,
		ActorID:      actorID,
		Action:       string(action),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Metadata:     payload,
		IPAddress:    reqCtx.IPAddress,
		UserAgent:    reqCtx.UserAgent,
		Timestamp:    time.Now(),
	}

	if err := s.repo.AuditEntry().Create(ctx, entry); err != nil {
		s.logger.Error("Failed to write audit entry", err,
			zap.String("tenant_id", tenantID),
			zap.String("action", string(action)),
			zap.String("resource_type", resourceType))
	}
}

// List returns a tenant's audit trail, newest first.
func (s *AuditService) List(ctx context.Context, tenantKey string, filter *domain.AuditEntryFilter) ([]dto.AuditEntryResponse, int64, error) {
	tenant, err := resolveTenant(ctx, s.repo, tenantKey)
	if err != nil {
		return nil, 0, err
	}
	filter.TenantID = tenant.ID

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	entries, total, err := s.repo.AuditEntry().List(ctx, *filter)
	if err != nil {
		return nil, 0, err
	}
	return dto.FromAuditEntries(entries), total, nil
}
