package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
	"github.com/jigardalal/siteninja-backend-sub001/internal/middleware"
)

//go:generate mockery --name AuditQueryService --output ../mocks
type AuditQueryService interface {
	List(ctx context.Context, tenantKey string, filter *domain.AuditEntryFilter) ([]dto.AuditEntryResponse, int64, error)
}

type AuditHandler struct {
	*BaseHandler
	service AuditQueryService
	guard   *middleware.AuthMiddleware
}

func NewAuditHandler(service AuditQueryService, guard *middleware.AuthMiddleware) *AuditHandler {
	return &AuditHandler{service: service, guard: guard}
}

// ListAuditEntries godoc
// @Summary List a tenant's audit trail
// @Description Returns paginated audit entries, newest first, with optional actor/action/resource filters
// @Tags audit
// @Produce json
// @Param tenantId path string true "Tenant key"
// @Param actorId query string false "Filter by actor"
// @Param action query string false "Filter by action"
// @Param resourceType query string false "Filter by resource type"
// @Param resourceId query string false "Filter by resource ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.PaginatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{tenantId}/audit-logs [get]
func (h *AuditHandler) ListAuditEntries(c *gin.Context) {
	tenantKey := c.Param("tenantId")
	if _, ok := h.guard.Authorize(c, tenantKey); !ok {
		return
	}

	var query dto.ListAuditEntriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := &domain.AuditEntryFilter{
		ActorID:      query.ActorID,
		Action:       query.Action,
		ResourceType: query.ResourceType,
		ResourceID:   query.ResourceID,
		Page:         query.Page,
		Limit:        query.Limit,
	}

	entries, total, err := h.service.List(h.RequestCtx(c), tenantKey, filter)
	if err != nil {
		h.ServiceError(c, err)
		return
	}

	h.Paginated(c, entries, filter.Page, filter.Limit, total)
}
