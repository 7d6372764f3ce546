package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/middleware"
	"github.com/jigardalal/siteninja-backend-sub001/internal/service"
)

//go:generate mockery --name APIKeyService --output ../mocks
type APIKeyService interface {
	Generate(ctx context.Context, tenantKey string, req dto.CreateAPIKeyRequest, actorID string, reqCtx service.RequestContext) (*dto.APIKeyCreatedResponse, error)
	List(ctx context.Context, tenantKey string, query dto.ListAPIKeysQuery) ([]dto.APIKeySummary, int64, error)
}

type APIKeyHandler struct {
	*BaseHandler
	service APIKeyService
	guard   *middleware.AuthMiddleware
}

func NewAPIKeyHandler(service APIKeyService, guard *middleware.AuthMiddleware) *APIKeyHandler {
	return &APIKeyHandler{service: service, guard: guard}
}

// CreateAPIKey godoc
// @Summary Issue a new API key
// @Description Generates a tenant API key; the plaintext secret appears only in this response
// @Tags api_keys
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant key"
// @Param body body dto.CreateAPIKeyRequest true "API key settings"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{tenantId}/api-keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	tenantKey := c.Param("tenantId")
	identity, ok := h.guard.Authorize(c, tenantKey)
	if !ok {
		return
	}

	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	created, err := h.service.Generate(h.RequestCtx(c), tenantKey, req, identity.ActorID, h.RequestContext(c))
	if err != nil {
		h.ServiceError(c, err)
		return
	}

	h.Created(c, created, "Store this key now; it will not be shown again")
}

// ListAPIKeys godoc
// @Summary List a tenant's API keys
// @Description Returns paginated key summaries without secrets
// @Tags api_keys
// @Produce json
// @Param tenantId path string true "Tenant key"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.PaginatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{tenantId}/api-keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	tenantKey := c.Param("tenantId")
	if _, ok := h.guard.Authorize(c, tenantKey); !ok {
		return
	}

	var query dto.ListAPIKeysQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	keys, total, err := h.service.List(h.RequestCtx(c), tenantKey, query)
	if err != nil {
		h.ServiceError(c, err)
		return
	}

	h.Paginated(c, keys, query.Page, query.Limit, total)
}
