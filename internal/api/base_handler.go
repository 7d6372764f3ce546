package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jigardalal/siteninja-backend-sub001/internal/ai"
	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/service"
	"github.com/jigardalal/siteninja-backend-sub001/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// RequestContext captures the transport details recorded in audit entries.
func (h *BaseHandler) RequestContext(c *gin.Context) service.RequestContext {
	return service.RequestContext{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// Every response flows through one of the helpers below so the envelope
// shape and status codes stay identical across routes.

func (h *BaseHandler) OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, dto.NewSuccess(data, message))
}

func (h *BaseHandler) Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, dto.NewSuccess(data, message))
}

func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *BaseHandler) Paginated(c *gin.Context, data any, page, limit int, total int64) {
	c.JSON(http.StatusOK, dto.NewPaginated(data, page, limit, total))
}

// BindingError renders a 400 with per-field messages.
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewValidationError(dto.FieldErrorsFrom(err)))
}

// ServiceError maps service and provider failures onto the error
// taxonomy. Anything unrecognized becomes a generic 500 that leaks no
// internals.
func (h *BaseHandler) ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrPageNotFound),
		errors.Is(err, service.ErrSEOMetadataNotFound):
		c.JSON(http.StatusNotFound, dto.NewError(err.Error()))
	case errors.Is(err, service.ErrInvalidPermission),
		errors.Is(err, service.ErrInvalidExpiry):
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
	case errors.Is(err, ai.ErrAuth):
		// Distinct from validation failures so operators can tell a broken
		// provider credential apart from bad caller input.
		c.JSON(http.StatusInternalServerError, dto.NewError(
			"AI provider credential is missing or invalid; check AI_PROVIDER_API_KEY"))
	case errors.Is(err, ai.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, dto.NewError("AI provider rate limit exceeded, retry later"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
	}
}
