package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/middleware"
	"github.com/jigardalal/siteninja-backend-sub001/internal/service"
)

//go:generate mockery --name AISEOService --output ../mocks
type AISEOService interface {
	Generate(ctx context.Context, req dto.GenerateSEORequest, actorID string, reqCtx service.RequestContext) (*dto.SEOSuggestionsResponse, error)
	Optimize(ctx context.Context, req dto.OptimizeSEORequest, actorID string, reqCtx service.RequestContext) (*dto.SEOSuggestionsResponse, error)
}

type AIHandler struct {
	*BaseHandler
	service AISEOService
	guard   *middleware.AuthMiddleware
}

func NewAIHandler(service AISEOService, guard *middleware.AuthMiddleware) *AIHandler {
	return &AIHandler{service: service, guard: guard}
}

// GenerateSEO godoc
// @Summary Generate SEO suggestions
// @Description Generates SEO suggestions for long-form content; requires at least 50 characters and a current title
// @Tags ai
// @Accept json
// @Produce json
// @Param body body dto.GenerateSEORequest true "Content and generation options"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ai/seo [post]
func (h *AIHandler) GenerateSEO(c *gin.Context) {
	var req dto.GenerateSEORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	identity, ok := h.guard.Authorize(c, req.TenantID)
	if !ok {
		return
	}

	suggestions, err := h.service.Generate(h.RequestCtx(c), req, identity.ActorID, h.RequestContext(c))
	if err != nil {
		h.ServiceError(c, err)
		return
	}

	h.OK(c, suggestions, "")
}

// OptimizeSEO godoc
// @Summary Optimize content for SEO
// @Description Generates SEO suggestions for any non-empty content; title is optional
// @Tags ai
// @Accept json
// @Produce json
// @Param body body dto.OptimizeSEORequest true "Content and generation options"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ai/seo-optimize [post]
func (h *AIHandler) OptimizeSEO(c *gin.Context) {
	var req dto.OptimizeSEORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	identity, ok := h.guard.Authorize(c, req.TenantID)
	if !ok {
		return
	}

	suggestions, err := h.service.Optimize(h.RequestCtx(c), req, identity.ActorID, h.RequestContext(c))
	if err != nil {
		h.ServiceError(c, err)
		return
	}

	h.OK(c, suggestions, "")
}
