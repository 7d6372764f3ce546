package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/middleware"
	"github.com/jigardalal/siteninja-backend-sub001/internal/service"
)

//go:generate mockery --name SEOService --output ../mocks
type SEOService interface {
	Get(ctx context.Context, tenantKey, pageID string) (*dto.SEOMetadataResponse, error)
	Upsert(ctx context.Context, tenantKey, pageID string, req dto.UpsertSEORequest, actorID string, reqCtx service.RequestContext) (*dto.SEOMetadataResponse, error)
	Delete(ctx context.Context, tenantKey, pageID, actorID string, reqCtx service.RequestContext) error
}

type SEOHandler struct {
	*BaseHandler
	service SEOService
	guard   *middleware.AuthMiddleware
}

func NewSEOHandler(service SEOService, guard *middleware.AuthMiddleware) *SEOHandler {
	return &SEOHandler{service: service, guard: guard}
}

// GetSEO godoc
// @Summary Get a page's SEO metadata
// @Description Returns the SEO metadata of a page, 404 if the page is missing, soft-deleted, or has no metadata
// @Tags seo
// @Produce json
// @Param tenantId path string true "Tenant key"
// @Param pageId path string true "Page ID"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{tenantId}/pages/{pageId}/seo [get]
func (h *SEOHandler) GetSEO(c *gin.Context) {
	tenantKey := c.Param("tenantId")
	if _, ok := h.guard.Authorize(c, tenantKey); !ok {
		return
	}

	metadata, err := h.service.Get(h.RequestCtx(c), tenantKey, c.Param("pageId"))
	if err != nil {
		h.ServiceError(c, err)
		return
	}

	h.OK(c, metadata, "")
}

// UpsertSEO godoc
// @Summary Create or replace a page's SEO metadata
// @Description Creates the metadata if absent, else replaces the supplied fields; idempotent for identical bodies
// @Tags seo
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant key"
// @Param pageId path string true "Page ID"
// @Param body body dto.UpsertSEORequest true "SEO metadata fields"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{tenantId}/pages/{pageId}/seo [put]
func (h *SEOHandler) UpsertSEO(c *gin.Context) {
	tenantKey := c.Param("tenantId")
	identity, ok := h.guard.Authorize(c, tenantKey)
	if !ok {
		return
	}

	var req dto.UpsertSEORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	metadata, err := h.service.Upsert(h.RequestCtx(c), tenantKey, c.Param("pageId"), req, identity.ActorID, h.RequestContext(c))
	if err != nil {
		h.ServiceError(c, err)
		return
	}

	h.OK(c, metadata, "SEO metadata saved")
}

// DeleteSEO godoc
// @Summary Delete a page's SEO metadata
// @Description Deletes the metadata and returns an empty 204; 404 if the page or metadata is absent
// @Tags seo
// @Param tenantId path string true "Tenant key"
// @Param pageId path string true "Page ID"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{tenantId}/pages/{pageId}/seo [delete]
func (h *SEOHandler) DeleteSEO(c *gin.Context) {
	tenantKey := c.Param("tenantId")
	identity, ok := h.guard.Authorize(c, tenantKey)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), tenantKey, c.Param("pageId"), identity.ActorID, h.RequestContext(c)); err != nil {
		h.ServiceError(c, err)
		return
	}

	h.NoContent(c)
}
