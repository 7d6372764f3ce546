package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jigardalal/siteninja-backend-sub001/internal/config"
	"github.com/jigardalal/siteninja-backend-sub001/internal/middleware"
	"github.com/jigardalal/siteninja-backend-sub001/internal/service"
)

type Server struct {
	seo        *SEOHandler
	apiKey     *APIKeyHandler
	ai         *AIHandler
	audit      *AuditHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	cfg        *config.Config
}

func NewServer(
	seoService *service.SEOService,
	apiKeyService *service.APIKeyService,
	aiService *service.AISEOService,
	auditService *service.AuditService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	cfg *config.Config,
) *Server {
	return &Server{
		seo:        NewSEOHandler(seoService, auth),
		apiKey:     NewAPIKeyHandler(apiKeyService, auth),
		ai:         NewAIHandler(aiService, auth),
		audit:      NewAuditHandler(auditService, auth),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
		cfg:        cfg,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(s.cfg.MaxRequestBody))
	api.Use(s.validation.ValidateContentType("application/json"))
	api.Use(s.rateLimit.IPRateLimit())

	{
		ai := api.Group("/ai", s.auth.JWTAuth(), s.rateLimit.ActorRateLimit())
		{
			ai.POST("/seo", s.ai.GenerateSEO)
			ai.POST("/seo-optimize", s.ai.OptimizeSEO)
		}

		tenants := api.Group("/tenants/:tenantId", s.auth.JWTAuth(), s.rateLimit.ActorRateLimit())
		{
			tenants.GET("/api-keys", s.apiKey.ListAPIKeys)
			tenants.POST("/api-keys", s.apiKey.CreateAPIKey)

			tenants.GET("/pages/:pageId/seo", s.seo.GetSEO)
			tenants.PUT("/pages/:pageId/seo", s.seo.UpsertSEO)
			tenants.DELETE("/pages/:pageId/seo", s.seo.DeleteSEO)

			tenants.GET("/audit-logs", s.audit.ListAuditEntries)
		}
	}
}
