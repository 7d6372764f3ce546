package integration

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api"
	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/config"
	"github.com/jigardalal/siteninja-backend-sub001/internal/middleware"
	"github.com/jigardalal/siteninja-backend-sub001/internal/service"
	"github.com/jigardalal/siteninja-backend-sub001/internal/utils"
	"github.com/jigardalal/siteninja-backend-sub001/pkg/logger"
)

type benchSEOService struct {
	mock.Mock
}

func (m *benchSEOService) Get(ctx context.Context, tenantKey, pageID string) (*dto.SEOMetadataResponse, error) {
	args := m.Called(ctx, tenantKey, pageID)
	return args.Get(0).(*dto.SEOMetadataResponse), args.Error(1)
}

func (m *benchSEOService) Upsert(ctx context.Context, tenantKey, pageID string, req dto.UpsertSEORequest, actorID string, reqCtx service.RequestContext) (*dto.SEOMetadataResponse, error) {
	args := m.Called(ctx, tenantKey, pageID, req, actorID, reqCtx)
	return args.Get(0).(*dto.SEOMetadataResponse), args.Error(1)
}

func (m *benchSEOService) Delete(ctx context.Context, tenantKey, pageID, actorID string, reqCtx service.RequestContext) error {
	args := m.Called(ctx, tenantKey, pageID, actorID, reqCtx)
	return args.Error(0)
}

func BenchmarkUpsertSEO(b *testing.B) {
	gin.SetMode(gin.TestMode)
	logger.NewLogger("test")

	mockService := new(benchSEOService)
	guard := middleware.NewAuthMiddleware(&config.Config{JWTSecretKey: "bench-secret"})
	handler := api.NewSEOHandler(mockService, guard)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(utils.ClaimsKey), jwt.MapClaims{
			"user_id": "bench-user",
			"tenants": []any{"acme"},
		})
		c.Next()
	})
	router.PUT("/tenants/:tenantId/pages/:pageId/seo", handler.UpsertSEO)

	mockService.On("Upsert", mock.Anything, "acme", "page1",
		mock.AnythingOfType("dto.UpsertSEORequest"), "bench-user",
		mock.AnythingOfType("service.RequestContext")).Return(&dto.SEOMetadataResponse{
		PageID:    "page1",
		MetaTitle: "Acme Bakery | Fresh Bread Daily",
	}, nil)

	payload := []byte(`{"meta_title":"Acme Bakery | Fresh Bread Daily","meta_description":"Artisan bread baked every morning","keywords":["bakery","bread"]}`)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodPut, "/tenants/acme/pages/page1/seo", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}
