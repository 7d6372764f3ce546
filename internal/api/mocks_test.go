package api

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/config"
	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
	"github.com/jigardalal/siteninja-backend-sub001/internal/middleware"
	"github.com/jigardalal/siteninja-backend-sub001/internal/service"
	"github.com/jigardalal/siteninja-backend-sub001/internal/utils"
)

type MockSEOService struct {
	mock.Mock
}

func (m *MockSEOService) Get(ctx context.Context, tenantKey, pageID string) (*dto.SEOMetadataResponse, error) {
	args := m.Called(ctx, tenantKey, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SEOMetadataResponse), args.Error(1)
}

func (m *MockSEOService) Upsert(ctx context.Context, tenantKey, pageID string, req dto.UpsertSEORequest, actorID string, reqCtx service.RequestContext) (*dto.SEOMetadataResponse, error) {
	args := m.Called(ctx, tenantKey, pageID, req, actorID, reqCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SEOMetadataResponse), args.Error(1)
}

func (m *MockSEOService) Delete(ctx context.Context, tenantKey, pageID, actorID string, reqCtx service.RequestContext) error {
	args := m.Called(ctx, tenantKey, pageID, actorID, reqCtx)
	return args.Error(0)
}

type MockAPIKeyService struct {
	mock.Mock
}

func (m *MockAPIKeyService) Generate(ctx context.Context, tenantKey string, req dto.CreateAPIKeyRequest, actorID string, reqCtx service.RequestContext) (*dto.APIKeyCreatedResponse, error) {
	args := m.Called(ctx, tenantKey, req, actorID, reqCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.APIKeyCreatedResponse), args.Error(1)
}

func (m *MockAPIKeyService) List(ctx context.Context, tenantKey string, query dto.ListAPIKeysQuery) ([]dto.APIKeySummary, int64, error) {
	args := m.Called(ctx, tenantKey, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]dto.APIKeySummary), args.Get(1).(int64), args.Error(2)
}

type MockAISEOService struct {
	mock.Mock
}

func (m *MockAISEOService) Generate(ctx context.Context, req dto.GenerateSEORequest, actorID string, reqCtx service.RequestContext) (*dto.SEOSuggestionsResponse, error) {
	args := m.Called(ctx, req, actorID, reqCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SEOSuggestionsResponse), args.Error(1)
}

func (m *MockAISEOService) Optimize(ctx context.Context, req dto.OptimizeSEORequest, actorID string, reqCtx service.RequestContext) (*dto.SEOSuggestionsResponse, error) {
	args := m.Called(ctx, req, actorID, reqCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SEOSuggestionsResponse), args.Error(1)
}

type MockAuditQueryService struct {
	mock.Mock
}

func (m *MockAuditQueryService) List(ctx context.Context, tenantKey string, filter *domain.AuditEntryFilter) ([]dto.AuditEntryResponse, int64, error) {
	args := m.Called(ctx, tenantKey, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]dto.AuditEntryResponse), args.Get(1).(int64), args.Error(2)
}

func testGuard() *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(&config.Config{JWTSecretKey: "test-secret"})
}

// withClaims mimics JWTAuth by planting parsed claims on the gin context.
func withClaims(userID string, tenantKeys ...string) gin.HandlerFunc {
	grants := make([]any, 0, len(tenantKeys))
	for _, k := range tenantKeys {
		grants = append(grants, k)
	}
	return func(c *gin.Context) {
		c.Set(string(utils.ClaimsKey), jwt.MapClaims{
			"user_id": userID,
			"tenants": grants,
		})
	}
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
