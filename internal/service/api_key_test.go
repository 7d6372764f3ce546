package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
)

type APIKeyServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockRepository
	mockAudit *MockAuditRecorder
	service   *APIKeyService
}

func (s *APIKeyServiceTestSuite) SetupTest() {
	s.mockRepo = NewMockRepository()
	s.mockAudit = new(MockAuditRecorder)
	s.service = NewAPIKeyService(s.mockRepo, s.mockAudit)
}

func TestAPIKeyService(t *testing.T) {
	suite.Run(t, new(APIKeyServiceTestSuite))
}

func (s *APIKeyServiceTestSuite) tenant() *domain.Tenant {
	return &domain.Tenant{ID: "11111111-1111-1111-1111-111111111111", Key: "acme"}
}

func (s *APIKeyServiceTestSuite) TestGenerate_SecretShownOnceAndHashedAtRest() {
	ctx := context.Background()
	tenant := s.tenant()
	req := dto.CreateAPIKeyRequest{
		Name:        "CI deploy key",
		Permissions: []string{"pages:read", "seo:write"},
	}

	var stored *domain.APIKey
	s.mockRepo.TenantRepo.On("GetByKey", ctx, "acme").Return(tenant, nil)
	s.mockRepo.APIKeyRepo.On("Create", ctx, mock.AnythingOfType("*domain.APIKey")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.APIKey)
			stored.ID = "44444444-4444-4444-4444-444444444444"
		}).
		Return(nil)

	s.mockAudit.On("Record", ctx, tenant.ID, "user1", domain.ActionCreate, "api_key",
		mock.Anything, mock.Anything, RequestContext{}).Return()

	resp, err := s.service.Generate(ctx, "acme", req, "user1", RequestContext{})

	s.NoError(err)
	s.True(strings.HasPrefix(resp.Key, "sn_"))
	s.Equal(resp.Key[:11], resp.KeyPrefix)

	// The stored row keeps only the prefix and the SHA-256 of the secret.
	s.NotNil(stored)
	s.NotContains(stored.KeyHash, resp.Key)
	sum := sha256.Sum256([]byte(resp.Key))
	s.Equal(hex.EncodeToString(sum[:]), stored.KeyHash)
	s.Equal(resp.KeyPrefix, stored.KeyPrefix)
	s.mockAudit.AssertExpectations(s.T())
}

func (s *APIKeyServiceTestSuite) TestGenerate_RejectsUnknownPermission() {
	ctx := context.Background()
	s.mockRepo.TenantRepo.On("GetByKey", ctx, "acme").Return(s.tenant(), nil)

	_, err := s.service.Generate(ctx, "acme", dto.CreateAPIKeyRequest{
		Name:        "bad key",
		Permissions: []string{"pages:read", "galaxy:conquer"},
	}, "user1", RequestContext{})

	s.ErrorIs(err, ErrInvalidPermission)
	s.mockRepo.APIKeyRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *APIKeyServiceTestSuite) TestGenerate_RejectsPastExpiry() {
	ctx := context.Background()
	s.mockRepo.TenantRepo.On("GetByKey", ctx, "acme").Return(s.tenant(), nil)

	_, err := s.service.Generate(ctx, "acme", dto.CreateAPIKeyRequest{
		Name:        "expired key",
		Permissions: []string{"pages:read"},
		ExpiresAt:   "2001-01-01",
	}, "user1", RequestContext{})

	s.ErrorIs(err, ErrInvalidExpiry)
}

func (s *APIKeyServiceTestSuite) TestGenerate_TenantNotFound() {
	ctx := context.Background()
	s.mockRepo.TenantRepo.On("GetByKey", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Generate(ctx, "ghost", dto.CreateAPIKeyRequest{
		Name:        "key",
		Permissions: []string{"pages:read"},
	}, "user1", RequestContext{})

	s.ErrorIs(err, ErrTenantNotFound)
}

func (s *APIKeyServiceTestSuite) TestList_NeverExposesSecrets() {
	ctx := context.Background()
	tenant := s.tenant()

	s.mockRepo.TenantRepo.On("GetByKey", ctx, "acme").Return(tenant, nil)
	s.mockRepo.APIKeyRepo.On("List", ctx, mock.AnythingOfType("domain.APIKeyFilter")).Return([]domain.APIKey{
		{
			ID:          "44444444-4444-4444-4444-444444444444",
			TenantID:    tenant.ID,
			Name:        "CI deploy key",
			KeyPrefix:   "sn_4f9a8b7c",
			KeyHash:     "deadbeef",
			Permissions: []string{"pages:read"},
			IsActive:    true,
		},
	}, int64(1), nil)

	keys, total, err := s.service.List(ctx, "acme", dto.ListAPIKeysQuery{Page: 1, Limit: 20})

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(keys, 1)
	s.Equal("sn_4f9a8b7c", keys[0].KeyPrefix)
}

func (s *APIKeyServiceTestSuite) TestList_DefaultsPagination() {
	ctx := context.Background()
	tenant := s.tenant()

	s.mockRepo.TenantRepo.On("GetByKey", ctx, "acme").Return(tenant, nil)
	s.mockRepo.APIKeyRepo.On("List", ctx, domain.APIKeyFilter{
		TenantID: tenant.ID,
		Page:     1,
		Limit:    20,
	}).Return([]domain.APIKey{}, int64(0), nil)

	_, _, err := s.service.List(ctx, "acme", dto.ListAPIKeysQuery{})

	s.NoError(err)
	s.mockRepo.APIKeyRepo.AssertExpectations(s.T())
}
