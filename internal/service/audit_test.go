package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
	"github.com/jigardalal/siteninja-backend-sub001/pkg/logger"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRepository
	service  *AuditService
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.mockRepo = NewMockRepository()
	s.service = NewAuditService(s.mockRepo, logger.NewLogger("test"))
}

func TestAuditService(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestRecord_PersistsEntry() {
	ctx := context.Background()
	var stored *domain.AuditEntry
	s.mockRepo.AuditEntryRepo.On("Create", ctx, mock.AnythingOfType("*domain.AuditEntry")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.AuditEntry)
		}).Return(nil)

	s.service.Record(ctx, "tenant1", "user1", domain.ActionCreate, "api_key", "key1",
		map[string]any{"name": "CI deploy key"},
		RequestContext{IPAddress: "10.0.0.1", UserAgent: "curl/8.0"})

	s.Require().NotNil(stored)
	s.Equal("tenant1", stored.TenantID)
	s.Equal("CREATE", stored.Action)
	s.Equal("api_key", stored.ResourceType)
	s.Equal("10.0.0.1", stored.IPAddress)
	s.False(stored.Timestamp.IsZero())

	var meta map[string]any
	s.Require().NoError(json.Unmarshal(stored.Metadata, &meta))
	s.Equal("CI deploy key", meta["name"])
}

func (s *AuditServiceTestSuite) TestRecord_SwallowsRepositoryError() {
	ctx := context.Background()
	s.mockRepo.AuditEntryRepo.On("Create", ctx, mock.AnythingOfType("*domain.AuditEntry")).
		Return(errors.New("connection reset"))

	s.NotPanics(func() {
		s.service.Record(ctx, "tenant1", "user1", domain.ActionDelete, "seo_metadata", "page1",
			nil, RequestContext{})
	})
}

func (s *AuditServiceTestSuite) TestList_ScopesToResolvedTenant() {
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "11111111-1111-1111-1111-111111111111", Key: "acme"}
	s.mockRepo.TenantRepo.On("GetByKey", ctx, "acme").Return(tenant, nil)
	s.mockRepo.AuditEntryRepo.On("List", ctx, domain.AuditEntryFilter{
		TenantID: tenant.ID,
		Page:     1,
		Limit:    20,
	}).Return([]domain.AuditEntry{{ID: "entry1", TenantID: tenant.ID}}, int64(1), nil)

	entries, total, err := s.service.List(ctx, "acme", &domain.AuditEntryFilter{})

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(entries, 1)
	s.Equal("entry1", entries[0].ID)
}

func (s *AuditServiceTestSuite) TestList_TenantNotFound() {
	ctx := context.Background()
	s.mockRepo.TenantRepo.On("GetByKey", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := s.service.List(ctx, "ghost", &domain.AuditEntryFilter{})

	s.ErrorIs(err, ErrTenantNotFound)
	s.mockRepo.AuditEntryRepo.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}
