package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jigardalal/siteninja-backend-sub001/internal/ai"
	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
	"github.com/jigardalal/siteninja-backend-sub001/internal/repository"
)

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	args := m.Called(ctx, tenant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) GetByKey(ctx context.Context, key string) (*domain.Tenant, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

type MockPageRepository struct {
	mock.Mock
}

func (m *MockPageRepository) GetByID(ctx context.Context, tenantID, pageID string) (*domain.Page, error) {
	args := m.Called(ctx, tenantID, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func (m *MockPageRepository) Create(ctx context.Context, page *domain.Page) (*domain.Page, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

type MockSEORepository struct {
	mock.Mock
}

func (m *MockSEORepository) GetByPageID(ctx context.Context, pageID string) (*domain.SEOMetadata, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SEOMetadata), args.Error(1)
}

func (m *MockSEORepository) Upsert(ctx context.Context, metadata *domain.SEOMetadata) (*domain.SEOMetadata, error) {
	args := m.Called(ctx, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SEOMetadata), args.Error(1)
}

func (m *MockSEORepository) DeleteByPageID(ctx context.Context, pageID string) (int64, error) {
	args := m.Called(ctx, pageID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAPIKeyRepository struct {
	mock.Mock
}

func (m *MockAPIKeyRepository) Create(ctx context.Context, key *domain.APIKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAPIKeyRepository) List(ctx context.Context, filter domain.APIKeyFilter) ([]domain.APIKey, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.APIKey), args.Get(1).(int64), args.Error(2)
}

type MockAuditEntryRepository struct {
	mock.Mock
}

func (m *MockAuditEntryRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditEntryRepository) List(ctx context.Context, filter domain.AuditEntryFilter) ([]domain.AuditEntry, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.AuditEntry), args.Get(1).(int64), args.Error(2)
}

// MockRepository bundles the per-entity mocks behind the Repository interface
type MockRepository struct {
	TenantRepo     *MockTenantRepository
	PageRepo       *MockPageRepository
	SEORepo        *MockSEORepository
	APIKeyRepo     *MockAPIKeyRepository
	AuditEntryRepo *MockAuditEntryRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		TenantRepo:     new(MockTenantRepository),
		PageRepo:       new(MockPageRepository),
		SEORepo:        new(MockSEORepository),
		APIKeyRepo:     new(MockAPIKeyRepository),
		AuditEntryRepo: new(MockAuditEntryRepository),
	}
}

func (m *MockRepository) Tenant() repository.TenantRepository         { return m.TenantRepo }
func (m *MockRepository) Page() repository.PageRepository             { return m.PageRepo }
func (m *MockRepository) SEO() repository.SEORepository               { return m.SEORepo }
func (m *MockRepository) APIKey() repository.APIKeyRepository         { return m.APIKeyRepo }
func (m *MockRepository) AuditEntry() repository.AuditEntryRepository { return m.AuditEntryRepo }

type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, tenantID, actorID string, action domain.ActionType, resourceType, resourceID string, metadata map[string]any, reqCtx RequestContext) {
	m.Called(ctx, tenantID, actorID, action, resourceType, resourceID, metadata, reqCtx)
}

type MockSuggestionClient struct {
	mock.Mock
}

func (m *MockSuggestionClient) Suggest(ctx context.Context, in ai.SuggestionInput) (*ai.Suggestions, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.Suggestions), args.Error(1)
}
