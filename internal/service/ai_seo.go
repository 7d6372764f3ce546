package service

import (
	"context"

	"github.com/jigardalal/siteninja-backend-sub001/internal/ai"
	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
	"github.com/jigardalal/siteninja-backend-sub001/internal/repository"
)

//go:generate mockery --name SuggestionClient --output ../mocks
type SuggestionClient interface {
	Suggest(ctx context.Context, in ai.SuggestionInput) (*ai.Suggestions, error)
}

type AISEOService struct {
	repo   repository.Repository
	client SuggestionClient
	audit  AuditRecorder
}

func NewAISEOService(repo repository.Repository, client SuggestionClient, audit AuditRecorder) *AISEOService {
	return &AISEOService{repo: repo, client: client, audit: audit}
}

// Generate serves the /ai/seo contract: long-form content with a
// mandatory current title.
func (s *AISEOService) Generate(ctx context.Context, req dto.GenerateSEORequest, actorID string, reqCtx RequestContext) (*dto.SEOSuggestionsResponse, error) {
	return s.suggest(ctx, ai.SuggestionInput{
		Content:        req.Content,
		CurrentTitle:   req.CurrentTitle,
		TargetKeywords: req.TargetKeywords,
		BusinessType:   req.BusinessType,
		Model:          req.Model,
	}, req.TenantID, actorID, reqCtx)
}

// Optimize serves the /ai/seo-optimize contract: any non-empty content,
// title optional. The two contracts stay separate on purpose.
func (s *AISEOService) Optimize(ctx context.Context, req dto.OptimizeSEORequest, actorID string, reqCtx RequestContext) (*dto.SEOSuggestionsResponse, error) {
	return s.suggest(ctx, ai.SuggestionInput{
		Content:        req.Content,
		CurrentTitle:   req.Title,
		TargetKeywords: req.Keywords,
		Model:          req.Model,
	}, req.TenantID, actorID, reqCtx)
}

func (s *AISEOService) suggest(ctx context.Context, in ai.SuggestionInput, tenantKey, actorID string, reqCtx RequestContext) (*dto.SEOSuggestionsResponse, error) {
	tenant, err := resolveTenant(ctx, s.repo, tenantKey)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.client.Suggest(ctx, in)
	if err != nil {
		return nil, err
	}

	model := in.Model
	if model == "" {
		model = ai.DefaultModel
	}

	s.audit.Record(ctx, tenant.ID, actorID, domain.ActionGenerate, "seo_suggestions", "",
		map[string]any{
			"content_length": len(in.Content),
			"model":          model,
		}, reqCtx)

	return &dto.SEOSuggestionsResponse{
		CurrentTitle:         in.CurrentTitle,
		SuggestedTitle:       suggestions.MetaTitle,
		SuggestedDescription: suggestions.MetaDescription,
		SuggestedKeywords:    suggestions.Keywords,
		Suggestions:          suggestions.Suggestions,
		Model:                model,
	}, nil
}
