package dto

import (
	"github.com/jigardalal/siteninja-backend-sub001/internal/domain"
)

// FromSEOMetadata converts an SEOMetadata domain model to its response DTO
func FromSEOMetadata(m *domain.SEOMetadata) *SEOMetadataResponse {
	return &SEOMetadataResponse{
		ID:              m.ID,
		PageID:          m.PageID,
		MetaTitle:       m.MetaTitle,
		MetaDescription: m.MetaDescription,
		Keywords:        m.Keywords,
		CanonicalURL:    m.CanonicalURL,
		Robots:          m.Robots,
		OGTitle:         m.OGTitle,
		OGDescription:   m.OGDescription,
		OGImage:         m.OGImage,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromAPIKey converts an APIKey domain model to its listing summary.
// The summary never carries the secret or its hash.
func FromAPIKey(k *domain.APIKey) *APIKeySummary {
	return &APIKeySummary{
		ID:          k.ID,
		Name:        k.Name,
		KeyPrefix:   k.KeyPrefix,
		Permissions: k.Permissions,
		RateLimit:   k.RateLimit,
		ExpiresAt:   k.ExpiresAt,
		IsActive:    k.IsActive,
		CreatedBy:   k.CreatedBy,
		LastUsedAt:  k.LastUsedAt,
		CreatedAt:   k.CreatedAt,
	}
}

func FromAPIKeys(keys []domain.APIKey) []APIKeySummary {
	summaries := make([]APIKeySummary, len(keys))
	for i := range keys {
		summaries[i] = *FromAPIKey(&keys[i])
	}
	return summaries
}

// FromAuditEntry converts an AuditEntry domain model to its response DTO
func FromAuditEntry(e *domain.AuditEntry) *AuditEntryResponse {
	return &AuditEntryResponse{
		ID:           e.ID,
		TenantID:     e.TenantID,
		ActorID:      e.ActorID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		Metadata:     e.Metadata,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
		Timestamp:    e.Timestamp,
	}
}

func FromAuditEntries(entries []domain.AuditEntry) []AuditEntryResponse {
	responses := make([]AuditEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *FromAuditEntry(&entries[i])
	}
	return responses
}
