package dto

import (
	"encoding/json"
	"time"
)

// Response is the uniform success envelope every route renders into.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the uniform failure envelope. Details carries the
// per-field validation errors when present.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error" example:"error message"`
	Details any    `json:"details,omitempty"`
}

// PaginatedResponse extends the success envelope with page metadata.
type PaginatedResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
}

func NewSuccess(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

func NewValidationError(details []FieldError) ErrorResponse {
	return ErrorResponse{Success: false, Error: "Validation failed", Details: details}
}

func NewPaginated(data any, page, limit int, total int64) PaginatedResponse {
	return PaginatedResponse{Success: true, Data: data, Page: page, Limit: limit, Total: total}
}

// SEOMetadataResponse represents a page's SEO metadata in responses
type SEOMetadataResponse struct {
	ID              string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	PageID          string    `json:"page_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	MetaTitle       string    `json:"meta_title" example:"Acme Bakery | Fresh Bread Daily"`
	MetaDescription string    `json:"meta_description" example:"Artisan bread baked every morning"`
	Keywords        []string  `json:"keywords" example:"bakery,bread"`
	CanonicalURL    string    `json:"canonical_url,omitempty"`
	Robots          string    `json:"robots,omitempty" example:"index,follow"`
	OGTitle         string    `json:"og_title,omitempty"`
	OGDescription   string    `json:"og_description,omitempty"`
	OGImage         string    `json:"og_image,omitempty"`
	UpdatedAt       time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// APIKeyCreatedResponse is returned exactly once at creation time and
// is the only place the plaintext secret ever appears.
type APIKeyCreatedResponse struct {
	ID          string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string     `json:"name" example:"CI deploy key"`
	Key         string     `json:"key" example:"sn_4f9a8b7c6d5e4f3a2b1c0d9e8f7a6b5c"`
	KeyPrefix   string     `json:"key_prefix" example:"sn_4f9a8b7c"`
	Permissions []string   `json:"permissions" example:"pages:read,seo:write"`
	RateLimit   *int       `json:"rate_limit,omitempty" example:"600"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// APIKeySummary represents an api key in listings; it never carries the
// secret or its hash.
type APIKeySummary struct {
	ID          string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string     `json:"name" example:"CI deploy key"`
	KeyPrefix   string     `json:"key_prefix" example:"sn_4f9a8b7c"`
	Permissions []string   `json:"permissions" example:"pages:read,seo:write"`
	RateLimit   *int       `json:"rate_limit,omitempty" example:"600"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	IsActive    bool       `json:"is_active" example:"true"`
	CreatedBy   string     `json:"created_by" example:"user_123"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// SEOSuggestionsResponse exposes current vs suggested values from an AI
// generation call.
type SEOSuggestionsResponse struct {
	CurrentTitle         string   `json:"current_title,omitempty"`
	SuggestedTitle       string   `json:"suggested_title"`
	SuggestedDescription string   `json:"suggested_description"`
	SuggestedKeywords    []string `json:"suggested_keywords"`
	Suggestions          []string `json:"suggestions"`
	Model                string   `json:"model" example:"gpt-4o-mini"`
}

// AuditEntryResponse represents a single audit entry in listings
type AuditEntryResponse struct {
	ID           string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID     string          `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ActorID      string          `json:"actor_id" example:"user_123"`
	Action       string          `json:"action" example:"CREATE"`
	ResourceType string          `json:"resource_type" example:"api_key"`
	ResourceID   string          `json:"resource_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Metadata     json.RawMessage `json:"metadata,omitempty" swaggertype:"string"`
	IPAddress    string          `json:"ip_address,omitempty" example:"192.168.1.1"`
	UserAgent    string          `json:"user_agent,omitempty" example:"Mozilla/5.0"`
	Timestamp    time.Time       `json:"timestamp" example:"2025-07-17T21:20:48Z"`
}
