package dto

// UpsertSEORequest carries the SEO metadata fields for a page. The same
// body applied twice yields the same stored state.
type UpsertSEORequest struct {
	MetaTitle       string   `json:"meta_title" binding:"required,min=1,max=70" example:"Acme Bakery | Fresh Bread Daily"`
	MetaDescription string   `json:"meta_description" binding:"omitempty,max=320" example:"Artisan bread baked every morning"`
	Keywords        []string `json:"keywords" binding:"omitempty,max=20,dive,min=1,max=60" example:"bakery,bread"`
	CanonicalURL    string   `json:"canonical_url" binding:"omitempty,url"`
	Robots          string   `json:"robots" binding:"omitempty,max=60" example:"index,follow"`
	OGTitle         string   `json:"og_title" binding:"omitempty,max=95"`
	OGDescription   string   `json:"og_description" binding:"omitempty,max=300"`
	OGImage         string   `json:"og_image" binding:"omitempty,url"`
}

// CreateAPIKeyRequest issues a new tenant API key. ExpiresAt accepts
// RFC3339 or YYYY-MM-DD.
type CreateAPIKeyRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100" example:"CI deploy key"`
	Permissions []string `json:"permissions" binding:"required,min=1,max=20,dive,min=1" example:"pages:read,seo:write"`
	RateLimit   *int     `json:"rate_limit" binding:"omitempty,gte=1,lte=100000" example:"600"`
	ExpiresAt   string   `json:"expires_at" binding:"omitempty" example:"2026-12-31"`
}

// ListAPIKeysQuery filters and paginates an api key listing.
type ListAPIKeysQuery struct {
	IsActive *bool `form:"isActive"`
	Page     int   `form:"page,default=1" binding:"omitempty,gte=1"`
	Limit    int   `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
}

// GenerateSEORequest is the contract of POST /api/ai/seo: long-form
// content with a mandatory current title.
type GenerateSEORequest struct {
	Content        string   `json:"content" binding:"required,min=50,max=20000"`
	CurrentTitle   string   `json:"currentTitle" binding:"required,min=1,max=200"`
	TenantID       string   `json:"tenantId" binding:"required"`
	TargetKeywords []string `json:"targetKeywords" binding:"omitempty,max=10,dive,min=1,max=60"`
	BusinessType   string   `json:"businessType" binding:"omitempty,max=100"`
	Model          string   `json:"model" binding:"omitempty,max=100"`
}

// OptimizeSEORequest is the contract of POST /api/ai/seo-optimize: any
// non-empty content, title optional. Deliberately distinct from
// GenerateSEORequest; the two routes are separate documented contracts.
type OptimizeSEORequest struct {
	Content  string   `json:"content" binding:"required,min=1,max=20000"`
	Title    string   `json:"title" binding:"omitempty,max=200"`
	TenantID string   `json:"tenantId" binding:"required"`
	Keywords []string `json:"keywords" binding:"omitempty,max=10,dive,min=1,max=60"`
	Model    string   `json:"model" binding:"omitempty,max=100"`
}

// ListAuditEntriesQuery filters and paginates a tenant's audit trail.
type ListAuditEntriesQuery struct {
	ActorID      string `form:"actorId"`
	Action       string `form:"action"`
	ResourceType string `form:"resourceType"`
	ResourceID   string `form:"resourceId"`
	Page         int    `form:"page,default=1" binding:"omitempty,gte=1"`
	Limit        int    `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
}
