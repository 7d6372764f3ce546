package domain

import (
	"time"

	"github.com/lib/pq"
)

// APIKey stores only a short displayable prefix and a SHA-256 hash of
// the generated secret. The plaintext secret is returned once at
// creation and is never recoverable afterwards.
type APIKey struct {
	ID          string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string         `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	KeyPrefix   string         `gorm:"type:text;not null" json:"key_prefix"`
	KeyHash     string         `gorm:"type:text;not null;uniqueIndex" json:"-"`
	Permissions pq.StringArray `gorm:"type:text[];not null" json:"permissions"`
	RateLimit   *int           `gorm:"" json:"rate_limit,omitempty"`
	ExpiresAt   *time.Time     `gorm:"type:timestamp with time zone" json:"expires_at,omitempty"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedBy   string         `gorm:"type:text;not null" json:"created_by"`
	LastUsedAt  *time.Time     `gorm:"type:timestamp with time zone" json:"last_used_at,omitempty"`
	CreatedAt   time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant      *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
}

func (APIKey) TableName() string {
	return "api_keys"
}

// APIKeyFilter narrows api key listings. IsActive is a tri-state:
// nil means no filtering on the active flag.
type APIKeyFilter struct {
	TenantID string `json:"tenant_id"`
	IsActive *bool  `json:"is_active"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}
