package domain

import (
	"time"
)

// Tenant is an isolated customer account. Key is the opaque identifier
// exposed to API callers; ID is the internal primary key.
type Tenant struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Key       string    `gorm:"type:text;not null;unique" json:"key"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Plan      string    `gorm:"type:text;not null;default:'free'" json:"plan"`
	RateLimit int       `gorm:"not null;default:1000" json:"rate_limit"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
