package domain

import (
	"time"

	"gorm.io/gorm"
)

// Page belongs to exactly one tenant and is soft-deleted: DeletedAt is
// set instead of removing the row, and gorm excludes such rows from
// normal queries.
type Page struct {
	ID        string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string         `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Slug      string         `gorm:"type:text;not null" json:"slug"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Published bool           `gorm:"not null;default:false" json:"published"`
	CreatedAt time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Tenant    *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
}

func (Page) TableName() string {
	return "pages"
}
