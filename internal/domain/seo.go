package domain

import (
	"time"

	"github.com/lib/pq"
)

// SEOMetadata is one-to-one with a page. It must never exist for a page
// that is absent or soft-deleted; callers resolve the page first.
type SEOMetadata struct {
	ID              string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	PageID          string         `gorm:"type:uuid;not null;unique" json:"page_id"`
	MetaTitle       string         `gorm:"type:text;not null" json:"meta_title"`
	MetaDescription string         `gorm:"type:text" json:"meta_description"`
	Keywords        pq.StringArray `gorm:"type:text[]" json:"keywords"`
	CanonicalURL    string         `gorm:"type:text" json:"canonical_url"`
	Robots          string         `gorm:"type:text" json:"robots"`
	OGTitle         string         `gorm:"type:text" json:"og_title"`
	OGDescription   string         `gorm:"type:text" json:"og_description"`
	OGImage         string         `gorm:"type:text" json:"og_image"`
	CreatedAt       time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Page            *Page          `gorm:"foreignKey:PageID" json:"-"`
}

func (SEOMetadata) TableName() string {
	return "seo_metadata"
}
