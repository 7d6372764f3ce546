package domain

import (
	"encoding/json"
	"time"
)

type ActionType string

const (
	ActionCreate   ActionType = "CREATE"
	ActionUpdate   ActionType = "UPDATE"
	ActionDelete   ActionType = "DELETE"
	ActionGenerate ActionType = "GENERATE"
)

// AuditEntry records who did what to which resource. Append-only; the
// write is not transactionally joined to the mutation it describes.
type AuditEntry struct {
	ID           string          `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID     string          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ActorID      string          `gorm:"type:text;not null" json:"actor_id"`
	Action       string          `gorm:"type:text;not null" json:"action"`
	ResourceType string          `gorm:"type:text;not null" json:"resource_type"`
	ResourceID   string          `gorm:"type:text" json:"resource_id"`
	Metadata     json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	IPAddress    string          `gorm:"type:text" json:"ip_address"`
	UserAgent    string          `gorm:"type:text" json:"user_agent"`
	Timestamp    time.Time       `gorm:"type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"timestamp"`
	Tenant       *Tenant         `gorm:"foreignKey:TenantID" json:"-"`
}

func (AuditEntry) TableName() string {
	return "audit_entries"
}

type AuditEntryFilter struct {
	TenantID     string `json:"tenant_id"`
	ActorID      string `json:"actor_id"`
	Action       string `json:"action"`
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}
