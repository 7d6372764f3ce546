package postgres

import (
	"context"

	"gorm.io/gorm"
)

// tenantScoped returns a database handle restricted to one tenant's rows
func tenantScoped(db *gorm.DB, ctx context.Context, tenantID string) *gorm.DB {
	return db.WithContext(ctx).Where("tenant_id = ?", tenantID)
}
