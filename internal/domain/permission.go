package domain

import "slices"

// Permission is a capability that can be granted to an API key
type Permission string

const (
	// PermPagesRead allows reading pages and their SEO metadata
	PermPagesRead Permission = "pages:read"

	// PermPagesWrite allows creating and updating pages
	PermPagesWrite Permission = "pages:write"

	// PermSEORead allows reading SEO metadata
	PermSEORead Permission = "seo:read"

	// PermSEOWrite allows upserting and deleting SEO metadata
	PermSEOWrite Permission = "seo:write"

	// PermAIGenerate allows invoking AI suggestion generation
	PermAIGenerate Permission = "ai:generate"

	// PermKeysManage allows issuing and listing API keys
	PermKeysManage Permission = "keys:manage"
)

// ValidPermissions contains all permissions that can be granted
var ValidPermissions = []Permission{
	PermPagesRead,
	PermPagesWrite,
	PermSEORead,
	PermSEOWrite,
	PermAIGenerate,
	PermKeysManage,
}

// IsValidPermission checks if a given permission is recognized
func IsValidPermission(permission string) bool {
	return slices.Contains(ValidPermissions, Permission(permission))
}

// HasPermission checks if a slice of permissions contains a specific permission
func HasPermission(permissions []string, permission Permission) bool {
	return slices.Contains(permissions, string(permission))
}

// HasAnyPermission checks if a slice of permissions contains any of the specified permissions
func HasAnyPermission(permissions []string, required ...Permission) bool {
	for _, p := range required {
		if HasPermission(permissions, p) {
			return true
		}
	}
	return false
}
