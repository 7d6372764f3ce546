package service

import "errors"

var (
	// Tenant errors
	ErrTenantNotFound = errors.New("Tenant not found")

	// Page errors
	ErrPageNotFound = errors.New("Page not found")

	// SEO metadata errors
	ErrSEOMetadataNotFound = errors.New("SEO metadata not found")

	// API key errors
	ErrInvalidPermission = errors.New("invalid permission")
	ErrInvalidExpiry     = errors.New("invalid expiry")
)
