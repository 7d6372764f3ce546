package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey  ContextKey = "claims"
	UserIDKey  ContextKey = "user_id"
	TenantsKey ContextKey = "tenants"
)

var (
	ErrNoClaimsInContext  = errors.New("no claims found in context")
	ErrInvalidClaimsType  = errors.New("invalid claims type")
	ErrNoUserIDInClaims   = errors.New("no user_id found in claims")
	ErrInvalidUserIDType  = errors.New("user_id must be a string")
	ErrNoTenantsInClaims  = errors.New("no tenants found in claims")
	ErrInvalidTenantsType = errors.New("tenants must be a string array")
)

// GetUserIDFromContext extracts the authenticated actor id from claims.
func GetUserIDFromContext(c context.Context) (string, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	userID, exists := claims[string(UserIDKey)]
	if !exists {
		return "", ErrNoUserIDInClaims
	}

	userIDStr, ok := userID.(string)
	if !ok {
		return "", ErrInvalidUserIDType
	}

	return userIDStr, nil
}

// GetTenantGrantsFromContext extracts the tenant keys the caller may act on.
func GetTenantGrantsFromContext(c context.Context) ([]string, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return nil, ErrNoClaimsInContext
	}

	grants, exists := claims[string(TenantsKey)]
	if !exists {
		return nil, ErrNoTenantsInClaims
	}

	grantsSlice, ok := grants.([]any)
	if !ok {
		return nil, ErrInvalidTenantsType
	}

	tenants := make([]string, 0, len(grantsSlice))
	for _, g := range grantsSlice {
		s, ok := g.(string)
		if !ok {
			return nil, ErrInvalidTenantsType
		}
		tenants = append(tenants, s)
	}

	return tenants, nil
}
