package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/config"
	"github.com/jigardalal/siteninja-backend-sub001/internal/utils"
)

type AuthMiddleware struct {
	config *config.Config
}

func NewAuthMiddleware(config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
	}
}

func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.NewError("Authorization header is required"))
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, dto.NewError("Invalid authorization header format"))
			c.Abort()
			return
		}

		token := bearerToken[1]
		claims := jwt.MapClaims{}

		_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
			return []byte(m.config.JWTSecretKey), nil
		})

		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.NewError("Invalid or expired token"))
			c.Abort()
			return
		}

		// Set claims in context
		c.Set(string(utils.ClaimsKey), claims)
		c.Next()
	}
}

func (m *AuthMiddleware) GenerateToken(userID string, tenantKeys []string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"tenants": tenantKeys,
		"exp":     time.Now().Add(time.Duration(m.config.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.JWTSecretKey))
}

// Identity is the authenticated caller a tenant guard check resolves to.
// ActorID attributes audit entries; TenantKeys are the tenants the
// caller may act on.
type Identity struct {
	ActorID    string
	TenantKeys []string
}

// Authorize confirms the caller is authenticated and holds a grant for
// the given tenant key. On failure it writes the 401/403 rejection and
// returns false; the handler must return without further processing.
func (m *AuthMiddleware) Authorize(c *gin.Context, tenantKey string) (*Identity, bool) {
	ctx := c.Request.Context()
	if claims, exists := c.Get(string(utils.ClaimsKey)); exists {
		ctx = context.WithValue(ctx, utils.ClaimsKey, claims)
	}

	actorID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewError("Authentication required"))
		c.Abort()
		return nil, false
	}

	grants, err := utils.GetTenantGrantsFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewError("Authentication required"))
		c.Abort()
		return nil, false
	}

	if !slices.Contains(grants, tenantKey) {
		c.JSON(http.StatusForbidden, dto.NewError("Access to this tenant is not allowed"))
		c.Abort()
		return nil, false
	}

	return &Identity{ActorID: actorID, TenantKeys: grants}, true
}
