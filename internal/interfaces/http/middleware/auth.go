package middleware

import (
	"net/http"
	"strings"

	appmission "github.com/autoexpert/backend/internal/application/mission"
	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/autoexpert/backend/internal/infrastructure/auth"
	"github.com/autoexpert/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Auth context keys
const (
	ClaimsKey    = "auth_claims"
	ActorKey     = "auth_actor"
	AuthHeader   = "Authorization"
	BearerPrefix = "Bearer "
)

// Authenticate validates the bearer token and stores the actor in the gin
// context for downstream handlers.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeader)
		if header == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(header, BearerPrefix)
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			message := "Invalid token"
			if err == auth.ErrExpiredToken {
				message = "Token has expired"
			}
			abortUnauthorized(c, message)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(ActorKey, appmission.Actor{UserID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// RequireManager rejects requests from non-privileged roles. Services enforce
// the same rule; the middleware just fails fast before body parsing.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if !identity.Role(actor.Role).IsPrivileged() {
			requestID := GetRequestID(c)
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				shared.CodeForbidden, "Reserved to the case manager", requestID))
			return
		}
		c.Next()
	}
}

// GetActor retrieves the authenticated actor from the gin context
func GetActor(c *gin.Context) appmission.Actor {
	if value, exists := c.Get(ActorKey); exists {
		if actor, ok := value.(appmission.Actor); ok {
			return actor
		}
	}
	return appmission.Actor{}
}

// GetClaims retrieves the token claims from the gin context
func GetClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(ClaimsKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, message string) {
	requestID := GetRequestID(c)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
		shared.CodeUnauthorized, message, requestID))
}
