package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxPersonID = "person_id"
	ctxEmail    = "person_email"
	ctxRole     = "person_role"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	PersonID int
	Email    string
	Role     Role
}

func AuthMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is empty"})
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token expired"})
			case errors.Is(err, ErrInvalidRole):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token role"})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or malformed token"})
			}
			return
		}

		if claims.TokenType != tokenTypeAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		c.Set(ctxPersonID, claims.PersonID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

func RequireRole(roles ...Role) gin.HandlerFunc {
	allowed := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Principal not found"})
			return
		}
		if _, ok := allowed[p.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (Principal, bool) {
	id, ok := c.Get(ctxPersonID)
	if !ok {
		return Principal{}, false
	}
	personID, ok := id.(int)
	if !ok {
		return Principal{}, false
	}

	role, _ := c.Get(ctxRole)
	r, ok := role.(Role)
	if !ok {
		return Principal{}, false
	}

	return Principal{PersonID: personID, Email: c.GetString(ctxEmail), Role: r}, true
}

// SetPrincipal is used by tests and internal callers that authenticate by
// other means.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(ctxPersonID, p.PersonID)
	c.Set(ctxEmail, p.Email)
	c.Set(ctxRole, p.Role)
}
