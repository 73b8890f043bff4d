// utils/auth.go
package utils

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const callerContextKey = "caller"

// Caller is the identity the edge gateway resolved for the request. The
// gateway terminates real authentication; this service only reads the
// identity headers it injects and never re-verifies them against an
// identity provider.
type Caller struct {
	UserID      string
	AccountID   string
	IsAdmin     bool
	AccountType string

	// rawPermissions holds the X-Permissions header verbatim; it is parsed
	// lazily so malformed JSON only matters on guarded routes.
	rawPermissions string
}

// HasPermission reports whether the caller carries "category.permission".
func (caller *Caller) HasPermission(required string) (bool, error) {
	if caller.rawPermissions == "" {
		return false, nil
	}

	var permissions map[string][]string
	if err := json.Unmarshal([]byte(caller.rawPermissions), &permissions); err != nil {
		return false, errors.New("invalid permissions format")
	}

	parts := strings.SplitN(required, ".", 2)
	if len(parts) != 2 {
		return false, nil
	}

	for _, permission := range permissions[parts[0]] {
		if permission == parts[1] {
			return true, nil
		}
	}
	return false, nil
}

// GatewayAuthMiddleware builds the Caller from the trusted gateway headers.
// When the gateway also forwards a signed X-Gateway-Token, the claims in the
// token take precedence over the plain headers.
func GatewayAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := Caller{
			UserID:         c.GetHeader("X-User-Id"),
			AccountID:      c.GetHeader("X-Account-Id"),
			IsAdmin:        c.GetHeader("X-Is-Admin") == "true",
			AccountType:    c.GetHeader("X-Account-Type"),
			rawPermissions: c.GetHeader("X-Permissions"),
		}

		if tokenString := c.GetHeader("X-Gateway-Token"); tokenString != "" {
			claims, err := parseGatewayToken(tokenString)
			if err != nil {
				c.AbortWithStatusJSON(401, gin.H{"error": "Invalid gateway token"})
				return
			}
			applyTokenClaims(&caller, claims)
		}

		if caller.AccountType == "" {
			caller.AccountType = "USER"
		}

		c.Set(callerContextKey, caller)
		c.Next()
	}
}

func parseGatewayToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		secret := os.Getenv("GATEWAY_JWT_SECRET")
		if secret == "" {
			return nil, errors.New("GATEWAY_JWT_SECRET not set")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func applyTokenClaims(caller *Caller, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		caller.UserID = sub
	}
	if accountID, ok := claims["accountId"].(string); ok {
		caller.AccountID = accountID
	}
	if isAdmin, ok := claims["isAdmin"].(bool); ok {
		caller.IsAdmin = isAdmin
	}
	if accountType, ok := claims["accountType"].(string); ok {
		caller.AccountType = accountType
	}
	if permissions, ok := claims["permissions"].(string); ok {
		caller.rawPermissions = permissions
	}
}

// GetCaller returns the Caller stored by GatewayAuthMiddleware.
func GetCaller(c *gin.Context) Caller {
	if value, exists := c.Get(callerContextKey); exists {
		if caller, ok := value.(Caller); ok {
			return caller
		}
	}
	return Caller{AccountType: "USER"}
}

// Permissions guards a route. Admins pass everything; routes that require
// "ADMIN" reject every non-admin caller; otherwise one of the required
// "category.permission" entries must be present in the caller's permission
// map. accountType "ALL" skips the account-type check.
func Permissions(required []string, accountType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(required) == 0 {
			c.Next()
			return
		}

		caller := GetCaller(c)

		if accountType != "ALL" && caller.AccountType != accountType {
			c.AbortWithStatusJSON(403, gin.H{"error": "No permissions"})
			return
		}

		if caller.IsAdmin {
			c.Next()
			return
		}

		for _, permission := range required {
			if permission == "ADMIN" {
				c.AbortWithStatusJSON(403, gin.H{"error": "No permissions"})
				return
			}
		}

		for _, permission := range required {
			granted, err := caller.HasPermission(permission)
			if err != nil {
				c.AbortWithStatusJSON(403, gin.H{"error": "Invalid permissions format"})
				return
			}
			if granted {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(403, gin.H{"error": "Insufficient permissions"})
	}
}

// AdminOnly is shorthand for routes restricted to gateway-flagged admins.
func AdminOnly() gin.HandlerFunc {
	return Permissions([]string{"ADMIN"}, "ALL")
}
