package middleware

import (
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/deedlane/marketplace/internal/domain"
)

const authContextKey = "authContext"

// AuthContext carries the authenticated caller's identity through a request
type AuthContext struct {
	// Wallet is the caller's wallet address from the token claims, normalized
	Wallet string
	// UserID is the caller's internal user ID
	UserID uint64
	// Admin is true for API-key callers and admin-scoped tokens
	Admin bool
}

// GetAuthContext returns the caller identity placed by the auth middleware
func GetAuthContext(c *gin.Context) (AuthContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return AuthContext{}, false
	}
	auth, ok := v.(AuthContext)
	return auth, ok
}

type marketplaceClaims struct {
	jwt.RegisteredClaims
	Wallet string `json:"wallet"`
	UserID uint64 `json:"user_id"`
	Admin  bool   `json:"admin"`
}

// Authenticator validates bearer tokens and admin API keys
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   map[string]struct{}
}

// NewAuthenticator parses the RSA public key used to verify JWTs. apiKeys
// grant admin access to service callers.
func NewAuthenticator(publicKeyPEM string, apiKeys []string) (*Authenticator, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT public key: %w", err)
	}

	keys := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys[k] = struct{}{}
		}
	}

	return &Authenticator{publicKey: key, apiKeys: keys}, nil
}

// Authenticate requires a valid bearer token or admin API key
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
			if _, ok := a.apiKeys[apiKey]; ok {
				c.Set(authContextKey, AuthContext{Admin: true})
				c.Next()
				return
			}
			abortUnauthorized(c, "invalid API key")
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims := &marketplaceClaims{}
		token, err := jwt.ParseWithClaims(
			strings.TrimPrefix(header, "Bearer "),
			claims,
			func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return a.publicKey, nil
			},
		)
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(authContextKey, AuthContext{
			Wallet: domain.NormalizeAddress(claims.Wallet),
			UserID: claims.UserID,
			Admin:  claims.Admin,
		})
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := GetAuthContext(c)
		if !ok || !auth.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    "forbidden",
					"message": "admin access required",
				},
			})
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "unauthorized",
			"message": message,
		},
	})
}
