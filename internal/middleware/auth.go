package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/putusan-backend-go/internal/auth"
	"github.com/jengzang/putusan-backend-go/pkg/response"
)

// SessionCookie is the cookie holding the session token
const SessionCookie = "session"

const claimsKey = "claims"

// RequireAuth rejects requests without a valid session token. The token is
// read from the Authorization bearer header, then from the session cookie.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}
		if token == "" {
			response.Unauthorized(c, "Tidak terautentikasi")
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			response.Unauthorized(c, "Sesi tidak valid")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects authenticated users without the given role.
// Must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok || claims.Role != role {
			response.Error(c, 403, "Akses ditolak")
			return
		}
		c.Next()
	}
}

// Claims returns the session claims stored by RequireAuth
func Claims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
