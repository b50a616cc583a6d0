package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys under which the authorization gate stores the resolved identity.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// AuthRequired returns a Gin middleware that validates bearer tokens and
// restricts access to authenticated users only. The signing secret is injected
// once at startup instead of being read from the environment per request.
//
// A missing or malformed Authorization header and an invalid or expired token
// are distinct 401 responses, both in the uniform envelope shape.
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		// 1. Get Authorization header; it must be exactly "Bearer <token>"
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"response_code": false,
				"response_desc": "FAILED : Missing token",
			})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Parse and verify JWT signature and expiration
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			// Any failure is a uniform "invalid": tampered signature,
			// malformed claims, or expiry all end up here.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"response_code": false,
				"response_desc": "FAILED : Invalid or expired token",
			})
			return
		}

		// 3. Attach resolved identity to the request context
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(float64); ok { // JWT numbers are decoded as float64
				c.Set(ContextUserID, uint(sub))
			}
			if email, ok := claims["email"].(string); ok {
				c.Set(ContextEmail, email)
			}
		}

		// 4. Pass control to the next handler
		c.Next()
	}
}
