package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type SupabaseJWT struct {
	Audience     string       `json:"aud"`
	Email        *string      `json:"email"`
	ExpiresAt    int64        `json:"exp"`
	IssuedAt     int64        `json:"iat"`
	IsAnonymous  bool         `json:"is_anonymous"`
	Issuer       string       `json:"iss"`
	Role         string       `json:"role"`
	SessionID    string       `json:"session_id"`
	Subject      string       `json:"sub"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

type UserMetadata struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func parseSupabaseJWT(jwtStr string, decodeToken string) (*SupabaseJWT, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("error marshalling claims: %w", err)
	}

	var parsedJWT SupabaseJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("error unmarshalling into JWT struct: %w", err)
	}

	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}
	if parsedJWT.Email == nil || *parsedJWT.Email == "" {
		return nil, fmt.Errorf("jwt is missing email")
	}

	return &parsedJWT, nil
}

// requireAuth resolves the bearer token to a user account and stashes the
// account id in the gin context for the resolvers.
func (m ApiHandler) requireAuth(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(401, gin.H{"error": "missing Authorization header"})
		return
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	parsedJWT, err := parseSupabaseJWT(tokenStr, m.JwtDecodeToken)
	if err != nil {
		c.AbortWithStatusJSON(401, gin.H{"error": fmt.Sprintf("invalid token: %v", err)})
		return
	}

	userAccount, err := m.UserAccountRepository.GetOrCreate(
		*parsedJWT.Email,
		parsedJWT.UserMetadata.FirstName,
		parsedJWT.UserMetadata.LastName,
	)
	if err != nil {
		c.AbortWithStatusJSON(500, gin.H{"error": fmt.Sprintf("failed to resolve user: %v", err)})
		return
	}

	c.Set("userAccountID", userAccount.UserAccountID.String())
	c.Set("userEmail", userAccount.Email)

	c.Next()
}
