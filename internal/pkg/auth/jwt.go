// internal/pkg/auth/jwt.go
package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/your-org/store-admin/internal/config"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims is the identity encoded into issued tokens. IsAdmin is only
// set on access tokens; a refresh token grants nothing until it is
// exchanged, at which point the admin flag is re-read from the store.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates the access/refresh token pair
type JWTManager struct {
	config *config.Config
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		config: cfg,
	}
}

// GenerateAccessToken issues a short-lived access token
func (j *JWTManager) GenerateAccessToken(userID uint, email string, isAdmin bool) (string, error) {
	return j.issue(userID, email, isAdmin, tokenTypeAccess, j.config.JWT.AccessTokenExpiry)
}

// GenerateRefreshToken issues a long-lived refresh token
func (j *JWTManager) GenerateRefreshToken(userID uint, email string) (string, error) {
	return j.issue(userID, email, false, tokenTypeRefresh, j.config.JWT.RefreshTokenExpiry)
}

func (j *JWTManager) issue(userID uint, email string, isAdmin bool, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		UserID:    userID,
		Email:     email,
		IsAdmin:   isAdmin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.config.App.Name,
			Subject:   strconv.FormatUint(uint64(userID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.config.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return signed, nil
}

// ValidateAccessToken validates an access token and returns its claims
func (j *JWTManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return j.parse(tokenString, tokenTypeAccess)
}

// ValidateRefreshToken validates a refresh token and returns its claims
func (j *JWTManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return j.parse(tokenString, tokenTypeRefresh)
}

// parse verifies the signature and rejects tokens of the wrong type, so
// a refresh token can never pass the access-token gate or vice versa.
func (j *JWTManager) parse(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.config.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.TokenType != wantType {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", wantType, claims.TokenType)
	}

	return claims, nil
}

// ExtractTokenFromHeader strips the Bearer scheme from an Authorization
// header value; anything else yields an empty string.
func ExtractTokenFromHeader(authHeader string) string {
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return ""
	}
	return token
}
