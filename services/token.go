package services

import (
	"stayhub/config"
	"stayhub/errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// UserInfo is the identity embedded in access tokens
type UserInfo struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// AccessTokenExpiryMinutes is the fixed token lifetime (3 days)
const AccessTokenExpiryMinutes = 60 * 24 * 3

func secretKey() []byte {
	return []byte(config.GetEnvDefault("JWT_SECRET_KEY", "stayhub-dev-secret"))
}

// GenerateToken issues a signed HS256 token carrying email and role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			Subject:   userInfo.Email,
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey())
}

// ParseToken verifies the signature and expiry and returns the embedded identity
func ParseToken(tokenString string) (UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return secretKey(), nil
	})
	if err != nil {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if !token.Valid {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}
	if claims.UserInfo.Email == "" {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token has no user info", nil)
	}

	return claims.UserInfo, nil
}
