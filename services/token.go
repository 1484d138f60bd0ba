package services

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"geotrip/errors"
)

type UserInfo struct {
	UserID uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken signs an access token for an operator.
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// GetUserIDFromToken verifies the token signature and expiry and returns the
// operator id and role. Admin mutations are only reachable through this
// check.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return secretKey(), nil
	})
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}
	return claims.UserInfo.UserID, claims.UserInfo.Role, nil
}
