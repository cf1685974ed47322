// Package auth issues and verifies admin session tokens and hashes admin
// passwords.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

// AdminClaims are the claims of an admin session token.
type AdminClaims struct {
	jwt.RegisteredClaims
	AdminID int64  `json:"id"`
	Email   string `json:"email"`
	Type    string `json:"type"`
}

// GenerateAdminToken signs an HS256 admin session token valid for
// validityDuration from now.
func GenerateAdminToken(admin models.AdminIdentity, secretKey []byte, now time.Time, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		AdminID: admin.ID,
		Email:   admin.Email,
		Type:    common.AdminSessionType,
	})

	return token.SignedString(secretKey)
}

// ParseAdminToken verifies tokenString and returns the admin it was issued to.
// Expired tokens yield common.ErrTokenExpired; every other verification
// failure yields common.ErrInvalidToken, which ErrTokenExpired wraps.
func ParseAdminToken(tokenString string, secretKey []byte, now time.Time) (*models.AdminIdentity, error) {
	claims := &AdminClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Type != common.AdminSessionType || claims.AdminID == 0 {
		return nil, common.ErrInvalidToken
	}

	return &models.AdminIdentity{ID: claims.AdminID, Email: claims.Email}, nil
}
