package utils

import (
	"time"

	"backend/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by app tokens. Tokens minted by the previous backend also put
// a Mongo-style "_id" in here, which the auth middleware still honours.
type Claims struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	ProviderUID string `json:"providerUid,omitempty"`
	LegacyID    string `json:"_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token for the user.
func GenerateToken(user *entity.User, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:      FormatID(user.ID),
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		ProviderUID: user.ProviderUID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
