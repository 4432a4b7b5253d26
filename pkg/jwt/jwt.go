package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the application claims the authorization layer inspects.
// Admin and TrustedMember are serialized as strings ("true") to match the
// claim values the token issuer emits.
type Claims struct {
	UserID        string `json:"userid,omitempty"`
	Email         string `json:"email,omitempty"`
	Admin         string `json:"admin,omitempty"`
	TrustedMember string `json:"trusted_member,omitempty"`
	jwt.RegisteredClaims
}

// Manager handles JWT signing and verification.
type Manager struct {
	secret string
	ttl    time.Duration
}

// NewManager creates a JWT manager for the given HMAC secret.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Generate signs a token carrying the given claims.
func (m *Manager) Generate(claims Claims) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Validate verifies the signature and expiry and returns the parsed claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
