package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/applytrack/server/internal/models"
)

// TTL is the bearer token validity window.
const TTL = 7 * 24 * time.Hour

// Claims is the identity carried by a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uint        `json:"userID"`
	Role      models.Role `json:"role"`
	UserTypes *string     `json:"userTypes"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
}

// Signer issues and verifies HS256 bearer tokens.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(u *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
		UserID:    u.UserID,
		Role:      u.Role,
		UserTypes: u.UserTypes,
		Email:     u.Email,
		Name:      u.Name,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Signer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if tok == nil || !tok.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
