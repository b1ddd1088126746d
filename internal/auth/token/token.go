package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultValidity mirrors the cookie lifetime set by the handlers.
const DefaultValidity = 3 * 24 * time.Hour

var ErrInvalidToken = errors.New("token: invalid token")

// Claims carries the sole identity claim next to the registered set.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Issuer signs and parses stateless session tokens. Validity is fixed
// at construction; there is no server-side revocation.
type Issuer struct {
	secret   []byte
	validity time.Duration
}

func NewIssuer(secret string, validity time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is not configured")
	}
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &Issuer{secret: []byte(secret), validity: validity}, nil
}

// Sign mints an HS256 token asserting the user identity.
func (i *Issuer) Sign(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse validates signature and expiry and returns the user ID.
func (i *Issuer) Parse(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
