package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token typ claims. Protected endpoints only accept access tokens; the
// refresh endpoint only accepts refresh tokens.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Pair holds the two opaque credentials returned by login.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Issuer signs and verifies HS256 JWTs carrying a user_id claim.
type Issuer struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewIssuer(secret []byte, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{Secret: secret, AccessTTL: accessTTL, RefreshTTL: refreshTTL}
}

func (i *Issuer) sign(userID, typ string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"typ":     typ,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
}

// IssuePair returns a fresh access/refresh token pair for the user.
func (i *Issuer) IssuePair(userID string) (Pair, error) {
	access, err := i.sign(userID, TypeAccess, i.AccessTTL)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := i.sign(userID, TypeRefresh, i.RefreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

// IssueAccess mints a new access token, used by the refresh flow.
func (i *Issuer) IssueAccess(userID string) (string, error) {
	return i.sign(userID, TypeAccess, i.AccessTTL)
}

// Verify parses the token, checks the signing method, expiry and typ claim,
// and returns the user_id claim.
func (i *Issuer) Verify(tokenStr, wantType string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != wantType {
		return "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
