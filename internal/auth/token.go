package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	ID   uint
	Name string
}

// ErrInvalidToken is returned for missing, malformed, or mis-signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken creates a signed HS256 token embedding the user's ID and
// display name. Tokens carry no expiry; a token stays valid until the
// signing secret rotates.
func IssueToken(secret string, userID uint, name string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"name": name,
		"iat":  time.Now().Unix(),
		"jti":  generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken checks the signature and structure of a token and returns
// the embedded identity. Every failure mode collapses into ErrInvalidToken;
// callers treat verification as one-shot.
func VerifyToken(secret, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return Identity{}, ErrInvalidToken
	}

	name, _ := claims["name"].(string)

	return Identity{ID: uint(userID), Name: name}, nil
}

// generateJTI creates a unique JWT ID to distinguish otherwise identical tokens.
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
