package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL bounds how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken signs a session token carrying the phone. It is a session
// carrier only; holding it grants nothing the phone itself would not.
func IssueToken(secret, phone string) (string, error) {
	if phone == "" {
		return "", ErrPhoneRequired
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"phone": phone,
		"exp":   jwt.NewNumericDate(time.Now().Add(TokenTTL)),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken validates a session token and returns the phone it carries.
func ParseToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	phone, ok := claims["phone"].(string)
	if !ok || phone == "" {
		return "", ErrInvalidToken
	}
	return phone, nil
}
