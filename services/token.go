package services

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Swapnil-DevGeek/note-taker/utils"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs a token carrying only the user's email claim.
// No expiry is set: a token stays valid until the signing secret
// changes. Documented contract, not an oversight to patch here.
func GenerateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// ParseToken validates the signature and returns the email claim.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}

	return email, nil
}
