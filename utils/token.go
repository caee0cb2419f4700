package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomerClaims carries the durable customer identifier inside the
// long-lived client cookie. It identifies, it does not authenticate.
type CustomerClaims struct {
	CustomerID string `json:"customerId"`
	jwt.RegisteredClaims
}

func GenerateCustomerToken(customerID, secret string, ttl time.Duration) (string, error) {
	claims := &CustomerClaims{
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseCustomerToken returns the customer identifier, or an error for
// expired, malformed or foreign tokens. Callers treat any error as
// "no saved profile".
func ParseCustomerToken(tokenStr, secret string) (string, error) {
	claims := &CustomerClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid customer token")
	}
	if claims.CustomerID == "" {
		return "", errors.New("empty customer id")
	}
	return claims.CustomerID, nil
}
