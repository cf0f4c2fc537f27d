package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the payload of tokenString without verifying its
// signature and returns the "exp" claim.
//
// ok is false when the token cannot be decoded or carries no expiry. Callers
// treat that case as "expiry unknown", never as an authentication failure.
func TokenExpiry(tokenString string) (exp time.Time, ok bool) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	claims, isMap := token.Claims.(jwt.MapClaims)
	if !isMap {
		return time.Time{}, false
	}

	numeric, err := claims.GetExpirationTime()
	if err != nil || numeric == nil {
		return time.Time{}, false
	}

	return numeric.Time, true
}

// TokenExpired reports whether tokenString carries an expiry strictly before now.
// Tokens without a decodable expiry are never expired.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, ok := TokenExpiry(tokenString)
	if !ok {
		return false
	}
	return exp.Before(now)
}
