package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// refreshWindow is how close to expiry a token may get before the
// controller refreshes it proactively.
const refreshWindow = 60 * time.Second

var errNoExpiry = errors.New("token has no expiry claim")

// tokenExpiry decodes the access token without verifying its signature
// (the server is the signing authority; the client only reads the exp
// claim for refresh timing) and returns the expiry instant.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errNoExpiry
	}
	return exp.Time, nil
}
