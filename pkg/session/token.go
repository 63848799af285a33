package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/kirubel606/Blog-Admin/pkg/creds"
)

// API paths of the token-issuing backend.
const (
	loginPath   = "/api/users/user/login/token/"
	refreshPath = "/api/users/user/token/refresh/"
)

type (
	loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	loginResponse struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}

	refreshRequest struct {
		Refresh string `json:"refresh"`
	}

	refreshResponse struct {
		Access string `json:"access"`
	}

	// accessClaims is the identity payload carried by the access token.
	accessClaims struct {
		Email        string `json:"email"`
		Username     string `json:"username"`
		Role         string `json:"role"`
		ProfileImage string `json:"profile_image"`
		ID           int64  `json:"id"`
		IsAdmin      bool   `json:"is_admin"`
		jwt.RegisteredClaims
	}
)

// decodeAccessToken extracts identity and expiry from an access token
// without verifying its signature. The server verified the token at
// issuance; the client treats it as a bearer credential plus a
// convenient claims cache.
func decodeAccessToken(token creds.AccessToken) (creds.Identity, time.Time, error) {
	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), &claims); err != nil {
		return creds.Identity{}, time.Time{}, errors.Wrapf(ErrDecode, "parse failed: %v", err)
	}

	identity := creds.Identity{
		Email:        claims.Email,
		Name:         claims.Username,
		Role:         claims.Role,
		ProfileImage: claims.ProfileImage,
		ID:           claims.ID,
		IsAdmin:      claims.IsAdmin,
	}

	// a missing exp claim behaves like an already expired token,
	// renewal runs immediately through the usual path
	var expiry time.Time
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	return identity, expiry, nil
}
