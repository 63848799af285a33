package creds

import (
	"time"
)

type (
	// AccessToken is a short-lived signed JWT proving identity
	// for a bounded time window. Its claims are decoded client-side
	// but never verified; verification is the issuing server's job.
	AccessToken string

	// RefreshToken is used to obtain a new AccessToken
	// without requiring user input. Keep this secure.
	RefreshToken string

	// Credentials is a container for the token pair returned
	// by the login and refresh endpoints.
	Credentials struct {
		AccessToken
		RefreshToken
		Expiry time.Time
	}

	// Identity holds the claims decoded from the current access token.
	// It is recomputed every time a new access token is adopted and
	// is only ever consistent with the token it was decoded from.
	Identity struct {
		Email        string
		Name         string
		Role         string
		ProfileImage string
		ID           int64
		IsAdmin      bool
	}
)
