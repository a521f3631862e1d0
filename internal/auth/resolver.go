package auth

// Package auth resolves bearer credentials to stable user identifiers.
// Resolution is a single injectable seam: endpoints never know which
// implementation is behind it, so the placeholder resolver can be swapped
// for a verifying one without touching any handler.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// CredentialResolver maps a bearer credential to a user id.
type CredentialResolver interface {
	// Resolve returns the user id for the given credential. The credential
	// is the raw bearer token without the "Bearer " prefix.
	Resolve(ctx context.Context, credential string) (string, error)
}

// StaticResolver accepts any non-empty credential and maps every caller to
// one fixed user id. It is the development placeholder the deployment is
// expected to replace via configuration.
type StaticResolver struct {
	UserID string
}

var _ CredentialResolver = (*StaticResolver)(nil)

func (r *StaticResolver) Resolve(_ context.Context, credential string) (string, error) {
	if credential == "" {
		return "", ErrMissingCredentials
	}
	return r.UserID, nil
}

// Claims carries the registered claims plus the user id the token was
// issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// JWTResolver verifies HS256 tokens and extracts the UserID claim.
type JWTResolver struct {
	Secret []byte
}

var _ CredentialResolver = (*JWTResolver)(nil)

func (r *JWTResolver) Resolve(_ context.Context, credential string) (string, error) {
	if credential == "" {
		return "", ErrMissingCredentials
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (interface{}, error) {
		return r.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// GenerateToken issues an HS256 token for the given user id. Used by
// deployments that front the service with the JWT resolver, and by tests.
func GenerateToken(userID string, secret []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}
