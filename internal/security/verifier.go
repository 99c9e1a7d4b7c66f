package security

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the caller resolved from a verified ID token.
type Identity struct {
	UID   string
	Email string
	Name  string
	Admin bool
}

// TokenVerifier validates bearer tokens issued by the external auth provider.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewTokenVerifier builds a verifier backed by Firebase Auth.
func NewTokenVerifier(ctx context.Context, app *firebase.App) (TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth client: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id := &Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		id.Name = name
	}
	if admin, ok := token.Claims["admin"].(bool); ok {
		id.Admin = admin
	}
	return id, nil
}
