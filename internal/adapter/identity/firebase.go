package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// idTokenVerifier is the subset of *auth.Client used by FirebaseVerifier.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier validates Firebase ID tokens; the actor id is the
// Firebase UID.
type FirebaseVerifier struct {
	client idTokenVerifier
}

func NewFirebaseVerifier(client idTokenVerifier) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, credential string) (string, error) {
	tok, err := v.client.VerifyIDToken(ctx, credential)
	if err != nil {
		return "", fmt.Errorf("verify id token: %w", err)
	}
	if tok.UID == "" {
		return "", errMissingSubject
	}
	return tok.UID, nil
}
