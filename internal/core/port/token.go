package port

import (
	"context"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
)

// TokenSource enumerates registered push tokens. It is read-only.
type TokenSource interface {
	// ListUserIDs returns every user that may own tokens.
	ListUserIDs(ctx context.Context) ([]string, error)
	// ListTokens returns the tokens registered under one user.
	ListTokens(ctx context.Context, userID string) ([]domain.TokenEntry, error)
}

// SegmentResolver decides whether a user belongs to a campaign segment.
type SegmentResolver interface {
	Includes(ctx context.Context, segment, userID string) (bool, error)
}

// TokenRegistry creates and removes token entries on behalf of the user
// owning them.
type TokenRegistry interface {
	// Register stores entry, replacing the platform of an existing one.
	Register(ctx context.Context, entry domain.TokenEntry) error
	// Unregister removes a user's token or returns ErrNotFound.
	Unregister(ctx context.Context, userID, token string) error
}
