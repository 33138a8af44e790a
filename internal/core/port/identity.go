package port

import (
	"context"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
)

// IdentityVerifier validates a bearer credential and yields the id of the
// actor it was issued to.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (string, error)
}

// ActorDirectory resolves the console role of an actor. It returns
// ErrNotFound when the actor is not a console user.
type ActorDirectory interface {
	RoleOf(ctx context.Context, actorID string) (domain.Role, error)
}
