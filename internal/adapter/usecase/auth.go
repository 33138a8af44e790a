package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

// AdminAuthorizer implements port.Authorizer on top of an identity
// verifier and the console user directory.
type AdminAuthorizer struct {
	verifier  port.IdentityVerifier
	directory port.ActorDirectory
}

// NewAdminAuthorizer creates an authorizer.
func NewAdminAuthorizer(verifier port.IdentityVerifier, directory port.ActorDirectory) *AdminAuthorizer {
	return &AdminAuthorizer{verifier: verifier, directory: directory}
}

// Authenticate implements port.Authorizer.
func (a *AdminAuthorizer) Authenticate(ctx context.Context, credential string) (domain.Actor, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return domain.Actor{}, fmt.Errorf("missing bearer credential: %w", port.ErrUnauthenticated)
	}
	actorID, err := a.verifier.Verify(ctx, credential)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", port.ErrUnauthenticated, err)
	}
	if actorID == "" {
		return domain.Actor{}, fmt.Errorf("credential carries no subject: %w", port.ErrUnauthenticated)
	}
	return domain.Actor{ID: actorID}, nil
}

// RequireAdmin implements port.Authorizer. Actors without a console
// account and operators are both forbidden.
func (a *AdminAuthorizer) RequireAdmin(ctx context.Context, credential string) (domain.Actor, error) {
	actor, err := a.Authenticate(ctx, credential)
	if err != nil {
		return actor, err
	}

	role, err := a.directory.RoleOf(ctx, actor.ID)
	if errors.Is(err, port.ErrNotFound) {
		return actor, fmt.Errorf("no console access for %s: %w", actor.ID, port.ErrForbidden)
	}
	if err != nil {
		return actor, fmt.Errorf("resolve role: %w", err)
	}

	actor.Role = role
	if !actor.IsAdmin() {
		return actor, fmt.Errorf("only admins may manage campaigns: %w", port.ErrForbidden)
	}
	return actor, nil
}
