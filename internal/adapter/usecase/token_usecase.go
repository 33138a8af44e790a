package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

// TokenRegistrar implements port.TokenUseCase. Users may only manage the
// tokens registered under their own id.
type TokenRegistrar struct {
	registry port.TokenRegistry
	now      func() time.Time
}

// NewTokenRegistrar creates a registrar writing to registry.
func NewTokenRegistrar(registry port.TokenRegistry) *TokenRegistrar {
	return &TokenRegistrar{registry: registry, now: time.Now}
}

// RegisterToken implements port.TokenUseCase.
func (r *TokenRegistrar) RegisterToken(ctx context.Context, actor domain.Actor, req port.TokenRegistration) error {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return &domain.ValidationError{Field: "token", Reason: "token is required"}
	}
	if req.UserID != "" && req.UserID != actor.ID {
		return fmt.Errorf("cannot register tokens for another user: %w", port.ErrForbidden)
	}

	return r.registry.Register(ctx, domain.TokenEntry{
		Token:     token,
		UserID:    actor.ID,
		Platform:  strings.ToLower(strings.TrimSpace(req.Platform)),
		CreatedAt: r.now().UTC(),
	})
}

// UnregisterToken implements port.TokenUseCase.
func (r *TokenRegistrar) UnregisterToken(ctx context.Context, actor domain.Actor, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return &domain.ValidationError{Field: "token", Reason: "token is required"}
	}
	return r.registry.Unregister(ctx, actor.ID, token)
}
