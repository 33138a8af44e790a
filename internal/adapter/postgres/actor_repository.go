package postgres

import (
	"context"
	"fmt"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

// ActorRepository implements port.ActorDirectory over the cms_users table.
type ActorRepository struct {
	db DB
}

// NewActorRepository returns a new repository instance.
func NewActorRepository(db DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// RoleOf returns the console role of a user.
func (r *ActorRepository) RoleOf(ctx context.Context, actorID string) (domain.Role, error) {
	var role string
	err := r.db.QueryRow(ctx, `SELECT role FROM cms_users WHERE id = $1`, actorID).Scan(&role)
	if isNoRows(err) {
		return "", port.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup cms user %s: %w", actorID, err)
	}
	return domain.Role(role), nil
}
