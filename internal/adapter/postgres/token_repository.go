package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

// TokenRepository implements port.TokenSource and port.TokenRegistry over
// the app_users and push_tokens tables.
type TokenRepository struct {
	db DB
}

// NewTokenRepository returns a new repository instance.
func NewTokenRepository(db DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// ListUserIDs returns every app user id in id order.
func (r *TokenRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM app_users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// ListTokens returns the tokens of one user, oldest first.
func (r *TokenRepository) ListTokens(ctx context.Context, userID string) ([]domain.TokenEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT token, user_id, COALESCE(platform, ''), created_at
FROM push_tokens WHERE user_id = $1 ORDER BY created_at, token`, userID)
	if err != nil {
		return nil, fmt.Errorf("query tokens of %s: %w", userID, err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TokenEntry, error) {
		var e domain.TokenEntry
		err := row.Scan(&e.Token, &e.UserID, &e.Platform, &e.CreatedAt)
		e.CreatedAt = e.CreatedAt.UTC()
		return e, err
	})
}

// Register stores a token under its user, creating the user row when
// needed. Re-registering a token only refreshes its platform.
func (r *TokenRepository) Register(ctx context.Context, entry domain.TokenEntry) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO app_users (id, created_at) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		entry.UserID, entry.CreatedAt)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO push_tokens (user_id, token, platform, created_at)
VALUES ($1, $2, NULLIF($3, ''), $4)
ON CONFLICT (user_id, token) DO UPDATE SET platform = EXCLUDED.platform`,
		entry.UserID, entry.Token, entry.Platform, entry.CreatedAt)
	return err
}

// Unregister deletes one token of a user.
func (r *TokenRepository) Unregister(ctx context.Context, userID, token string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM push_tokens WHERE user_id = $1 AND token = $2`, userID, token)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
