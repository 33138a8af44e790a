package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the part of a pgx pool Seed needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Seed inserts demo data: a console admin and operator, app users with
// push tokens, a few campaigns and one legacy campaign waiting to be
// migrated. Every row has a fixed key, so running it again inserts
// nothing new.
func Seed(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx, `INSERT INTO cms_users (id, email, display_name, role) VALUES
    ('admin-demo', 'admin@rundi.local', 'Demo Admin', 'admin'),
    ('operator-demo', 'ops@rundi.local', 'Demo Operator', 'operator')
ON CONFLICT DO NOTHING`)
	if err != nil {
		return err
	}

	platforms := []string{"android", "ios", "web"}
	for i := 1; i <= 20; i++ {
		userID := fmt.Sprintf("user-%03d", i)
		if _, err = db.Exec(ctx, `INSERT INTO app_users (id) VALUES ($1) ON CONFLICT DO NOTHING`, userID); err != nil {
			return err
		}
		for j := 0; j < 1+i%3; j++ {
			_, err = db.Exec(ctx, `INSERT INTO push_tokens (user_id, token, platform)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
				userID, fmt.Sprintf("demo-%s-%d", userID, j), platforms[(i+j)%len(platforms)])
			if err != nil {
				return err
			}
		}
	}

	statuses := []string{"draft", "scheduled", "active", "completed"}
	for i, status := range statuses {
		start := time.Now().AddDate(0, 0, i-1).UTC()
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, name, description, status, start_at, segment, channel, category, created_at, last_update)
VALUES ($1, $2, $3, $4, $5, 'all', 'push', 'campaign', now(), now()) ON CONFLICT DO NOTHING`,
			fmt.Sprintf("demo-campaign-%d", i+1),
			fmt.Sprintf("Demo campaign %d", i+1),
			"Seeded campaign for local testing",
			status, start)
		if err != nil {
			return err
		}
	}

	legacy, _ := json.Marshal(map[string]any{
		"name":        "Legacy weekend promo",
		"description": "Imported from the old console",
		"status":      "completed",
		"startAt":     time.Now().AddDate(0, -1, 0).UTC().Format(time.RFC3339),
		"segment":     "all",
		"channel":     "push",
		"category":    "campaign",
	})
	_, err = db.Exec(ctx, `INSERT INTO legacy_campaigns (id, data) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		"legacy-demo-1", legacy)
	return err
}
