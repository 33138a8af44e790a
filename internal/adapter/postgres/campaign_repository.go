package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

const campaignColumns = `id, name, description, status, start_at, end_at, segment, channel, category,
       impressions, clicks, last_sent_at, last_sent_count, migrated_at, migrated_from,
       version, created_at, last_update`

// CampaignRepository implements port.CampaignRepository on PostgreSQL.
type CampaignRepository struct {
	db DB
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// List returns campaigns ordered by last update, newest first.
func (r *CampaignRepository) List(ctx context.Context, limit int) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY last_update DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return campaigns, nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if isNoRows(err) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign %s: %w", id, err)
	}
	return c, nil
}

// Exists reports whether a campaign is stored under id.
func (r *CampaignRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check campaign %s: %w", id, err)
	}
	return exists, nil
}

// Create inserts a new campaign.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.db.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`, campaignArgs(c)...)
	return err
}

// Import inserts c unless its id is taken. It reports whether a row was
// written.
func (r *CampaignRepository) Import(ctx context.Context, c *domain.Campaign) (bool, error) {
	tag, err := r.db.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
ON CONFLICT (id) DO NOTHING`, campaignArgs(c)...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Update writes the operator controlled fields of c if the stored version
// still equals expectedVersion. On success c.Version holds the new version.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign, expectedVersion int64) error {
	err := r.db.QueryRow(ctx, `UPDATE campaigns
SET name = $3, description = $4, status = $5, start_at = $6, end_at = $7,
    segment = $8, channel = $9, category = $10, last_update = $11, version = version + 1
WHERE id = $1 AND version = $2
RETURNING version`,
		c.ID, expectedVersion, c.Name, c.Description, string(c.Status), c.StartAt, c.EndAt,
		c.Segment, string(c.Channel), string(c.Category), c.LastUpdate,
	).Scan(&c.Version)
	if isNoRows(err) {
		return r.missingOrConflict(ctx, c.ID)
	}
	if err != nil {
		return fmt.Errorf("update campaign %s: %w", c.ID, err)
	}
	return nil
}

// RecordSend stamps the outcome of a send. It does not check the version:
// updates that landed while the send was running keep their payload and
// the send is still recorded on top of them.
func (r *CampaignRepository) RecordSend(ctx context.Context, id string, rec domain.SendRecord) error {
	tag, err := r.db.Exec(ctx, `UPDATE campaigns
SET last_sent_at = $2, last_sent_count = $3,
    last_update = GREATEST($4, last_update + interval '1 microsecond'),
    version = version + 1
WHERE id = $1`,
		id, rec.SentAt, rec.SentCount, rec.LastUpdate)
	if err != nil {
		return fmt.Errorf("record send of campaign %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes a campaign.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// missingOrConflict explains why a conditional write touched no row.
func (r *CampaignRepository) missingOrConflict(ctx context.Context, id string) error {
	exists, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return port.ErrNotFound
	}
	return fmt.Errorf("campaign %s was modified concurrently: %w", id, port.ErrConflict)
}

func campaignArgs(c *domain.Campaign) []any {
	var migratedFrom *string
	if c.MigratedFrom != "" {
		migratedFrom = &c.MigratedFrom
	}
	return []any{
		c.ID, c.Name, c.Description, string(c.Status), c.StartAt, c.EndAt, c.Segment,
		string(c.Channel), string(c.Category), c.Impressions, c.Clicks, c.LastSentAt,
		c.LastSentCount, c.MigratedAt, migratedFrom, c.Version, c.CreatedAt, c.LastUpdate,
	}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                         domain.Campaign
		status, channel, category string
		migratedFrom              *string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&status,
		&c.StartAt,
		&c.EndAt,
		&c.Segment,
		&channel,
		&category,
		&c.Impressions,
		&c.Clicks,
		&c.LastSentAt,
		&c.LastSentCount,
		&c.MigratedAt,
		&migratedFrom,
		&c.Version,
		&c.CreatedAt,
		&c.LastUpdate,
	)
	if err != nil {
		return nil, err
	}

	c.Status = domain.Status(status)
	c.Channel = domain.Channel(channel)
	c.Category = domain.Category(category)
	if migratedFrom != nil {
		c.MigratedFrom = *migratedFrom
	}
	c.StartAt = c.StartAt.UTC()
	c.EndAt = utcPtr(c.EndAt)
	c.LastSentAt = utcPtr(c.LastSentAt)
	c.MigratedAt = utcPtr(c.MigratedAt)
	c.CreatedAt = c.CreatedAt.UTC()
	c.LastUpdate = c.LastUpdate.UTC()
	return &c, nil
}
