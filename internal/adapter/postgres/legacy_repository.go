package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
)

// LegacyCampaignRepository implements port.LegacyCampaignRepository over
// the legacy_campaigns table, whose rows hold schemaless JSON documents.
type LegacyCampaignRepository struct {
	db DB
}

// NewLegacyCampaignRepository returns a new repository instance.
func NewLegacyCampaignRepository(db DB) *LegacyCampaignRepository {
	return &LegacyCampaignRepository{db: db}
}

// Page returns up to limit legacy records in id order.
func (r *LegacyCampaignRepository) Page(ctx context.Context, limit int) ([]domain.LegacyCampaign, error) {
	rows, err := r.db.Query(ctx, `SELECT id, data FROM legacy_campaigns ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query legacy campaigns: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LegacyCampaign, error) {
		var (
			l   domain.LegacyCampaign
			doc []byte
		)
		err := row.Scan(&l.ID, &doc)
		l.Document = doc
		return l, err
	})
}

// Delete removes a legacy record.
func (r *LegacyCampaignRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM legacy_campaigns WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete legacy campaign %s: %w", id, err)
	}
	return nil
}
