package port

import (
	"context"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
)

// CampaignRepository persists campaign records. It is an outbound port;
// implementations must be safe for concurrent use. Writes that take an
// expected version succeed only if the stored record still carries it, and
// bump the version on success.
type CampaignRepository interface {
	// List returns up to limit campaigns, most recently updated first.
	List(ctx context.Context, limit int) ([]domain.Campaign, error)
	// Get returns the campaign with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// Exists reports whether a campaign with the given id is stored.
	Exists(ctx context.Context, id string) (bool, error)
	// Create stores a new campaign. The caller assigns the id and timestamps.
	Create(ctx context.Context, c *domain.Campaign) error
	// Update replaces the operator controlled fields and lastUpdate of c.
	// It returns ErrNotFound or ErrConflict when the write is not applied.
	Update(ctx context.Context, c *domain.Campaign, expectedVersion int64) error
	// RecordSend writes the outcome of a send onto the campaign regardless
	// of its version, since the delivery cannot be undone, and bumps the
	// version. lastUpdate never moves backwards. It returns ErrNotFound
	// when the campaign is gone.
	RecordSend(ctx context.Context, id string, rec domain.SendRecord) error
	// Delete removes the campaign or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// Import stores c unless a campaign with its id already exists. It
	// reports whether c was written.
	Import(ctx context.Context, c *domain.Campaign) (bool, error)
}

// LegacyCampaignRepository reads and drains the deprecated campaign
// collection.
type LegacyCampaignRepository interface {
	// Page returns up to limit legacy records.
	Page(ctx context.Context, limit int) ([]domain.LegacyCampaign, error)
	// Delete removes a legacy record. Deleting a missing record is not an
	// error.
	Delete(ctx context.Context, id string) error
}
