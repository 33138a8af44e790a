package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// LegacyPageSize is how many legacy records are read per round.
const LegacyPageSize = 200

// MigrateLegacy implements port.CampaignUseCase. Each legacy record is
// copied unless a campaign with its id already exists, and is then deleted
// in either case, so the legacy collection ends up empty and a second run
// is a no-op.
func (u *CampaignUseCase) MigrateLegacy(ctx context.Context) (int, error) {
	migrated := 0
	for {
		page, err := u.legacy.Page(ctx, LegacyPageSize)
		if err != nil {
			return migrated, fmt.Errorf("read legacy campaigns: %w", err)
		}
		if len(page) == 0 {
			return migrated, nil
		}

		for _, record := range page {
			exists, err := u.repo.Exists(ctx, record.ID)
			if err != nil {
				return migrated, fmt.Errorf("check campaign %s: %w", record.ID, err)
			}
			if !exists {
				c := record.ToCampaign(u.now())
				if _, err = u.repo.Import(ctx, &c); err != nil {
					return migrated, fmt.Errorf("import campaign %s: %w", record.ID, err)
				}
			} else {
				u.logger.Debug("legacy campaign already migrated", slog.String("campaign_id", record.ID))
			}

			if err = u.legacy.Delete(ctx, record.ID); err != nil {
				return migrated, fmt.Errorf("delete legacy campaign %s: %w", record.ID, err)
			}
			migrated++
		}
	}
}
