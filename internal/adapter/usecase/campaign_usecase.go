package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
	"github.com/SamuelUes/rundi-platform/internal/metrics"
)

// DefaultListLimit caps the campaign listing when no limit is configured.
const DefaultListLimit = 200

// publishTimeout bounds how long a send waits to queue its delivery event.
const publishTimeout = 5 * time.Second

// CampaignOptions tunes a CampaignUseCase. Zero values select defaults.
type CampaignOptions struct {
	ListLimit int
	Payload   domain.PayloadOptions
}

// CampaignUseCase implements port.CampaignUseCase. It owns validation,
// versioned writes, the legacy drain and the send-now orchestration, and
// delegates storage, token collection and delivery to its collaborators.
type CampaignUseCase struct {
	repo      port.CampaignRepository
	legacy    port.LegacyCampaignRepository
	collector *TokenCollector
	deliverer *BatchDeliverer
	publisher port.DeliveryPublisher
	logger    *slog.Logger
	opts      CampaignOptions

	now   func() time.Time
	newID func() string
}

// NewCampaignUseCase wires a use case from its collaborators. publisher may
// be nil when delivery events are not published.
func NewCampaignUseCase(
	repo port.CampaignRepository,
	legacy port.LegacyCampaignRepository,
	collector *TokenCollector,
	deliverer *BatchDeliverer,
	publisher port.DeliveryPublisher,
	logger *slog.Logger,
	opts CampaignOptions,
) *CampaignUseCase {
	if opts.ListLimit <= 0 {
		opts.ListLimit = DefaultListLimit
	}
	return &CampaignUseCase{
		repo:      repo,
		legacy:    legacy,
		collector: collector,
		deliverer: deliverer,
		publisher: publisher,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// ListCampaigns implements port.CampaignUseCase. A failing legacy drain is
// logged and does not prevent the listing.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, domain.CampaignStats, error) {
	if n, err := u.MigrateLegacy(ctx); err != nil {
		u.logger.Warn("legacy campaign migration failed", slog.Any("error", err))
	} else if n > 0 {
		u.logger.Info("legacy campaigns migrated", slog.Int("count", n))
	}

	campaigns, err := u.repo.List(ctx, u.opts.ListLimit)
	if err != nil {
		return nil, domain.CampaignStats{}, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, domain.ComputeStats(campaigns), nil
}

// GetCampaign implements port.CampaignUseCase.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.repo.Get(ctx, id)
}

// CreateCampaign implements port.CampaignUseCase.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error) {
	payload, err := in.Validate()
	if err != nil {
		return nil, err
	}

	now := u.now().UTC().Truncate(time.Microsecond)
	c := &domain.Campaign{
		ID:         u.newID(),
		Version:    1,
		CreatedAt:  now,
		LastUpdate: now,
	}
	c.Apply(payload)

	if err = u.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// UpdateCampaign implements port.CampaignUseCase. When in carries a
// version it must match the stored one.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id string, in domain.CampaignInput) (*domain.Campaign, error) {
	current, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	expected := current.Version
	if in.Version != nil {
		if *in.Version != current.Version {
			return nil, fmt.Errorf("campaign %s is at version %d: %w", id, current.Version, port.ErrConflict)
		}
		expected = *in.Version
	}

	payload, err := in.Merge(current.Payload()).Validate()
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Apply(payload)
	updated.LastUpdate = domain.NextUpdate(current.LastUpdate, u.now())
	if err = u.repo.Update(ctx, &updated, expected); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCampaign implements port.CampaignUseCase.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}

// SendNow implements port.CampaignUseCase. The steps run strictly in the
// order load, channel check, collect, build, deliver, persist. Only load
// and channel failures leave the campaign untouched; per-token and batch
// failures are reported in the result. Persisting ignores cancellation of
// ctx and edits made while the send ran, so a delivered send is always
// recorded. If the campaign was deleted meanwhile the result is returned
// together with ErrNotFound.
func (u *CampaignUseCase) SendNow(ctx context.Context, id string) (*domain.SendResult, error) {
	started := u.now()

	campaign, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.Channel != domain.ChannelPush {
		return nil, fmt.Errorf("campaign %s uses channel %q: %w", id, campaign.Channel, port.ErrChannelUnsupported)
	}

	tokens, err := u.collector.Collect(ctx, campaign.Segment)
	if err != nil {
		return nil, fmt.Errorf("collect tokens: %w", err)
	}

	stats := domain.DeliveryResult{Errors: []domain.FailureRecord{}}
	if len(tokens) > 0 {
		payload := domain.BuildCampaignPayload(*campaign, u.now(), u.opts.Payload)
		stats = u.deliverer.Deliver(ctx, tokens, payload)
	}

	persistCtx := context.WithoutCancel(ctx)
	sentAt := u.now().UTC().Truncate(time.Microsecond)
	rec := domain.SendRecord{
		SentAt:     sentAt,
		SentCount:  stats.Sent,
		LastUpdate: domain.NextUpdate(campaign.LastUpdate, sentAt),
	}

	took := u.now().Sub(started)
	metrics.SendDuration.Observe(took.Seconds())
	u.logger.Info("campaign sent",
		slog.String("campaign_id", id),
		slog.Int("requested", stats.Requested),
		slog.Int("sent", stats.Sent),
		slog.Int("failed", stats.Failed),
		slog.Bool("cancelled", stats.Cancelled),
		slog.Duration("took", took))

	if err = u.repo.RecordSend(persistCtx, id, rec); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			u.logger.Warn("campaign deleted during send", slog.String("campaign_id", id))
			return &domain.SendResult{Campaign: campaign, Stats: stats}, fmt.Errorf("record send of campaign %s: %w", id, err)
		}
		return nil, fmt.Errorf("record send: %w", err)
	}
	u.publish(persistCtx, id, stats, sentAt)

	refreshed, err := u.repo.Get(persistCtx, id)
	if err != nil {
		return nil, fmt.Errorf("reload campaign: %w", err)
	}
	return &domain.SendResult{Campaign: refreshed, Stats: stats}, nil
}

func (u *CampaignUseCase) publish(ctx context.Context, campaignID string, stats domain.DeliveryResult, sentAt time.Time) {
	if u.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	err := u.publisher.PublishDelivery(ctx, port.DeliveryEvent{
		ID:         u.newID(),
		CampaignID: campaignID,
		Requested:  stats.Requested,
		Sent:       stats.Sent,
		Failed:     stats.Failed,
		Cancelled:  stats.Cancelled,
		SentAt:     sentAt,
	})
	if err != nil {
		u.logger.Warn("publish delivery event failed",
			slog.String("campaign_id", campaignID),
			slog.Any("error", err))
	}
}
