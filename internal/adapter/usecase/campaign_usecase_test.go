package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

func promoInput() domain.CampaignInput {
	s := func(v string) *string { return &v }
	return domain.CampaignInput{
		Name:        s("Promo A"),
		Description: s("20% off"),
		Status:      s("draft"),
		StartAt:     s("2024-01-01T00:00:00Z"),
		EndAt:       domain.OptionalString{Set: true},
		Segment:     s("all"),
		Channel:     s("push"),
		Category:    s("campaign"),
	}
}

func storedCampaign(channel domain.Channel) *domain.Campaign {
	created := fixedNow.Add(-time.Hour)
	return &domain.Campaign{
		ID:          "c1",
		Name:        "Promo A",
		Description: "20% off",
		Status:      domain.StatusDraft,
		StartAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Segment:     "all",
		Channel:     channel,
		Category:    domain.CategoryCampaign,
		Version:     3,
		CreatedAt:   created,
		LastUpdate:  created,
	}
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	c, err := f.svc.CreateCampaign(context.Background(), promoInput())
	require.NoError(t, err)

	assert.Equal(t, "generated-id", c.ID)
	assert.Equal(t, "Promo A", c.Name)
	assert.Equal(t, c.CreatedAt, c.LastUpdate)
	assert.Equal(t, fixedNow, c.CreatedAt)
	assert.Nil(t, c.Impressions)
	assert.Nil(t, c.Clicks)
	assert.Nil(t, c.EndAt)
	assert.EqualValues(t, 1, c.Version)
}

func TestCreateCampaignRejectsInvalidPayload(t *testing.T) {
	f := newFixture(t)
	in := promoInput()
	bad := "sms"
	in.Channel = &bad

	_, err := f.svc.CreateCampaign(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "channel", verr.Field)
}

func TestUpdateCampaignMergesPartialPayload(t *testing.T) {
	f := newFixture(t)
	current := storedCampaign(domain.ChannelPush)
	f.repo.EXPECT().Get(mock.Anything, "c1").Return(current, nil)
	f.repo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool {
			return c.Status == domain.StatusActive && c.Name == "Promo A" && c.LastUpdate.Equal(fixedNow)
		}), int64(3)).
		Return(nil)

	status := "active"
	c, err := f.svc.UpdateCampaign(context.Background(), "c1", domain.CampaignInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.True(t, c.LastUpdate.After(current.LastUpdate))
	assert.Equal(t, current.CreatedAt, c.CreatedAt)
}

func TestUpdateCampaignVersionMismatch(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(mock.Anything, "c1").Return(storedCampaign(domain.ChannelPush), nil)

	stale := int64(2)
	in := promoInput()
	in.Version = &stale
	_, err := f.svc.UpdateCampaign(context.Background(), "c1", in)

	require.ErrorIs(t, err, port.ErrConflict)
	require.NotErrorIs(t, err, port.ErrNotFound)
}

func TestUpdateCampaignNotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(mock.Anything, "missing").Return(nil, port.ErrNotFound)

	_, err := f.svc.UpdateCampaign(context.Background(), "missing", promoInput())
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestSendNowDeliversAndRecordsResult(t *testing.T) {
	f := newFixture(t)
	campaign := storedCampaign(domain.ChannelPush)
	tokens := makeTokens(3)

	f.repo.EXPECT().Get(mock.Anything, "c1").Return(campaign, nil).Once()
	f.source.EXPECT().ListUserIDs(mock.Anything).Return([]string{"u1"}, nil)
	f.source.EXPECT().ListTokens(mock.Anything, "u1").Return(tokens, nil)
	f.sender.EXPECT().
		SendMulticast(mock.Anything, domain.TokenValues(tokens), mock.MatchedBy(func(p domain.NotificationPayload) bool {
			return p.Data["notificationKey"] == "campaign-c1" && p.Title == "Promo A"
		})).
		Return([]domain.SendOutcome{
			{Success: true},
			{Success: true},
			{Code: "invalid-token", Message: "not registered"},
		}, nil)
	f.repo.EXPECT().
		RecordSend(mock.Anything, "c1", domain.SendRecord{
			SentAt:     fixedNow,
			SentCount:  2,
			LastUpdate: fixedNow,
		}).
		Return(nil)
	f.publisher.EXPECT().
		PublishDelivery(mock.Anything, mock.MatchedBy(func(e port.DeliveryEvent) bool {
			return e.CampaignID == "c1" && e.Sent == 2 && e.Failed == 1
		})).
		Return(nil)

	refreshed := *campaign
	two := 2
	refreshed.LastSentCount = &two
	f.repo.EXPECT().Get(mock.Anything, "c1").Return(&refreshed, nil).Once()

	res, err := f.svc.SendNow(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Stats.Requested)
	assert.Equal(t, 2, res.Stats.Sent)
	assert.Equal(t, 1, res.Stats.Failed)
	require.Len(t, res.Stats.Errors, 1)
	assert.Equal(t, tokens[2].Token[:24], res.Stats.Errors[0].Token)
	assert.Equal(t, "invalid-token", res.Stats.Errors[0].Code)
	require.NotNil(t, res.Campaign.LastSentCount)
	assert.Equal(t, 2, *res.Campaign.LastSentCount)
}

func TestSendNowWithoutTokensSkipsTransport(t *testing.T) {
	f := newFixture(t)
	campaign := storedCampaign(domain.ChannelPush)

	f.repo.EXPECT().Get(mock.Anything, "c1").Return(campaign, nil)
	f.source.EXPECT().ListUserIDs(mock.Anything).Return(nil, nil)
	f.repo.EXPECT().
		RecordSend(mock.Anything, "c1", mock.MatchedBy(func(rec domain.SendRecord) bool {
			return rec.SentCount == 0 && rec.SentAt.Equal(fixedNow) && rec.LastUpdate.Equal(fixedNow)
		})).
		Return(nil)
	f.publisher.EXPECT().PublishDelivery(mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.SendNow(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryResult{Errors: []domain.FailureRecord{}}, res.Stats)
}

func TestSendNowRejectsNonPushChannels(t *testing.T) {
	for _, ch := range []domain.Channel{domain.ChannelEmail, domain.ChannelInApp} {
		t.Run(string(ch), func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(mock.Anything, "c1").Return(storedCampaign(ch), nil)

			res, err := f.svc.SendNow(context.Background(), "c1")
			require.ErrorIs(t, err, port.ErrChannelUnsupported)
			assert.Nil(t, res)
		})
	}
}

func TestSendNowNotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(mock.Anything, "nope").Return(nil, port.ErrNotFound)

	_, err := f.svc.SendNow(context.Background(), "nope")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestSendNowRecordsDespiteConcurrentUpdate(t *testing.T) {
	f := newFixture(t)
	campaign := storedCampaign(domain.ChannelPush)
	tokens := makeTokens(3)
	active := "active"

	f.repo.EXPECT().Get(mock.Anything, "c1").Return(campaign, nil).Times(2)
	f.source.EXPECT().ListUserIDs(mock.Anything).Return([]string{"u1"}, nil)
	f.source.EXPECT().ListTokens(mock.Anything, "u1").Return(tokens, nil)
	f.repo.EXPECT().Update(mock.Anything, mock.Anything, int64(3)).Return(nil)
	f.sender.EXPECT().
		SendMulticast(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, batch []string, _ domain.NotificationPayload) ([]domain.SendOutcome, error) {
			_, err := f.svc.UpdateCampaign(ctx, "c1", domain.CampaignInput{Status: &active})
			require.NoError(t, err)
			return allSucceed(batch), nil
		})
	f.repo.EXPECT().
		RecordSend(mock.Anything, "c1", mock.MatchedBy(func(rec domain.SendRecord) bool { return rec.SentCount == 3 })).
		Return(nil)
	f.publisher.EXPECT().PublishDelivery(mock.Anything, mock.Anything).Return(nil)

	refreshed := *campaign
	refreshed.Status = domain.StatusActive
	three := 3
	refreshed.LastSentCount = &three
	f.repo.EXPECT().Get(mock.Anything, "c1").Return(&refreshed, nil).Once()

	res, err := f.svc.SendNow(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Stats.Sent)
	assert.Equal(t, domain.StatusActive, res.Campaign.Status)
	assert.Equal(t, 3, *res.Campaign.LastSentCount)
}

func TestSendNowDeletedDuringSendKeepsStats(t *testing.T) {
	f := newFixture(t)
	campaign := storedCampaign(domain.ChannelPush)
	tokens := makeTokens(2)

	f.repo.EXPECT().Get(mock.Anything, "c1").Return(campaign, nil)
	f.source.EXPECT().ListUserIDs(mock.Anything).Return([]string{"u1"}, nil)
	f.source.EXPECT().ListTokens(mock.Anything, "u1").Return(tokens, nil)
	f.sender.EXPECT().SendMulticast(mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.SendOutcome{{Success: true}, {Success: true}}, nil)
	f.repo.EXPECT().RecordSend(mock.Anything, "c1", mock.Anything).Return(port.ErrNotFound)

	res, err := f.svc.SendNow(context.Background(), "c1")
	require.ErrorIs(t, err, port.ErrNotFound)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Stats.Sent)
}

func TestSendNowPersistsAfterCancellation(t *testing.T) {
	f := newFixture(t)
	campaign := storedCampaign(domain.ChannelPush)
	tokens := makeTokens(600)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.repo.EXPECT().Get(mock.Anything, "c1").Return(campaign, nil)
	f.source.EXPECT().ListUserIDs(mock.Anything).Return([]string{"u1"}, nil)
	f.source.EXPECT().ListTokens(mock.Anything, "u1").Return(tokens, nil)
	f.sender.EXPECT().
		SendMulticast(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, batch []string, _ domain.NotificationPayload) ([]domain.SendOutcome, error) {
			cancel()
			return allSucceed(batch), nil
		}).
		Once()
	f.repo.EXPECT().
		RecordSend(mock.Anything, "c1", mock.MatchedBy(func(rec domain.SendRecord) bool { return rec.SentCount == 500 })).
		RunAndReturn(func(ctx context.Context, _ string, _ domain.SendRecord) error {
			return ctx.Err()
		})
	f.publisher.EXPECT().PublishDelivery(mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.SendNow(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, res.Stats.Cancelled)
	assert.Equal(t, 100, res.Stats.Failed)
}

func TestSendNowIgnoresPublisherFailure(t *testing.T) {
	f := newFixture(t)
	campaign := storedCampaign(domain.ChannelPush)

	f.repo.EXPECT().Get(mock.Anything, "c1").Return(campaign, nil)
	f.source.EXPECT().ListUserIDs(mock.Anything).Return(nil, nil)
	f.repo.EXPECT().RecordSend(mock.Anything, "c1", mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishDelivery(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := f.svc.SendNow(context.Background(), "c1")
	require.NoError(t, err)
}

func TestListCampaignsSurvivesMigrationFailure(t *testing.T) {
	f := newFixture(t)
	f.legacy.EXPECT().Page(mock.Anything, LegacyPageSize).Return(nil, errors.New("legacy table missing"))
	f.repo.EXPECT().List(mock.Anything, DefaultListLimit).Return([]domain.Campaign{
		{ID: "a", Status: domain.StatusDraft},
		{ID: "b", Status: domain.StatusActive},
		{ID: "c", Status: domain.StatusActive},
	}, nil)

	campaigns, stats, err := f.svc.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Len(t, campaigns, 3)
	assert.Equal(t, domain.CampaignStats{Total: 3, Draft: 1, Active: 2}, stats)
}

func TestDeleteCampaignNotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Delete(mock.Anything, "gone").Return(port.ErrNotFound)

	require.ErrorIs(t, f.svc.DeleteCampaign(context.Background(), "gone"), port.ErrNotFound)
}
