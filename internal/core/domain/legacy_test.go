package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyCampaignToCampaign(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	l := LegacyCampaign{
		ID:       "old-1",
		Document: []byte(`{"name":"Old promo","description":"d","status":"active","startAt":"2024-01-01T00:00:00.000Z","segment":"vip","channel":"email","category":"experiment","impressions":12,"lastUpdate":"2024-02-01T00:00:00Z"}`),
	}

	c := l.ToCampaign(now)
	assert.Equal(t, "old-1", c.ID)
	assert.Equal(t, StatusActive, c.Status)
	assert.Equal(t, ChannelEmail, c.Channel)
	assert.Equal(t, CategoryExperiment, c.Category)
	require.NotNil(t, c.Impressions)
	assert.EqualValues(t, 12, *c.Impressions)
	assert.Nil(t, c.Clicks)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), c.LastUpdate)
	assert.Equal(t, now, c.CreatedAt)
	require.NotNil(t, c.MigratedAt)
	assert.Equal(t, now, *c.MigratedAt)
	assert.Equal(t, LegacySource, c.MigratedFrom)
}

func TestLegacyCampaignDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	c := LegacyCampaign{ID: "x", Document: []byte(`{"status":"bogus","startAt":42}`)}.ToCampaign(now)

	assert.Equal(t, StatusDraft, c.Status)
	assert.Equal(t, ChannelPush, c.Channel)
	assert.Equal(t, CategoryCampaign, c.Category)
	assert.Equal(t, now, c.StartAt)
	assert.Equal(t, now, c.LastUpdate)
}
