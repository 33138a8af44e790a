package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildCampaignPayload(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := Campaign{
		ID:          "c1",
		Name:        "Promo A",
		Description: "20% off",
		Segment:     "all",
		Category:    CategoryCampaign,
	}

	p := BuildCampaignPayload(c, now, PayloadOptions{})

	assert.Equal(t, "Promo A", p.Title)
	assert.Equal(t, "20% off", p.Body)
	assert.Equal(t, map[string]string{
		"campaignId":      "c1",
		"segment":         "all",
		"category":        "campaign",
		"type":            "messaging_campaign",
		"notificationKey": "campaign-c1",
		"expiresInMs":     "120000",
	}, p.Data)
	assert.Equal(t, AndroidHints{
		Priority:  "high",
		TTL:       120 * time.Second,
		ChannelID: "rundi_default",
		Tag:       "campaign-c1",
	}, p.Android)
	assert.Equal(t, "1700000120", p.APNS.Headers["apns-expiration"])
	assert.Equal(t, "campaign-c1", p.APNS.Headers["apns-collapse-id"])
	assert.Equal(t, "default", p.APNS.Sound)
}

func TestBuildCampaignPayloadRoundsTTLUp(t *testing.T) {
	p := BuildCampaignPayload(Campaign{ID: "x"}, time.Unix(0, 0), PayloadOptions{
		ExpiresIn:        1500 * time.Millisecond,
		AndroidChannelID: "promos",
	})
	assert.Equal(t, 2*time.Second, p.Android.TTL)
	assert.Equal(t, "promos", p.Android.ChannelID)
	assert.Equal(t, "1500", p.Data["expiresInMs"])
	assert.Equal(t, "2", p.APNS.Headers["apns-expiration"])

	p = BuildCampaignPayload(Campaign{ID: "x"}, time.Unix(0, 0), PayloadOptions{ExpiresIn: time.Millisecond})
	assert.Equal(t, time.Second, p.Android.TTL)
}

func TestBuildCampaignPayloadIsStableAcrossSends(t *testing.T) {
	c := Campaign{ID: "same", Name: "n", Description: "d"}
	a := BuildCampaignPayload(c, time.Unix(10, 0), PayloadOptions{})
	b := BuildCampaignPayload(c, time.Unix(10, 0), PayloadOptions{})
	assert.Equal(t, a, b)
	assert.Equal(t, a.Android.Tag, b.APNS.Headers["apns-collapse-id"])
}
