package domain

import (
	"math"
	"strconv"
	"time"
)

const (
	// NotificationType is the data "type" tag carried by every campaign push.
	NotificationType = "messaging_campaign"
	// DefaultExpiresIn is how long a campaign notification stays deliverable.
	DefaultExpiresIn = 120 * time.Second
	// DefaultAndroidChannelID is the Android notification channel campaigns
	// are posted to.
	DefaultAndroidChannelID = "rundi_default"

	AndroidPriorityHigh = "high"
	DefaultSound        = "default"
)

// NotificationPayload is a transport neutral push message shared by every
// token of a send. Data values are strings because push data blocks only
// carry string pairs.
type NotificationPayload struct {
	Title   string
	Body    string
	Data    map[string]string
	Android AndroidHints
	APNS    APNSHints
}

// AndroidHints are the Android specific delivery options.
type AndroidHints struct {
	Priority  string
	TTL       time.Duration
	ChannelID string
	Tag       string
}

// APNSHints are the APNs specific delivery options.
type APNSHints struct {
	Headers map[string]string
	Sound   string
}

// PayloadOptions tunes BuildCampaignPayload. Zero values select the
// defaults above.
type PayloadOptions struct {
	ExpiresIn        time.Duration
	AndroidChannelID string
}

// NotificationKey is the collapse key for a campaign. Repeated sends of one
// campaign share it, so devices replace the earlier notification.
func NotificationKey(campaignID string) string {
	return "campaign-" + campaignID
}

// BuildCampaignPayload converts a campaign into the notification sent to
// every recipient. Only the apns-expiration header depends on now.
func BuildCampaignPayload(c Campaign, now time.Time, opts PayloadOptions) NotificationPayload {
	expiresIn := opts.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = DefaultExpiresIn
	}
	channelID := opts.AndroidChannelID
	if channelID == "" {
		channelID = DefaultAndroidChannelID
	}

	ttl := ttlSeconds(expiresIn)
	key := NotificationKey(c.ID)

	return NotificationPayload{
		Title: c.Name,
		Body:  c.Description,
		Data: map[string]string{
			"campaignId":      c.ID,
			"segment":         c.Segment,
			"category":        string(c.Category),
			"type":            NotificationType,
			"notificationKey": key,
			"expiresInMs":     strconv.FormatInt(expiresIn.Milliseconds(), 10),
		},
		Android: AndroidHints{
			Priority:  AndroidPriorityHigh,
			TTL:       time.Duration(ttl) * time.Second,
			ChannelID: channelID,
			Tag:       key,
		},
		APNS: APNSHints{
			Headers: map[string]string{
				"apns-expiration":  strconv.FormatInt(now.Unix()+ttl, 10),
				"apns-collapse-id": key,
			},
			Sound: DefaultSound,
		},
	}
}

// ttlSeconds rounds d up to whole seconds, with a floor of one second.
func ttlSeconds(d time.Duration) int64 {
	return max(1, int64(math.Ceil(d.Seconds())))
}
