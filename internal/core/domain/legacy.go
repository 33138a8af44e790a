package domain

import (
	"encoding/json"
	"time"
)

// LegacySource is the migratedFrom stamp put on campaigns copied from the
// legacy collection.
const LegacySource = "legacy_campaigns"

// LegacyCampaign is a record of the deprecated campaign collection. Its
// document is kept raw since legacy rows were written without a schema.
type LegacyCampaign struct {
	ID       string
	Document json.RawMessage
}

type legacyDocument struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Status        string   `json:"status"`
	StartAt       string   `json:"startAt"`
	EndAt         string   `json:"endAt"`
	Segment       string   `json:"segment"`
	Channel       string   `json:"channel"`
	Category      string   `json:"category"`
	Impressions   *float64 `json:"impressions"`
	Clicks        *float64 `json:"clicks"`
	LastSentAt    string   `json:"lastSentAt"`
	LastSentCount *float64 `json:"lastSentCount"`
	CreatedAt     string   `json:"createdAt"`
	LastUpdate    string   `json:"lastUpdate"`
}

// ToCampaign converts the legacy document into a current campaign record.
// Unreadable or missing fields fall back to the same defaults the console
// has always shown for them; timestamps that are missing become now.
func (l LegacyCampaign) ToCampaign(now time.Time) Campaign {
	var doc legacyDocument
	if len(l.Document) > 0 {
		// Fields of the wrong JSON type are left at their zero value.
		_ = json.Unmarshal(l.Document, &doc)
	}
	now = now.UTC().Truncate(time.Microsecond)

	c := Campaign{
		ID:           l.ID,
		Name:         doc.Name,
		Description:  doc.Description,
		Status:       Status(doc.Status),
		Segment:      doc.Segment,
		Channel:      Channel(doc.Channel),
		Category:     Category(doc.Category),
		StartAt:      parseOr(doc.StartAt, now),
		EndAt:        parseOptional(doc.EndAt),
		LastSentAt:   parseOptional(doc.LastSentAt),
		CreatedAt:    parseOr(doc.CreatedAt, now),
		LastUpdate:   parseOr(doc.LastUpdate, now),
		MigratedAt:   &now,
		MigratedFrom: LegacySource,
		Version:      1,
	}
	if !c.Status.Valid() {
		c.Status = StatusDraft
	}
	if !c.Channel.Valid() {
		c.Channel = ChannelPush
	}
	if !c.Category.Valid() {
		c.Category = CategoryCampaign
	}
	if doc.Impressions != nil {
		v := int64(*doc.Impressions)
		c.Impressions = &v
	}
	if doc.Clicks != nil {
		v := int64(*doc.Clicks)
		c.Clicks = &v
	}
	if doc.LastSentCount != nil {
		v := int(*doc.LastSentCount)
		c.LastSentCount = &v
	}
	return c
}

func parseOr(s string, fallback time.Time) time.Time {
	if t := parseOptional(s); t != nil {
		return *t
	}
	return fallback
}

func parseOptional(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return nil
	}
	return &t
}
