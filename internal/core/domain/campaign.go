package domain

import (
	"slices"
	"time"
)

// Status is the lifecycle stage of a campaign. Stages are changed by
// operators (or an external scheduler); delivery never moves a campaign
// between them.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Statuses lists every accepted status.
var Statuses = []Status{StatusDraft, StatusScheduled, StatusActive, StatusCompleted}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool { return slices.Contains(Statuses, s) }

// Channel is the medium a campaign is delivered through. Only ChannelPush
// can be sent by this service; the others are stored and managed only.
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelInApp Channel = "in_app"
	ChannelEmail Channel = "email"
)

// Channels lists every accepted channel.
var Channels = []Channel{ChannelPush, ChannelInApp, ChannelEmail}

// Valid reports whether c is one of Channels.
func (c Channel) Valid() bool { return slices.Contains(Channels, c) }

// Category distinguishes regular campaigns from experiments.
type Category string

const (
	CategoryCampaign   Category = "campaign"
	CategoryExperiment Category = "experiment"
)

// Categories lists every accepted category.
var Categories = []Category{CategoryCampaign, CategoryExperiment}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool { return slices.Contains(Categories, c) }

// Campaign is a named unit of outbound messaging as persisted by the
// campaign store. Version is incremented by the store on every write and
// is used for conditional updates. Impressions and Clicks are reserved
// counters which this service never populates.
type Campaign struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Status        Status     `json:"status"`
	StartAt       time.Time  `json:"startAt"`
	EndAt         *time.Time `json:"endAt"`
	Segment       string     `json:"segment"`
	Channel       Channel    `json:"channel"`
	Category      Category   `json:"category"`
	Impressions   *int64     `json:"impressions"`
	Clicks        *int64     `json:"clicks"`
	LastSentAt    *time.Time `json:"lastSentAt"`
	LastSentCount *int       `json:"lastSentCount"`
	MigratedAt    *time.Time `json:"migratedAt,omitempty"`
	MigratedFrom  string     `json:"migratedFrom,omitempty"`
	Version       int64      `json:"version"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUpdate    time.Time  `json:"lastUpdate"`
}

// CampaignPayload holds the operator controlled fields of a campaign after
// validation: strings are trimmed and timestamps are UTC.
type CampaignPayload struct {
	Name        string
	Description string
	Status      Status
	StartAt     time.Time
	EndAt       *time.Time
	Segment     string
	Channel     Channel
	Category    Category
}

// Payload returns the operator controlled fields of c.
func (c *Campaign) Payload() CampaignPayload {
	return CampaignPayload{
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		StartAt:     c.StartAt,
		EndAt:       c.EndAt,
		Segment:     c.Segment,
		Channel:     c.Channel,
		Category:    c.Category,
	}
}

// Apply replaces every operator controlled field of c with the values in p.
func (c *Campaign) Apply(p CampaignPayload) {
	c.Name = p.Name
	c.Description = p.Description
	c.Status = p.Status
	c.StartAt = p.StartAt
	c.EndAt = p.EndAt
	c.Segment = p.Segment
	c.Channel = p.Channel
	c.Category = p.Category
}

// CampaignStats counts campaigns per status.
type CampaignStats struct {
	Total     int `json:"total"`
	Draft     int `json:"draft"`
	Scheduled int `json:"scheduled"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// ComputeStats tallies campaigns by status. Campaigns with an unknown status
// are included in Total only.
func ComputeStats(campaigns []Campaign) CampaignStats {
	var s CampaignStats
	for _, c := range campaigns {
		s.Total++
		switch c.Status {
		case StatusDraft:
			s.Draft++
		case StatusScheduled:
			s.Scheduled++
		case StatusActive:
			s.Active++
		case StatusCompleted:
			s.Completed++
		}
	}
	return s
}

// NextUpdate returns the lastUpdate stamp for a write performed at now on a
// record last written at prev. The result is always strictly after prev,
// at the store's microsecond resolution.
func NextUpdate(prev, now time.Time) time.Time {
	now = now.UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		return prev.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return now
}
