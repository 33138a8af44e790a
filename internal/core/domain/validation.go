package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ValidationError reports the first campaign field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: field + " is required"}
}

// OptionalString distinguishes an absent JSON field from an explicit null.
// Set is true whenever the field was present in the document.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// CampaignInput is a campaign payload as submitted by an operator. Nil
// fields were absent (or null) in the request. Version optionally pins the
// record version an update was prepared against.
type CampaignInput struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Status      *string        `json:"status"`
	StartAt     *string        `json:"startAt"`
	EndAt       OptionalString `json:"endAt"`
	Segment     *string        `json:"segment"`
	Channel     *string        `json:"channel"`
	Category    *string        `json:"category"`
	Version     *int64         `json:"version"`
}

// Validate checks a complete payload and returns its normalised form. The
// returned error is a *ValidationError naming the first offending field.
func (in CampaignInput) Validate() (CampaignPayload, error) {
	var (
		p   CampaignPayload
		err error
	)

	status, err := normalizeString(in.Status, "status")
	if err != nil {
		return p, err
	}
	if p.Status = Status(status); !p.Status.Valid() {
		return p, &ValidationError{Field: "status", Reason: "invalid status"}
	}

	channel, err := normalizeString(in.Channel, "channel")
	if err != nil {
		return p, err
	}
	if p.Channel = Channel(channel); !p.Channel.Valid() {
		return p, &ValidationError{Field: "channel", Reason: "invalid channel"}
	}

	category, err := normalizeString(in.Category, "category")
	if err != nil {
		return p, err
	}
	if p.Category = Category(category); !p.Category.Valid() {
		return p, &ValidationError{Field: "category", Reason: "invalid category"}
	}

	if p.Name, err = normalizeString(in.Name, "name"); err != nil {
		return p, err
	}
	if p.Description, err = normalizeString(in.Description, "description"); err != nil {
		return p, err
	}
	if p.Segment, err = normalizeString(in.Segment, "segment"); err != nil {
		return p, err
	}

	startAt, err := normalizeDate(in.StartAt, "startAt", true)
	if err != nil {
		return p, err
	}
	p.StartAt = *startAt
	if p.EndAt, err = normalizeDate(in.EndAt.Value, "endAt", false); err != nil {
		return p, err
	}
	return p, nil
}

// Merge overlays the fields present in in on top of base and returns the
// result as a complete input, ready for Validate. An explicit null endAt
// clears the stored value.
func (in CampaignInput) Merge(base CampaignPayload) CampaignInput {
	str := func(s string) *string { return &s }
	out := CampaignInput{
		Name:        str(base.Name),
		Description: str(base.Description),
		Status:      str(string(base.Status)),
		StartAt:     str(FormatTimestamp(base.StartAt)),
		Segment:     str(base.Segment),
		Channel:     str(string(base.Channel)),
		Category:    str(string(base.Category)),
		Version:     in.Version,
	}
	if base.EndAt != nil {
		out.EndAt = OptionalString{Set: true, Value: str(FormatTimestamp(*base.EndAt))}
	}

	out.Name = firstSet(in.Name, out.Name)
	out.Description = firstSet(in.Description, out.Description)
	out.Status = firstSet(in.Status, out.Status)
	out.StartAt = firstSet(in.StartAt, out.StartAt)
	out.Segment = firstSet(in.Segment, out.Segment)
	out.Channel = firstSet(in.Channel, out.Channel)
	out.Category = firstSet(in.Category, out.Category)
	if in.EndAt.Set {
		out.EndAt = in.EndAt
	}
	return out
}

func firstSet(v, fallback *string) *string {
	if v != nil {
		return v
	}
	return fallback
}

func normalizeString(v *string, field string) (string, error) {
	if v == nil {
		return "", requiredField(field)
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "", requiredField(field)
	}
	return s, nil
}

func normalizeDate(v *string, field string, required bool) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		if required {
			return nil, requiredField(field)
		}
		return nil, nil
	}
	t, err := ParseTimestamp(*v)
	if err != nil {
		return nil, &ValidationError{Field: field, Reason: field + " must be a valid date"}
	}
	return &t, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses an ISO-8601 style timestamp. Values without a zone
// are taken as UTC. The result is UTC with millisecond precision.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Millisecond), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// FormatTimestamp renders t the way ParseTimestamp accepts it back.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
