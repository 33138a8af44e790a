package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CampaignInput {
	s := func(v string) *string { return &v }
	return CampaignInput{
		Name:        s("  Promo A "),
		Description: s("20% off"),
		Status:      s("draft"),
		StartAt:     s("2024-01-01T00:00:00Z"),
		Segment:     s("all"),
		Channel:     s("push"),
		Category:    s("campaign"),
	}
}

func TestValidateNormalisesPayload(t *testing.T) {
	p, err := validInput().Validate()
	require.NoError(t, err)

	assert.Equal(t, "Promo A", p.Name)
	assert.Equal(t, StatusDraft, p.Status)
	assert.Equal(t, ChannelPush, p.Channel)
	assert.Equal(t, CategoryCampaign, p.Category)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.StartAt)
	assert.Nil(t, p.EndAt)
}

func TestValidateRejectsBadFields(t *testing.T) {
	s := func(v string) *string { return &v }
	cases := []struct {
		name   string
		mutate func(*CampaignInput)
		field  string
	}{
		{"missing name", func(in *CampaignInput) { in.Name = nil }, "name"},
		{"blank description", func(in *CampaignInput) { in.Description = s("   ") }, "description"},
		{"unknown status", func(in *CampaignInput) { in.Status = s("paused") }, "status"},
		{"unknown channel", func(in *CampaignInput) { in.Channel = s("sms") }, "channel"},
		{"unknown category", func(in *CampaignInput) { in.Category = s("promo") }, "category"},
		{"missing segment", func(in *CampaignInput) { in.Segment = nil }, "segment"},
		{"missing startAt", func(in *CampaignInput) { in.StartAt = nil }, "startAt"},
		{"bad startAt", func(in *CampaignInput) { in.StartAt = s("yesterday") }, "startAt"},
		{"bad endAt", func(in *CampaignInput) { in.EndAt = OptionalString{Set: true, Value: s("31/12/2024")} }, "endAt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := in.Validate()

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateAcceptsEmptyEndAt(t *testing.T) {
	in := validInput()
	empty := ""
	in.EndAt = OptionalString{Set: true, Value: &empty}

	p, err := in.Validate()
	require.NoError(t, err)
	assert.Nil(t, p.EndAt)
}

func TestCampaignInputDistinguishesNullEndAt(t *testing.T) {
	var absent, null, set CampaignInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x"}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"endAt":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"endAt":"2024-02-01"}`), &set))

	assert.False(t, absent.EndAt.Set)
	assert.True(t, null.EndAt.Set)
	assert.Nil(t, null.EndAt.Value)
	require.NotNil(t, set.EndAt.Value)
	assert.Equal(t, "2024-02-01", *set.EndAt.Value)
}

func TestMergeKeepsOmittedFields(t *testing.T) {
	end := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	base := CampaignPayload{
		Name:        "Promo A",
		Description: "20% off",
		Status:      StatusDraft,
		StartAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndAt:       &end,
		Segment:     "all",
		Channel:     ChannelPush,
		Category:    CategoryCampaign,
	}
	status := "active"

	p, err := CampaignInput{Status: &status}.Merge(base).Validate()
	require.NoError(t, err)
	assert.Equal(t, StatusActive, p.Status)
	assert.Equal(t, base.Name, p.Name)
	assert.Equal(t, base.StartAt, p.StartAt)
	require.NotNil(t, p.EndAt)
	assert.Equal(t, end, *p.EndAt)

	p, err = CampaignInput{EndAt: OptionalString{Set: true}}.Merge(base).Validate()
	require.NoError(t, err)
	assert.Nil(t, p.EndAt)
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	for _, in := range []string{
		"2024-05-06T07:08:09Z",
		"2024-05-06T09:08:09+02:00",
		"2024-05-06T07:08:09.000Z",
		"2024-05-06T07:08:09",
		"2024-05-06 07:08:09",
	} {
		got, err := ParseTimestamp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTimestamp("not a date")
	assert.Error(t, err)
}
