package push

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
)

type fakeClient struct {
	got  *messaging.MulticastMessage
	resp *messaging.BatchResponse
	err  error
}

func (f *fakeClient) SendEachForMulticast(_ context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = m
	return f.resp, f.err
}

func samplePayload() domain.NotificationPayload {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.BuildCampaignPayload(domain.Campaign{
		ID:          "c1",
		Name:        "Promo A",
		Description: "20% off",
		Segment:     "all",
		Category:    domain.CategoryCampaign,
	}, now, domain.PayloadOptions{})
}

func TestFCMSenderMapsMessage(t *testing.T) {
	client := &fakeClient{resp: &messaging.BatchResponse{
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "m1"},
			{Success: false, Error: errors.New("boom")},
		},
	}}
	s := NewFCMSender(client)

	out, err := s.SendMulticast(context.Background(), []string{"a", "b"}, samplePayload())
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.True(t, out[0].Success)
	assert.Equal(t, "m1", out[0].MessageID)
	assert.False(t, out[1].Success)
	assert.Equal(t, "messaging/unknown-error", out[1].Code)
	assert.Equal(t, "boom", out[1].Message)

	m := client.got
	require.NotNil(t, m)
	assert.Equal(t, []string{"a", "b"}, m.Tokens)
	assert.Equal(t, "Promo A", m.Notification.Title)
	assert.Equal(t, "20% off", m.Notification.Body)
	assert.Equal(t, domain.NotificationType, m.Data["type"])
	assert.Equal(t, "high", m.Android.Priority)
	assert.Equal(t, 120*time.Second, *m.Android.TTL)
	assert.Equal(t, domain.DefaultAndroidChannelID, m.Android.Notification.ChannelID)
	assert.Equal(t, "campaign-c1", m.Android.Notification.Tag)
	assert.Equal(t, "campaign-c1", m.APNS.Headers["apns-collapse-id"])
	assert.Equal(t, "default", m.APNS.Payload.Aps.Sound)
}

func TestFCMSenderWholeBatchError(t *testing.T) {
	s := NewFCMSender(&fakeClient{err: errors.New("unavailable")})

	out, err := s.SendMulticast(context.Background(), []string{"a"}, samplePayload())

	require.Error(t, err)
	assert.Nil(t, out)
}

func TestErrorCodeFallsBack(t *testing.T) {
	assert.Equal(t, "messaging/unknown-error", ErrorCode(nil))
	assert.Equal(t, "messaging/unknown-error", ErrorCode(errors.New("plain")))
}

func TestLogSender(t *testing.T) {
	s := NewLogSender(slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := s.SendMulticast(context.Background(), []string{"a", "b", "c"}, samplePayload())
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, o := range out {
		assert.True(t, o.Success)
		assert.NotEmpty(t, o.MessageID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.SendMulticast(ctx, []string{"a"}, samplePayload())
	assert.ErrorIs(t, err, context.Canceled)
}
