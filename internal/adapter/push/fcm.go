package push

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
)

// multicastClient is the subset of *messaging.Client used by FCMSender.
type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// FCMSender delivers notifications through Firebase Cloud Messaging.
type FCMSender struct {
	client multicastClient
}

// NewFCMSender wraps a messaging client, usually obtained from
// firebase.App.Messaging.
func NewFCMSender(client multicastClient) *FCMSender {
	return &FCMSender{client: client}
}

// SendMulticast sends payload to tokens in a single FCM call. The
// returned outcomes are aligned with tokens.
func (s *FCMSender) SendMulticast(ctx context.Context, tokens []string, payload domain.NotificationPayload) ([]domain.SendOutcome, error) {
	resp, err := s.client.SendEachForMulticast(ctx, toMulticast(tokens, payload))
	if err != nil {
		return nil, fmt.Errorf("fcm multicast: %w", err)
	}
	outcomes := make([]domain.SendOutcome, len(resp.Responses))
	for i, r := range resp.Responses {
		if r == nil {
			continue
		}
		if r.Success {
			outcomes[i] = domain.SendOutcome{Success: true, MessageID: r.MessageID}
			continue
		}
		outcomes[i] = domain.SendOutcome{Code: ErrorCode(r.Error)}
		if r.Error != nil {
			outcomes[i].Message = r.Error.Error()
		}
	}
	return outcomes, nil
}

func toMulticast(tokens []string, p domain.NotificationPayload) *messaging.MulticastMessage {
	ttl := p.Android.TTL
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Data:   p.Data,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Android: &messaging.AndroidConfig{
			Priority: p.Android.Priority,
			TTL:      &ttl,
			Notification: &messaging.AndroidNotification{
				ChannelID: p.Android.ChannelID,
				Tag:       p.Android.Tag,
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: p.APNS.Headers,
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: p.APNS.Sound},
			},
		},
	}
}

// ErrorCode maps a per-token FCM error to a stable failure code.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return "messaging/unknown-error"
	case messaging.IsUnregistered(err):
		return "messaging/registration-token-not-registered"
	case messaging.IsSenderIDMismatch(err):
		return "messaging/mismatched-credential"
	case messaging.IsQuotaExceeded(err):
		return "messaging/message-rate-exceeded"
	case messaging.IsThirdPartyAuthError(err):
		return "messaging/third-party-auth-error"
	case errorutils.IsInvalidArgument(err):
		return "messaging/invalid-argument"
	case errorutils.IsUnavailable(err):
		return "messaging/server-unavailable"
	case errorutils.IsInternal(err):
		return "messaging/internal-error"
	default:
		return "messaging/unknown-error"
	}
}
