package port

import (
	"context"
	"time"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
)

// PushSender is the multicast push transport. On success it returns one
// outcome per token, in token order. An error means the whole batch was
// rejected and no per-token outcome is available.
type PushSender interface {
	SendMulticast(ctx context.Context, tokens []string, payload domain.NotificationPayload) ([]domain.SendOutcome, error)
}

// DeliveryPublisher announces completed sends to downstream consumers.
type DeliveryPublisher interface {
	PublishDelivery(ctx context.Context, event DeliveryEvent) error
}

// DeliveryEvent is the message published after every send.
type DeliveryEvent struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	Requested  int       `json:"requestedTokens"`
	Sent       int       `json:"sentTokens"`
	Failed     int       `json:"failedTokens"`
	Cancelled  bool      `json:"cancelled"`
	SentAt     time.Time `json:"sentAt"`
}
