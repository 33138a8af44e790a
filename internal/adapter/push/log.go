package push

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
)

// LogSender pretends every token was delivered and logs the batch. It is
// used for local development where no FCM project is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendMulticast(ctx context.Context, tokens []string, payload domain.NotificationPayload) ([]domain.SendOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.logger.Info("push batch",
		slog.Int("tokens", len(tokens)),
		slog.String("title", payload.Title),
		slog.String("campaign_id", payload.Data["campaignId"]),
	)
	outcomes := make([]domain.SendOutcome, len(tokens))
	for i := range outcomes {
		outcomes[i] = domain.SendOutcome{Success: true, MessageID: "log-" + uuid.NewString()}
	}
	return outcomes, nil
}
