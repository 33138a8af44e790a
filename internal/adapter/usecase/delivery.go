package usecase

import (
	"context"
	"log/slog"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
	"github.com/SamuelUes/rundi-platform/internal/metrics"
)

// BatchDeliverer fans a payload out to tokens through a multicast
// transport, one batch at a time.
type BatchDeliverer struct {
	sender    port.PushSender
	batchSize int
	logger    *slog.Logger
}

// NewBatchDeliverer returns a deliverer using batches of batchSize tokens,
// clamped to domain.MaxBatchSize.
func NewBatchDeliverer(sender port.PushSender, batchSize int, logger *slog.Logger) *BatchDeliverer {
	if batchSize <= 0 || batchSize > domain.MaxBatchSize {
		batchSize = domain.MaxBatchSize
	}
	return &BatchDeliverer{sender: sender, batchSize: batchSize, logger: logger}
}

// Deliver sends payload to every token, sequentially batch by batch, and
// accounts for every token as either sent or failed. Nothing is retried. A
// batch rejected as a whole yields one failure per token. Once ctx is done
// no further batch is dispatched and the remaining tokens are recorded as
// cancelled.
func (d *BatchDeliverer) Deliver(ctx context.Context, tokens []domain.TokenEntry, payload domain.NotificationPayload) domain.DeliveryResult {
	res := domain.DeliveryResult{
		Requested: len(tokens),
		Errors:    []domain.FailureRecord{},
	}

	for _, batch := range domain.PartitionTokens(tokens, d.batchSize) {
		if err := ctx.Err(); err != nil {
			res.Cancelled = true
			recordFailures(&res, batch, domain.CodeCancelled, err.Error())
			metrics.DeliveryBatches.WithLabelValues("cancelled").Inc()
			continue
		}

		res.Batches++
		values := domain.TokenValues(batch)
		outcomes, err := d.sender.SendMulticast(ctx, values, payload)
		if err != nil {
			d.logger.Warn("multicast batch failed",
				slog.Int("batch", res.Batches),
				slog.Int("tokens", len(batch)),
				slog.Any("error", err))
			recordFailures(&res, batch, domain.CodeMulticastError, err.Error())
			metrics.DeliveryBatches.WithLabelValues("error").Inc()
			continue
		}

		for i, token := range values {
			if i >= len(outcomes) {
				recordFailures(&res, batch[i:i+1], domain.CodeMissingResponse, "transport returned no outcome for token")
				continue
			}
			if outcomes[i].Success {
				res.Sent++
				continue
			}
			res.Errors = append(res.Errors, domain.FailureRecord{
				Token:   domain.TruncateToken(token),
				Code:    outcomes[i].Code,
				Message: outcomes[i].Message,
			})
		}
		metrics.DeliveryBatches.WithLabelValues("ok").Inc()
	}

	res.Failed = res.Requested - res.Sent
	metrics.DeliveredTokens.WithLabelValues("sent").Add(float64(res.Sent))
	metrics.DeliveredTokens.WithLabelValues("failed").Add(float64(res.Failed))
	return res
}

func recordFailures(res *domain.DeliveryResult, batch []domain.TokenEntry, code, message string) {
	for _, entry := range batch {
		res.Errors = append(res.Errors, domain.FailureRecord{
			Token:   domain.TruncateToken(entry.Token),
			Code:    code,
			Message: message,
		})
	}
}
