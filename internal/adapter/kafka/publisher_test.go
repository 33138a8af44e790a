package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

var errBrokerDown = errors.New("broker down")

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishDelivery(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, NewConfig("test"))
	producer.ExpectInputWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev port.DeliveryEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.CampaignID != "c1" || ev.Sent != 2 || ev.Failed != 1 {
			return errors.New("unexpected event")
		}
		return nil
	})

	p := NewDeliveryPublisher(producer, "campaign-deliveries", discard())
	p.Start()

	err := p.PublishDelivery(context.Background(), port.DeliveryEvent{
		ID:         "e1",
		CampaignID: "c1",
		Requested:  3,
		Sent:       2,
		Failed:     1,
		SentAt:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	p.Close()
}

func TestPublishDeliveryFailureIsDrained(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, NewConfig("test"))
	producer.ExpectInputAndFail(errBrokerDown)

	p := NewDeliveryPublisher(producer, "campaign-deliveries", discard())
	p.Start()

	assert.NoError(t, p.PublishDelivery(context.Background(), port.DeliveryEvent{CampaignID: "c1"}))
	p.Close()
	p.Close()
}

func TestPublishAfterCloseIsRejected(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, NewConfig("test"))
	p := NewDeliveryPublisher(producer, "campaign-deliveries", discard())
	p.Start()
	p.Close()

	err := p.PublishDelivery(context.Background(), port.DeliveryEvent{CampaignID: "c1"})
	assert.ErrorIs(t, err, ErrClosed)
}
