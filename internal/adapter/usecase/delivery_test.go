package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port/mocks"
)

func allSucceed(tokens []string) []domain.SendOutcome {
	out := make([]domain.SendOutcome, len(tokens))
	for i := range out {
		out[i] = domain.SendOutcome{Success: true}
	}
	return out
}

func TestDeliverRecordsPerTokenFailures(t *testing.T) {
	sender := mocks.NewMockPushSender(t)
	tokens := makeTokens(3)

	sender.EXPECT().
		SendMulticast(mock.Anything, domain.TokenValues(tokens), mock.Anything).
		Return([]domain.SendOutcome{
			{Success: true},
			{Success: false, Code: "invalid-token", Message: "bad token"},
			{Success: true},
		}, nil)

	res := NewBatchDeliverer(sender, 0, discardLogger()).Deliver(context.Background(), tokens, domain.NotificationPayload{})

	assert.Equal(t, 3, res.Requested)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, domain.FailureRecord{
		Token:   tokens[1].Token[:24],
		Code:    "invalid-token",
		Message: "bad token",
	}, res.Errors[0])
}

func TestDeliverSplitsIntoOrderedBatches(t *testing.T) {
	sender := mocks.NewMockPushSender(t)
	tokens := makeTokens(1201)

	var sizes []int
	var seen []string
	sender.EXPECT().
		SendMulticast(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, batch []string, _ domain.NotificationPayload) ([]domain.SendOutcome, error) {
			sizes = append(sizes, len(batch))
			seen = append(seen, batch...)
			return allSucceed(batch), nil
		}).
		Times(3)

	res := NewBatchDeliverer(sender, domain.MaxBatchSize, discardLogger()).Deliver(context.Background(), tokens, domain.NotificationPayload{})

	assert.Equal(t, []int{500, 500, 201}, sizes)
	assert.Equal(t, domain.TokenValues(tokens), seen)
	assert.Equal(t, 1201, res.Sent)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, 3, res.Batches)
	assert.Empty(t, res.Errors)
}

func TestDeliverExpandsWholeBatchFailure(t *testing.T) {
	sender := mocks.NewMockPushSender(t)
	tokens := makeTokens(700)
	values := domain.TokenValues(tokens)

	sender.EXPECT().SendMulticast(mock.Anything, values[:500], mock.Anything).Return(allSucceed(values[:500]), nil).Once()
	sender.EXPECT().SendMulticast(mock.Anything, values[500:], mock.Anything).Return(nil, errors.New("quota exceeded")).Once()

	res := NewBatchDeliverer(sender, 500, discardLogger()).Deliver(context.Background(), tokens, domain.NotificationPayload{})

	assert.Equal(t, 500, res.Sent)
	assert.Equal(t, 200, res.Failed)
	assert.Equal(t, res.Requested, res.Sent+res.Failed)
	require.Len(t, res.Errors, 200)
	for i, rec := range res.Errors {
		assert.Equal(t, domain.TruncateToken(values[500+i]), rec.Token)
		assert.Equal(t, domain.CodeMulticastError, rec.Code)
		assert.Equal(t, "quota exceeded", rec.Message)
	}
}

func TestDeliverStopsDispatchWhenCancelled(t *testing.T) {
	sender := mocks.NewMockPushSender(t)
	tokens := makeTokens(1100)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender.EXPECT().
		SendMulticast(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, batch []string, _ domain.NotificationPayload) ([]domain.SendOutcome, error) {
			cancel()
			return allSucceed(batch), nil
		}).
		Once()

	res := NewBatchDeliverer(sender, 500, discardLogger()).Deliver(ctx, tokens, domain.NotificationPayload{})

	assert.True(t, res.Cancelled)
	assert.Equal(t, 1, res.Batches)
	assert.Equal(t, 500, res.Sent)
	assert.Equal(t, 600, res.Failed)
	require.Len(t, res.Errors, 600)
	assert.Equal(t, domain.CodeCancelled, res.Errors[0].Code)
}

func TestDeliverCountsMissingOutcomesAsFailures(t *testing.T) {
	sender := mocks.NewMockPushSender(t)
	tokens := makeTokens(3)
	sender.EXPECT().SendMulticast(mock.Anything, mock.Anything, mock.Anything).Return([]domain.SendOutcome{{Success: true}}, nil)

	res := NewBatchDeliverer(sender, 500, discardLogger()).Deliver(context.Background(), tokens, domain.NotificationPayload{})

	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, domain.CodeMissingResponse, res.Errors[1].Code)
}
